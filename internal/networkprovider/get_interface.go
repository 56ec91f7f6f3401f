package networkprovider

import (
	"github.com/baepo-cloud/baepo-netinfo/internal/macaddr"
	"github.com/baepo-cloud/baepo-netinfo/internal/types"
	"net"
	"strings"
)

func (p *Provider) InterfaceByMacAddress(mac *macaddr.MAC) (*types.InterfaceDetails, error) {
	record, err := p.findByMacAddress(mac)
	if err != nil || record == nil {
		return nil, err
	}

	return toDetails(record), nil
}

func (p *Provider) InterfaceByIPv4Address(address string) (*types.InterfaceDetails, error) {
	target := net.ParseIP(strings.TrimSpace(address)).To4()
	if target == nil {
		return nil, nil
	}

	record, err := p.findInterface(func(record *types.InterfaceRecord) bool {
		for _, ip := range record.Addresses {
			if ip.Equal(target) {
				return true
			}
		}
		return false
	})
	if err != nil || record == nil {
		return nil, err
	}

	return toDetails(record), nil
}
