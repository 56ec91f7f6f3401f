package networkprovider

import (
	"fmt"
	"github.com/baepo-cloud/baepo-netinfo/internal/macaddr"
	"github.com/baepo-cloud/baepo-netinfo/internal/types"
	"net"
)

type Provider struct {
	query types.InterfaceQuery
}

var _ types.NetworkProvider = (*Provider)(nil)

const maxInterfaceNameLength = 128

func New(query types.InterfaceQuery) *Provider {
	return &Provider{query: query}
}

// findInterface walks the live enumeration once and returns the first record
// accepted by match. Records that fail to read abort the walk.
func (p *Provider) findInterface(match func(record *types.InterfaceRecord) bool) (*types.InterfaceRecord, error) {
	interfaces, err := p.query.ListInterfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list network interfaces: %w", err)
	}
	if interfaces == nil {
		return nil, nil
	}

	for record, err := range interfaces {
		if err != nil {
			return nil, fmt.Errorf("failed to read network interface: %w", err)
		}
		if record != nil && match(record) {
			return record, nil
		}
	}
	return nil, nil
}

func (p *Provider) findByMacAddress(mac *macaddr.MAC) (*types.InterfaceRecord, error) {
	if mac == nil {
		return nil, nil
	}

	return p.findInterface(func(record *types.InterfaceRecord) bool {
		// loopback and most virtual links carry no hardware address
		if len(record.HardwareAddr) == 0 {
			return false
		}
		return macaddr.FromHardwareAddr(record.HardwareAddr).Equal(mac)
	})
}

func firstAddress(record *types.InterfaceRecord, family types.AddressFamily) net.IP {
	for _, ip := range record.Addresses {
		if ip != nil && family.Matches(ip) {
			return ip
		}
	}
	return nil
}

func toDetails(record *types.InterfaceRecord) *types.InterfaceDetails {
	details := &types.InterfaceDetails{
		Name:        record.Name,
		DisplayName: record.Alias,
		MacAddress:  macaddr.FromHardwareAddr(record.HardwareAddr),
	}
	if details.DisplayName == "" {
		details.DisplayName = record.Name
	}
	if ip := firstAddress(record, types.AddressFamilyIPv4); ip != nil {
		details.IPv4Address = ip.String()
	}
	return details
}
