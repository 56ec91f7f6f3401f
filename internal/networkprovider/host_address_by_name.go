package networkprovider

import (
	"fmt"
	"github.com/baepo-cloud/baepo-netinfo/internal/types"
	"strings"
	"unicode/utf8"
)

func (p *Provider) IPv4HostAddressByName(name string) (string, error) {
	return p.HostAddressByName(name, types.AddressFamilyIPv4)
}

func (p *Provider) IPv6HostAddressByName(name string) (string, error) {
	return p.HostAddressByName(name, types.AddressFamilyIPv6)
}

// HostAddressByName returns the textual form of the first address of the
// given family bound to the named interface. Invalid arguments return ""
// without touching the OS.
func (p *Provider) HostAddressByName(name string, family types.AddressFamily) (string, error) {
	if strings.TrimSpace(name) == "" || utf8.RuneCountInString(name) > maxInterfaceNameLength {
		return "", nil
	}
	if family != types.AddressFamilyIPv4 && family != types.AddressFamilyIPv6 {
		return "", nil
	}

	record, err := p.query.InterfaceByName(name)
	if err != nil {
		return "", fmt.Errorf("failed to get network interface %s: %w", name, err)
	}
	if record == nil {
		return "", nil
	}

	if ip := firstAddress(record, family); ip != nil {
		return ip.String(), nil
	}
	return "", nil
}
