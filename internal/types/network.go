package types

import (
	"errors"
	"github.com/baepo-cloud/baepo-netinfo/internal/macaddr"
	"iter"
	"net"
)

type (
	AddressFamily int

	// InterfaceRecord is a point-in-time view of one OS network interface.
	InterfaceRecord struct {
		Index        int
		Name         string
		Alias        string
		HardwareAddr net.HardwareAddr
		Addresses    []net.IP
	}

	InterfaceDetails struct {
		Name        string
		DisplayName string
		MacAddress  *macaddr.MAC
		IPv4Address string
	}

	// InterfaceQuery reads the interface table of the host. Implementations
	// must query the OS on every call.
	InterfaceQuery interface {
		// ListInterfaces returns a finite sequence over the current interfaces in
		// OS order. A nil sequence means enumeration is unavailable. A non-nil
		// error yielded by the sequence means that record could not be read.
		ListInterfaces() (iter.Seq2[*InterfaceRecord, error], error)

		// InterfaceByName returns nil, nil when no interface has that name.
		InterfaceByName(name string) (*InterfaceRecord, error)
	}

	NetworkProvider interface {
		NameByMacAddress(mac *macaddr.MAC) (string, error)

		HostAddressByName(name string, family AddressFamily) (string, error)

		IPv4HostAddressByName(name string) (string, error)

		IPv6HostAddressByName(name string) (string, error)

		InterfaceByMacAddress(mac *macaddr.MAC) (*InterfaceDetails, error)

		InterfaceByIPv4Address(address string) (*InterfaceDetails, error)

		ListInterfaces() ([]*InterfaceDetails, error)
	}
)

const (
	AddressFamilyUnspecified AddressFamily = iota
	AddressFamilyIPv4
	AddressFamilyIPv6
)

var (
	ErrUnknownBackend     = errors.New("unknown interface query backend")
	ErrBackendUnsupported = errors.New("interface query backend not supported on this platform")
)

func (f AddressFamily) String() string {
	switch f {
	case AddressFamilyIPv4:
		return "ipv4"
	case AddressFamilyIPv6:
		return "ipv6"
	default:
		return "unspecified"
	}
}

// Matches reports whether ip belongs to the family. IPv4-mapped IPv6
// addresses count as IPv4.
func (f AddressFamily) Matches(ip net.IP) bool {
	switch f {
	case AddressFamilyIPv4:
		return ip.To4() != nil
	case AddressFamilyIPv6:
		return ip.To4() == nil && ip.To16() != nil
	default:
		return false
	}
}
