package types

import "github.com/baepo-cloud/baepo-netinfo/internal/macaddr"

type (
	// WifiMacSource supplies the MAC address of the device's Wi-Fi adapter as
	// the platform reports it. An empty string means there is no Wi-Fi adapter.
	WifiMacSource interface {
		CurrentWifiMacAddress() (string, error)
	}

	WifiService interface {
		WifiMacAddress() *macaddr.MAC

		WifiInterfaceName() (string, error)

		IPv4Address(defaultInterface string) (string, error)
	}
)
