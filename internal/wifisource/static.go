package wifisource

import "github.com/baepo-cloud/baepo-netinfo/internal/types"

// Static reports a fixed MAC address, typically one taken from configuration.
type Static string

var _ types.WifiMacSource = Static("")

func (s Static) CurrentWifiMacAddress() (string, error) {
	return string(s), nil
}
