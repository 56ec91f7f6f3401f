package wifiservice

import "strings"

// WifiInterfaceName returns "" when the device has no Wi-Fi adapter, which is
// the usual case on emulators and virtual machines.
func (s *Service) WifiInterfaceName() (string, error) {
	mac := s.WifiMacAddress()
	if mac == nil {
		return "", nil
	}

	name, err := s.networkProvider.NameByMacAddress(mac)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(name) == "" {
		return "", nil
	}
	return name, nil
}
