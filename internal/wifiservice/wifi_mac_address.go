package wifiservice

import (
	"github.com/baepo-cloud/baepo-netinfo/internal/macaddr"
	"log/slog"
	"strings"
)

// WifiMacAddress returns the Wi-Fi adapter's address, or nil when there is no
// adapter or its address cannot be read or parsed.
func (s *Service) WifiMacAddress() *macaddr.MAC {
	if s.macSource == nil {
		return nil
	}

	text, err := s.macSource.CurrentWifiMacAddress()
	if err != nil {
		s.logger.Error("failed to read wifi mac address", slog.Any("error", err))
		return nil
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	mac := macaddr.Parse(text)
	if mac == nil {
		s.logger.Error("unknown mac address format", slog.String("mac_address", text))
	}
	return mac
}
