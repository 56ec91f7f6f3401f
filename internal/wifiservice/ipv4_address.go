package wifiservice

import (
	"fmt"
	"github.com/nrednav/cuid2"
	"log/slog"
	"strings"
)

// IPv4Address resolves the Wi-Fi interface's IPv4 address, falling back to
// defaultInterface when there is no Wi-Fi interface or it has no IPv4
// address. The result is either a dotted address or "".
func (s *Service) IPv4Address(defaultInterface string) (string, error) {
	logger := s.logger.With(slog.String("lookup_id", cuid2.Generate()))

	name, err := s.WifiInterfaceName()
	if err != nil {
		return "", fmt.Errorf("failed to get wifi interface name: %w", err)
	}

	if name != "" {
		address, err := s.networkProvider.IPv4HostAddressByName(name)
		if err != nil {
			return "", fmt.Errorf("failed to get ipv4 address of %s: %w", name, err)
		}
		if strings.TrimSpace(address) != "" {
			logger.Debug("resolved wifi ipv4 address", slog.String("interface", name), slog.String("address", address))
			return address, nil
		}
		logger.Debug("wifi interface has no ipv4 address", slog.String("interface", name))
	}

	if strings.TrimSpace(defaultInterface) == "" {
		logger.Debug("no wifi ipv4 address and no default interface")
		return "", nil
	}

	logger.Debug("using default interface", slog.String("interface", defaultInterface))
	address, err := s.networkProvider.IPv4HostAddressByName(defaultInterface)
	if err != nil {
		return "", fmt.Errorf("failed to get ipv4 address of %s: %w", defaultInterface, err)
	}
	if strings.TrimSpace(address) == "" {
		return "", nil
	}
	return address, nil
}
