package wifiservice

import (
	"github.com/baepo-cloud/baepo-netinfo/internal/types"
	"log/slog"
)

// Service locates the device's Wi-Fi interface from the MAC address the
// platform reports and resolves its IPv4 address.
type Service struct {
	networkProvider types.NetworkProvider
	macSource       types.WifiMacSource
	logger          *slog.Logger
}

var _ types.WifiService = (*Service)(nil)

func New(networkProvider types.NetworkProvider, macSource types.WifiMacSource, logger *slog.Logger) *Service {
	return &Service{
		networkProvider: networkProvider,
		macSource:       macSource,
		logger:          logger.With(slog.String("component", "wifiservice")),
	}
}
