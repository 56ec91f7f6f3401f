package cmd

import (
	"fmt"
	"github.com/baepo-cloud/baepo-netinfo/internal/interfacequery"
	"github.com/baepo-cloud/baepo-netinfo/internal/types"
	"github.com/baepo-cloud/baepo-netinfo/internal/wifisource"
	"log/slog"
	"os"
)

func provideConfig() (*types.Config, error) {
	config := types.Config{
		QueryBackend:     os.Getenv("NETINFO_QUERY_BACKEND"),
		DefaultInterface: os.Getenv("NETINFO_DEFAULT_INTERFACE"),
		WifiMacAddress:   os.Getenv("NETINFO_WIFI_MAC_ADDRESS"),
		SysfsNetDir:      os.Getenv("NETINFO_SYSFS_NET_DIR"),
		LogLevel:         slog.LevelInfo,
	}
	logLevel := os.Getenv("NETINFO_LOG_LEVEL")

	if backendFlag != "" {
		config.QueryBackend = backendFlag
	}
	if logLevelFlag != "" {
		logLevel = logLevelFlag
	}

	if config.QueryBackend == "" {
		config.QueryBackend = interfacequery.DefaultBackend()
	}
	if config.SysfsNetDir == "" {
		config.SysfsNetDir = wifisource.DefaultSysfsNetDir
	}
	if logLevel != "" {
		if err := config.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
	}

	return &config, nil
}
