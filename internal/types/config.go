package types

import "log/slog"

type Config struct {
	QueryBackend     string
	DefaultInterface string
	WifiMacAddress   string
	SysfsNetDir      string
	LogLevel         slog.Level
}
