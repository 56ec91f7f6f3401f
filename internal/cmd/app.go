package cmd

import (
	"github.com/baepo-cloud/baepo-netinfo/internal/interfacequery"
	"github.com/baepo-cloud/baepo-netinfo/internal/networkprovider"
	"github.com/baepo-cloud/baepo-netinfo/internal/types"
	"github.com/baepo-cloud/baepo-netinfo/internal/wifiservice"
	"github.com/baepo-cloud/baepo-netinfo/internal/wifisource"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"log/slog"
	"os"
)

// populate builds the dependency graph and fills targets, which must be
// pointers to provided types. Nothing in the graph has a lifecycle, so the
// app is never started.
func populate(targets ...any) error {
	app := fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			fxLogger := &fxevent.SlogLogger{Logger: logger}
			fxLogger.UseLogLevel(slog.LevelDebug)
			return fxLogger
		}),
		fx.Provide(provideConfig),
		fx.Provide(provideLogger),
		fx.Provide(provideInterfaceQuery),
		fx.Provide(provideWifiMacSource),
		fx.Provide(fx.Annotate(networkprovider.New, fx.As(new(types.NetworkProvider)))),
		fx.Provide(fx.Annotate(wifiservice.New, fx.As(new(types.WifiService)))),
		fx.Populate(targets...),
	)
	return app.Err()
}

func provideLogger(config *types.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.LogLevel}))
}

func provideInterfaceQuery(config *types.Config) (types.InterfaceQuery, error) {
	return interfacequery.New(config.QueryBackend)
}

func provideWifiMacSource(config *types.Config) types.WifiMacSource {
	if config.WifiMacAddress != "" {
		return wifisource.Static(config.WifiMacAddress)
	}
	return wifisource.NewSysfs(config.SysfsNetDir)
}
