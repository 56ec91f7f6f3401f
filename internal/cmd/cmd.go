package cmd

import (
	"errors"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:           "netinfoctl",
		Short:         "Resolve local network interfaces by mac address, name and ip address",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			if err := cmd.Help(); err != nil {
				panic(err)
			}
		},
	}

	backendFlag  string
	logLevelFlag string
)

// ErrNotFound is returned by commands whose lookup came back empty.
var ErrNotFound = errors.New("not found")

func init() {
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "interface query backend: netlink or gopsutil (overrides NETINFO_QUERY_BACKEND)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn or error (overrides NETINFO_LOG_LEVEL)")
}

func Execute() error {
	return rootCmd.Execute()
}
