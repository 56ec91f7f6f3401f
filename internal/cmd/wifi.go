package cmd

import (
	"fmt"
	"github.com/baepo-cloud/baepo-netinfo/internal/types"
	"github.com/spf13/cobra"
)

func init() {
	wifiCmd := &cobra.Command{
		Use:   "wifi",
		Short: "Resolve the Wi-Fi interface",
		Run: func(cmd *cobra.Command, args []string) {
			if err := cmd.Help(); err != nil {
				panic(err)
			}
		},
	}

	wifiCmd.AddCommand(&cobra.Command{
		Use:   "mac",
		Short: "Print the Wi-Fi mac address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var service types.WifiService
			if err := populate(&service); err != nil {
				return err
			}

			mac := service.WifiMacAddress()
			if mac == nil {
				return ErrNotFound
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", mac, mac.Int())
			return err
		},
	})

	wifiCmd.AddCommand(&cobra.Command{
		Use:   "name",
		Short: "Print the Wi-Fi interface name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var service types.WifiService
			if err := populate(&service); err != nil {
				return err
			}

			name, err := service.WifiInterfaceName()
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), name)
		},
	})

	var defaultInterface string
	ipv4Cmd := &cobra.Command{
		Use:   "ipv4",
		Short: "Print the Wi-Fi ipv4 address, falling back to a default interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				service types.WifiService
				config  *types.Config
			)
			if err := populate(&service, &config); err != nil {
				return err
			}

			fallback := config.DefaultInterface
			if cmd.Flags().Changed("default-interface") {
				fallback = defaultInterface
			}

			address, err := service.IPv4Address(fallback)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), address)
		},
	}
	ipv4Cmd.Flags().StringVar(&defaultInterface, "default-interface", "", "interface to use when there is no Wi-Fi address (overrides NETINFO_DEFAULT_INTERFACE)")
	wifiCmd.AddCommand(ipv4Cmd)

	rootCmd.AddCommand(wifiCmd)
}
