package cmd

import (
	"github.com/baepo-cloud/baepo-netinfo/internal/macaddr"
	"github.com/baepo-cloud/baepo-netinfo/internal/types"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "name <mac-address>",
		Short: "Print the name of the interface with the given mac address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var provider types.NetworkProvider
			if err := populate(&provider); err != nil {
				return err
			}

			name, err := provider.NameByMacAddress(macaddr.Parse(args[0]))
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), name)
		},
	})

	rootCmd.AddCommand(newHostAddressCommand("ipv4", types.AddressFamilyIPv4))
	rootCmd.AddCommand(newHostAddressCommand("ipv6", types.AddressFamilyIPv6))

	rootCmd.AddCommand(&cobra.Command{
		Use:   "show-mac <mac-address>",
		Short: "Show the interface with the given mac address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var provider types.NetworkProvider
			if err := populate(&provider); err != nil {
				return err
			}

			details, err := provider.InterfaceByMacAddress(macaddr.Parse(args[0]))
			if err != nil {
				return err
			}
			if details == nil {
				return ErrNotFound
			}
			return printDetails(cmd.OutOrStdout(), []*types.InterfaceDetails{details})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "show-ip <ipv4-address>",
		Short: "Show the interface the given ipv4 address is bound to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var provider types.NetworkProvider
			if err := populate(&provider); err != nil {
				return err
			}

			details, err := provider.InterfaceByIPv4Address(args[0])
			if err != nil {
				return err
			}
			if details == nil {
				return ErrNotFound
			}
			return printDetails(cmd.OutOrStdout(), []*types.InterfaceDetails{details})
		},
	})
}

func newHostAddressCommand(use string, family types.AddressFamily) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <interface>",
		Short: "Print the first " + family.String() + " address bound to an interface",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var provider types.NetworkProvider
			if err := populate(&provider); err != nil {
				return err
			}

			address, err := provider.HostAddressByName(args[0], family)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), address)
		},
	}
}
