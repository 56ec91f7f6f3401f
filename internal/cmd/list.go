package cmd

import (
	"github.com/baepo-cloud/baepo-netinfo/internal/types"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List network interfaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var provider types.NetworkProvider
			if err := populate(&provider); err != nil {
				return err
			}

			details, err := provider.ListInterfaces()
			if err != nil {
				return err
			}
			return printDetails(cmd.OutOrStdout(), details)
		},
	})
}
