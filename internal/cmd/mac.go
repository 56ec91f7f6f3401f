package cmd

import (
	"fmt"
	"github.com/baepo-cloud/baepo-netinfo/internal/macaddr"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "parse-mac <mac-address>",
		Short: "Print the canonical form and numeric value of a mac address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mac := macaddr.Parse(args[0])
			if mac == nil {
				return ErrNotFound
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", mac, mac.Int())
			return err
		},
	})
}
