package cmd

import (
	"fmt"
	"github.com/baepo-cloud/baepo-netinfo/internal/types"
	"golang.org/x/term"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

func printResult(w io.Writer, value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrNotFound
	}
	_, err := fmt.Fprintln(w, value)
	return err
}

// printDetails aligns columns for a terminal and emits plain tab separated
// rows otherwise, so the output can be piped into cut or awk.
func printDetails(w io.Writer, details []*types.InterfaceDetails) error {
	out := w
	var table *tabwriter.Writer
	if isTerminal(w) {
		table = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		out = table
		fmt.Fprintln(out, "NAME\tDISPLAY NAME\tMAC ADDRESS\tIPV4 ADDRESS")
	}

	for _, d := range details {
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", d.Name, d.DisplayName, orDash(d.MacAddress.String()), orDash(d.IPv4Address))
	}

	if table != nil {
		return table.Flush()
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
