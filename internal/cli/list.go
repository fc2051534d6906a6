package cli

import (
	"fmt"
	"io"

	"github.com/npillmayer/alga/lawcheck"
	"github.com/npillmayer/alga/structure"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List registered structures",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeRegistrations(cmd.OutOrStdout(), structure.Registrations())
		},
	}
	return cmd
}

// writeRegistrations prints one registration per line, followed by the
// operator symbol in an aligned column.
func writeRegistrations(w io.Writer, regs []structure.Registration) error {
	width := 0
	for _, r := range regs {
		width = max(width, lawcheck.DisplayWidth(r.String()))
	}
	for _, r := range regs {
		if _, err := fmt.Fprintf(w, "%s  %s\n", lawcheck.Pad(r.String(), width), r.Symbol); err != nil {
			return err
		}
	}
	return nil
}
