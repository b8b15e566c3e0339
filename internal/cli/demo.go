package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/tablefmt/internal/demo"
)

func newDemoCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the sample customer, article, and order tables",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			p := demo.NewPrinter(nil, demo.WithLogger(a.log))
			return p.Print(a.out, a.cfg.GetString(keyTable))
		},
	}
	cmd.Flags().VarP(newEnumFlag(demo.All, demo.TableNames()), keyTable, "t", "select the table to print")
	return cmd
}
