// Package cli implements the tablefmt command line.
package cli

import (
	"io"
	"os"
	"path"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// app is the state shared by all commands.
type app struct {
	out io.Writer
	log *logrus.Logger
	cfg *viper.Viper
}

// NewRootCommand returns the tablefmt command tree. Table output goes to out
// and logs go to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	log := logrus.New()
	log.SetOutput(errOut)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	a := &app{out: out, log: log}

	root := &cobra.Command{
		Use:           path.Base(os.Args[0]),
		Short:         "Render fixed-width text tables",
		Long:          "Render fixed-width text tables from YAML documents and export them as CSV, TSV, JSON, YAML, or Markdown.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := newConfig(cmd)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return configureLogger(a.log, cfg)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().Var(newEnumFlag("warn", logLevels), keyLogLevel, "set log level")

	root.AddCommand(newRenderCommand(a), newDemoCommand(a))
	return root
}
