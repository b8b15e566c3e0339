package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bjaus/tablefmt"
	"github.com/bjaus/tablefmt/internal/document"
)

func newRenderCommand(a *app) *cobra.Command {
	formats := make([]string, 0, len(tablefmt.Formats()))
	for _, f := range tablefmt.Formats() {
		formats = append(formats, f.String())
	}

	cmd := &cobra.Command{
		Use:   "render <path> [path [...]]",
		Short: "Render table documents",
		Long: `Render the YAML table documents in each file.

A path of "-" reads standard input. Each file may hold several documents
separated by "---".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			format, err := tablefmt.ParseFormat(a.cfg.GetString(keyFormat))
			if err != nil {
				return err
			}
			for _, path := range args {
				if err := a.render(path, format); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().VarP(newEnumFlag(tablefmt.Text.String(), formats), keyFormat, "f", "set output format")
	return cmd
}

func (a *app) render(path string, format tablefmt.Format) error {
	docs, err := document.Load(path)
	if err != nil {
		return err
	}
	for i := range docs {
		a.log.WithFields(logrus.Fields{
			"path":     path,
			"document": i + 1,
			"title":    docs[i].Title,
			"rows":     len(docs[i].Rows),
		}).Debug("Rendering document.")
		if err := docs[i].Export(a.out, format); err != nil {
			return err
		}
	}
	return nil
}
