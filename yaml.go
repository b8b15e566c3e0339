package tablefmt

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, header []string, rows [][]string) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(exportDoc{Headers: header, Rows: rows}); err != nil {
		return err
	}
	return enc.Close()
}
