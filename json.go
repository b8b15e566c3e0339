package tablefmt

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, header []string, rows [][]string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(exportDoc{Headers: header, Rows: rows})
}
