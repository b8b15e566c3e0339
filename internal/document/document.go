// Package document loads table documents from YAML.
//
// A document describes one table and its content:
//
//	title: Customers
//	columns: "| ID | NAME | CONTACT |"
//	widths: [6, 16, 24]
//	alignments: R
//	rows:
//	  - ["100", "Meyer", "eme22@gmail.com"]
//	  - ["{---}", "{---}", "{---}"]
//	footer: ["1 customer"]
//
// A file may hold several documents separated by "---".
package document

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/tablefmt"
)

// ErrInvalidDocument is returned for documents that cannot describe a table.
var ErrInvalidDocument = errors.New("invalid table document")

// Document is one table description.
type Document struct {
	Title      string     `yaml:"title,omitempty"`
	Columns    string     `yaml:"columns"`
	Widths     []int      `yaml:"widths,omitempty"`
	Alignments string     `yaml:"alignments,omitempty"`
	Header     []string   `yaml:"header,omitempty"`
	Rows       [][]string `yaml:"rows,omitempty"`
	Footer     []string   `yaml:"footer,omitempty"`
}

// Load reads all documents from the file at path. A path of "-" reads
// standard input.
func Load(path string) ([]Document, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	docs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}

// Decode reads all documents from r. Unknown fields are rejected.
func Decode(r io.Reader) ([]Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var docs []Document
	for {
		var doc Document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse document %d: %w", len(docs)+1, err)
		}
		if err := doc.Validate(); err != nil {
			return nil, fmt.Errorf("document %d: %w", len(docs)+1, err)
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: no documents", ErrInvalidDocument)
	}
	return docs, nil
}

// Validate reports whether the document defines at least one column.
func (d *Document) Validate() error {
	if strings.TrimSpace(d.Columns) == "" {
		return fmt.Errorf("%w: columns spec is required", ErrInvalidDocument)
	}
	if len(tablefmt.ParseColumns(d.Columns)) == 0 {
		return fmt.Errorf("%w: columns spec %q defines no columns", ErrInvalidDocument, d.Columns)
	}
	return nil
}

// Table builds the table configuration the document describes.
func (d *Document) Table() *tablefmt.Table {
	return tablefmt.NewTable(d.Columns,
		tablefmt.Widths(d.Widths...),
		tablefmt.Alignments(d.Alignments),
	)
}

// Render writes the document into f: the title as a text line, the header,
// every row, and the footer.
func (d *Document) Render(f *tablefmt.Formatter) *tablefmt.Formatter {
	if d.Title != "" {
		f.Text(d.Title)
	}
	f.Header(d.Header...)
	for _, row := range d.Rows {
		f.Row(row...)
	}
	return f.Footer(d.Footer...)
}

// Export writes the document's header and rows to w in format f. The text
// format renders the whole document, title and footer included.
func (d *Document) Export(w io.Writer, f tablefmt.Format) error {
	t := d.Table()
	if f == tablefmt.Text {
		return d.Render(t.Formatter()).Print(w)
	}
	return t.Export(w, f, d.Header, d.Rows)
}
