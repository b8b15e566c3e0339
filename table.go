package tablefmt

// Table is an immutable table configuration: columns plus row mappers.
// A Table is safe for concurrent use by multiple formatters.
type Table struct {
	columns []Column
	single  []mapFunc
	multi   []mapFunc
}

// Option configures a [Table] under construction.
type Option func(*config)

type config struct {
	columns []Column
	single  []mapFunc
	multi   []mapFunc
}

// NewTable builds a table from a column specification and options.
// Options are applied in order.
func NewTable(spec string, opts ...Option) *Table {
	cfg := &config{columns: ParseColumns(spec)}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return &Table{
		columns: append([]Column(nil), cfg.columns...),
		single:  append([]mapFunc(nil), cfg.single...),
		multi:   append([]mapFunc(nil), cfg.multi...),
	}
}

// Widths overrides column widths left to right. Extra widths are ignored and
// negative widths are treated as zero.
func Widths(widths ...int) Option {
	return func(c *config) {
		for i, w := range widths {
			if i >= len(c.columns) {
				break
			}
			c.columns[i].Width = max(0, w)
		}
	}
}

// Alignments overrides column alignments left to right from a string of 'L'
// and 'R' characters. Other characters leave the column unchanged.
func Alignments(alignments string) Option {
	return func(c *config) {
		i := 0
		for _, r := range alignments {
			if i >= len(c.columns) {
				break
			}
			if a, ok := parseAlignment(r); ok {
				c.columns[i].Align = a
			}
			i++
		}
	}
}

// Columns returns a copy of the table's columns.
func (t *Table) Columns() []Column {
	return append([]Column(nil), t.columns...)
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.columns) }

// RenderRow returns the text of one row, including its trailing newline.
// It does not touch any formatter state.
func (t *Table) RenderRow(values ...string) string {
	return renderRow(t.columns, values)
}

// Formatter returns a new formatter with an empty buffer.
func (t *Table) Formatter(opts ...FormatterOption) *Formatter {
	return NewFormatter(t, opts...)
}

// fill returns one copy of value per column.
func (t *Table) fill(value string) []string {
	out := make([]string, len(t.columns))
	for i := range out {
		out[i] = value
	}
	return out
}

// resolve returns the cell text of values with markers applied. It reports
// false for rule rows.
func (t *Table) resolve(values []string) ([]string, bool) {
	n := min(len(t.columns), len(values))
	out := make([]string, n)
	for i := range n {
		c, _ := resolveCell(t.columns[i], values[i], carryNone)
		if c.rule {
			return nil, false
		}
		out[i] = c.content
	}
	return out, true
}
