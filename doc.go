// Package tablefmt renders fixed-width text tables into a buffer that is
// flushed to an [io.Writer].
//
// A [Table] is built once from a column specification and options, and is
// immutable afterwards. Each [Formatter] created from it owns a private
// buffer:
//
//	t := tablefmt.NewTable("| ID | NAME | CONTACT |",
//	    tablefmt.Widths(6, 16, 24),
//	    tablefmt.Alignments("R"),
//	    tablefmt.RowMapper(func(c Customer) []string {
//	        return []string{strconv.FormatInt(c.ID, 10), c.Name, c.Contact}
//	    }),
//	)
//
//	t.Formatter().
//	    Header().
//	    Object(c1).
//	    Object(c2).
//	    Footer().
//	    Print(os.Stdout)
//
// which prints:
//
//	+------+----------------+------------------------+
//	|   ID | NAME           | CONTACT                |
//	+------+----------------+------------------------+
//	|  100 | Meyer          | eme22@gmail.com        |
//	|  101 | Sommer         | +49 030 22458 29425    |
//	+------+----------------+------------------------+
//
// # Column Specification
//
// The characters '|' and '+' delimit columns. Each delimiter becomes the
// separator drawn in front of the column that follows it. The trimmed text
// between two delimiters is the column label; its leading and trailing
// whitespace become the column's left and right margins. The default width is
// the display width of the label. Use [Widths] and [Alignments] to override
// widths and alignments positionally.
//
// # Cell Markers
//
// A cell value may start with a {marker}:
//
//   - {} renders an empty cell
//   - {label} renders the column label
//   - {---} and {===} fill the cell with '-' or '=' between '+' corners
//   - {L...} and {R...} align the cell left or right
//   - a marker containing a space, such as {R }, blanks the separator
//
// An empty value renders blank, and its separator disappears when the
// previous value is empty too. A value without a closing brace is literal.
//
// # Object Rows
//
// [RowMapper] and [MultiRowMapper] register typed mapping functions. A mapper
// fires for every object assignable to its type, so a mapper registered for
// an interface type matches all implementations. Objects with no matching
// mapper may implement [Rower] or [MultiRower] themselves.
//
// # Export
//
// [Table.Export] writes resolved rows as CSV, TSV, JSON, YAML, or Markdown
// for machine consumption. Rule rows are dropped in those formats.
//
// # Errors
//
//   - [ErrUnsupportedFormat]: unknown export format
//   - [ErrPrint]: the writer passed to [Formatter.Print] failed
package tablefmt
