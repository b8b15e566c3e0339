package tablefmt

// Rower is implemented by objects that render as a single row when no
// registered mapper matches them.
type Rower interface {
	Row() []string
}

// MultiRower is implemented by objects that render as several rows when no
// registered mapper matches them.
type MultiRower interface {
	Rows() [][]string
}

// mapFunc maps v to rows and reports whether v matched the mapper's type.
type mapFunc func(v any) ([][]string, bool)

// RowMapper registers fn for every object assignable to T. When T is an
// interface type, all implementations match.
func RowMapper[T any](fn func(T) []string) Option {
	return func(c *config) {
		if fn == nil {
			return
		}
		c.single = append(c.single, func(v any) ([][]string, bool) {
			obj, ok := v.(T)
			if !ok {
				return nil, false
			}
			return [][]string{fn(obj)}, true
		})
	}
}

// MultiRowMapper registers fn for every object assignable to T. Each
// returned row is rendered in order.
func MultiRowMapper[T any](fn func(T) [][]string) Option {
	return func(c *config) {
		if fn == nil {
			return
		}
		c.multi = append(c.multi, func(v any) ([][]string, bool) {
			obj, ok := v.(T)
			if !ok {
				return nil, false
			}
			return fn(obj), true
		})
	}
}

// RowOption configures a single object row call.
type RowOption func(*rowOptions)

type rowOptions struct {
	separator bool
}

// WithSeparatorLine appends a rule line after the rows of each matching
// mapper.
func WithSeparatorLine() RowOption {
	return func(o *rowOptions) { o.separator = true }
}

func applyRowOptions(opts []RowOption) rowOptions {
	var o rowOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// mapObject returns the row groups produced for v: one group per matching
// single-row mapper, then one per matching multi-row mapper. Without any
// match it falls back to v's own Rower and MultiRower implementations.
func (t *Table) mapObject(v any) [][][]string {
	if v == nil {
		return nil
	}
	var groups [][][]string
	for _, m := range t.single {
		if rows, ok := m(v); ok {
			groups = append(groups, rows)
		}
	}
	for _, m := range t.multi {
		if rows, ok := m(v); ok {
			groups = append(groups, rows)
		}
	}
	if len(groups) > 0 {
		return groups
	}
	if r, ok := v.(Rower); ok {
		groups = append(groups, [][]string{r.Row()})
	}
	if mr, ok := v.(MultiRower); ok {
		groups = append(groups, mr.Rows())
	}
	return groups
}
