package tablefmt

import "iter"

// Objects writes the rows for each item in order. It is the slice form of
// [Formatter.Object].
func Objects[T any](f *Formatter, items []T, opts ...RowOption) *Formatter {
	for _, item := range items {
		f.Object(item, opts...)
	}
	return f
}

// ObjectSeq writes the rows for each item yielded by seq.
func ObjectSeq[T any](f *Formatter, seq iter.Seq[T], opts ...RowOption) *Formatter {
	if seq == nil {
		return f
	}
	for item := range seq {
		f.Object(item, opts...)
	}
	return f
}

// ObjectChan writes the rows for each item received from ch until ch is
// closed. It is a thin wrapper around [ObjectSeq].
func ObjectChan[T any](f *Formatter, ch <-chan T, opts ...RowOption) *Formatter {
	if ch == nil {
		return f
	}
	return ObjectSeq(f, chanToIter(ch), opts...)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
