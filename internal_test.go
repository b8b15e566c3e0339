package tablefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitMarker(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		raw         string
		wantMarker  string
		wantContent string
		wantOK      bool
	}{
		"plain":         {raw: "text", wantContent: "text"},
		"empty":         {raw: "", wantContent: ""},
		"empty marker":  {raw: "{}rest", wantContent: "rest", wantOK: true},
		"label":         {raw: "{label}", wantMarker: "label", wantOK: true},
		"align":         {raw: "{R }total:", wantMarker: "R ", wantContent: "total:", wantOK: true},
		"no close":      {raw: "{R total", wantContent: "{R total"},
		"brace inside":  {raw: "a{b}", wantContent: "a{b}"},
		"second brace":  {raw: "{L}x}y", wantMarker: "L", wantContent: "x}y", wantOK: true},
		"nested opener": {raw: "{{x}y", wantMarker: "{x", wantContent: "y", wantOK: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			marker, content, ok := splitMarker(tt.raw)
			assert.Equal(t, tt.wantMarker, marker)
			assert.Equal(t, tt.wantContent, content)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestResolveCell(t *testing.T) {
	t.Parallel()
	col := Column{Label: "NAME", Width: 6, LeftMargin: 1, RightMargin: 2, Separator: SepBar, Align: AlignLeft}
	tests := map[string]struct {
		raw       string
		in        carry
		want      cell
		wantCarry carry
	}{
		"plain": {
			raw:  "Al",
			want: cell{content: "Al", sep: SepBar, align: AlignLeft, left: 1, right: 2},
		},
		"corner carry": {
			raw:  "Al",
			in:   carryCorner,
			want: cell{content: "Al", sep: SepCorner, align: AlignLeft, left: 1, right: 2},
		},
		"blank carry ignored for text": {
			raw:  "Al",
			in:   carryBlank,
			want: cell{content: "Al", sep: SepBar, align: AlignLeft, left: 1, right: 2},
		},
		"blank carry on empty": {
			raw:  "",
			in:   carryBlank,
			want: cell{content: "", sep: SepBlank, align: AlignLeft, left: 1, right: 2},
		},
		"label": {
			raw:  "{label}",
			want: cell{content: "NAME", sep: SepBar, align: AlignLeft, left: 1, right: 2},
		},
		"dash rule": {
			raw:       "{---}",
			want:      cell{content: "------", sep: SepCorner, align: AlignLeft, rule: true},
			wantCarry: carryCorner,
		},
		"double rule": {
			raw:       "{===}",
			want:      cell{content: "======", sep: SepCorner, align: AlignLeft, rule: true},
			wantCarry: carryCorner,
		},
		"right blank": {
			raw:       "{R }x",
			want:      cell{content: "x", sep: SepBlank, align: AlignRight, left: 1, right: 2},
			wantCarry: carryBlank,
		},
		"empty marker": {
			raw:  "{}gone",
			want: cell{content: "", sep: SepBar, align: AlignLeft, left: 1, right: 2},
		},
		"unknown marker keeps content": {
			raw:  "{x}y",
			want: cell{content: "y", sep: SepBar, align: AlignLeft, left: 1, right: 2},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, next := resolveCell(col, tt.raw, tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCarry, next)
		})
	}
}

func TestLayoutCellThreadsCarry(t *testing.T) {
	t.Parallel()
	col := Column{Label: "A", Width: 3, LeftMargin: 1, RightMargin: 1, Separator: SepBar}

	text, sep, next := layoutCell(col, "{---}", false, carryNone)
	assert.Equal(t, "+---", text)
	assert.Equal(t, SepCorner, sep)
	assert.Equal(t, carryCorner, next)

	text, sep, next = layoutCell(col, "x", false, next)
	assert.Equal(t, "+ x ", text)
	assert.Equal(t, SepCorner, sep)
	assert.Equal(t, carryNone, next)

	text, sep, _ = layoutCell(col, "", true, carryNone)
	assert.Equal(t, "    ", text)
	assert.Equal(t, SepBlank, sep)
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Hello", alignLeft("Hello World", 5, 0))
	assert.Equal(t, "World", alignRight("Hello World", 5, 0))
	assert.Equal(t, " ab  ", alignLeft("ab", 5, 1))
	assert.Equal(t, "  ab ", alignRight("ab", 5, 1))
	assert.Equal(t, "   ", alignLeft("ab", 3, 9))
	assert.Equal(t, "", alignRight("ab", 0, 0))
}

func TestTruncateHead(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abc", truncateHead("abc", 3))
	assert.Equal(t, "bc", truncateHead("abc", 2))
	assert.Equal(t, "", truncateHead("abc", 0))
	assert.Equal(t, "語", truncateHead("日本語", 3))
	assert.Equal(t, "€", truncateHead("9.99€", 1))
}

func TestResolveDropsRuleRows(t *testing.T) {
	t.Parallel()
	tbl := NewTable("| A | B |", Widths(3, 3))
	cells, ok := tbl.resolve([]string{"{label}", "{R }x"})
	assert.True(t, ok)
	assert.Equal(t, []string{"A", "x"}, cells)

	_, ok = tbl.resolve([]string{"", "{===}"})
	assert.False(t, ok)
}
