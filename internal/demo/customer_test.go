package demo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tablefmt/internal/demo"
)

func TestSplitName(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input     string
		wantLast  string
		wantFirst string
		wantOK    bool
	}{
		"first last":         {input: "Eric Meyer", wantLast: "Meyer", wantFirst: "Eric", wantOK: true},
		"many first names":   {input: "Eric Robert Louis Meyer", wantLast: "Meyer", wantFirst: "Eric Robert Louis", wantOK: true},
		"dashed last name":   {input: "Eric Robert Meyer-Santos-Ortega", wantLast: "Meyer-Santos-Ortega", wantFirst: "Eric Robert", wantOK: true},
		"comma":              {input: "Meyer, Eric", wantLast: "Meyer", wantFirst: "Eric", wantOK: true},
		"semicolon":          {input: "Meyer; Eric", wantLast: "Meyer", wantFirst: "Eric", wantOK: true},
		"comma many first":   {input: "Blumenfeld; Nadine Ulla", wantLast: "Blumenfeld", wantFirst: "Nadine Ulla", wantOK: true},
		"extra spaces":       {input: " Eric  Meyer   ", wantLast: "Meyer", wantFirst: "Eric", wantOK: true},
		"quotes":             {input: ` 'Eric Meyer'  `, wantLast: "Meyer", wantFirst: "Eric", wantOK: true},
		"single name":        {input: "Meyer", wantLast: "Meyer", wantOK: true},
		"empty":              {input: ""},
		"only blanks":        {input: "  \t "},
		"comma without last": {input: ", Eric", wantFirst: "Eric"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			last, first, ok := demo.SplitName(tt.input)
			assert.Equal(t, tt.wantLast, last)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestNewCustomer(t *testing.T) {
	t.Parallel()
	c, ok := demo.NewCustomer(100, "Bayer, Anne")
	require.True(t, ok)
	assert.Equal(t, int64(100), c.ID)
	assert.Equal(t, "Bayer", c.Name)
	assert.Equal(t, "Anne", c.FirstNames)

	_, ok = demo.NewCustomer(101, " ")
	assert.False(t, ok)
}

func TestCustomerContacts(t *testing.T) {
	t.Parallel()
	c, ok := demo.NewCustomer(1, "Eric Meyer")
	require.True(t, ok)

	c.AddContact("eme@gmail.com").
		AddContact(" +49 030 515 141345 ").
		AddContact("fax: 030 234-134651").
		AddContact("fax: 030 234-134651").
		AddContact(`"eme@gmail.com"`).
		AddContact("  ")

	assert.Equal(t, []string{"eme@gmail.com", "+49 030 515 141345", "fax: 030 234-134651"}, c.Contacts())
	assert.Equal(t, "+49 030 515 141345", c.Contact(1))
	assert.Empty(t, c.Contact(-1))
	assert.Empty(t, c.Contact(3))

	c.RemoveContact(1).RemoveContact(9)
	assert.Equal(t, []string{"eme@gmail.com", "fax: 030 234-134651"}, c.Contacts())

	c.Contacts()[0] = "changed"
	assert.Equal(t, "eme@gmail.com", c.Contact(0))
}

func TestOrderItems(t *testing.T) {
	t.Parallel()
	c, _ := demo.NewCustomer(1, "Eric Meyer")
	o, ok := demo.NewOrder(42, c)
	require.True(t, ok)

	cup := &demo.Article{ID: "A", UnitPrice: 299}
	o.AddItem(cup, 2).AddItem(nil, 1).AddItem(cup, 0)
	assert.Len(t, o.Items, 1)

	_, ok = demo.NewOrder(0, c)
	assert.False(t, ok)
	_, ok = demo.NewOrder(1, nil)
	assert.False(t, ok)
}

func TestSampleData(t *testing.T) {
	t.Parallel()
	d := demo.SampleData()
	assert.Len(t, d.Customers, 6)
	assert.Len(t, d.Articles, 9)
	assert.Len(t, d.Orders, 7)
	assert.Len(t, d.Customers[0].Contacts(), 3)
	assert.Equal(t, "Khaled Saad Mohamed", d.Customers[4].FirstNames)
	assert.NotSame(t, d.Customers[0], demo.SampleData().Customers[0])
}
