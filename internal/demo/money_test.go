package demo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/tablefmt/internal/demo"
)

func TestFormatPrice(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cents int64
		cur   demo.Currency
		style demo.PriceStyle
		want  string
	}{
		"plain":      {cents: 414, cur: demo.EUR, style: demo.Plain, want: "4.14"},
		"code":       {cents: 299, cur: demo.EUR, style: demo.WithCode, want: "2.99 EUR"},
		"symbol":     {cents: 649, cur: demo.EUR, style: demo.WithSymbol, want: "6.49€"},
		"letters":    {cents: 100000, cur: demo.NOK, style: demo.WithSymbol, want: "1000.00kr"},
		"small":      {cents: 5, cur: demo.USD, style: demo.WithSymbol, want: "0.05$"},
		"negative":   {cents: -1999, cur: demo.GBP, style: demo.WithCode, want: "-19.99 GBP"},
		"no marking": {cents: 100, cur: demo.Currency("XAU"), style: demo.WithSymbol, want: "1.00XAU"},
		"zero":       {cents: 0, cur: demo.EUR, style: demo.Plain, want: "0.00"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, demo.DecimalFormatter{}.FormatPrice(tt.cents, tt.cur, tt.style))
		})
	}
}

func TestTotalStyle(t *testing.T) {
	t.Parallel()
	assert.Equal(t, demo.WithCode, demo.EUR.TotalStyle())
	assert.Equal(t, demo.WithSymbol, demo.NOK.TotalStyle())
	assert.Equal(t, demo.WithSymbol, demo.PLZ.TotalStyle())
	assert.Equal(t, "zł", demo.PLZ.Marking())
	assert.Equal(t, "BTC", demo.BTC.Code())
}

func TestVATCalculator(t *testing.T) {
	t.Parallel()
	var calc demo.VATCalculator
	assert.Equal(t, int64(48), calc.IncludedVAT(299, demo.StandardRate))
	assert.Equal(t, int64(523), calc.IncludedVAT(7995, demo.ReducedRate))

	teller := &demo.Article{UnitPrice: 649}
	karte := &demo.Article{UnitPrice: 695, ReducedVAT: true}
	item := demo.OrderItem{Article: teller, Units: 4}
	assert.Equal(t, int64(2596), calc.ItemValue(item))
	assert.Equal(t, int64(414), calc.ItemVAT(item))
	assert.Zero(t, calc.ItemValue(demo.OrderItem{Units: 3}))

	c, _ := demo.NewCustomer(1, "Eric Meyer")
	o, _ := demo.NewOrder(1, c)
	o.AddItem(teller, 4).AddItem(karte, 1)
	assert.Equal(t, int64(3291), calc.OrderValue(o))
	assert.Equal(t, int64(459), calc.OrderVAT(o))
	assert.Zero(t, calc.OrderValue(nil))

	d := demo.SampleData()
	assert.Equal(t, int64(64270), calc.OrdersValue(d.Orders))
	assert.Equal(t, int64(7678), calc.OrdersVAT(d.Orders))
}
