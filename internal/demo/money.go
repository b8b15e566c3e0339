package demo

import (
	"fmt"
	"math"
)

// Currency identifies a currency by its ISO-like code.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	CHF Currency = "CHF"
	GBP Currency = "GBP"
	NOK Currency = "NOK"
	PLZ Currency = "PLZ"
	BTC Currency = "BTC"
)

var markings = map[Currency]string{
	USD: "$",
	EUR: "€",
	CHF: "₣",
	GBP: "£",
	NOK: "kr",
	PLZ: "zł",
	BTC: "₿",
}

// Code returns the currency code.
func (c Currency) Code() string { return string(c) }

// Marking returns the currency symbol, or the code when it has none.
func (c Currency) Marking() string {
	if m, ok := markings[c]; ok {
		return m
	}
	return string(c)
}

// TotalStyle is the style used for totals: symbols for currencies that are
// written with letters, codes for the rest.
func (c Currency) TotalStyle() PriceStyle {
	if c == NOK || c == PLZ {
		return WithSymbol
	}
	return WithCode
}

// PriceStyle selects how a price is decorated.
type PriceStyle int

const (
	Plain      PriceStyle = iota // 2.99
	WithCode                     // 2.99 EUR
	WithSymbol                   // 2.99€
)

// PriceFormatter turns an amount in cents into display text.
type PriceFormatter interface {
	FormatPrice(cents int64, c Currency, style PriceStyle) string
}

// DecimalFormatter writes prices with two decimals.
type DecimalFormatter struct{}

// FormatPrice implements [PriceFormatter].
func (DecimalFormatter) FormatPrice(cents int64, c Currency, style PriceStyle) string {
	sign := ""
	if cents < 0 {
		sign, cents = "-", -cents
	}
	amount := fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
	switch style {
	case WithCode:
		return amount + " " + c.Code()
	case WithSymbol:
		return amount + c.Marking()
	default:
		return amount
	}
}

// VAT rates.
const (
	StandardRate = 0.19
	ReducedRate  = 0.07
)

// Calculator computes order values and the VAT included in them. All
// amounts are in cents.
type Calculator interface {
	IncludedVAT(gross int64, rate float64) int64
	ItemValue(item OrderItem) int64
	ItemVAT(item OrderItem) int64
	OrderValue(o *Order) int64
	OrderVAT(o *Order) int64
	OrdersValue(orders []*Order) int64
	OrdersVAT(orders []*Order) int64
}

// VATCalculator is a [Calculator] for gross prices that include VAT.
type VATCalculator struct{}

var _ Calculator = VATCalculator{}

// Rate returns the VAT rate that applies to a.
func Rate(a *Article) float64 {
	if a.ReducedVAT {
		return ReducedRate
	}
	return StandardRate
}

// IncludedVAT returns the VAT contained in a gross amount, rounded to cents.
func (VATCalculator) IncludedVAT(gross int64, rate float64) int64 {
	g := float64(gross)
	return int64(math.Round(g - g/(1+rate)))
}

// ItemValue returns the gross value of item.
func (VATCalculator) ItemValue(item OrderItem) int64 {
	if item.Article == nil {
		return 0
	}
	return item.Article.UnitPrice * int64(item.Units)
}

// ItemVAT returns the VAT included in item's value.
func (v VATCalculator) ItemVAT(item OrderItem) int64 {
	if item.Article == nil {
		return 0
	}
	return v.IncludedVAT(v.ItemValue(item), Rate(item.Article))
}

// OrderValue returns the sum of o's item values.
func (v VATCalculator) OrderValue(o *Order) int64 {
	var sum int64
	if o != nil {
		for _, item := range o.Items {
			sum += v.ItemValue(item)
		}
	}
	return sum
}

// OrderVAT returns the sum of o's item VAT.
func (v VATCalculator) OrderVAT(o *Order) int64 {
	var sum int64
	if o != nil {
		for _, item := range o.Items {
			sum += v.ItemVAT(item)
		}
	}
	return sum
}

// OrdersValue returns the total value of orders.
func (v VATCalculator) OrdersValue(orders []*Order) int64 {
	var sum int64
	for _, o := range orders {
		sum += v.OrderValue(o)
	}
	return sum
}

// OrdersVAT returns the total VAT of orders.
func (v VATCalculator) OrdersVAT(orders []*Order) int64 {
	var sum int64
	for _, o := range orders {
		sum += v.OrderVAT(o)
	}
	return sum
}
