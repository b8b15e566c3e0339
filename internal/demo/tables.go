package demo

import (
	"fmt"
	"strconv"

	"github.com/bjaus/tablefmt"
)

// CustomerTable lists customers with one row per contact. Customers with
// several contacts are closed by a rule.
func CustomerTable() *tablefmt.Table {
	return tablefmt.NewTable("| ID | NAME | FIRSTNAMES | CONTACTS |",
		tablefmt.Widths(6, 22, 22, 24),
		tablefmt.Alignments("R"),
		tablefmt.MultiRowMapper(customerRows),
	)
}

func customerRows(c *Customer) [][]string {
	if c == nil {
		return nil
	}
	contacts := c.Contacts()
	first := []string{
		strconv.FormatInt(c.ID, 10),
		orBlank(c.Name),
		orBlank(c.FirstNames),
		orBlank(c.Contact(0)),
	}
	rows := [][]string{first}
	for _, contact := range contacts[min(1, len(contacts)):] {
		rows = append(rows, []string{" ", " ", " ", contact})
	}
	if len(contacts) > 1 {
		rows = append(rows, []string{"{---}", "{---}", "{---}", "{---}"})
	}
	return rows
}

// ArticleTable lists articles with their VAT rate, included VAT, and price.
func ArticleTable(calc Calculator, pf PriceFormatter) *tablefmt.Table {
	return tablefmt.NewTable("| ID | DESCRIPTION | VAT %| VAT | PRICE |",
		tablefmt.Widths(12, 20, 7, 10, 24),
		tablefmt.Alignments("LLRRR"),
		tablefmt.RowMapper(func(a *Article) []string {
			if a == nil {
				return nil
			}
			rate := Rate(a)
			return []string{
				a.ID,
				a.Description,
				fmt.Sprintf("%.1f%s", rate*100, reducedMarker(a)),
				pf.FormatPrice(calc.IncludedVAT(a.UnitPrice, rate), EUR, Plain),
				pf.FormatPrice(a.UnitPrice, EUR, WithCode),
			}
		}),
	)
}

// OrderTable lists orders: a heading with order and customer, one row per
// item, and the order totals on the last item.
func OrderTable(calc Calculator, pf PriceFormatter) *tablefmt.Table {
	return tablefmt.NewTable("| ORDER | MwSt*| Preis | MwSt | Gesamt |",
		tablefmt.Widths(31, 9, 10, 10, 13),
		tablefmt.Alignments("LRRRR"),
		tablefmt.MultiRowMapper(func(o *Order) [][]string {
			return orderRows(o, calc, pf, EUR)
		}),
	)
}

func orderRows(o *Order, calc Calculator, pf PriceFormatter, cur Currency) [][]string {
	if o == nil || o.Customer == nil {
		return nil
	}
	rows := [][]string{
		{fmt.Sprintf("OID:%d, CID:%d", o.ID, o.Customer.ID), " ", " ", " ", " "},
		{fmt.Sprintf("%s %s", o.Customer.FirstNames, o.Customer.Name), " ", " ", " ", " "},
	}
	var value, vat int64
	for i, item := range o.Items {
		itemValue, itemVAT := calc.ItemValue(item), calc.ItemVAT(item)
		value += itemValue
		vat += itemVAT

		orderVAT, orderValue := " ", " "
		if i == len(o.Items)-1 {
			orderVAT = pf.FormatPrice(vat, cur, Plain)
			orderValue = pf.FormatPrice(value, cur, cur.TotalStyle())
		}
		rows = append(rows, []string{
			fmt.Sprintf("- %d %s, %dx %s", item.Units, item.Article.Description, item.Units,
				pf.FormatPrice(item.Article.UnitPrice, cur, WithSymbol)),
			pf.FormatPrice(itemVAT, cur, Plain) + reducedMarker(item.Article),
			pf.FormatPrice(itemValue, cur, Plain),
			orderVAT,
			orderValue,
		})
	}
	return append(rows, []string{"{---}", "{---}", "{---}", "{---}", "{---}"})
}

func reducedMarker(a *Article) string {
	if a.ReducedVAT {
		return "*"
	}
	return " "
}

func orBlank(s string) string {
	if s == "" {
		return " "
	}
	return s
}
