// Package demo renders customer, article, and order tables from a small
// sample data set.
package demo

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bjaus/tablefmt"
)

// ErrUnknownTable is returned for table names that [Printer.Print] does not
// know.
var ErrUnknownTable = errors.New("unknown demo table")

// Table names accepted by [Printer.Print].
const (
	Customers = "customers"
	Articles  = "articles"
	Orders    = "orders"
	All       = "all"
)

// TableNames returns the accepted table names.
func TableNames() []string {
	return []string{Customers, Articles, Orders, All}
}

// Printer writes the demo tables.
type Printer struct {
	data      *Data
	calc      Calculator
	prices    PriceFormatter
	log       logrus.FieldLogger
	customers *tablefmt.Table
	articles  *tablefmt.Table
	orders    *tablefmt.Table
}

// PrinterOption configures a [Printer].
type PrinterOption func(*Printer)

// WithCalculator replaces the VAT calculator.
func WithCalculator(c Calculator) PrinterOption {
	return func(p *Printer) { p.calc = c }
}

// WithPriceFormatter replaces the price formatter.
func WithPriceFormatter(pf PriceFormatter) PrinterOption {
	return func(p *Printer) { p.prices = pf }
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) PrinterOption {
	return func(p *Printer) { p.log = l }
}

// NewPrinter returns a printer for data. A nil data set uses [SampleData].
func NewPrinter(data *Data, opts ...PrinterOption) *Printer {
	if data == nil {
		data = SampleData()
	}
	p := &Printer{
		data:   data,
		calc:   VATCalculator{},
		prices: DecimalFormatter{},
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	p.customers = CustomerTable()
	p.articles = ArticleTable(p.calc, p.prices)
	p.orders = OrderTable(p.calc, p.prices)
	return p
}

// Print writes the named table to w. [All] writes object counts followed by
// every table.
func (p *Printer) Print(w io.Writer, name string) error {
	switch strings.ToLower(name) {
	case Customers:
		return p.PrintCustomers(w)
	case Articles:
		return p.PrintArticles(w)
	case Orders:
		return p.PrintOrders(w)
	case All, "":
		return p.PrintAll(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}
}

// PrintAll writes object counts and all three tables.
func (p *Printer) PrintAll(w io.Writer) error {
	_, err := fmt.Fprintf(w, "(%d) Customer objects built.\n(%d) Article objects built.\n(%d) Order objects built.\n---\n",
		len(p.data.Customers), len(p.data.Articles), len(p.data.Orders))
	if err != nil {
		return err
	}
	for _, fn := range []func(io.Writer) error{p.PrintCustomers, p.PrintArticles, p.PrintOrders} {
		if err := fn(w); err != nil {
			return err
		}
	}
	return nil
}

// PrintCustomers writes the customer table.
func (p *Printer) PrintCustomers(w io.Writer) error {
	f := p.customers.Formatter(tablefmt.WithLogger(p.log)).
		Text("Customers:").
		Header()
	tablefmt.Objects(f, p.data.Customers)
	return p.flush(w, Customers, f.Footer())
}

// PrintArticles writes the article table.
func (p *Printer) PrintArticles(w io.Writer) error {
	f := p.articles.Formatter(tablefmt.WithLogger(p.log)).
		Text("Articles:").
		Header("{label}", "{label}", "{label}", "{label}", "(Germany) PRICE EUR")
	tablefmt.Objects(f, p.data.Articles)
	return p.flush(w, Articles, f.Footer())
}

// PrintOrders writes the order table followed by the grand totals.
func (p *Printer) PrintOrders(w io.Writer) error {
	f := p.orders.Formatter(tablefmt.WithLogger(p.log)).
		Text("Orders:").
		Header()
	tablefmt.Objects(f, p.data.Orders)
	f.Row("", "", "{ }Gesamt:",
		p.prices.FormatPrice(p.calc.OrdersVAT(p.data.Orders), EUR, Plain),
		p.prices.FormatPrice(p.calc.OrdersValue(p.data.Orders), EUR, EUR.TotalStyle()),
	).Row("", "", "", "{===}", "{===}")
	return p.flush(w, Orders, f)
}

func (p *Printer) flush(w io.Writer, table string, f *tablefmt.Formatter) error {
	n := f.Len()
	if err := f.Print(w); err != nil {
		return fmt.Errorf("failed to print %s table: %w", table, err)
	}
	p.log.WithFields(logrus.Fields{"table": table, "bytes": n}).Debug("Demo table printed.")
	return nil
}
