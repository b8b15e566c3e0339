package demo

// Article is a sellable item. Prices are in cents.
type Article struct {
	ID          string
	Description string
	UnitPrice   int64
	ReducedVAT  bool
}

// OrderItem is a quantity of one article.
type OrderItem struct {
	Article *Article
	Units   int
}

// Order is a customer's list of items.
type Order struct {
	ID       int64
	Customer *Customer
	Items    []OrderItem
}

// NewOrder returns an order for customer. It reports false for a
// non-positive id or a nil customer.
func NewOrder(id int64, customer *Customer) (*Order, bool) {
	if id <= 0 || customer == nil {
		return nil, false
	}
	return &Order{ID: id, Customer: customer}, true
}

// AddItem appends units of article. Nil articles and non-positive unit
// counts are ignored.
func (o *Order) AddItem(article *Article, units int) *Order {
	if article == nil || units <= 0 {
		return o
	}
	o.Items = append(o.Items, OrderItem{Article: article, Units: units})
	return o
}
