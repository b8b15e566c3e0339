package demo

// Data is the sample customers, articles, and orders.
type Data struct {
	Customers []*Customer
	Articles  []*Article
	Orders    []*Order
}

// SampleData builds the demo data set. Each call returns fresh values.
func SampleData() *Data {
	var d Data
	nextID := int64(100)
	customer := func(name string, contacts ...string) *Customer {
		c, ok := NewCustomer(nextID, name)
		if !ok {
			return nil
		}
		nextID++
		for _, ct := range contacts {
			c.AddContact(ct)
		}
		d.Customers = append(d.Customers, c)
		return c
	}

	eric := customer("Eric Meyer", "eme@gmail.com", "+49 030 515 141345", "fax: 030 234-134651", "fax: 030 234-134651")
	anne := customer("Bayer, Anne", "anne24@yahoo.de", "(030) 3481-23352")
	customer("Tim Schulz-Mueller", "tim2346@gmx.de")
	nadine := customer("Nadine-Ulla Blumenfeld", "+49 152-92454")
	customer("Khaled Saad Mohamed Abdelalim", "+49 1524-12948210")
	lena := customer("Lena Neumann", "lena228@gmail.com")

	tasse := &Article{ID: "SKU-458362", Description: "Tasse", UnitPrice: 299}
	becher := &Article{ID: "SKU-693856", Description: "Becher", UnitPrice: 149}
	kanne := &Article{ID: "SKU-518957", Description: "Kanne", UnitPrice: 1999}
	teller := &Article{ID: "SKU-638035", Description: "Teller", UnitPrice: 649}
	java := &Article{ID: "SKU-278530", Description: `Buch "Java"`, UnitPrice: 4990, ReducedVAT: true}
	oop := &Article{ID: "SKU-425378", Description: `Buch "OOP"`, UnitPrice: 7995, ReducedVAT: true}
	pfanne := &Article{ID: "SKU-300926", Description: "Pfanne", UnitPrice: 4999}
	helm := &Article{ID: "SKU-663942", Description: "Fahrradhelm", UnitPrice: 16900}
	karte := &Article{ID: "SKU-583978", Description: "Fahrradkarte", UnitPrice: 695, ReducedVAT: true}
	radio := &Article{ID: "SKU-588268", Description: "Radio", UnitPrice: 10000}

	// Teller is sold but not listed.
	d.Articles = []*Article{tasse, becher, kanne, java, oop, pfanne, helm, karte, radio}

	order := func(id int64, c *Customer) *Order {
		o, ok := NewOrder(id, c)
		if !ok {
			return &Order{}
		}
		d.Orders = append(d.Orders, o)
		return o
	}
	order(8592356245, eric).AddItem(teller, 4).AddItem(becher, 8).AddItem(oop, 1).AddItem(tasse, 4)
	order(3563561357, anne).AddItem(teller, 2).AddItem(tasse, 2)
	order(5234968294, eric).AddItem(kanne, 1)
	order(6135735635, nadine).AddItem(teller, 12).AddItem(java, 1).AddItem(oop, 1)
	order(6173043537, lena).AddItem(java, 1).AddItem(karte, 1)
	order(7372561535, eric).AddItem(helm, 1).AddItem(karte, 1)
	order(4450305661, eric).AddItem(tasse, 3).AddItem(becher, 3).AddItem(kanne, 1)

	return &d
}
