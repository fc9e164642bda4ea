package receiptpdf

import "strconv"

// Labels holds the fixed captions printed on a receipt.
type Labels struct {
	Title      string
	Date       string
	Product    string
	Price      string
	Quantity   string
	Total      string
	GrandTotal string
	Currency   string
}

// DefaultLabels returns the captions of the standard purchase receipt.
func DefaultLabels() Labels {
	return Labels{
		Title:      "ЧЕК ПОКУПКИ",
		Date:       "Дата",
		Product:    "Товар",
		Price:      "Цена",
		Quantity:   "Кол-во",
		Total:      "Сумма",
		GrandTotal: "ИТОГО",
		Currency:   "₽",
	}
}

// Row is the display text of one table row.
type Row struct {
	Product  string
	Price    string
	Quantity string
	Total    string
}

// Cells returns the row text in column order.
func (r Row) Cells() []string {
	return []string{r.Product, r.Price, r.Quantity, r.Total}
}

// Content is everything a receipt shows, already formatted. Both renderer
// strategies draw a Content and nothing else, which keeps their text equal.
type Content struct {
	Labels     Labels
	Title      string
	Date       string // formatted timestamp
	DateLine   string // "<label>: <date>"
	Header     Row
	Rows       []Row
	GrandTotal string // formatted total with currency marker
	TotalLine  string // "<label>: <grand total>"
}

// Compose formats r with labels l.
func Compose(r *Receipt, l Labels) Content {
	c := Content{
		Labels:     l,
		Title:      l.Title,
		Date:       FormatDate(r.GeneratedAt()),
		Header:     Row{Product: l.Product, Price: l.Price, Quantity: l.Quantity, Total: l.Total},
		Rows:       make([]Row, 0, r.Len()),
		GrandTotal: FormatMoney(r.GrandTotal(), l.Currency),
	}
	c.DateLine = l.Date + ": " + c.Date
	c.TotalLine = l.GrandTotal + ": " + c.GrandTotal

	for _, it := range r.items {
		c.Rows = append(c.Rows, Row{
			Product:  it.Name,
			Price:    FormatMoney(it.UnitPrice, l.Currency),
			Quantity: strconv.FormatInt(it.Quantity, 10),
			Total:    FormatMoney(it.LineTotal(), l.Currency),
		})
	}
	return c
}
