package receiptpdf

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one purchased product.
type LineItem struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int64
}

// LineTotal returns UnitPrice × Quantity. It is computed on every call and
// never stored.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(li.Quantity))
}

// Receipt is the document model shared by every [Renderer]. It is fully
// populated at construction and never modified afterwards.
type Receipt struct {
	items       []LineItem
	generatedAt time.Time
}

// NewReceipt builds a Receipt from items in display order. The slice is
// copied, so later changes by the caller are not observed.
func NewReceipt(items []LineItem, generatedAt time.Time) *Receipt {
	cp := make([]LineItem, len(items))
	copy(cp, items)
	return &Receipt{items: cp, generatedAt: generatedAt}
}

// Items returns a copy of the line items in display order.
func (r *Receipt) Items() []LineItem {
	cp := make([]LineItem, len(r.items))
	copy(cp, r.items)
	return cp
}

// Len returns the number of line items.
func (r *Receipt) Len() int {
	return len(r.items)
}

// GeneratedAt returns the instant captured when the receipt was assembled.
func (r *Receipt) GeneratedAt() time.Time {
	return r.generatedAt
}

// GrandTotal returns the sum of all line totals, recomputed on each call.
func (r *Receipt) GrandTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range r.items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}
