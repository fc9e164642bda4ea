package receiptpdf

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// DateLayout is the human-readable layout of the generation timestamp.
const DateLayout = "02.01.2006 15:04"

// FormatAmount rounds d half-to-even to a whole number and groups thousands
// with a space: 2468 becomes "2 468". The result depends only on d and is
// exact for any magnitude.
func FormatAmount(d decimal.Decimal) string {
	return strings.ReplaceAll(humanize.BigComma(d.RoundBank(0).BigInt()), ",", " ")
}

// FormatMoney formats d with [FormatAmount] followed by the currency marker.
func FormatMoney(d decimal.Decimal, currency string) string {
	if currency == "" {
		return FormatAmount(d)
	}
	return FormatAmount(d) + " " + currency
}

// FormatDate renders t with [DateLayout].
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
