package receiptpdf

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Column names expected in the header row of the input.
const (
	ColumnProduct  = "product"
	ColumnPrice    = "price"
	ColumnQuantity = "qty"
)

var requiredColumns = []string{ColumnProduct, ColumnPrice, ColumnQuantity}

// LoadItems reads line items from the CSV file at path.
// A missing file yields an error wrapping [ErrInputNotFound].
func LoadItems(path string) ([]LineItem, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("receiptpdf: opening input: %w", err)
	}
	defer f.Close()
	return ReadItems(f)
}

// ReadItems parses CSV with a header row into line items, preserving row
// order. Columns are located by name, so their order is free and extra
// columns are ignored. The first bad row aborts the whole read.
func ReadItems(r io.Reader) ([]LineItem, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &RowError{Line: 1, Err: errors.New("missing header row")}
	}
	if err != nil {
		return nil, csvRowError(err)
	}

	idx, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	items := []LineItem{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvRowError(err)
		}
		line, _ := cr.FieldPos(0)

		item, err := parseRow(rec, idx, line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func headerIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, &RowError{Line: 1, Column: col, Err: errors.New("missing column in header")}
		}
	}
	return idx, nil
}

func parseRow(rec []string, idx map[string]int, line int) (LineItem, error) {
	name := strings.TrimSpace(rec[idx[ColumnProduct]])
	if name == "" {
		return LineItem{}, &RowError{Line: line, Column: ColumnProduct, Err: errors.New("empty product name")}
	}

	rawPrice := strings.TrimSpace(rec[idx[ColumnPrice]])
	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return LineItem{}, &RowError{Line: line, Column: ColumnPrice, Value: rawPrice, Err: err}
	}
	if price.IsNegative() {
		return LineItem{}, &RowError{Line: line, Column: ColumnPrice, Value: rawPrice, Err: errors.New("negative price")}
	}

	rawQty := strings.TrimSpace(rec[idx[ColumnQuantity]])
	qty, err := strconv.ParseInt(rawQty, 10, 64)
	if err != nil {
		return LineItem{}, &RowError{Line: line, Column: ColumnQuantity, Value: rawQty, Err: err}
	}
	if qty < 0 {
		return LineItem{}, &RowError{Line: line, Column: ColumnQuantity, Value: rawQty, Err: errors.New("negative quantity")}
	}

	return LineItem{Name: name, UnitPrice: price, Quantity: qty}, nil
}

// csvRowError turns an encoding/csv failure into a RowError so that short
// rows and broken quoting are reported as malformed rows.
func csvRowError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &RowError{Line: pe.Line, Err: pe.Err}
	}
	return &RowError{Err: err}
}
