package receiptpdf_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	receiptpdf "github.com/porticus-lab/go-receipt-pdf"
	"github.com/shopspring/decimal"
)

// chromeAvailable reports whether a Chrome/Chromium executable is in PATH.
func chromeAvailable() bool {
	for _, name := range []string{
		"chromium-browser", "chromium", "google-chrome",
		"google-chrome-stable", "chrome",
	} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

func skipIfNoChrome(t *testing.T) {
	t.Helper()
	if !chromeAvailable() {
		t.Skip("skipping: Chrome/Chromium not found in PATH")
	}
}

func newTestConverter(t *testing.T) *receiptpdf.Converter {
	t.Helper()
	skipIfNoChrome(t)
	c, err := receiptpdf.NewConverter(receiptpdf.WithNoSandbox())
	if err != nil {
		t.Fatalf("NewConverter: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

// isPDF checks whether data starts with the PDF magic number.
func isPDF(data []byte) bool {
	return len(data) > 4 && string(data[:5]) == "%PDF-"
}

func TestConvertHTML_Basic(t *testing.T) {
	c := newTestConverter(t)

	res, err := c.ConvertHTML(context.Background(), "<h1>Hello World</h1>", nil)
	if err != nil {
		t.Fatalf("ConvertHTML: %v", err)
	}
	if !isPDF(res.Bytes()) {
		t.Fatal("output is not a valid PDF")
	}
	if res.Len() < 100 {
		t.Errorf("PDF unexpectedly small: %d bytes", res.Len())
	}
}

func TestConvertHTML_WithPageConfig(t *testing.T) {
	c := newTestConverter(t)

	page := &receiptpdf.PageConfig{
		Size:        receiptpdf.Letter,
		Orientation: receiptpdf.Landscape,
		Margin:      receiptpdf.UniformMargin(1.5),
		Scale:       1.0,
	}

	res, err := c.ConvertHTML(context.Background(), "<p>no footer</p>", page)
	if err != nil {
		t.Fatalf("ConvertHTML: %v", err)
	}
	if !isPDF(res.Bytes()) {
		t.Fatal("output is not a valid PDF")
	}
}

func TestConvertHTML_Canceled(t *testing.T) {
	c := newTestConverter(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ConvertHTML(ctx, "<p>canceled</p>", nil)
	if !errors.Is(err, receiptpdf.ErrRender) {
		t.Fatalf("expected ErrRender, got %v", err)
	}
}

func TestConverter_CloseIdempotent(t *testing.T) {
	skipIfNoChrome(t)

	c, err := receiptpdf.NewConverter(receiptpdf.WithNoSandbox())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestConverter_UsedAfterClose(t *testing.T) {
	skipIfNoChrome(t)

	c, err := receiptpdf.NewConverter(receiptpdf.WithNoSandbox())
	if err != nil {
		t.Fatal(err)
	}
	c.Close()

	_, err = c.ConvertHTML(context.Background(), "<p>test</p>", nil)
	if !errors.Is(err, receiptpdf.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestHTMLRenderer_Chrome(t *testing.T) {
	c := newTestConverter(t)

	rc := receiptpdf.NewReceipt([]receiptpdf.LineItem{
		{Name: "Ручка шариковая", UnitPrice: decimal.NewFromInt(10), Quantity: 3},
		{Name: "Книга", UnitPrice: decimal.NewFromInt(500), Quantity: 1},
	}, fixedTime)

	res, err := receiptpdf.NewHTMLRenderer(nil, c).Render(context.Background(), rc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !isPDF(res.Bytes()) {
		t.Fatal("output is not a valid PDF")
	}
}
