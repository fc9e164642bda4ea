package receiptpdf

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultTemplate(t *testing.T) {
	tpl := DefaultTemplate()
	if tpl.Name() != "receipt.html" {
		t.Errorf("Name = %q", tpl.Name())
	}
}

func TestParseTemplate_MissingSubstitutionPoint(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		missing string
	}{
		{"no items", `{{.date}} {{.grand_total}}`, "items"},
		{"no date", `{{range .items}}{{.product}}{{end}} {{.grand_total}}`, "date"},
		{"no grand total", `{{range .items}}{{.product}}{{end}} {{.date}}`, "grand_total"},
		{"empty", ``, "items, date, grand_total"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTemplate("custom.html", tt.src)
			if !errors.Is(err, ErrTemplate) {
				t.Fatalf("expected ErrTemplate, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.missing) {
				t.Errorf("error %q does not name %q", err, tt.missing)
			}
		})
	}
}

func TestParseTemplate_NestedReferences(t *testing.T) {
	src := `{{define "row"}}<td>{{.product}}</td>{{end}}` +
		`{{with .date}}<p>{{.}}</p>{{end}}` +
		`{{range $i, $it := .items}}{{template "row" $it}}{{$.grand_total}}{{end}}`
	if _, err := ParseTemplate("nested.html", src); err != nil {
		t.Fatalf("ParseTemplate: %v", err)
	}
}

func TestParseTemplate_Syntax(t *testing.T) {
	_, err := ParseTemplate("broken.html", `{{range .items}}`)
	if !errors.Is(err, ErrTemplate) {
		t.Fatalf("expected ErrTemplate, got %v", err)
	}
}

func TestTemplate_UnknownKey(t *testing.T) {
	tpl, err := ParseTemplate("extra.html", `{{range .items}}{{.sku}}{{end}}{{.date}}{{.grand_total}}`)
	if err != nil {
		t.Fatalf("ParseTemplate: %v", err)
	}
	rc := NewReceipt([]LineItem{{Name: "Pen", UnitPrice: dec("1"), Quantity: 1}}, testTime)
	err = tpl.Execute(&strings.Builder{}, Compose(rc, DefaultLabels()))
	if !errors.Is(err, ErrTemplate) {
		t.Fatalf("expected ErrTemplate, got %v", err)
	}
}

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.html")
	if err := os.WriteFile(path, []byte(DefaultTemplateSource()), 0o644); err != nil {
		t.Fatal(err)
	}
	tpl, err := LoadTemplate(path)
	if err != nil {
		t.Fatalf("LoadTemplate: %v", err)
	}
	if tpl.Name() != "template.html" {
		t.Errorf("Name = %q", tpl.Name())
	}

	_, err = LoadTemplate(filepath.Join(dir, "missing.html"))
	if !errors.Is(err, ErrTemplate) {
		t.Fatalf("expected ErrTemplate for missing file, got %v", err)
	}
}

func TestRenderHTML_Escapes(t *testing.T) {
	rc := NewReceipt([]LineItem{{Name: `<b>Pen & "Co"</b>`, UnitPrice: dec("10"), Quantity: 1}}, testTime)
	markup, err := NewHTMLRenderer(nil, nil).RenderHTML(Compose(rc, DefaultLabels()))
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if strings.Contains(markup, "<b>Pen") {
		t.Error("product name was not escaped")
	}
	if !strings.Contains(markup, "&lt;b&gt;Pen &amp;") {
		t.Errorf("escaped product name not found in markup")
	}
}

func TestSampleProducts(t *testing.T) {
	items, err := ReadItems(strings.NewReader(string(SampleProducts())))
	if err != nil {
		t.Fatalf("sample products do not load: %v", err)
	}
	if len(items) == 0 {
		t.Error("sample products are empty")
	}
}
