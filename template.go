package receiptpdf

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template/parse"
)

var (
	//go:embed templates/receipt.html
	defaultTemplateSource string

	//go:embed templates/products.csv
	sampleProducts []byte
)

// RequiredFields are the substitution points every receipt template must
// reference: the iterable rows, the timestamp and the grand total.
var RequiredFields = []string{"items", "date", "grand_total"}

// Template is a parsed receipt markup template.
//
// Templates use html/template syntax over a map with the keys items (each
// item has product, price, qty and total), date, grand_total, title and
// labels (title, date, product, price, qty, total, grand_total, currency).
// All values are preformatted text. Referencing an unknown key fails the
// render.
type Template struct {
	name string
	tpl  *template.Template
}

// ParseTemplate parses src and checks that every [RequiredFields] entry is
// referenced.
func ParseTemplate(name, src string) (*Template, error) {
	t, err := template.New(name).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplate, err)
	}

	refs := make(map[string]bool)
	for _, tt := range t.Templates() {
		if tt.Tree != nil {
			collectFields(tt.Tree.Root, refs)
		}
	}
	var missing []string
	for _, f := range RequiredFields {
		if !refs[f] {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s: missing substitution point(s): %s",
			ErrTemplate, name, strings.Join(missing, ", "))
	}
	return &Template{name: name, tpl: t}, nil
}

// LoadTemplate reads and parses the template file at path.
func LoadTemplate(path string) (*Template, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: template not found: %s", ErrTemplate, path)
		}
		return nil, fmt.Errorf("%w: reading template: %v", ErrTemplate, err)
	}
	return ParseTemplate(filepath.Base(path), string(src))
}

// DefaultTemplate returns the built-in receipt template.
func DefaultTemplate() *Template {
	t, err := ParseTemplate("receipt.html", defaultTemplateSource)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultTemplateSource returns the markup of the built-in template.
func DefaultTemplateSource() string {
	return defaultTemplateSource
}

// SampleProducts returns an example input file.
func SampleProducts() []byte {
	return append([]byte(nil), sampleProducts...)
}

// Name returns the template name, usually its file name.
func (t *Template) Name() string {
	return t.name
}

// Execute writes the filled template for c to w.
func (t *Template) Execute(w io.Writer, c Content) error {
	if err := t.tpl.Execute(w, templateData(c)); err != nil {
		return fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	return nil
}

func templateData(c Content) map[string]any {
	items := make([]map[string]string, 0, len(c.Rows))
	for _, r := range c.Rows {
		items = append(items, map[string]string{
			"product": r.Product,
			"price":   r.Price,
			"qty":     r.Quantity,
			"total":   r.Total,
		})
	}
	return map[string]any{
		"items":       items,
		"date":        c.Date,
		"grand_total": c.GrandTotal,
		"title":       c.Title,
		"labels": map[string]string{
			"title":       c.Labels.Title,
			"date":        c.Labels.Date,
			"product":     c.Header.Product,
			"price":       c.Header.Price,
			"qty":         c.Header.Quantity,
			"total":       c.Header.Total,
			"grand_total": c.Labels.GrandTotal,
			"currency":    c.Labels.Currency,
		},
	}
}

// collectFields records the first identifier of every field reference
// under n. Both .name and $.name count.
func collectFields(n parse.Node, refs map[string]bool) {
	switch n := n.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, c := range n.Nodes {
			collectFields(c, refs)
		}
	case *parse.ActionNode:
		collectFields(n.Pipe, refs)
	case *parse.PipeNode:
		if n == nil {
			return
		}
		for _, cmd := range n.Cmds {
			for _, arg := range cmd.Args {
				collectFields(arg, refs)
			}
		}
	case *parse.CommandNode:
		for _, arg := range n.Args {
			collectFields(arg, refs)
		}
	case *parse.FieldNode:
		refs[n.Ident[0]] = true
	case *parse.VariableNode:
		if len(n.Ident) > 1 && n.Ident[0] == "$" {
			refs[n.Ident[1]] = true
		}
	case *parse.ChainNode:
		collectFields(n.Node, refs)
	case *parse.IfNode:
		collectBranch(&n.BranchNode, refs)
	case *parse.RangeNode:
		collectBranch(&n.BranchNode, refs)
	case *parse.WithNode:
		collectBranch(&n.BranchNode, refs)
	case *parse.TemplateNode:
		collectFields(n.Pipe, refs)
	}
}

func collectBranch(b *parse.BranchNode, refs map[string]bool) {
	collectFields(b.Pipe, refs)
	collectFields(b.List, refs)
	collectFields(b.ElseList, refs)
}
