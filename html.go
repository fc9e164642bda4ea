package receiptpdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
)

// HTMLRenderer is the templated-markup strategy: it fills a [Template] and
// prints the markup to PDF through an [HTMLConverter].
type HTMLRenderer struct {
	tpl  *Template
	conv HTMLConverter
	cfg  renderConfig
}

// NewHTMLRenderer returns a renderer using tpl, or the built-in template
// when tpl is nil.
func NewHTMLRenderer(tpl *Template, conv HTMLConverter, opts ...RenderOption) *HTMLRenderer {
	if tpl == nil {
		tpl = DefaultTemplate()
	}
	return &HTMLRenderer{tpl: tpl, conv: conv, cfg: newRenderConfig(opts)}
}

// RenderHTML returns the filled markup for c.
func (h *HTMLRenderer) RenderHTML(c Content) (string, error) {
	var buf bytes.Buffer
	if err := h.tpl.Execute(&buf, c); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Render implements [Renderer].
func (h *HTMLRenderer) Render(ctx context.Context, r *Receipt) (*Result, error) {
	markup, err := h.RenderHTML(Compose(r, h.cfg.labels))
	if err != nil {
		return nil, err
	}

	pg := h.cfg.page
	res, err := h.conv.ConvertHTML(ctx, markup, &pg)
	if err != nil {
		if errors.Is(err, ErrRender) || errors.Is(err, ErrClosed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return res, nil
}
