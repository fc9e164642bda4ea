package receiptpdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
)

// Palette of the direct-assembly layout.
var (
	colorHeading  = &props.Color{Red: 44, Green: 62, Blue: 80}
	colorMuted    = &props.Color{Red: 128, Green: 128, Blue: 128}
	colorHeaderBg = &props.Color{Red: 52, Green: 73, Blue: 94}
	colorHeaderFg = &props.Color{Red: 245, Green: 245, Blue: 245}
	colorBodyBg   = &props.Color{Red: 245, Green: 245, Blue: 220}
	colorBodyFg   = &props.Color{Red: 0, Green: 0, Blue: 0}
)

// Grid widths of the table columns: product, price, quantity, total.
var columnSizes = [4]int{6, 2, 2, 2}

// DirectRenderer is the direct-assembly strategy: it lays the receipt out
// as maroto rows (heading, date, spacer, table, spacer, total) without any
// markup in between.
type DirectRenderer struct {
	font Font
	cfg  renderConfig
}

// NewDirectRenderer returns a renderer drawing text with font. Use
// [FindFont] to probe the host, or [BuiltinFont].
func NewDirectRenderer(font Font, opts ...RenderOption) *DirectRenderer {
	if font.Family == "" {
		font = BuiltinFont
	}
	return &DirectRenderer{font: font, cfg: newRenderConfig(opts)}
}

// Font returns the font the renderer was built with.
func (d *DirectRenderer) Font() Font {
	return d.font
}

// Render implements [Renderer].
func (d *DirectRenderer) Render(ctx context.Context, r *Receipt) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	m := d.build(Compose(r, d.cfg.labels))
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: generating document: %v", ErrRender, err)
	}
	return &Result{data: doc.GetBytes()}, nil
}

// build assembles the document without generating it.
func (d *DirectRenderer) build(c Content) core.Maroto {
	family, b := d.configBuilder(c.Title)
	m := maroto.New(b.Build())

	m.AddRows(
		row.New(16).Add(text.NewCol(12, c.Title, props.Text{
			Family: family,
			Style:  fontstyle.Bold,
			Size:   24,
			Align:  align.Center,
			Color:  colorHeading,
		})),
		row.New(8).Add(text.NewCol(12, c.DateLine, props.Text{
			Family: family,
			Size:   10,
			Align:  align.Center,
			Color:  colorMuted,
		})),
		row.New(10).Add(col.New(12)),
	)

	m.AddRows(tableRow(c.Header, family, true, 12))
	for _, r := range c.Rows {
		m.AddRows(tableRow(r, family, false))
	}

	m.AddRows(
		row.New(5).Add(col.New(12)),
		row.New(12).Add(text.NewCol(12, c.TotalLine, props.Text{
			Family: family,
			Style:  fontstyle.Bold,
			Size:   16,
			Align:  align.Right,
			Color:  colorHeading,
		})),
	)
	return m
}

// configBuilder applies the page layout and fonts. It returns the family
// that text components must use.
func (d *DirectRenderer) configBuilder(title string) (string, config.Builder) {
	pg := d.cfg.page
	width, height := pg.paperMillimeters()
	top, right, bottom, left := pg.marginMillimeters()

	b := config.NewBuilder().
		WithDimensions(width, height).
		WithTopMargin(top).
		WithRightMargin(right).
		WithBottomMargin(bottom).
		WithLeftMargin(left).
		WithTitle(title, true)

	family := BuiltinFont.Family
	if !d.font.Builtin {
		fonts, err := repository.New().
			AddUTF8Font(d.font.Family, fontstyle.Normal, d.font.Regular).
			AddUTF8Font(d.font.Family, fontstyle.Bold, d.font.Bold).
			AddUTF8Font(d.font.Family, fontstyle.Italic, d.font.Regular).
			AddUTF8Font(d.font.Family, fontstyle.BoldItalic, d.font.Bold).
			Load()
		// An unreadable font file degrades to the core font.
		if err == nil {
			b = b.WithCustomFonts(fonts)
			family = d.font.Family
		}
	}
	b = b.WithDefaultFont(&props.Font{Family: family, Size: 10})

	if pg.PageNumbers != "" {
		b = b.WithPageNumber(props.PageNumber{
			Pattern: pg.PageNumbers,
			Place:   props.RightBottom,
			Family:  family,
			Size:    8,
			Color:   colorMuted,
		})
	}
	return family, b
}

// tableRow builds one table row. Without a height the row grows to fit
// wrapped cell text.
func tableRow(r Row, family string, header bool, height ...float64) core.Row {
	style := props.Text{Family: family, Size: 10, Top: 2.5, Left: 2, Right: 2, Color: colorBodyFg}
	cell := &props.Cell{
		BackgroundColor: colorBodyBg,
		BorderType:      border.Full,
		BorderColor:     colorMuted,
		BorderThickness: 0.3,
	}
	if header {
		style.Style = fontstyle.Bold
		style.Size = 12
		style.Top = 3
		style.Color = colorHeaderFg
		cell.BackgroundColor = colorHeaderBg
	}

	cols := make([]core.Col, 0, len(columnSizes))
	for i, value := range r.Cells() {
		s := style
		switch {
		case header:
			s.Align = align.Center
		case i == 0:
			s.Align = align.Left
		default:
			s.Align = align.Right
		}
		cols = append(cols, text.NewCol(columnSizes[i], value, s).WithStyle(cell))
	}
	return row.New(height...).Add(cols...)
}
