package receiptpdf

// PageSize represents paper dimensions in centimeters.
type PageSize struct {
	Width  float64 // Width in centimeters.
	Height float64 // Height in centimeters.
}

// Standard paper sizes.
var (
	A4     = PageSize{Width: 21.0, Height: 29.7}
	A5     = PageSize{Width: 14.8, Height: 21.0}
	Letter = PageSize{Width: 21.59, Height: 27.94}
)

// Orientation represents the page orientation.
type Orientation int

const (
	// Portrait is the default vertical orientation.
	Portrait Orientation = iota
	// Landscape rotates the page to horizontal orientation.
	Landscape
)

// Margin represents page margins in centimeters.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformMargin returns a Margin with the same value on all sides.
func UniformMargin(cm float64) Margin {
	return Margin{Top: cm, Right: cm, Bottom: cm, Left: cm}
}

// PageConfig is the physical layout shared by both renderer strategies.
//
// A nil PageConfig or zero-value fields fall back to A4 portrait with
// 2 cm margins.
type PageConfig struct {
	Size        PageSize
	Orientation Orientation
	Margin      Margin

	// Scale applies to the HTML strategy only. Defaults to 1.0.
	Scale float64

	// PageNumbers is the footer pattern; {current} and {total} stand for the
	// page index and the page count. Empty disables the footer.
	PageNumbers string
}

// DefaultPageNumbers is the default footer pattern.
const DefaultPageNumbers = "{current} / {total}"

// DefaultPageConfig returns the receipt layout: A4, portrait, 2 cm margins.
func DefaultPageConfig() PageConfig {
	return PageConfig{
		Size:        A4,
		Orientation: Portrait,
		Margin:      UniformMargin(2.0),
		Scale:       1.0,
		PageNumbers: DefaultPageNumbers,
	}
}

// resolved returns a PageConfig with all zero values replaced by defaults.
// PageNumbers is kept as given, so an empty pattern stays disabled.
func (p *PageConfig) resolved() PageConfig {
	d := DefaultPageConfig()
	if p == nil {
		return d
	}
	r := *p
	if r.Size == (PageSize{}) {
		r.Size = d.Size
	}
	if r.Scale <= 0 {
		r.Scale = d.Scale
	}
	if r.Margin == (Margin{}) {
		r.Margin = d.Margin
	}
	return r
}

func cmToInches(cm float64) float64 {
	return cm / 2.54
}

func cmToMillimeters(cm float64) float64 {
	return cm * 10
}

// dimensions returns width and height in centimeters after orientation.
func (p *PageConfig) dimensions() (width, height float64) {
	r := p.resolved()
	if r.Orientation == Landscape {
		return r.Size.Height, r.Size.Width
	}
	return r.Size.Width, r.Size.Height
}

// paperInches returns the paper width and height in inches, as Chrome
// expects them.
func (p *PageConfig) paperInches() (width, height float64) {
	w, h := p.dimensions()
	return cmToInches(w), cmToInches(h)
}

// paperMillimeters returns the paper width and height in millimeters, as
// maroto expects them.
func (p *PageConfig) paperMillimeters() (width, height float64) {
	w, h := p.dimensions()
	return cmToMillimeters(w), cmToMillimeters(h)
}

// marginInches returns margins converted to inches.
func (p *PageConfig) marginInches() (top, right, bottom, left float64) {
	m := p.resolved().Margin
	return cmToInches(m.Top), cmToInches(m.Right), cmToInches(m.Bottom), cmToInches(m.Left)
}

// marginMillimeters returns margins converted to millimeters.
func (p *PageConfig) marginMillimeters() (top, right, bottom, left float64) {
	m := p.resolved().Margin
	return cmToMillimeters(m.Top), cmToMillimeters(m.Right), cmToMillimeters(m.Bottom), cmToMillimeters(m.Left)
}
