package receiptpdf

import (
	"math"
	"testing"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestCmToInches(t *testing.T) {
	tests := []struct {
		cm   float64
		want float64
	}{
		{2.54, 1.0},
		{0, 0},
		{21.0, 8.2677},
		{29.7, 11.6929},
	}
	for _, tt := range tests {
		got := cmToInches(tt.cm)
		if !almostEqual(got, tt.want, 0.001) {
			t.Errorf("cmToInches(%v) = %v, want ~%v", tt.cm, got, tt.want)
		}
	}
}

func TestDefaultPageConfig(t *testing.T) {
	d := DefaultPageConfig()
	if d.Size != A4 {
		t.Errorf("default size = %v, want A4", d.Size)
	}
	if d.Orientation != Portrait {
		t.Errorf("default orientation = %v, want Portrait", d.Orientation)
	}
	if d.Scale != 1.0 {
		t.Errorf("default scale = %v, want 1.0", d.Scale)
	}
	if d.Margin != UniformMargin(2.0) {
		t.Errorf("default margin = %v, want uniform 2.0", d.Margin)
	}
	if d.PageNumbers != "{current} / {total}" {
		t.Errorf("default page numbers = %q", d.PageNumbers)
	}
}

func TestPageConfigResolved_Nil(t *testing.T) {
	var pc *PageConfig
	if r := pc.resolved(); r != DefaultPageConfig() {
		t.Errorf("nil resolved = %+v, want defaults", r)
	}
}

func TestPageConfigResolved_ZeroValues(t *testing.T) {
	r := (&PageConfig{}).resolved()
	if r.Size != A4 {
		t.Errorf("zero size resolved to %v, want A4", r.Size)
	}
	if r.Scale != 1.0 {
		t.Errorf("zero scale resolved to %v, want 1.0", r.Scale)
	}
	if r.Margin != UniformMargin(2.0) {
		t.Errorf("zero margin resolved to %v, want uniform 2.0", r.Margin)
	}
	if r.PageNumbers != "" {
		t.Errorf("empty page numbers resolved to %q", r.PageNumbers)
	}
}

func TestPageConfigResolved_PreservesExplicit(t *testing.T) {
	pc := &PageConfig{
		Size:        Letter,
		Orientation: Landscape,
		Scale:       0.5,
		Margin:      Margin{Top: 2, Right: 3, Bottom: 2, Left: 3},
		PageNumbers: "{current}",
	}
	r := pc.resolved()
	if r != *pc {
		t.Errorf("resolved = %+v, want %+v", r, *pc)
	}
}

func TestPaperInches(t *testing.T) {
	w, h := (&PageConfig{Size: A4}).paperInches()
	if !almostEqual(w, 8.267, 0.01) || !almostEqual(h, 11.693, 0.01) {
		t.Errorf("portrait = %v x %v, want ~8.267 x 11.693", w, h)
	}

	w, h = (&PageConfig{Size: A4, Orientation: Landscape}).paperInches()
	if !almostEqual(w, 11.693, 0.01) || !almostEqual(h, 8.267, 0.01) {
		t.Errorf("landscape = %v x %v, want ~11.693 x 8.267", w, h)
	}
}

func TestPaperMillimeters(t *testing.T) {
	w, h := (&PageConfig{Size: A5, Orientation: Landscape}).paperMillimeters()
	if !almostEqual(w, 210, 0.001) || !almostEqual(h, 148, 0.001) {
		t.Errorf("A5 landscape = %v x %v mm, want 210 x 148", w, h)
	}
}

func TestMargins(t *testing.T) {
	pc := &PageConfig{Margin: Margin{Top: 2.54, Right: 5.08, Bottom: 2.54, Left: 5.08}}

	top, right, bottom, left := pc.marginInches()
	if !almostEqual(top, 1, 0.001) || !almostEqual(right, 2, 0.001) ||
		!almostEqual(bottom, 1, 0.001) || !almostEqual(left, 2, 0.001) {
		t.Errorf("marginInches = %v %v %v %v", top, right, bottom, left)
	}

	top, right, _, _ = pc.marginMillimeters()
	if !almostEqual(top, 25.4, 0.001) || !almostEqual(right, 50.8, 0.001) {
		t.Errorf("marginMillimeters top/right = %v %v", top, right)
	}
}
