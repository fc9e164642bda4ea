package receiptpdf

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
)

// FontCandidate is a TrueType font that may be installed on the host.
// Bold may be empty, in which case Regular is used for bold text too.
type FontCandidate struct {
	Family  string
	Regular string
	Bold    string
}

// Font is the font resolved for the direct-assembly strategy.
type Font struct {
	Family  string
	Regular string
	Bold    string

	// Builtin reports a core PDF font with no file behind it. Core fonts
	// cover Latin-1 only, so Cyrillic text renders incorrectly.
	Builtin bool
}

// BuiltinFont is the guaranteed fallback.
var BuiltinFont = Font{Family: fontfamily.Helvetica, Builtin: true}

// DefaultFontCandidates returns the fonts probed on goos, in priority order.
func DefaultFontCandidates(goos string) []FontCandidate {
	switch goos {
	case "windows":
		dir := os.Getenv("WINDIR")
		if dir == "" {
			dir = `C:\Windows`
		}
		fonts := filepath.Join(dir, "Fonts")
		return []FontCandidate{
			{Family: "receipt-arial", Regular: filepath.Join(fonts, "arial.ttf"), Bold: filepath.Join(fonts, "arialbd.ttf")},
		}
	case "darwin":
		return []FontCandidate{
			{Family: "receipt-arial", Regular: "/Library/Fonts/Arial.ttf", Bold: "/Library/Fonts/Arial Bold.ttf"},
			{Family: "receipt-arial", Regular: "/System/Library/Fonts/Supplemental/Arial.ttf", Bold: "/System/Library/Fonts/Supplemental/Arial Bold.ttf"},
		}
	default:
		return []FontCandidate{
			{Family: "receipt-dejavu", Regular: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf", Bold: "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"},
			{Family: "receipt-liberation", Regular: "/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf", Bold: "/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf"},
			{Family: "receipt-dejavu", Regular: "/usr/share/fonts/TTF/DejaVuSans.ttf", Bold: "/usr/share/fonts/TTF/DejaVuSans-Bold.ttf"},
		}
	}
}

// ResolveFont returns the first candidate whose regular file exists, or
// [BuiltinFont] when none does. A missing bold file degrades to Regular.
func ResolveFont(candidates []FontCandidate, exists func(path string) bool) Font {
	for _, c := range candidates {
		if c.Regular == "" || !exists(c.Regular) {
			continue
		}
		f := Font{Family: c.Family, Regular: c.Regular, Bold: c.Bold}
		if f.Bold == "" || !exists(f.Bold) {
			f.Bold = f.Regular
		}
		return f
	}
	return BuiltinFont
}

// FindFont probes the default candidates of the running OS.
func FindFont() Font {
	return ResolveFont(DefaultFontCandidates(runtime.GOOS), fileExists)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
