package receiptpdf

import (
	"fmt"

	"github.com/go-rod/rod/lib/launcher"
)

// resolveBrowser downloads a compatible Chromium binary if one is not
// already cached and returns the path to the executable. The binary is
// stored in ~/.cache/rod/browser (Unix) or %APPDATA%\rod\browser (Windows).
func resolveBrowser() (string, error) {
	path, err := launcher.NewBrowser().Get()
	if err != nil {
		return "", fmt.Errorf("receiptpdf: downloading browser: %w", err)
	}
	return path, nil
}

// browserPath returns the executable chosen by the configuration, or ""
// to let chromedp search the usual locations.
func (c converterConfig) browserPath() (string, error) {
	if c.chromePath != "" {
		return c.chromePath, nil
	}
	if c.autoDownload {
		return resolveBrowser()
	}
	return "", nil
}
