package receiptpdf

import "time"

// converterConfig holds internal configuration for a Converter.
type converterConfig struct {
	chromePath   string
	timeout      time.Duration
	noSandbox    bool
	autoDownload bool
	headless     string
}

func defaultConfig() converterConfig {
	return converterConfig{
		timeout:  30 * time.Second,
		headless: "new",
	}
}

// Option configures a [Converter].
type Option func(*converterConfig)

// WithChromePath sets the path to the Chrome or Chromium executable.
// By default chromedp searches standard locations automatically.
func WithChromePath(path string) Option {
	return func(c *converterConfig) {
		c.chromePath = path
	}
}

// WithTimeout sets the maximum duration for a single conversion.
// Defaults to 30 seconds. A zero or negative value disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *converterConfig) {
		c.timeout = d
	}
}

// WithNoSandbox disables the Chrome sandbox. This is required when
// running as root, for example inside Docker containers.
func WithNoSandbox() Option {
	return func(c *converterConfig) {
		c.noSandbox = true
	}
}

// WithAutoDownload fetches a compatible Chromium build when no explicit
// path is set. Ignored together with [WithChromePath].
func WithAutoDownload() Option {
	return func(c *converterConfig) {
		c.autoDownload = true
	}
}

// renderConfig is shared by both renderer strategies.
type renderConfig struct {
	labels Labels
	page   PageConfig
}

func defaultRenderConfig() renderConfig {
	return renderConfig{
		labels: DefaultLabels(),
		page:   DefaultPageConfig(),
	}
}

// RenderOption configures a renderer.
type RenderOption func(*renderConfig)

// WithLabels replaces the receipt captions.
func WithLabels(l Labels) RenderOption {
	return func(c *renderConfig) {
		c.labels = l
	}
}

// WithCurrency overrides only the currency marker of the current labels.
func WithCurrency(currency string) RenderOption {
	return func(c *renderConfig) {
		c.labels.Currency = currency
	}
}

// WithPage sets the page layout. Zero fields fall back to the defaults.
func WithPage(pg PageConfig) RenderOption {
	return func(c *renderConfig) {
		c.page = pg.resolved()
	}
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := defaultRenderConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}
