package receiptpdf

import (
	"context"
	"fmt"
	"strings"
)

// Renderer turns a Receipt into a paginated PDF document. Implementations
// must not modify the Receipt.
type Renderer interface {
	Render(ctx context.Context, r *Receipt) (*Result, error)
}

// Strategy names a Renderer implementation.
type Strategy string

const (
	// StrategyHTML fills a markup template and prints it with headless Chrome.
	StrategyHTML Strategy = "html"
	// StrategyDirect assembles the document programmatically with maroto.
	StrategyDirect Strategy = "direct"
)

// ParseStrategy maps a configuration value to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyHTML, "template", "markup":
		return StrategyHTML, nil
	case StrategyDirect, "assembly", "maroto":
		return StrategyDirect, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}
