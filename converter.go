package receiptpdf

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// HTMLConverter prints an HTML document to PDF. [Converter] is the
// production implementation.
type HTMLConverter interface {
	ConvertHTML(ctx context.Context, html string, pg *PageConfig) (*Result, error)
}

// Converter converts HTML content to PDF documents.
//
// A Converter manages a headless browser instance that is reused across
// multiple conversions. It is safe for concurrent use.
//
// Call [Converter.Close] when the Converter is no longer needed to release
// browser resources.
type Converter struct {
	cfg           converterConfig
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewConverter creates a Converter with the given options.
//
// It starts a headless browser in the background. The caller must call
// [Converter.Close] when finished.
func NewConverter(opts ...Option) (*Converter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	execPath, err := cfg.browserPath()
	if err != nil {
		return nil, err
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("headless", cfg.headless),
	)
	if execPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(execPath))
	}
	if cfg.noSandbox {
		allocOpts = append(allocOpts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser eagerly so errors surface at creation time.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("%w: starting browser: %v", ErrRender, err)
	}

	return &Converter{
		cfg:           cfg,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// Close releases all resources held by the Converter, including the
// browser process. Close is idempotent.
func (c *Converter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.browserCancel()
	c.allocCancel()
	return nil
}

// ConvertHTML prints an HTML document to PDF. The markup is loaded into a
// blank tab directly, so it must be self-contained.
// If pg is nil, [DefaultPageConfig] values are used.
func (c *Converter) ConvertHTML(ctx context.Context, markup string, pg *PageConfig) (*Result, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	resolved := pg.resolved()

	if c.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.timeout)
		defer cancel()
	}

	tabCtx, tabCancel := chromedp.NewContext(c.browserCtx)
	defer tabCancel()

	// The tab must also stop when the caller's context ends.
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	width, height := resolved.paperInches()
	marginTop, marginRight, marginBottom, marginLeft := resolved.marginInches()

	var buf []byte
	if err := chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, markup).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			params := page.PrintToPDF().
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(marginTop).
				WithMarginRight(marginRight).
				WithMarginBottom(marginBottom).
				WithMarginLeft(marginLeft).
				WithScale(resolved.Scale).
				WithPrintBackground(true)

			if resolved.PageNumbers != "" {
				params = params.
					WithDisplayHeaderFooter(true).
					WithHeaderTemplate("<span></span>").
					WithFooterTemplate(footerTemplate(resolved.PageNumbers))
			}

			var err error
			buf, _, err = params.Do(ctx)
			return err
		}),
	); err != nil {
		return nil, fmt.Errorf("%w: printing to pdf: %v", ErrRender, err)
	}

	return &Result{data: buf}, nil
}

func (c *Converter) checkClosed() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	return nil
}

// footerTemplate turns a page-number pattern into Chrome's print footer
// markup. Chrome fills elements with the pageNumber and totalPages classes.
func footerTemplate(pattern string) string {
	text := html.EscapeString(pattern)
	text = strings.ReplaceAll(text, "{current}", `<span class="pageNumber"></span>`)
	text = strings.ReplaceAll(text, "{total}", `<span class="totalPages"></span>`)
	return `<div style="font-size:8px;color:#808080;width:100%;text-align:right;padding:0 1cm;">` +
		text + `</div>`
}
