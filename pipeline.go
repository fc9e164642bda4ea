package receiptpdf

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Pipeline runs one receipt from input file to written document:
// load, assemble, render, write, then optionally open.
type Pipeline struct {
	Input    string
	Renderer Renderer
	Sink     *Sink

	// Viewer, when set, opens the written file. Its failure is logged and
	// never fails the run.
	Viewer Viewer

	Logger *zap.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// Run executes the pipeline and returns the path of the written receipt.
// Nothing is written unless loading and rendering both succeed.
func (p *Pipeline) Run(ctx context.Context) (string, error) {
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if p.Renderer == nil {
		return "", fmt.Errorf("%w: pipeline has no renderer", ErrRender)
	}
	now := p.Now
	if now == nil {
		now = time.Now
	}
	sink := p.Sink
	if sink == nil {
		sink = NewSink("")
	}

	items, err := LoadItems(p.Input)
	if err != nil {
		return "", err
	}
	log.Info("loaded items", zap.String("input", p.Input), zap.Int("count", len(items)))

	// One instant names the file and stamps the document.
	at := now()
	rc := NewReceipt(items, at)

	res, err := p.Renderer.Render(ctx, rc)
	if err != nil {
		return "", err
	}
	log.Info("rendered receipt",
		zap.Int("bytes", res.Len()),
		zap.String("grand_total", FormatAmount(rc.GrandTotal())),
	)

	path, err := sink.Write(at, res)
	if err != nil {
		return "", err
	}
	log.Info("receipt written", zap.String("path", path))

	if p.Viewer != nil {
		if err := p.Viewer.Open(ctx, path); err != nil {
			log.Warn("could not open receipt automatically", zap.String("path", path), zap.Error(err))
		}
	}
	return path, nil
}
