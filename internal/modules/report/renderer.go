package report

import (
	"context"
	"errors"
	"sync"

	"github.com/specbook-io/specbook/internal/modules/model"
	"go.uber.org/zap"
)

// ErrSuperseded is returned to a render request that was replaced by a newer
// one before it finished.
var ErrSuperseded = errors.New("report: render superseded by a newer request")

// Renderer runs exports with replace-in-flight semantics: the last requested
// render wins. Starting a render cancels any render still running; overlapping
// requests are never queued.
type Renderer struct {
	gen *Generator
	log *zap.Logger

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// NewRenderer wraps a generator.
func NewRenderer(gen *Generator, log *zap.Logger) *Renderer {
	return &Renderer{gen: gen, log: log}
}

// Render produces a document for the given items. If another render is in
// flight it is cancelled first and reports ErrSuperseded.
func (r *Renderer) Render(ctx context.Context, items []model.Item, opts Options) ([]byte, error) {
	ctx, cancel := context.WithCancel(ctx)

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	r.seq++
	token := r.seq
	r.cancel = cancel
	r.mu.Unlock()

	defer func() {
		cancel()
		r.mu.Lock()
		// only clear the slot if a newer render has not claimed it
		if r.seq == token {
			r.cancel = nil
		}
		r.mu.Unlock()
	}()

	out, err := r.gen.Generate(ctx, items, opts)
	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return nil, ErrSuperseded
		}
		r.log.Sugar().Warnw("render failed", "theme", opts.Theme, "err", err)
		return nil, err
	}
	return out, nil
}
