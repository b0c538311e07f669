package textproc

import (
	"log/slog"
	"sync"

	"textkit/internal/logging"
)

// Processor groups the text operations and remembers the last text counted.
type Processor struct {
	logger *slog.Logger

	mu            sync.RWMutex
	lastProcessed *string
}

// Option customizes a Processor.
type Option func(*Processor)

// WithLogger attaches a logger used for debug-level operation traces.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New constructs a Processor with no recorded text.
func New(opts ...Option) *Processor {
	p := &Processor{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(logging.String(logging.FieldComponent, "textproc"))
	return p
}

// LastProcessed returns the text most recently passed to CountUnique.
// The boolean is false until CountUnique has succeeded at least once.
func (p *Processor) LastProcessed() (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.lastProcessed == nil {
		return "", false
	}
	return *p.lastProcessed, true
}

func (p *Processor) setLastProcessed(text string) {
	p.mu.Lock()
	p.lastProcessed = &text
	p.mu.Unlock()
}
