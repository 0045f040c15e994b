package alloc

import (
	"go.uber.org/zap"

	runtimekit "github.com/wippyai/runtime-kit"
)

// Tracing wraps another allocator and logs every call. Successful calls log
// at debug level, refused ones at warn. Useful when chasing growth behavior
// or unexpected relocations.
type Tracing struct {
	inner  runtimekit.Allocator
	logger *zap.Logger
}

// NewTracing returns a logging allocator over inner. A nil inner means the
// process heap; a nil logger disables output.
func NewTracing(inner runtimekit.Allocator, logger *zap.Logger) *Tracing {
	if inner == nil {
		inner = Heap{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracing{inner: inner, logger: logger}
}

func (t *Tracing) Alloc(size int64) ([]byte, error) {
	block, err := t.inner.Alloc(size)
	if err != nil {
		t.logger.Warn("alloc refused", zap.Int64("size", size), zap.Error(err))
		return nil, err
	}
	t.logger.Debug("alloc", zap.Int64("size", size))
	return block, nil
}

func (t *Tracing) Realloc(block []byte, size int64) ([]byte, error) {
	fresh, err := t.inner.Realloc(block, size)
	if err != nil {
		t.logger.Warn("realloc refused",
			zap.Int("from", len(block)),
			zap.Int64("to", size),
			zap.Error(err))
		return nil, err
	}
	t.logger.Debug("realloc",
		zap.Int("from", len(block)),
		zap.Int64("to", size),
		zap.Bool("moved", len(fresh) > 0 && len(block) > 0 && &fresh[0] != &block[0]))
	return fresh, nil
}

func (t *Tracing) Free(block []byte) {
	t.logger.Debug("free", zap.Int("size", len(block)))
	t.inner.Free(block)
}
