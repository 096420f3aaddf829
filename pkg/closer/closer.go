package closer

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// closer keeps shutdown callbacks and runs them once, in reverse
// registration order.
type closer struct {
	mu     sync.Mutex
	once   sync.Once
	items  []item
	logger *zap.Logger
}

type item struct {
	name string
	fn   func(ctx context.Context) error
}

var global = &closer{logger: zap.NewNop()}

func SetLogger(l *zap.Logger) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if l != nil {
		global.logger = l
	}
}

func Add(fn func(ctx context.Context) error) {
	AddNamed("", fn)
}

func AddNamed(name string, fn func(ctx context.Context) error) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.items = append(global.items, item{name: name, fn: fn})
}

// CloseAll runs every registered callback in LIFO order and joins the
// errors. Subsequent calls are no-ops.
func CloseAll(ctx context.Context) error {
	var errs []error

	global.once.Do(func() {
		global.mu.Lock()
		items := global.items
		global.items = nil
		global.mu.Unlock()

		for i := len(items) - 1; i >= 0; i-- {
			it := items[i]
			if err := it.fn(ctx); err != nil {
				global.logger.Error("close failed",
					zap.String("name", it.name),
					zap.Error(err),
				)
				errs = append(errs, err)
				continue
			}
			if it.name != "" {
				global.logger.Info("closed", zap.String("name", it.name))
			}
		}
	})

	return errors.Join(errs...)
}
