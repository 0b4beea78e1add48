package watch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for changes to settle.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reports batches of changed specification files.
// Directories are watched non-recursively.
type Watcher struct {
	fs       *fsnotify.Watcher
	filter   *NameFilter
	debounce time.Duration
	onChange func(paths []string)
	logger   *slog.Logger
}

// New creates a watcher that calls onChange with every settled batch of matching paths.
func New(filter *NameFilter, debounce time.Duration, onChange func(paths []string), logger *slog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if filter == nil {
		filter = NewNameFilter()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		fs:       w,
		filter:   filter,
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
	}, nil
}

// Add starts watching the given directories.
func (w *Watcher) Add(dirs ...string) error {
	for _, dir := range dirs {
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return nil
}

// Close releases the underlying fsnotify watcher. Run closes it on return,
// so Close is only needed when Run is never called. It is safe to call twice.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Run processes events until the context is cancelled or the watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	batcher := NewBatcher(w.debounce, w.onChange)
	defer batcher.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			op := opName(event.Op)
			if op == "" || !w.filter.Matches(event.Name) {
				continue
			}
			w.logger.Debug("document changed", slog.String("path", event.Name), slog.String("op", op))
			batcher.Add(event.Name)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

func opName(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Write):
		return "write"
	case op.Has(fsnotify.Remove):
		return "remove"
	case op.Has(fsnotify.Rename):
		return "rename"
	default:
		return ""
	}
}
