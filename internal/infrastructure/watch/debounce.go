// Package watch re-runs lint batches when specification files change.
package watch

import (
	"sort"
	"sync"
	"time"
)

// Batcher collects changed paths and hands them over once the window passes
// without another change.
type Batcher struct {
	window time.Duration
	flush  func(paths []string)

	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
}

// NewBatcher creates a batcher that calls flush with the sorted, de-duplicated paths.
func NewBatcher(window time.Duration, flush func(paths []string)) *Batcher {
	return &Batcher{
		window:  window,
		flush:   flush,
		pending: make(map[string]struct{}),
	}
}

// Add records a change and restarts the quiet window.
func (b *Batcher) Add(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending[path] = struct{}{}
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.window, b.fire)
}

// Stop drops pending paths without flushing them.
func (b *Batcher) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}
	b.pending = make(map[string]struct{})
}

func (b *Batcher) fire() {
	b.mu.Lock()
	paths := make([]string, 0, len(b.pending))
	for p := range b.pending {
		paths = append(paths, p)
	}
	b.pending = make(map[string]struct{})
	b.mu.Unlock()

	if len(paths) == 0 || b.flush == nil {
		return
	}
	sort.Strings(paths)
	b.flush(paths)
}
