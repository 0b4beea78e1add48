package storage

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/felixgeelhaar/fortify/retry"
)

// DefaultPattern matches specification documents in a directory.
const DefaultPattern = "*.spec.yaml"

// FilesystemRepository reads specification documents and resolves the files
// they reference against a repository root.
type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
	logger      *slog.Logger
}

// NewFilesystemRepository resolves references against root. A nil logger uses slog.Default.
func NewFilesystemRepository(root string, logger *slog.Logger) *FilesystemRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
		logger: logger,
	}
}

// Root returns the repository root references are resolved against.
func (r *FilesystemRepository) Root() string {
	return r.root
}

// ResolvePath joins a reference onto the root. Absolute paths are kept as-is.
func (r *FilesystemRepository) ResolvePath(rel string) string {
	p := filepath.FromSlash(rel)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(r.root, p)
}

// Exists reports whether rel names an existing regular file under the root.
func (r *FilesystemRepository) Exists(rel string) bool {
	info, err := os.Stat(r.ResolvePath(rel))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Discover returns the files directly inside dir whose names match pattern.
// The search is not recursive. A missing dir yields an error wrapping fs.ErrNotExist.
func (r *FilesystemRepository) Discover(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid document pattern %q", pattern)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory: %w", dir, fs.ErrNotExist)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		full := filepath.Join(dir, filepath.FromSlash(m))
		fi, err := os.Stat(full)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		paths = append(paths, full)
	}
	sort.Strings(paths)
	return paths, nil
}

// Read loads a document's bytes, retrying transient filesystem errors.
func (r *FilesystemRepository) Read(ctx context.Context, path string) ([]byte, error) {
	retryer := retry.New[[]byte](r.retryConfig)

	attempt := 0
	return retryer.Do(ctx, func(ctx context.Context) ([]byte, error) {
		attempt++
		if attempt > 1 {
			r.logger.Warn("retrying document read", slog.String("path", path), slog.Int("attempt", attempt))
		}

		// #nosec G304 -- documents are user-selected inputs
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return data, nil
	})
}
