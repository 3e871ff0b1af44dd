package slides

import (
	"context"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
)

//nolint:gochecknoglobals // immutable lookup table.
var skipDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	"vendor":       {},
	".cache":       {},
}

// IsDeckFile reports whether name looks like a deck file.
func IsDeckFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".deck.yaml") || strings.HasSuffix(lower, ".deck.yml")
}

// Discover walks root and returns every deck file below it, sorted.
func Discover(ctx context.Context, root string) ([]string, error) {
	var (
		mu    sync.Mutex
		found []string
	)
	conf := fastwalk.DefaultConfig
	err := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries.
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip {
				return fs.SkipDir
			}
			return nil
		}
		if IsDeckFile(d.Name()) {
			// fastwalk invokes the callback from several goroutines.
			mu.Lock()
			found = append(found, path)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(found)
	return found, nil
}
