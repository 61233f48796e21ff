package lint

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/gnoswap-labs/flex/internal/types"
)

const defaultDebounce = 100 * time.Millisecond

// ReportFunc receives the result of re-linting a changed file.
type ReportFunc func(filename string, issues []tt.Issue, err error)

// Watcher re-lints data files when they change.
type Watcher struct {
	engine   LintEngine
	logger   *zap.Logger
	fsw      *fsnotify.Watcher
	dirs     map[string]bool
	files    map[string]bool
	debounce time.Duration
}

// NewWatcher watches paths: files directly, directories recursively.
func NewWatcher(logger *zap.Logger, engine LintEngine, paths []string) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}
	w := &Watcher{
		engine:   engine,
		logger:   logger,
		fsw:      fsw,
		dirs:     make(map[string]bool),
		files:    make(map[string]bool),
		debounce: defaultDebounce,
	}

	for _, path := range paths {
		if err := w.add(path); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) add(path string) error {
	path = filepath.Clean(path)
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error accessing %s: %w", path, err)
	}
	if !info.IsDir() {
		w.files[path] = true
		return w.fsw.Add(filepath.Dir(path))
	}
	return w.addDir(path)
}

func (w *Watcher) addDir(root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		w.dirs[path] = true
		return w.fsw.Add(path)
	})
	if err != nil {
		return fmt.Errorf("error adding directory to watcher: %w", err)
	}
	return nil
}

func (w *Watcher) isTarget(name string) bool {
	name = filepath.Clean(name)
	return w.files[name] || (w.dirs[filepath.Dir(name)] && hasDesiredExtension(name))
}

// Run reports every changed file until ctx is done. Writes arriving within
// the debounce window are linted once.
func (w *Watcher) Run(ctx context.Context, report ReportFunc) error {
	defer w.fsw.Close()

	pending := make(map[string]struct{})
	var flush <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create == fsnotify.Create && w.dirs[filepath.Dir(filepath.Clean(event.Name))] {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addDir(event.Name); err != nil {
						w.logger.Warn("Error watching new directory", zap.String("dir", event.Name), zap.Error(err))
					}
					continue
				}
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || !w.isTarget(event.Name) {
				continue
			}
			pending[filepath.Clean(event.Name)] = struct{}{}
			flush = time.After(w.debounce)
		case <-flush:
			names := make([]string, 0, len(pending))
			for name := range pending {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				issues, err := ProcessFile(w.engine, name)
				report(name, issues, err)
			}
			pending = make(map[string]struct{})
			flush = nil
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", zap.Error(err))
		}
	}
}
