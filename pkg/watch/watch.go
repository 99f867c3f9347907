package watch

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/siyuan-infoblox/js-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/js-imports-group/pkg/host"
	"github.com/siyuan-infoblox/js-imports-group/pkg/organizer"
	"github.com/siyuan-infoblox/js-imports-group/pkg/utils"
)

// Config controls a watch session
type Config struct {
	Debounce time.Duration    // quiet period per file, host.DefaultDebounce if <= 0
	Out      io.Writer        // one line per organized file, io.Discard if nil
	Logger   organizer.Logger // trace output, may be nil
}

// Watcher organizes the imports of source files each time they are saved
type Watcher struct {
	runner  *host.Runner
	fs      *fsnotify.Watcher
	gate    *host.Gate
	written *lru.Cache[string, [sha256.Size]byte]
	out     io.Writer
	logger  organizer.Logger

	mu    sync.Mutex
	trees map[string]bool // watched directories whose every source file is organized
	files map[string]bool // source files named explicitly
}

// New starts watching roots, which may be directories (watched recursively) or single files
func New(runner *host.Runner, roots []string, cfg Config) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToCreateWatcher, err)
	}
	written, err := lru.New[string, [sha256.Size]byte](1024)
	if err != nil {
		fs.Close()
		return nil, err
	}

	w := &Watcher{
		runner:  runner,
		fs:      fs,
		written: written,
		out:     cfg.Out,
		logger:  cfg.Logger,
		trees:   make(map[string]bool),
		files:   make(map[string]bool),
	}
	if w.out == nil {
		w.out = io.Discard
	}
	w.gate = host.NewGate(cfg.Debounce, w.process)

	for _, root := range roots {
		if err := w.add(root); err != nil {
			fs.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) logf(format string, v ...any) {
	if w.logger != nil {
		w.logger.Printf(format, v...)
	}
}

func (w *Watcher) add(root string) error {
	root = filepath.Clean(root)
	isDir, err := utils.IsDirectory(root)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	if !isDir {
		if err := w.fs.Add(filepath.Dir(root)); err != nil {
			return fmt.Errorf("%s %s: %w", errors.ErrMsgFailedToWatchPath, root, err)
		}
		w.mu.Lock()
		w.files[root] = true
		w.mu.Unlock()
		return nil
	}

	dirs, err := utils.FindSourceDirs(root)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindSourceFiles, err)
	}
	for _, dir := range dirs {
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("%s %s: %w", errors.ErrMsgFailedToWatchPath, dir, err)
		}
		w.mu.Lock()
		w.trees[dir] = true
		w.mu.Unlock()
	}
	return nil
}

// Dirs returns the number of directories being watched
func (w *Watcher) Dirs() int {
	return len(w.fs.WatchList())
}

// Run dispatches filesystem events until ctx is done or the watcher is closed
func (w *Watcher) Run(ctx context.Context) error {
	defer w.gate.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			w.handle(ev)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logf("watch error: %v", err)
		}
	}
}

// Close stops watching; pending organize calls are dropped
func (w *Watcher) Close() error {
	w.gate.Stop()
	return w.fs.Close()
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return
	}
	path := filepath.Clean(ev.Name)

	inTree := w.inTree(filepath.Dir(path))

	if ev.Has(fsnotify.Create) && inTree {
		if isDir, err := utils.IsDirectory(path); err == nil && isDir {
			if utils.SkipDir(filepath.Base(path)) {
				return
			}
			if err := w.add(path); err != nil {
				w.logf("%v", err)
			}
			return
		}
	}

	if strings.HasPrefix(filepath.Base(path), ".") || !utils.IsSourceFile(path) {
		return
	}
	if !inTree && !w.named(path) {
		return
	}
	w.gate.Trigger(path)
}

func (w *Watcher) inTree(dir string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.trees[dir]
}

func (w *Watcher) named(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[path]
}

func (w *Watcher) process(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		// removed or renamed away before the quiet period ended
		return
	}
	if sum, ok := w.written.Get(path); ok && sum == sha256.Sum256(data) {
		w.logf(errors.TraceMsgSkippedOwnWrite, path)
		return
	}

	doc := host.NewFileDocument(path)
	res, err := w.runner.Run(doc, host.ReasonSave)
	if err != nil {
		fmt.Fprintf(w.out, errors.InfoMsgErrorProcessing+"\n", path, err)
		return
	}
	if !res.Changed() {
		return
	}
	w.written.Add(path, sha256.Sum256([]byte(doc.Contents())))
	fmt.Fprintf(w.out, errors.InfoMsgOrganizedOnSave+"\n", path)
}
