package fsrepo

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/ghiac/suitenav/log"
	"github.com/ghiac/suitenav/model"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultDebounce is how long the watcher waits after the last write before reloading
const DefaultDebounce = 200 * time.Millisecond

// NavRepository holds the nav document the header renders, loaded from a
// YAML or TOML file. Without a file it serves model.DefaultNavDocument.
type NavRepository struct {
	path     string
	doc      *model.NavDocument
	loadedAt time.Time
	mu       sync.RWMutex
	debounce time.Duration
	onReload func(*model.NavDocument)
}

// NewNavRepository loads path and returns a repository serving it.
// An empty path serves the built-in document.
func NewNavRepository(path string) (*NavRepository, error) {
	r := &NavRepository{debounce: DefaultDebounce}
	if path == "" {
		r.doc = model.DefaultNavDocument()
		r.loadedAt = time.Now()
		return r, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid nav file path: %w", err)
	}
	r.path = absPath

	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the absolute path of the nav file, or "" for the built-in document
func (r *NavRepository) Path() string {
	return r.path
}

// Current returns the latest successfully loaded document
func (r *NavRepository) Current() *model.NavDocument {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc
}

// LoadedAt returns when the current document was loaded
func (r *NavRepository) LoadedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loadedAt
}

// SetOnReload registers a callback run after every successful reload
func (r *NavRepository) SetOnReload(fn func(*model.NavDocument)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onReload = fn
}

// Reload reads the nav file again. On failure the previous document stays in place.
func (r *NavRepository) Reload() error {
	if r.path == "" {
		return nil
	}

	doc, err := LoadNavDocument(r.path)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.doc = doc
	r.loadedAt = time.Now()
	onReload := r.onReload
	r.mu.Unlock()

	log.Log.Infof("[NavRepository] loaded %s (%d navbar, %d actions, %d sidebar items)",
		r.path, len(doc.Navbar), len(doc.Actions), len(doc.Sidebar))

	if onReload != nil {
		onReload(doc)
	}
	return nil
}

// LoadNavDocument parses a nav document; the format follows the file extension
func LoadNavDocument(path string) (*model.NavDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read nav file: %w", err)
	}

	doc := &model.NavDocument{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	case ".toml":
		if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	default:
		return nil, fmt.Errorf("unsupported nav file format %q (want .yaml, .yml or .toml)", ext)
	}

	doc.ApplyDefaults()
	return doc, nil
}

// Watch reloads the nav file whenever it is written or replaced, until ctx is done.
// It watches the parent directory so editors that swap files are picked up.
func (r *NavRepository) Watch(ctx context.Context) error {
	if r.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(r.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(r.path), err)
	}

	log.Log.Debugf("[NavRepository] watching %s", r.path)
	go r.watchLoop(ctx, watcher)
	return nil
}

func (r *NavRepository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != r.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(r.debounce)
			} else {
				timer.Reset(r.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			if err := r.Reload(); err != nil {
				log.Log.Warnf("[NavRepository] reload failed, keeping previous document: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Log.Warnf("[NavRepository] watcher error: %v", err)
		}
	}
}
