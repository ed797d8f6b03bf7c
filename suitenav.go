package suitenav

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/ghiac/suitenav/config"
	"github.com/ghiac/suitenav/fsrepo"
	"github.com/ghiac/suitenav/log"
	"github.com/ghiac/suitenav/model"
	"github.com/ghiac/suitenav/navurl"
	"github.com/ghiac/suitenav/store"
	"github.com/ghiac/suitenav/ui"
)

// SuiteNav is the main entry point for the library.
// It serves the suite header and builds cross-app URLs.
type SuiteNav struct {
	cfg    *config.Config
	repo   *fsrepo.NavRepository
	states store.Store

	// serializes read-modify-write of header states
	toggleMu sync.Mutex
}

// Options allows configuring SuiteNav behavior
type Options struct {
	// Repository allows providing an existing nav repository
	Repository *fsrepo.NavRepository
	// StateStore allows providing a custom header state store
	StateStore store.Store
}

// New creates a SuiteNav from configuration
func New(cfg *config.Config) (*SuiteNav, error) {
	return NewWithOptions(cfg, nil)
}

// NewWithOptions creates a SuiteNav with custom options
func NewWithOptions(cfg *config.Config, opts *Options) (*SuiteNav, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	var repo *fsrepo.NavRepository
	var err error
	if opts != nil && opts.Repository != nil {
		repo = opts.Repository
	} else {
		repo, err = fsrepo.NewNavRepository(cfg.NavFile)
		if err != nil {
			return nil, fmt.Errorf("failed to create nav repository: %w", err)
		}
	}

	var states store.Store
	if opts != nil && opts.StateStore != nil {
		states = opts.StateStore
	} else {
		states, err = store.New(cfg.Store)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Backend, err)
		}
	}

	return &SuiteNav{
		cfg:    cfg,
		repo:   repo,
		states: states,
	}, nil
}

// Start begins watching the nav file when configured; it returns immediately
func (sn *SuiteNav) Start(ctx context.Context) error {
	if !sn.cfg.WatchNavFile || sn.repo.Path() == "" {
		return nil
	}
	return sn.repo.Watch(ctx)
}

// Close releases the state store
func (sn *SuiteNav) Close() error {
	return sn.states.Close()
}

// GetRepository returns the nav repository
func (sn *SuiteNav) GetRepository() *fsrepo.NavRepository {
	return sn.repo
}

// GetStateStore returns the header state store
func (sn *SuiteNav) GetStateStore() model.HeaderStateStore {
	return sn.states
}

// Origin returns the origin links are built against: the configured public
// protocol/host where set, the request's own origin otherwise.
func (sn *SuiteNav) Origin(r *http.Request) navurl.Origin {
	origin := navurl.OriginFromRequest(r)
	if p := navurl.NormalizeProtocol(sn.cfg.Public.Protocol); p != "" {
		origin.Protocol = p
	}
	if sn.cfg.Public.Host != "" {
		origin.Host = sn.cfg.Public.Host
	}
	return origin
}

// BuildURL builds the URL for ctx, strict when asked or when configured
func (sn *SuiteNav) BuildURL(ctx *navurl.NavigationContext, origin navurl.Origin, strict bool) string {
	return navurl.Build(ctx, origin, strict || sn.cfg.StrictURLs)
}

// HeaderState returns the state of a session, or a fresh closed one
func (sn *SuiteNav) HeaderState(sessionID string) (*model.HeaderState, error) {
	state, err := sn.states.Get(sessionID)
	if errors.Is(err, model.ErrStateNotFound) {
		return model.NewHeaderState(sessionID), nil
	}
	if err != nil {
		return nil, err
	}
	return state, nil
}

// ToggleSidebar flips the sidebar of a session and persists it
func (sn *SuiteNav) ToggleSidebar(sessionID string) (*model.HeaderState, error) {
	sn.toggleMu.Lock()
	defer sn.toggleMu.Unlock()

	state, err := sn.HeaderState(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load header state: %w", err)
	}
	state.Toggle()
	if err := sn.states.Put(state); err != nil {
		return nil, fmt.Errorf("failed to save header state: %w", err)
	}

	log.Log.Debugf("[SuiteNav] session %s sidebar open=%v", sessionID, state.ShowSidebar)
	return state, nil
}

// View resolves the header for one request
func (sn *SuiteNav) View(r *http.Request, sessionID, currentPath string, strict bool) (ui.HeaderView, error) {
	state, err := sn.HeaderState(sessionID)
	if err != nil {
		return ui.HeaderView{}, fmt.Errorf("failed to load header state: %w", err)
	}
	return ui.Resolve(sn.repo.Current(), state, ui.ResolveOptions{
		Origin:      sn.Origin(r),
		CurrentPath: currentPath,
		Strict:      strict || sn.cfg.StrictURLs,
		ToggleURL:   routeToggle,
	}), nil
}

// Version returns the current version of suitenav
func Version() string {
	return "0.1.0"
}
