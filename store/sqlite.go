package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ghiac/suitenav/model"
	_ "modernc.org/sqlite"
)

// SQLiteStore is a SQLite implementation of model.HeaderStateStore
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore creates a new SQLite header state store
// If dbPath is empty, it uses ":memory:" for in-memory database
// The function automatically creates the directory if it doesn't exist
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		dbPath = ":memory:"
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create directory for database: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// every :memory: connection is its own database
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{
		db:   db,
		path: dbPath,
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS header_states (
		session_id TEXT PRIMARY KEY,
		show_sidebar INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_header_states_updated_at ON header_states(updated_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Get retrieves the state of a session
func (s *SQLiteStore) Get(sessionID string) (*model.HeaderState, error) {
	row := s.db.QueryRow(
		`SELECT session_id, show_sidebar, created_at, updated_at FROM header_states WHERE session_id = ?`,
		sessionID,
	)

	state, err := scanState(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", model.ErrStateNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get header state: %w", err)
	}
	return state, nil
}

// Put stores or updates a state
func (s *SQLiteStore) Put(state *model.HeaderState) error {
	if state == nil {
		return fmt.Errorf("header state cannot be nil")
	}
	if state.SessionID == "" {
		return fmt.Errorf("header state has no session id")
	}

	state.UpdatedAt = time.Now()
	if state.CreatedAt.IsZero() {
		state.CreatedAt = state.UpdatedAt
	}

	_, err := s.db.Exec(`
		INSERT INTO header_states (session_id, show_sidebar, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			show_sidebar = excluded.show_sidebar,
			updated_at = excluded.updated_at`,
		state.SessionID,
		boolToInt(state.ShowSidebar),
		state.CreatedAt.UnixNano(),
		state.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to put header state: %w", err)
	}
	return nil
}

// Delete removes a state
func (s *SQLiteStore) Delete(sessionID string) error {
	if _, err := s.db.Exec(`DELETE FROM header_states WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("failed to delete header state: %w", err)
	}
	return nil
}

// List returns all states, most recently updated first
func (s *SQLiteStore) List() ([]*model.HeaderState, error) {
	rows, err := s.db.Query(
		`SELECT session_id, show_sidebar, created_at, updated_at FROM header_states ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list header states: %w", err)
	}
	defer rows.Close()

	var states []*model.HeaderState
	for rows.Next() {
		state, err := scanState(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan header state: %w", err)
		}
		states = append(states, state)
	}
	return states, rows.Err()
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanState(row rowScanner) (*model.HeaderState, error) {
	var (
		state              model.HeaderState
		showSidebar        int
		createdAt, updated int64
	)
	if err := row.Scan(&state.SessionID, &showSidebar, &createdAt, &updated); err != nil {
		return nil, err
	}
	state.ShowSidebar = showSidebar != 0
	state.CreatedAt = time.Unix(0, createdAt)
	state.UpdatedAt = time.Unix(0, updated)
	return &state, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
