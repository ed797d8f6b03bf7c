package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrStateNotFound is returned by HeaderStateStore.Get for an unknown session
var ErrStateNotFound = errors.New("header state not found")

// HeaderState holds the per-visitor header UI state
type HeaderState struct {
	// SessionID identifies the visitor (suitenav_session cookie)
	SessionID string `json:"session_id" bson:"session_id"`

	// ShowSidebar is true while the sidebar is open
	ShowSidebar bool `json:"show_sidebar" bson:"show_sidebar"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// NewHeaderState creates a closed-sidebar state for a session
func NewHeaderState(sessionID string) *HeaderState {
	now := time.Now()
	return &HeaderState{
		SessionID:   sessionID,
		ShowSidebar: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Toggle flips the sidebar and returns the new value
func (s *HeaderState) Toggle() bool {
	s.ShowSidebar = !s.ShowSidebar
	s.UpdatedAt = time.Now()
	return s.ShowSidebar
}

// SidebarClass is the class of the sidebar container for the current state
func (s *HeaderState) SidebarClass() string {
	if s != nil && s.ShowSidebar {
		return "display-container"
	}
	return "hide"
}

// NewSessionID generates a visitor session id
func NewSessionID() string {
	return uuid.NewString()
}

// HeaderStateStore defines the interface for header state storage (pluggable)
type HeaderStateStore interface {
	Get(sessionID string) (*HeaderState, error)
	Put(state *HeaderState) error
	Delete(sessionID string) error
	List() ([]*HeaderState, error)
}
