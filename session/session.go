// Package session holds the authenticated identity between requests. The
// browser carries only an opaque cookie; the user object, the backend
// access token and the teams cache live server-side behind the Store
// interface, injected wherever session state is needed.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sitelog/models"
)

// CookieName identifies the session in the browser.
const CookieName = "sitelog_session"

// Session is the persisted state for one logged-in browser.
type Session struct {
	ID          string      `json:"id"`
	User        models.User `json:"user"`
	AccessToken string      `json:"accessToken"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Store persists sessions and the shared teams cache. Implementations must
// be safe for concurrent use.
type Store interface {
	// Get returns the session for id, or nil when it is unknown or
	// expired.
	Get(ctx context.Context, id string) (*Session, error)
	// Put saves or replaces a session.
	Put(ctx context.Context, s *Session) error
	// Delete removes a session. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error

	// PutTeams replaces the shared last-known teams list.
	PutTeams(teams []models.Team)
	// CachedTeams returns the last-known teams list, if any.
	CachedTeams() ([]models.Team, bool)
}

// New creates a session for a freshly authenticated user.
func New(user models.User, accessToken string) *Session {
	return &Session{
		ID:          uuid.NewString(),
		User:        user,
		AccessToken: accessToken,
		CreatedAt:   time.Now(),
	}
}
