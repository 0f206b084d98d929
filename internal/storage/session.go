package storage

import (
	"context"
	"database/sql"
)

// SessionStore keeps the active-session pointer: the username currently
// logged in on this profile, present iff someone is logged in.
type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Current returns the logged-in username, or "" when nobody is logged in.
func (s *SessionStore) Current(ctx context.Context) (string, error) {
	raw, err := kvGet(ctx, s.db, keySession)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// SetCurrent records username as the active session.
func (s *SessionStore) SetCurrent(ctx context.Context, username string) error {
	return kvSet(ctx, s.db, keySession, []byte(username))
}

// Clear removes the active session, logging the profile out.
func (s *SessionStore) Clear(ctx context.Context) error {
	return kvDelete(ctx, s.db, keySession)
}
