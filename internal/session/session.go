// Package session holds the client's authentication credential. The token is
// an opaque string issued by the backend at login; it is persisted to a file
// so a restarted client stays logged in until an explicit logout.
package session

import (
	"os"
	"path/filepath"
	"strings"
)

// Session is the process-wide credential state, passed explicitly to the API
// client and the screen router rather than read from ambient globals. The
// token file is the only client-side state that survives restarts.
type Session struct {
	path  string
	token string
}

// New creates a session backed by the token file at path and restores any
// previously saved token. A missing or unreadable file simply leaves the
// session unauthenticated.
func New(path string) *Session {
	s := &Session{path: path}
	if data, err := os.ReadFile(path); err == nil {
		s.token = strings.TrimSpace(string(data))
	}
	return s
}

// Token returns the current credential token, or "" when logged out.
func (s *Session) Token() string {
	return s.token
}

// Authenticated reports whether a non-empty token is present. This is the
// sole authorization signal the screen guard checks.
func (s *Session) Authenticated() bool {
	return s.token != ""
}

// SetToken stores the token issued at login and persists it to the token
// file. The in-memory token is updated even if persistence fails; the write
// error is returned so the caller can log it.
func (s *Session) SetToken(token string) error {
	s.token = token
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear drops the token and removes the token file. Used at logout; no
// network call is involved.
func (s *Session) Clear() error {
	s.token = ""
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
