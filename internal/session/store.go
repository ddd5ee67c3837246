// Package session owns authentication state and the persisted session record.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"tareas/internal/config"
	"tareas/internal/service"
)

// Store is the single writer of session data. It persists the login
// response verbatim as one durable record and exposes a subscribable
// authenticated-state flag whose initial value is computed once, at
// construction, from whatever record is already on disk.
type Store struct {
	cfg  *config.Config
	http *http.Client
	log  *slog.Logger

	mu      sync.Mutex
	raw     []byte // verbatim login response body, nil when logged out
	parsed  service.Session
	authed  bool
	subs    map[int]chan bool
	nextSub int
}

// New creates a Store bound to the config directory's session record.
// An existing record is loaded immediately; a record that cannot be
// parsed is treated as absent.
func New(cfg *config.Config, log *slog.Logger) *Store {
	s := &Store{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.API.Timeout},
		log:  log,
		subs: make(map[int]chan bool),
	}

	data, err := os.ReadFile(cfg.SessionPath())
	if err != nil {
		return s
	}
	var parsed service.Session
	if err := json.Unmarshal(data, &parsed); err != nil {
		s.log.Warn("ignoring unreadable session record", "path", cfg.SessionPath(), "error", err)
		return s
	}
	s.raw = data
	s.parsed = parsed
	s.authed = true
	return s
}

// Login sends the credentials to the auth endpoint. On success the
// entire server response is persisted as the new session record,
// replacing any prior one, and the authenticated flag flips to true.
// On failure state is left unchanged and the error is returned as-is;
// no retry.
func (s *Store) Login(ctx context.Context, username, password string) error {
	body, err := s.postAuth(ctx, "/login", username, password)
	if err != nil {
		s.log.Debug("login failed", "username", username, "error", err)
		return err
	}

	var parsed service.Session
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("invalid login response: %w", err)
	}

	if err := s.cfg.EnsureDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(s.cfg.SessionPath(), body, 0600); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.mu.Lock()
	s.raw = body
	s.parsed = parsed
	s.authed = true
	s.publishLocked(true)
	s.mu.Unlock()
	return nil
}

// Register creates a new user account. The session is not touched;
// registering does not log in.
func (s *Store) Register(ctx context.Context, username, password string) error {
	_, err := s.postAuth(ctx, "/register", username, password)
	return err
}

// Logout clears the persisted session and flips the authenticated flag
// to false. Safe to call when already logged out.
func (s *Store) Logout() error {
	if err := s.cfg.RemoveSession(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session: %w", err)
	}

	s.mu.Lock()
	s.raw = nil
	s.parsed = service.Session{}
	s.authed = false
	s.publishLocked(false)
	s.mu.Unlock()
	return nil
}

// Authenticated reports whether a session record is currently held.
func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authed
}

// Subscribe returns a channel carrying authenticated-state changes,
// primed with the current value, plus a disposal func. Callers must
// dispose on teardown. A slow subscriber sees only the latest value.
func (s *Store) Subscribe() (<-chan bool, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan bool, 1)
	ch <- s.authed
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
	return ch, cancel
}

// Token returns the token of the current session, or the empty string
// when no session exists. Never fails.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parsed.Token
}

// CurrentUser returns the parsed session record, ok=false when absent.
func (s *Store) CurrentUser() (service.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parsed, s.authed
}

// publishLocked pushes v to every subscriber. Channels hold one slot;
// an undrained value is replaced so subscribers always read the latest
// state. Callers hold s.mu.
func (s *Store) publishLocked(v bool) {
	for _, ch := range s.subs {
		select {
		case ch <- v:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- v
		}
	}
}

// postAuth posts credentials to the given auth path and returns the
// response body on 2xx. Non-2xx statuses and transport failures come
// back classified.
func (s *Store) postAuth(ctx context.Context, path, username, password string) ([]byte, error) {
	payload, err := json.Marshal(service.Credentials{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.API.AuthURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, service.NewNetworkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, service.NewNetworkError(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, service.NewStatusError(resp.StatusCode, string(body))
	}
	return body, nil
}
