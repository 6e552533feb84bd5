package session

import (
	"errors"
	"sync"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// Manager keeps the sessions of the HTTP clients, keyed by an opaque token. Calls for
// one token are serialized; different tokens proceed independently. A session left
// idle for longer than the TTL is forgotten and its token is refused.
type Manager struct {
	mu          sync.Mutex
	credentials Credentials
	ttl         time.Duration
	now         func() time.Time
	sessions    map[string]*entry
}

type entry struct {
	mu       sync.Mutex
	session  *Session
	lastSeen time.Time
}

func NewManager(credentials Credentials, ttl time.Duration) (*Manager, error) {
	var errList []error
	if err := credentials.Validate(); err != nil {
		errList = append(errList, err)
	}
	if ttl <= 0 {
		errList = append(errList, errs.NewValueIsInvalidError("session ttl"))
	}
	if len(errList) > 0 {
		return nil, errors.Join(errList...)
	}

	return &Manager{
		credentials: credentials,
		ttl:         ttl,
		now:         time.Now,
		sessions:    make(map[string]*entry),
	}, nil
}

// Login opens a new session and returns its token. Failed attempts leave no session.
// Expired sessions are purged on every successful login.
func (m *Manager) Login(loginID string, password string) (string, error) {
	s, err := NewSession(m.credentials)
	if err != nil {
		return "", err
	}
	if err = s.Login(loginID, password); err != nil {
		return "", err
	}

	token := kernel.NewUUID().String()

	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.purge(now)
	m.sessions[token] = &entry{session: s, lastSeen: now}

	return token, nil
}

// Do runs fn with exclusive access to the session of a token. Unknown, empty and
// expired tokens fail with ErrLoginIsRequired.
func (m *Manager) Do(token string, fn func(s *Session) error) error {
	m.mu.Lock()
	e, ok := m.lookup(token)
	m.mu.Unlock()
	if !ok {
		return ErrLoginIsRequired
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// Logout tears the session down and forgets the token.
func (m *Manager) Logout(token string) error {
	m.mu.Lock()
	e, ok := m.lookup(token)
	delete(m.sessions, token)
	m.mu.Unlock()
	if !ok {
		return ErrLoginIsRequired
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.Logout()
	return nil
}

// lookup returns the live session of a token and marks it as used. m.mu must be held.
func (m *Manager) lookup(token string) (*entry, bool) {
	e, ok := m.sessions[token]
	if !ok {
		return nil, false
	}

	now := m.now()
	if m.expired(e, now) {
		delete(m.sessions, token)
		return nil, false
	}

	e.lastSeen = now
	return e, true
}

// purge drops every expired session. m.mu must be held.
func (m *Manager) purge(now time.Time) {
	for token, e := range m.sessions {
		if m.expired(e, now) {
			delete(m.sessions, token)
		}
	}
}

func (m *Manager) expired(e *entry, now time.Time) bool {
	return now.Sub(e.lastSeen) > m.ttl
}
