// Package auth tracks browser sessions: the authenticated user, the page
// being displayed, and the live message buffer. All of it is transient
// working state; durable copies live in the store.
package auth

import (
	"sync"

	"github.com/google/uuid"

	"github.com/xdpzq/devcore/pkg/domain"
)

const CookieName = "devcore_session"

type Session struct {
	Token string

	mu       sync.Mutex
	user     *domain.User
	page     domain.Page
	messages []domain.Message
}

func (s *Session) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Session) SetUser(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.user.IsAdmin
}

func (s *Session) Page() domain.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

func (s *Session) SetPage(p domain.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = p
}

// Messages returns a copy of the live buffer.
func (s *Session) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) Append(msgs ...domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msgs...)
}

func (s *Session) ResetBuffer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

// Logout drops the user and the live buffer but keeps the session itself,
// so the visitor lands back on HOME like any other guest.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.messages = nil
	s.page = domain.PageHome
}

// SessionStore is the in-memory session registry keyed by cookie token.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Create registers a fresh session starting at the boot screen.
func (st *SessionStore) Create() *Session {
	s := &Session{
		Token: uuid.NewString(),
		page:  domain.PageBoot,
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.Token] = s
	return s
}

func (st *SessionStore) Get(token string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[token]
	return s, ok
}

func (st *SessionStore) Delete(token string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, token)
}
