// Package identity owns the credential roster and the single signed-in session.
package identity

import (
	"context"
	"errors"
	"log"
	"sync"

	"learnhub/database"
	"learnhub/models"
	"learnhub/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email is already registered")
)

// DemoCredential is always present in memory and never persisted on its own.
var DemoCredential = models.Credential{
	ID:       "1",
	Name:     "Demo User",
	Email:    "demo@example.com",
	Password: "demo123",
}

type Service struct {
	store database.Store
	newID func() string

	mu       sync.RWMutex
	roster   []models.Credential
	current  *models.User
	onLogout []func(models.User)
}

type Option func(*Service)

// WithIDGenerator replaces the id source for new registrations.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

func New(store database.Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		newID:  utils.GenerateID,
		roster: []models.Credential{DemoCredential},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init restores a persisted session as-is and merges any persisted roster.
// A value that cannot be decoded is logged and treated as absent; only store
// failures are returned.
func (s *Service) Init(ctx context.Context) error {
	var stored []models.Credential
	if _, err := database.GetJSON(ctx, s.store, database.RegisteredUsersKey, &stored); err != nil {
		if !errors.Is(err, database.ErrDecode) {
			return err
		}
		log.Printf("[IDENTITY] Ignoring stored roster: %v", err)
		stored = nil
	}
	var user models.User
	found, err := database.GetJSON(ctx, s.store, database.CurrentUserKey, &user)
	if err != nil {
		if !errors.Is(err, database.ErrDecode) {
			return err
		}
		log.Printf("[IDENTITY] Ignoring stored session: %v", err)
		found = false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cred := range stored {
		if s.findByEmailLocked(cred.Email) < 0 {
			s.roster = append(s.roster, cred)
		}
	}
	if found {
		s.current = &user
		log.Printf("[IDENTITY] Restored session for %s", user.Email)
	}
	return nil
}

// Close drops in-memory state. Persisted data is left alone.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.roster = []models.Credential{DemoCredential}
}

// OnLogout registers fn to run after a user signs out, either by logging out
// or by another user signing in over the session.
func (s *Service) OnLogout(fn func(models.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}

func (s *Service) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

func (s *Service) findByEmailLocked(email string) int {
	for i, cred := range s.roster {
		if cred.Email == email {
			return i
		}
	}
	return -1
}

// Login signs in when email and password match a roster entry. A failed
// login leaves the existing session untouched.
func (s *Service) Login(ctx context.Context, email, password string) (models.User, error) {
	s.mu.Lock()
	i := s.findByEmailLocked(email)
	if i < 0 || s.roster[i].Password != password {
		s.mu.Unlock()
		return models.User{}, ErrInvalidCredentials
	}

	user := s.roster[i].User()
	signedOut := s.startSessionLocked(ctx, user)
	s.mu.Unlock()

	signedOut()
	log.Printf("[IDENTITY] User %s logged in", user.ID)
	return user, nil
}

// Register adds a credential and signs the new user in.
func (s *Service) Register(ctx context.Context, name, email, password string) (models.User, error) {
	s.mu.Lock()
	if s.findByEmailLocked(email) >= 0 {
		s.mu.Unlock()
		return models.User{}, ErrEmailTaken
	}

	cred := models.Credential{
		ID:       s.newID(),
		Name:     name,
		Email:    email,
		Password: password,
	}
	s.roster = append(s.roster, cred)
	if err := database.SetJSON(ctx, s.store, database.RegisteredUsersKey, s.roster); err != nil {
		log.Printf("[IDENTITY] Error saving roster: %v", err)
	}

	user := cred.User()
	signedOut := s.startSessionLocked(ctx, user)
	s.mu.Unlock()

	signedOut()
	log.Printf("[IDENTITY] Registered user %s", user.ID)
	return user, nil
}

// startSessionLocked makes user current. When another user was signed in, the
// returned func runs the logout hooks for them; call it after unlocking.
func (s *Service) startSessionLocked(ctx context.Context, user models.User) func() {
	prev := s.current
	s.current = &user
	if err := database.SetJSON(ctx, s.store, database.CurrentUserKey, user); err != nil {
		log.Printf("[IDENTITY] Error saving session: %v", err)
	}
	if prev == nil || prev.ID == user.ID {
		return func() {}
	}
	hooks := append([]func(models.User){}, s.onLogout...)
	replaced := *prev
	return func() {
		for _, fn := range hooks {
			fn(replaced)
		}
		log.Printf("[IDENTITY] User %s signed out by a new session", replaced.ID)
	}
}

// Logout ends the session. The roster is kept.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	prev := s.current
	s.current = nil
	hooks := append([]func(models.User){}, s.onLogout...)
	s.mu.Unlock()

	if err := s.store.Delete(ctx, database.CurrentUserKey); err != nil {
		log.Printf("[IDENTITY] Error clearing session: %v", err)
	}
	if prev == nil {
		return
	}
	for _, fn := range hooks {
		fn(*prev)
	}
	log.Printf("[IDENTITY] User %s logged out", prev.ID)
}

// RosterSize reports how many credentials are known.
func (s *Service) RosterSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.roster)
}
