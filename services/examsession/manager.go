package examsession

import (
	"log"
	"sync"

	"learnhub/catalog"
	"learnhub/models"
	"learnhub/services"
	"learnhub/utils"
)

// RecorderFactory binds a recorder to the user who owns a session.
type RecorderFactory func(user models.User) Recorder

// Manager keeps at most one session per user and course.
type Manager struct {
	catalog   *catalog.Catalog
	users     services.UserSource
	recorders RecorderFactory
	scheduler utils.Scheduler

	mu       sync.Mutex
	sessions map[string]*Session
	hooks    []CompleteHook
}

func NewManager(cat *catalog.Catalog, users services.UserSource, recorders RecorderFactory, scheduler utils.Scheduler) *Manager {
	return &Manager{
		catalog:   cat,
		users:     users,
		recorders: recorders,
		scheduler: scheduler,
		sessions:  make(map[string]*Session),
	}
}

// OnComplete registers a hook for sessions opened after this call.
func (m *Manager) OnComplete(hook CompleteHook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, hook)
}

func sessionKey(userID, courseID string) string {
	return userID + "/" + courseID
}

// Open returns the signed-in user's session for the course's exam, creating
// it when needed. Unknown courses or exams never produce a session.
func (m *Manager) Open(courseID string) (*Session, error) {
	user, ok := m.users.CurrentUser()
	if !ok {
		return nil, services.ErrNotAuthenticated
	}
	exam, course, err := m.catalog.ExamForCourse(courseID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	key := sessionKey(user.ID, courseID)
	if s, ok := m.sessions[key]; ok {
		return s, nil
	}
	hooks := append([]CompleteHook{}, m.hooks...)
	s := newSession(exam, course, user, m.recorders(user), m.scheduler, hooks)
	m.sessions[key] = s
	return s, nil
}

// Lookup returns an existing session without creating one.
func (m *Manager) Lookup(userID, courseID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionKey(userID, courseID)]
	return s, ok
}

// Discard closes and forgets one session.
func (m *Manager) Discard(userID, courseID string) {
	m.mu.Lock()
	key := sessionKey(userID, courseID)
	s, ok := m.sessions[key]
	delete(m.sessions, key)
	m.mu.Unlock()
	if ok {
		s.Close()
	}
}

// DiscardUser closes every session of the user.
func (m *Manager) DiscardUser(userID string) {
	m.mu.Lock()
	var closing []*Session
	for key, s := range m.sessions {
		if s.user.ID == userID {
			closing = append(closing, s)
			delete(m.sessions, key)
		}
	}
	m.mu.Unlock()

	for _, s := range closing {
		s.Close()
	}
	if len(closing) > 0 {
		log.Printf("[EXAM] Discarded %d session(s) of user %s", len(closing), userID)
	}
}

// DiscardAll closes every session. Used at shutdown.
func (m *Manager) DiscardAll() {
	m.mu.Lock()
	closing := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range closing {
		s.Close()
	}
}

// Len reports the number of open sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
