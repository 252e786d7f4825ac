package practice

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/solfege-app/solfege/pkg/score"
)

// ErrSessionNotFound is returned for unknown or already-ended session IDs.
var ErrSessionNotFound = fmt.Errorf("practice: session not found")

// Manager owns the lifecycle of live practice sessions. Sessions live purely
// in memory and disappear on End; history that should outlive a session is
// the persistence layer's concern, behind this package's callers.
//
// All exported methods are safe for concurrent use.
type Manager struct {
	mu         sync.Mutex
	sessions   map[string]*Session
	classifier *score.Classifier

	// onCount, when set, is invoked with the delta whenever the number of
	// live sessions changes. Used to feed the active-sessions gauge.
	onCount func(delta int)
}

// NewManager creates a Manager. classifier may be nil for default tier
// thresholds. onCount may be nil.
func NewManager(classifier *score.Classifier, onCount func(delta int)) *Manager {
	return &Manager{
		sessions:   make(map[string]*Session),
		classifier: classifier,
		onCount:    onCount,
	}
}

// Start creates a session for a lyric line and returns it.
func (m *Manager) Start(text, phoneticGuide string) *Session {
	s := NewSession(uuid.NewString(), text, phoneticGuide, m.classifier)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	if m.onCount != nil {
		m.onCount(1)
	}
	slog.Debug("practice session started", "session_id", s.ID, "words", len(s.words))
	return s
}

// Get returns the live session with the given ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Words returns a copy of a session's per-word states.
func (m *Manager) Words(id string) ([]WordState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.Words(), nil
}

// RecordAttempt scores spoken against the indexed word of a session.
func (m *Manager) RecordAttempt(id string, index int, spoken string) (Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Attempt{}, ErrSessionNotFound
	}
	return s.recordAttempt(index, spoken)
}

// Skip marks the indexed word of a session as skipped.
func (m *Manager) Skip(id string, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	return s.skip(index)
}

// Summary aggregates a session's word states.
func (m *Manager) Summary(id string) (Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Summary{}, ErrSessionNotFound
	}
	return s.summarize(), nil
}

// End discards a session. Ending an unknown session returns
// [ErrSessionNotFound] so double-ends surface in logs.
func (m *Manager) End(id string) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	if m.onCount != nil {
		m.onCount(-1)
	}
	slog.Debug("practice session ended", "session_id", id)
	return nil
}

// Active returns the number of live sessions.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
