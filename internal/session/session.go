/*
Package session tracks the analysis state of each browser session.
*/
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/shanehull/matchscout/internal/types"
)

// FailureMessage is the only error text shown to users when a remote analysis fails.
const FailureMessage = "Unable to complete analysis. Please check your network connection or API limits."

const DefaultTTL = 30 * time.Minute

var ErrBusy = errors.New("an analysis is already in progress for this session")

type Status string

const (
	StatusIdle       Status = "idle"
	StatusRequesting Status = "requesting"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// State is a point-in-time copy of one session.
type State struct {
	Status Status            `json:"status"`
	Query  *types.MatchQuery `json:"query,omitempty"`
	Report *types.Report     `json:"report,omitempty"`
	Error  string            `json:"error,omitempty"`
}

type entry struct {
	state    State
	lastSeen time.Time
}

// Manager holds session states in memory. Nothing is persisted.
type Manager struct {
	sessions map[string]*entry
	mutex    sync.Mutex
	ttl      time.Duration
	now      func() time.Time
}

func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the current state, Idle for unknown sessions.
func (m *Manager) Get(id string) State {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return State{Status: StatusIdle}
	}
	e.lastSeen = m.now()
	return e.state
}

// Submit moves the session to Requesting. It fails with ErrBusy while a request is in flight.
func (m *Manager) Submit(id string, q types.MatchQuery) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.prune()

	e, ok := m.sessions[id]
	if !ok {
		e = &entry{}
		m.sessions[id] = e
	}
	if e.state.Status == StatusRequesting {
		return ErrBusy
	}

	e.state = State{Status: StatusRequesting, Query: &q}
	e.lastSeen = m.now()
	return nil
}

// Succeed stores the finished report and moves the session to Completed.
func (m *Manager) Succeed(id string, report *types.Report) {
	m.finish(id, State{Status: StatusCompleted, Report: report})
}

// Fail discards any result and moves the session to Failed with the fixed user message.
func (m *Manager) Fail(id string) {
	m.finish(id, State{Status: StatusFailed, Error: FailureMessage})
}

// Reset returns the session to Idle, abandoning nothing in flight.
func (m *Manager) Reset(id string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if e, ok := m.sessions[id]; ok && e.state.Status != StatusRequesting {
		delete(m.sessions, id)
	}
}

func (m *Manager) finish(id string, next State) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	e, ok := m.sessions[id]
	if !ok || e.state.Status != StatusRequesting {
		return
	}
	next.Query = e.state.Query
	e.state = next
	e.lastSeen = m.now()
}

func (m *Manager) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.sessions)
}

// prune drops idle sessions older than the TTL. Caller holds the mutex.
func (m *Manager) prune() {
	cutoff := m.now().Add(-m.ttl)
	for id, e := range m.sessions {
		if e.state.Status != StatusRequesting && e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}
