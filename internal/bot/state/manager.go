package state

import "sync"

// Step is the wizard position of a user.
type Step string

const (
	StepNone               Step = "none"
	StepGender             Step = "gender"
	StepGoal               Step = "goal"
	StepActivity           Step = "activity"
	StepAwaitingDetails    Step = "awaiting_details"
	StepAwaitingCheckIn    Step = "awaiting_checkin"
	StepAwaitingAdminInput Step = "awaiting_admin_input"
)

// Collected attribute keys.
const (
	KeyGender   = "gender"
	KeyGoal     = "goal"
	KeyActivity = "activity"
	KeyAge      = "age"
	KeyHeight   = "height"
	KeyWeight   = "weight"
)

// Session is the transient wizard state of one user. Collected only ever
// gains keys while the wizard moves forward; back-navigation never prunes
// it.
type Session struct {
	Step      Step              `json:"step"`
	Collected map[string]string `json:"collected"`
}

// NewSession creates a session positioned at the given step.
func NewSession(step Step) *Session {
	return &Session{Step: step, Collected: make(map[string]string)}
}

// Manager stores per-user sessions and serializes event handling per user.
type Manager interface {
	// Get returns the user's session; a user without one is at StepNone.
	Get(userID int64) *Session
	Set(userID int64, session *Session)
	Clear(userID int64)
	// Lock acquires the user's mutex and returns the unlock function. Two
	// concurrent events for the same user must not interleave.
	Lock(userID int64) func()
}

// MemoryManager keeps sessions in a process-local map. A restart loses
// in-progress wizards, which is acceptable: users restart the wizard.
type MemoryManager struct {
	sessions map[int64]*Session
	mu       sync.RWMutex
	locks    keyedLocks
}

// NewMemoryManager creates a new in-memory session manager.
func NewMemoryManager() *MemoryManager {
	return &MemoryManager{sessions: make(map[int64]*Session)}
}

func (m *MemoryManager) Get(userID int64) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if session, ok := m.sessions[userID]; ok {
		return session
	}
	return NewSession(StepNone)
}

func (m *MemoryManager) Set(userID int64, session *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = session
}

func (m *MemoryManager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

func (m *MemoryManager) Lock(userID int64) func() {
	return m.locks.lock(userID)
}

// keyedLocks hands out one mutex per user identifier.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func (k *keyedLocks) lock(userID int64) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[int64]*sync.Mutex)
	}
	l, ok := k.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		k.locks[userID] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
