package allocation

import (
	"sync"
	"time"

	apperrors "allocation-engine-backend/internal/errors"

	"github.com/google/uuid"
)

// DefaultSessionTTL is how long an idle selection session is kept
const DefaultSessionTTL = 30 * time.Minute

// Session is the selection state of one user working through the allocation
// screens: the test case/release selection, the module hierarchy checkboxes
// and the release currently targeted by QA allocation.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	selection *Selection
	hierarchy *HierarchySelection
	projectID uuid.UUID
	target    uuid.UUID
	lastUsed  time.Time
}

// SessionView is a read-only snapshot of a session
type SessionView struct {
	ID                 uuid.UUID   `json:"id"`
	Mode               Mode        `json:"mode"`
	TestCaseIDs        []uuid.UUID `json:"test_case_ids"`
	ReleaseIDs         []uuid.UUID `json:"release_ids"`
	TargetReleaseID    *uuid.UUID  `json:"target_release_id,omitempty"`
	ProjectID          *uuid.UUID  `json:"project_id,omitempty"`
	SelectedModules    []uuid.UUID `json:"selected_modules"`
	SelectedSubmodules []uuid.UUID `json:"selected_submodules"`
	CreatedAt          time.Time   `json:"created_at"`
	LastUsedAt         time.Time   `json:"last_used_at"`
}

// Selection returns the test case/release selection
func (s *Session) Selection() *Selection {
	return s.selection
}

// Hierarchy returns the module selection, nil until a project is loaded
func (s *Session) Hierarchy() *HierarchySelection {
	return s.hierarchy
}

// ProjectID returns the project whose modules are loaded
func (s *Session) ProjectID() uuid.UUID {
	return s.projectID
}

// LoadHierarchy replaces the module hierarchy with the modules of projectID.
// Any previous module selection is dropped.
func (s *Session) LoadHierarchy(projectID uuid.UUID, modules []ModuleNode) {
	s.projectID = projectID
	s.hierarchy = NewHierarchySelection(modules)
}

// Target returns the release targeted by QA allocation
func (s *Session) Target() uuid.UUID {
	return s.target
}

// SetTarget switches the targeted release and clears the selection
func (s *Session) SetTarget(releaseID uuid.UUID) error {
	if releaseID == uuid.Nil {
		return apperrors.NewAllocationError(apperrors.KindInvalidInput, "release id is required")
	}
	if releaseID != s.target {
		s.target = releaseID
		s.selection.Clear()
	}
	return nil
}

// SetMode switches the allocation mode and clears the selection
func (s *Session) SetMode(mode Mode) error {
	return s.selection.SetMode(mode)
}

// Reset clears every selection after a successful submit. The mode and the
// targeted release are kept.
func (s *Session) Reset() {
	s.selection.Clear()
	if s.hierarchy != nil {
		s.hierarchy.Clear()
	}
}

// View snapshots the session
func (s *Session) View() SessionView {
	v := SessionView{
		ID:                 s.ID,
		Mode:               s.selection.Mode(),
		TestCaseIDs:        s.selection.Sources().IDs(),
		ReleaseIDs:         s.selection.Targets().IDs(),
		SelectedModules:    []uuid.UUID{},
		SelectedSubmodules: []uuid.UUID{},
		CreatedAt:          s.CreatedAt,
		LastUsedAt:         s.lastUsed,
	}
	if s.target != uuid.Nil {
		target := s.target
		v.TargetReleaseID = &target
	}
	if s.projectID != uuid.Nil {
		project := s.projectID
		v.ProjectID = &project
	}
	if s.hierarchy != nil {
		v.SelectedModules = s.hierarchy.FullySelectedModules()
		for _, id := range s.hierarchy.order {
			v.SelectedSubmodules = append(v.SelectedSubmodules, s.hierarchy.SelectedSubmodules(id)...)
		}
	}
	return v
}

// SessionStore keeps selection sessions in memory and evicts idle ones lazily
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionEntry
	ttl      time.Duration
	strict   bool
	now      func() time.Time
}

type sessionEntry struct {
	mu      sync.Mutex
	session *Session

	// lastUsed drives eviction and is guarded by SessionStore.mu
	lastUsed time.Time
}

// SessionStoreOption configures a SessionStore
type SessionStoreOption func(*SessionStore)

// WithSessionTTL sets the idle timeout
func WithSessionTTL(ttl time.Duration) SessionStoreOption {
	return func(s *SessionStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithStrictSelection makes new sessions reject cardinality violations
func WithStrictSelection(strict bool) SessionStoreOption {
	return func(s *SessionStore) { s.strict = strict }
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) SessionStoreOption {
	return func(s *SessionStore) { s.now = now }
}

// NewSessionStore creates an empty store
func NewSessionStore(opts ...SessionStoreOption) *SessionStore {
	s := &SessionStore{
		sessions: make(map[uuid.UUID]*sessionEntry),
		ttl:      DefaultSessionTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a new session in mode
func (s *SessionStore) Create(mode Mode) (SessionView, error) {
	selection, err := NewSelection(mode, s.strict)
	if err != nil {
		return SessionView{}, err
	}
	now := s.now()
	session := &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		selection: selection,
		lastUsed:  now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked(now)
	s.sessions[session.ID] = &sessionEntry{session: session, lastUsed: now}
	return session.View(), nil
}

// Update runs fn with exclusive access to the session and returns its view
// afterwards. The session's idle timer is reset even when fn fails.
func (s *SessionStore) Update(id uuid.UUID, fn func(*Session) error) (SessionView, error) {
	entry, err := s.entry(id)
	if err != nil {
		return SessionView{}, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.session.lastUsed = s.now()
	if err := fn(entry.session); err != nil {
		return entry.session.View(), err
	}
	return entry.session.View(), nil
}

// Get returns the session's view
func (s *SessionStore) Get(id uuid.UUID) (SessionView, error) {
	return s.Update(id, func(*Session) error { return nil })
}

// Delete drops a session
func (s *SessionStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return apperrors.ErrSelectionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len returns the number of live sessions
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked(s.now())
	return len(s.sessions)
}

// entry looks the session up and refreshes its idle timer in the same
// critical section, so an eviction between lookup and use cannot drop it
func (s *SessionStore) entry(id uuid.UUID) (*sessionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.evictLocked(now)
	entry, ok := s.sessions[id]
	if !ok {
		return nil, apperrors.ErrSelectionNotFound
	}
	entry.lastUsed = now
	return entry, nil
}

func (s *SessionStore) evictLocked(now time.Time) {
	for id, entry := range s.sessions {
		// a session held by Update is in use
		if !entry.mu.TryLock() {
			continue
		}
		entry.mu.Unlock()
		if now.Sub(entry.lastUsed) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
