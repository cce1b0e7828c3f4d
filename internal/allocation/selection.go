package allocation

import (
	apperrors "allocation-engine-backend/internal/errors"

	"github.com/google/uuid"
)

// SelectionSet is a multi-select set of ids that remembers selection order.
// A positive limit caps its size. When the cap is exceeded the set either keeps
// the most recently selected ids (truncate) or refuses the change (strict).
type SelectionSet struct {
	ids    []uuid.UUID
	index  map[uuid.UUID]struct{}
	limit  int
	strict bool
}

// NewSelectionSet creates an empty selection set
func NewSelectionSet(limit int, strict bool) *SelectionSet {
	return &SelectionSet{
		index:  make(map[uuid.UUID]struct{}),
		limit:  limit,
		strict: strict,
	}
}

// Toggle selects id when absent and deselects it when present
func (s *SelectionSet) Toggle(id uuid.UUID) error {
	if id == uuid.Nil {
		return apperrors.NewAllocationError(apperrors.KindInvalidInput, "selection id is required")
	}
	if s.Contains(id) {
		s.remove(id)
		return nil
	}
	if s.limit > 0 && len(s.ids)+1 > s.limit && s.strict {
		return apperrors.NewAllocationError(apperrors.KindInvalidSelection,
			"at most %d item(s) may be selected in this mode", s.limit)
	}
	s.add(id)
	s.truncate()
	return nil
}

// SelectAll adds every id that is not yet selected, in the given order
func (s *SelectionSet) SelectAll(ids []uuid.UUID) error {
	fresh := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return apperrors.NewAllocationError(apperrors.KindInvalidInput, "selection id is required")
		}
		if _, dup := seen[id]; dup || s.Contains(id) {
			continue
		}
		seen[id] = struct{}{}
		fresh = append(fresh, id)
	}
	if s.limit > 0 && s.strict && len(s.ids)+len(fresh) > s.limit {
		return apperrors.NewAllocationError(apperrors.KindInvalidSelection,
			"at most %d item(s) may be selected in this mode", s.limit)
	}
	for _, id := range fresh {
		s.add(id)
	}
	s.truncate()
	return nil
}

// Clear deselects everything
func (s *SelectionSet) Clear() {
	s.ids = nil
	s.index = make(map[uuid.UUID]struct{})
}

// Contains reports whether id is selected
func (s *SelectionSet) Contains(id uuid.UUID) bool {
	_, ok := s.index[id]
	return ok
}

// Size returns the number of selected ids
func (s *SelectionSet) Size() int {
	return len(s.ids)
}

// IDs returns the selected ids in selection order
func (s *SelectionSet) IDs() []uuid.UUID {
	out := make([]uuid.UUID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Limit returns the size cap, 0 when unlimited
func (s *SelectionSet) Limit() int {
	return s.limit
}

func (s *SelectionSet) add(id uuid.UUID) {
	s.ids = append(s.ids, id)
	s.index[id] = struct{}{}
}

func (s *SelectionSet) remove(id uuid.UUID) {
	delete(s.index, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}

// truncate drops the oldest selections until the limit holds
func (s *SelectionSet) truncate() {
	if s.limit <= 0 || len(s.ids) <= s.limit {
		return
	}
	drop := len(s.ids) - s.limit
	for _, id := range s.ids[:drop] {
		delete(s.index, id)
	}
	s.ids = append([]uuid.UUID(nil), s.ids[drop:]...)
}

// Selection pairs the source (test case) and target (release) selection sets
// under one allocation mode. Cardinality rules are enforced on every mutation.
type Selection struct {
	mode    Mode
	strict  bool
	sources *SelectionSet
	targets *SelectionSet
}

// NewSelection creates an empty selection for mode. strict rejects cardinality
// violations instead of truncating to the most recent selection.
func NewSelection(mode Mode, strict bool) (*Selection, error) {
	if !mode.IsValid() {
		return nil, apperrors.NewAllocationError(apperrors.KindInvalidInput, "unknown allocation mode %q", mode)
	}
	s := &Selection{mode: mode, strict: strict}
	s.reset()
	return s, nil
}

// Mode returns the active allocation mode
func (s *Selection) Mode() Mode {
	return s.mode
}

// SetMode switches the allocation mode; both sides are cleared
func (s *Selection) SetMode(mode Mode) error {
	if !mode.IsValid() {
		return apperrors.NewAllocationError(apperrors.KindInvalidInput, "unknown allocation mode %q", mode)
	}
	s.mode = mode
	s.reset()
	return nil
}

// ToggleSource toggles a test case
func (s *Selection) ToggleSource(id uuid.UUID) error {
	return s.sources.Toggle(id)
}

// ToggleTarget toggles a release
func (s *Selection) ToggleTarget(id uuid.UUID) error {
	return s.targets.Toggle(id)
}

// SelectAllSources selects every given test case
func (s *Selection) SelectAllSources(ids []uuid.UUID) error {
	return s.sources.SelectAll(ids)
}

// SelectAllTargets selects every given release
func (s *Selection) SelectAllTargets(ids []uuid.UUID) error {
	return s.targets.SelectAll(ids)
}

// Sources returns the test case selection
func (s *Selection) Sources() *SelectionSet {
	return s.sources
}

// Targets returns the release selection
func (s *Selection) Targets() *SelectionSet {
	return s.targets
}

// Clear deselects both sides
func (s *Selection) Clear() {
	s.sources.Clear()
	s.targets.Clear()
}

// IsEmpty reports whether either side has nothing selected
func (s *Selection) IsEmpty() bool {
	return s.sources.Size() == 0 || s.targets.Size() == 0
}

func (s *Selection) reset() {
	s.sources = NewSelectionSet(s.mode.sourceLimit(), s.strict)
	s.targets = NewSelectionSet(s.mode.targetLimit(), s.strict)
}
