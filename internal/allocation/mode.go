// Package allocation implements the allocation engine: selection state,
// mode expansion, batch execution against an allocation service, release/QA
// stage tracking and module/developer assignment propagation.
//
// Nothing in this package talks to a database or HTTP directly. Collaborators
// are injected through the Service, Recorder and MetricsCollector interfaces.
package allocation

import (
	"fmt"
	"strings"

	apperrors "allocation-engine-backend/internal/errors"
)

// Mode is an allocation topology
type Mode string

const (
	ModeOneToOne  Mode = "one-to-one"
	ModeOneToMany Mode = "one-to-many"
	ModeBulk      Mode = "bulk"
)

// Modes lists every supported mode in display order
var Modes = []Mode{ModeOneToOne, ModeOneToMany, ModeBulk}

// IsValid checks if the Mode is valid
func (m Mode) IsValid() bool {
	switch m {
	case ModeOneToOne, ModeOneToMany, ModeBulk:
		return true
	}
	return false
}

// ParseMode parses a mode name, accepting underscores as separators
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownMode, s)
	}
	return m, nil
}

// sourceLimit is the maximum number of selected test cases; 0 means unlimited.
func (m Mode) sourceLimit() int {
	switch m {
	case ModeOneToOne, ModeOneToMany:
		return 1
	}
	return 0
}

// targetLimit is the maximum number of selected releases; 0 means unlimited.
func (m Mode) targetLimit() int {
	if m == ModeOneToOne {
		return 1
	}
	return 0
}
