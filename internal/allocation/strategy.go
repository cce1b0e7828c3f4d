package allocation

import (
	apperrors "allocation-engine-backend/internal/errors"

	"github.com/google/uuid"
)

// Pair links one test case to one release
type Pair struct {
	TestCaseID uuid.UUID `json:"test_case_id"`
	ReleaseID  uuid.UUID `json:"release_id"`
}

// Request is a single call to the allocation service.
//   - one-to-one:  exactly one test case and one release
//   - one-to-many: one test case and every selected release
//   - bulk:        every selected test case and every selected release
type Request struct {
	Mode        Mode        `json:"mode"`
	TestCaseIDs []uuid.UUID `json:"test_case_ids"`
	ReleaseIDs  []uuid.UUID `json:"release_ids"`
}

// Pairs returns the (test case, release) pairs carried by the request,
// test case major, in selection order
func (r Request) Pairs() []Pair {
	pairs := make([]Pair, 0, len(r.TestCaseIDs)*len(r.ReleaseIDs))
	for _, tc := range r.TestCaseIDs {
		for _, rel := range r.ReleaseIDs {
			pairs = append(pairs, Pair{TestCaseID: tc, ReleaseID: rel})
		}
	}
	return pairs
}

// Strategy turns a (test cases x releases) selection into allocation requests.
//
// Implementations are deterministic and stateless: the same input always
// produces the same requests in the same order.
type Strategy interface {
	Mode() Mode
	Expand(testCaseIDs, releaseIDs []uuid.UUID) ([]Request, error)
}

// StrategyFor returns the strategy implementing mode
func StrategyFor(mode Mode) (Strategy, error) {
	switch mode {
	case ModeOneToOne:
		return OneToOneStrategy{}, nil
	case ModeOneToMany:
		return OneToManyStrategy{}, nil
	case ModeBulk:
		return BulkStrategy{}, nil
	}
	return nil, apperrors.NewAllocationError(apperrors.KindInvalidInput, "unknown allocation mode %q", mode)
}

// Expand expands a selection with the strategy for mode
func Expand(mode Mode, testCaseIDs, releaseIDs []uuid.UUID) ([]Request, error) {
	strategy, err := StrategyFor(mode)
	if err != nil {
		return nil, err
	}
	return strategy.Expand(testCaseIDs, releaseIDs)
}

// OneToOneStrategy issues one request per (test case, release) pair. When more
// than one id is given on either side the full Cartesian product is produced.
type OneToOneStrategy struct{}

// Mode returns ModeOneToOne
func (OneToOneStrategy) Mode() Mode { return ModeOneToOne }

// Expand produces |testCaseIDs| x |releaseIDs| single-pair requests
func (OneToOneStrategy) Expand(testCaseIDs, releaseIDs []uuid.UUID) ([]Request, error) {
	tcs, rels, err := normalizeSelection(testCaseIDs, releaseIDs)
	if err != nil {
		return nil, err
	}
	requests := make([]Request, 0, len(tcs)*len(rels))
	for _, tc := range tcs {
		for _, rel := range rels {
			requests = append(requests, Request{
				Mode:        ModeOneToOne,
				TestCaseIDs: []uuid.UUID{tc},
				ReleaseIDs:  []uuid.UUID{rel},
			})
		}
	}
	return requests, nil
}

// OneToManyStrategy allocates a single test case to every selected release in
// one request. Extra test cases are dropped; the first selected one wins.
type OneToManyStrategy struct{}

// Mode returns ModeOneToMany
func (OneToManyStrategy) Mode() Mode { return ModeOneToMany }

// Expand produces exactly one request
func (OneToManyStrategy) Expand(testCaseIDs, releaseIDs []uuid.UUID) ([]Request, error) {
	tcs, rels, err := normalizeSelection(testCaseIDs, releaseIDs)
	if err != nil {
		return nil, err
	}
	return []Request{{
		Mode:        ModeOneToMany,
		TestCaseIDs: tcs[:1],
		ReleaseIDs:  rels,
	}}, nil
}

// BulkStrategy sends the whole selection as a single request
type BulkStrategy struct{}

// Mode returns ModeBulk
func (BulkStrategy) Mode() Mode { return ModeBulk }

// Expand produces exactly one request
func (BulkStrategy) Expand(testCaseIDs, releaseIDs []uuid.UUID) ([]Request, error) {
	tcs, rels, err := normalizeSelection(testCaseIDs, releaseIDs)
	if err != nil {
		return nil, err
	}
	return []Request{{
		Mode:        ModeBulk,
		TestCaseIDs: tcs,
		ReleaseIDs:  rels,
	}}, nil
}

func normalizeSelection(testCaseIDs, releaseIDs []uuid.UUID) ([]uuid.UUID, []uuid.UUID, error) {
	if len(testCaseIDs) == 0 {
		return nil, nil, apperrors.NewAllocationError(apperrors.KindInvalidInput, "at least one test case must be selected")
	}
	if len(releaseIDs) == 0 {
		return nil, nil, apperrors.NewAllocationError(apperrors.KindInvalidInput, "at least one release must be selected")
	}
	for _, id := range testCaseIDs {
		if id == uuid.Nil {
			return nil, nil, apperrors.NewAllocationError(apperrors.KindInvalidInput, "test case id is required")
		}
	}
	for _, id := range releaseIDs {
		if id == uuid.Nil {
			return nil, nil, apperrors.NewAllocationError(apperrors.KindInvalidInput, "release id is required")
		}
	}
	return uniqueIDs(testCaseIDs), uniqueIDs(releaseIDs), nil
}
