package allocation

import (
	"testing"

	apperrors "allocation-engine-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(n int) []uuid.UUID {
	out := make([]uuid.UUID, n)
	for i := range out {
		out[i] = uuid.New()
	}
	return out
}

func TestSelectionSet_Toggle(t *testing.T) {
	s := NewSelectionSet(0, false)
	a, b := uuid.New(), uuid.New()

	require.NoError(t, s.Toggle(a))
	require.NoError(t, s.Toggle(b))
	assert.True(t, s.Contains(a))
	assert.Equal(t, 2, s.Size())

	require.NoError(t, s.Toggle(a))
	assert.False(t, s.Contains(a))
	assert.Equal(t, []uuid.UUID{b}, s.IDs())

	err := s.Toggle(uuid.Nil)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
	assert.Equal(t, 1, s.Size())
}

func TestSelectionSet_TruncatesToMostRecent(t *testing.T) {
	s := NewSelectionSet(1, false)
	a, b := uuid.New(), uuid.New()

	require.NoError(t, s.Toggle(a))
	require.NoError(t, s.Toggle(b))

	assert.Equal(t, []uuid.UUID{b}, s.IDs())
	assert.False(t, s.Contains(a))
}

func TestSelectionSet_StrictRejects(t *testing.T) {
	s := NewSelectionSet(1, true)
	a, b := uuid.New(), uuid.New()

	require.NoError(t, s.Toggle(a))
	err := s.Toggle(b)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidSelection, apperrors.KindOf(err))
	assert.Equal(t, []uuid.UUID{a}, s.IDs())

	// deselecting is always allowed
	require.NoError(t, s.Toggle(a))
	assert.Zero(t, s.Size())
}

func TestSelectionSet_SelectAll(t *testing.T) {
	t.Run("unlimited keeps order and skips duplicates", func(t *testing.T) {
		s := NewSelectionSet(0, false)
		all := ids(3)
		require.NoError(t, s.Toggle(all[1]))

		require.NoError(t, s.SelectAll([]uuid.UUID{all[0], all[1], all[2], all[0]}))
		assert.Equal(t, []uuid.UUID{all[1], all[0], all[2]}, s.IDs())
	})

	t.Run("limited truncates to the last ids", func(t *testing.T) {
		s := NewSelectionSet(1, false)
		all := ids(3)

		require.NoError(t, s.SelectAll(all))
		assert.Equal(t, []uuid.UUID{all[2]}, s.IDs())
	})

	t.Run("strict rejects without changes", func(t *testing.T) {
		s := NewSelectionSet(1, true)
		require.Error(t, s.SelectAll(ids(2)))
		assert.Zero(t, s.Size())
	})

	t.Run("nil id rejected", func(t *testing.T) {
		s := NewSelectionSet(0, false)
		err := s.SelectAll([]uuid.UUID{uuid.New(), uuid.Nil})
		assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
		assert.Zero(t, s.Size())
	})
}

func TestSelectionSet_ClearAndIDsCopy(t *testing.T) {
	s := NewSelectionSet(0, false)
	require.NoError(t, s.SelectAll(ids(2)))

	got := s.IDs()
	got[0] = uuid.Nil
	assert.NotEqual(t, uuid.Nil, s.IDs()[0])

	s.Clear()
	assert.Zero(t, s.Size())
	assert.Empty(t, s.IDs())
}

func TestSelection_ModeCardinality(t *testing.T) {
	tests := []struct {
		mode        Mode
		wantSources int
		wantTargets int
	}{
		{mode: ModeOneToOne, wantSources: 1, wantTargets: 1},
		{mode: ModeOneToMany, wantSources: 1, wantTargets: 3},
		{mode: ModeBulk, wantSources: 3, wantTargets: 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			sel, err := NewSelection(tt.mode, false)
			require.NoError(t, err)

			sources, targets := ids(3), ids(3)
			for i := range sources {
				require.NoError(t, sel.ToggleSource(sources[i]))
				require.NoError(t, sel.ToggleTarget(targets[i]))
			}

			assert.Equal(t, tt.wantSources, sel.Sources().Size())
			assert.Equal(t, tt.wantTargets, sel.Targets().Size())
			// the most recent selection always survives
			assert.True(t, sel.Sources().Contains(sources[2]))
			assert.True(t, sel.Targets().Contains(targets[2]))
		})
	}
}

func TestSelection_SetModeClears(t *testing.T) {
	sel, err := NewSelection(ModeBulk, false)
	require.NoError(t, err)
	require.NoError(t, sel.SelectAllSources(ids(2)))
	require.NoError(t, sel.SelectAllTargets(ids(2)))
	assert.False(t, sel.IsEmpty())

	require.NoError(t, sel.SetMode(ModeOneToOne))
	assert.Equal(t, ModeOneToOne, sel.Mode())
	assert.True(t, sel.IsEmpty())
	assert.Equal(t, 1, sel.Sources().Limit())

	err = sel.SetMode("many-to-many")
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
	assert.Equal(t, ModeOneToOne, sel.Mode())
}

func TestNewSelection_UnknownMode(t *testing.T) {
	_, err := NewSelection("sideways", false)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"one-to-one":  ModeOneToOne,
		"ONE_TO_MANY": ModeOneToMany,
		" bulk ":      ModeBulk,
	} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseMode("many")
	assert.ErrorIs(t, err, apperrors.ErrUnknownMode)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
}
