package rpgtoolkit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

func TestCharacterEntity(t *testing.T) {
	character := &dnd5e.Character{
		ID:   "char-123",
		Name: "Test Character",
	}

	entity := NewCharacterEntity(character)

	assert.Equal(t, "char-123", entity.GetID())
	assert.Equal(t, "character", entity.GetType())
	assert.Equal(t, character, entity.Character)
	assert.Equal(t, "Test Character", entity.Name)
}

func TestEntity(t *testing.T) {
	draft := NewEntity(EntityTypeDraft, "draft_1")
	assert.Equal(t, "draft_1", draft.GetID())
	assert.Equal(t, "draft", draft.GetType())

	assert.Equal(t, EntityTypeOther, NewEntity("", "cli").GetType())
}

// stubRoller replays faces and records the sizes it was asked for
type stubRoller struct {
	faces []int
	sizes []int
	err   error
}

func (s *stubRoller) Roll(size int) (int, error) {
	s.sizes = append(s.sizes, size)
	if s.err != nil {
		return 0, s.err
	}
	face := s.faces[0]
	s.faces = s.faces[1:]
	return face, nil
}

func (s *stubRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		face, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, face)
	}
	return out, nil
}

func TestRollerSourceBetween(t *testing.T) {
	roller := &stubRoller{faces: []int{1, 20, 4}}
	src := NewSource(roller)

	lo, err := src.Between(1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, lo)

	hi, err := src.Between(1, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, hi)

	shifted, err := src.Between(10, 15)
	require.NoError(t, err)
	assert.Equal(t, 13, shifted)

	assert.Equal(t, []int{20, 20, 6}, roller.sizes)
}

func TestRollerSourceSingleValue(t *testing.T) {
	roller := &stubRoller{}
	got, err := NewSource(roller).Between(7, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Empty(t, roller.sizes)
}

func TestRollerSourceErrors(t *testing.T) {
	_, err := NewSource(&stubRoller{}).Between(6, 1)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = NewSource(&stubRoller{err: fmt.Errorf("entropy exhausted")}).Between(1, 6)
	assert.True(t, errors.IsInternal(err))
}

func TestDefaultRollerStaysInRange(t *testing.T) {
	src := NewSource(nil)
	for i := 0; i < 200; i++ {
		got, err := src.Between(2, 7)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, 2)
		assert.LessOrEqual(t, got, 7)
	}
}

func TestRollerSourceDrivesEvaluate(t *testing.T) {
	src := NewSource(&stubRoller{faces: []int{3, 5}})
	result, err := dice.Roll("2d6+1", src)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5}, result.Rolls)
	assert.Equal(t, 9, result.Total)
}
