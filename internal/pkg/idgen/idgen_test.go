package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("char")
	assert.Equal(t, "char_1", gen.Generate())
	assert.Equal(t, "char_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	id := idgen.NewUUID("roll").Generate()
	assert.True(t, strings.HasPrefix(id, "roll_"))
	assert.Len(t, id, len("roll_")+36)
}

func TestShortUUIDGenerator(t *testing.T) {
	gen := idgen.NewShortUUID("char", 8)
	first := gen.Generate()
	second := gen.Generate()

	assert.Len(t, first, len("char_")+8)
	assert.NotContains(t, strings.TrimPrefix(first, "char_"), "-")
	assert.NotEqual(t, first, second)
}
