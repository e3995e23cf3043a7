package law

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDv7GeneratorFormat(t *testing.T) {
	gen := UUIDv7Generator{}
	number := gen.Generate()

	parsed, err := uuid.Parse(number)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Len(t, number, 36)
}

func TestUUIDv7GeneratorUnique(t *testing.T) {
	gen := UUIDv7Generator{}
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		n := gen.Generate()
		assert.False(t, seen[n], "number %s generated twice", n)
		seen[n] = true
	}
}
