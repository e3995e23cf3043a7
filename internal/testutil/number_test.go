package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeqNumberGeneratorSequence(t *testing.T) {
	gen := NewSeqNumberGenerator()

	assert.Equal(t, "CIT-0001", gen.Generate())
	assert.Equal(t, "CIT-0002", gen.Generate())
	assert.Equal(t, "CIT-0003", gen.Generate())
}

func TestSeqNumberGeneratorReset(t *testing.T) {
	gen := NewSeqNumberGenerator()
	gen.Generate()
	gen.Generate()

	gen.Reset()
	assert.Equal(t, "CIT-0001", gen.Generate())
}
