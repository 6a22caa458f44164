package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	_, err = uuid.Parse(second)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestUUIDGenerator_GeneratesTimeOrderedIDs(t *testing.T) {
	g := NewUUIDGenerator()

	// v7 identifiers embed a millisecond timestamp, so a later id never
	// sorts before an earlier one.
	prev := g.Generate()
	for i := 0; i < 100; i++ {
		next := g.Generate()
		assert.LessOrEqual(t, prev, next)
		prev = next
	}
}
