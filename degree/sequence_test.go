package degree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSequence_CopiesInput(t *testing.T) {
	t.Parallel()

	in := []int{2, 3, 1}
	s := NewSequence(in...)
	in[0] = 99

	assert.Equal(t, 2, s.At(0))
	out := s.Values()
	out[1] = 42
	assert.Equal(t, 3, s.At(1), "Values must return a copy")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 6, s.Sum())
	assert.True(t, s.Even())
	assert.Equal(t, 3, s.Max())
	assert.False(t, s.ParityCorrected())
	assert.Equal(t, "[2 3 1]", s.String())
}

func TestSequence_ZeroValue(t *testing.T) {
	t.Parallel()

	var s Sequence
	assert.Zero(t, s.Len())
	assert.Zero(t, s.Sum())
	assert.Zero(t, s.Max())
	assert.True(t, s.Even())
	assert.Empty(t, s.Values())
	assert.Equal(t, "[]", s.String())
}

func TestRegular(t *testing.T) {
	t.Parallel()

	s := Regular(5, 3)
	assert.Equal(t, []int{3, 3, 3, 3, 3}, s.Values())
	assert.Equal(t, 15, s.Sum())
	assert.False(t, s.Even())

	assert.Zero(t, Regular(-1, 3).Len())
}
