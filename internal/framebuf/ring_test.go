package framebuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRing_Validation(t *testing.T) {
	_, err := NewRing(0, 1)
	assert.Error(t, err)

	_, err = NewRing(-4, 1)
	assert.Error(t, err)

	_, err = NewRing(16, 0)
	assert.Error(t, err)

	r, err := NewRing(16, 1)
	require.NoError(t, err)
	assert.Equal(t, 16, r.FrameLen())
	assert.Equal(t, 1, r.Depth())
}

func TestRing_UnprimedUntilFirstPush(t *testing.T) {
	r, err := NewRing(4, 2)
	require.NoError(t, err)

	assert.False(t, r.Primed())
	assert.Nil(t, r.Oldest())

	r.Push([]byte{1, 2, 3, 4})
	assert.True(t, r.Primed())
}

func TestRing_DepthOne_HoldsPreviousFrame(t *testing.T) {
	r, err := NewRing(2, 1)
	require.NoError(t, err)

	r.Push([]byte{1, 1})
	assert.Equal(t, []byte{1, 1}, r.Oldest())

	r.Push([]byte{2, 2})
	assert.Equal(t, []byte{2, 2}, r.Oldest())
}

func TestRing_DeeperHistory_ReturnsOldest(t *testing.T) {
	r, err := NewRing(1, 3)
	require.NoError(t, err)

	r.Push([]byte{1})
	assert.Equal(t, []byte{1}, r.Oldest())

	r.Push([]byte{2})
	assert.Equal(t, []byte{1}, r.Oldest(), "oldest retained frame wins while filling")

	r.Push([]byte{3})
	assert.Equal(t, []byte{1}, r.Oldest())

	r.Push([]byte{4})
	assert.Equal(t, []byte{2}, r.Oldest(), "full ring evicts the oldest frame")
}

func TestRing_PushCopiesInput(t *testing.T) {
	r, err := NewRing(2, 1)
	require.NoError(t, err)

	frame := []byte{7, 7}
	r.Push(frame)
	frame[0] = 0

	assert.Equal(t, []byte{7, 7}, r.Oldest(), "ring must not alias caller buffers")
}
