package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentsift/screener/core"
)

func TestVectorRoundTrip(t *testing.T) {
	t.Run("typical vector", func(t *testing.T) {
		vector := []float32{0.1, -0.5, 0.999, 0, 42.25}
		data := MarshalVector(vector)
		decoded, err := UnmarshalVector(data)
		require.NoError(t, err)
		assert.Equal(t, vector, decoded)
	})

	t.Run("empty vector", func(t *testing.T) {
		data := MarshalVector([]float32{})
		decoded, err := UnmarshalVector(data)
		require.NoError(t, err)
		assert.Empty(t, decoded)
	})

	t.Run("large vector", func(t *testing.T) {
		vector := make([]float32, 1536)
		for i := range vector {
			vector[i] = float32(i) * 0.001
		}
		decoded, err := UnmarshalVector(MarshalVector(vector))
		require.NoError(t, err)
		assert.Equal(t, vector, decoded)
	})
}

func TestUnmarshalVectorCorrupt(t *testing.T) {
	_, err := UnmarshalVector([]byte{})
	assert.Error(t, err)
}

func TestMarshalID(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id := core.IDFromContent("some text")
		assert.Equal(t, MarshalID(id), MarshalID(id))
	})

	t.Run("distinct ids distinct bytes", func(t *testing.T) {
		assert.NotEqual(t, MarshalID(core.ID(1)), MarshalID(core.ID(2)))
	})

	t.Run("not empty", func(t *testing.T) {
		assert.NotEmpty(t, MarshalID(core.ID(0)))
	})
}
