package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorSerialization(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		vector := []float32{0.25, -1.5, 0, 3.14159}
		decoded, err := UnmarshalVector(MarshalVector(vector))
		require.NoError(t, err)
		assert.Equal(t, vector, decoded)
	})

	t.Run("empty vector", func(t *testing.T) {
		decoded, err := UnmarshalVector(MarshalVector(nil))
		require.NoError(t, err)
		assert.Empty(t, decoded)
	})

	t.Run("truncated data fails", func(t *testing.T) {
		data := MarshalVector([]float32{1, 2, 3})
		_, err := UnmarshalVector(data[:len(data)-2])
		assert.ErrorIs(t, err, ErrSerializationFailed)
	})
}
