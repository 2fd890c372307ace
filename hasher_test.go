package oid

import (
	"crypto/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasherMatchesSum(t *testing.T) {
	data := make([]byte, 10_000)
	_, err := rand.Read(data)
	require.NoError(t, err)

	for _, alg := range []Algorithm{AlgSHA1, AlgBLAKE3} {
		t.Run(alg.String(), func(t *testing.T) {
			h, err := NewHasher(alg)
			require.NoError(t, err)
			assert.Equal(t, alg, h.Algorithm())

			for chunk := range slices.Chunk(data, 777) {
				n, err := h.Write(chunk)
				require.NoError(t, err)
				assert.Equal(t, len(chunk), n)
			}

			want, err := Sum(alg, data)
			require.NoError(t, err)
			assert.Equal(t, want, h.Sum())
			assert.Equal(t, want, h.Sum(), "Sum must not alter hasher state")
		})
	}
}

func TestHasherEmptyAndReset(t *testing.T) {
	h, err := NewHasher(AlgSHA1)
	require.NoError(t, err)
	assert.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", h.Sum().String())

	_, _ = h.Write([]byte("hello "))
	_, _ = h.Write([]byte("world"))
	assert.Equal(t, "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed", h.Sum().String())

	h.Reset()
	assert.Equal(t, FromBytes(nil), h.Sum())
}

func TestNewHasherUnknownAlgorithm(t *testing.T) {
	h, err := NewHasher(AlgUnknown)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Nil(t, h)
}
