package oid

import (
	"crypto/sha1"
	"fmt"
	"hash"

	"github.com/zeebo/blake3"
)

// Hasher computes an ObjectID incrementally from sequential chunks.
//
// Writing the chunks of b in order and then calling Sum yields the same
// identifier as Sum(alg, b). Write never fails. A Hasher is not safe for
// concurrent use.
type Hasher struct {
	alg Algorithm
	h   hash.Hash
}

// NewHasher returns a streaming hasher for alg.
func NewHasher(alg Algorithm) (*Hasher, error) {
	var h hash.Hash
	switch alg {
	case AlgSHA1:
		h = sha1.New()
	case AlgBLAKE3:
		h = blake3.New()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, alg)
	}
	return &Hasher{alg: alg, h: h}, nil
}

// Algorithm reports the algorithm the hasher was created with.
func (h *Hasher) Algorithm() Algorithm { return h.alg }

// Write appends p to the running digest.
func (h *Hasher) Write(p []byte) (int, error) { return h.h.Write(p) }

// Sum finalizes the bytes written so far into an ObjectID. It does not
// change the underlying state, so more data may be written afterwards.
func (h *Hasher) Sum() ObjectID {
	return fromDigest(h.alg, h.h.Sum(nil))
}

// Reset discards everything written and starts over.
func (h *Hasher) Reset() { h.h.Reset() }
