package oid

import "github.com/zeebo/blake3"

// BLAKE3Size is the length of a default-mode BLAKE3 digest in bytes.
const BLAKE3Size = 32

// SumBLAKE3 hashes buf with unkeyed BLAKE3.
func SumBLAKE3(buf []byte) ObjectID {
	d := blake3.Sum256(buf)
	return fromDigest(AlgBLAKE3, d[:])
}
