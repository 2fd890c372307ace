package oid

import (
	"crypto/sha1"
	"fmt"
	"io"
)

// Algorithm identifies the hash function that produced an ObjectID.
//
// The zero value, AlgUnknown, never names a real digest.
type Algorithm byte

const (
	// AlgUnknown represents an invalid or unspecified algorithm.
	AlgUnknown Algorithm = iota

	// AlgSHA1 is SHA-1, producing 20-byte (160-bit) digests.
	AlgSHA1

	// AlgBLAKE3 is BLAKE3 in its default 32-byte (256-bit) output mode.
	AlgBLAKE3
)

var algNames = map[Algorithm]string{
	AlgSHA1:   "sha1",
	AlgBLAKE3: "blake3",
}

var algSizes = map[Algorithm]int{
	AlgSHA1:   SHA1Size,
	AlgBLAKE3: BLAKE3Size,
}

func (a Algorithm) String() string { return algNames[a] }

// Size returns the digest length in bytes, or 0 for an unsupported algorithm.
func (a Algorithm) Size() int { return algSizes[a] }

const (
	// SHA1Size is the length of a SHA-1 digest in bytes.
	SHA1Size = sha1.Size

	// maxDigestSize is the largest digest any variant carries.
	maxDigestSize = BLAKE3Size

	// prefixSize is the number of digest bytes used as the shard directory.
	prefixSize = 2
)

// ObjectID is a content-addressable identifier for a tensor object.
//
// It is a tagged value: alg selects the variant and fixes how many leading
// bytes of sum are significant. The remaining bytes are always zero, so
// two ObjectIDs compare equal with == exactly when both the variant and the
// digest match. ObjectID is a plain value with unexported fields; it cannot
// be modified after construction, works as a map key, and may be shared
// between goroutines without locking.
//
// The zero ObjectID has algorithm AlgUnknown and names no object.
type ObjectID struct {
	alg Algorithm
	sum [maxDigestSize]byte
}

// FromBytes hashes buf with SHA-1 and returns its identifier.
//
// The input is treated as an opaque byte sequence; the empty buffer yields
// the well-known empty SHA-1 digest.
func FromBytes(buf []byte) ObjectID {
	d := sha1.Sum(buf)
	return fromDigest(AlgSHA1, d[:])
}

// FromString hashes the UTF-8 bytes of text with SHA-1.
func FromString(text string) ObjectID {
	return FromBytes([]byte(text))
}

// FromRawDigest wraps an already computed SHA-1 digest without re-hashing.
func FromRawDigest(digest [SHA1Size]byte) ObjectID {
	return fromDigest(AlgSHA1, digest[:])
}

// Algorithm reports which hash function produced the digest.
func (id ObjectID) Algorithm() Algorithm { return id.alg }

// IsZero reports whether id is the zero ObjectID.
func (id ObjectID) IsZero() bool { return id.alg == AlgUnknown }

// Bytes returns a copy of the raw digest, 20 bytes for SHA-1 and 32 for
// BLAKE3. The zero ObjectID yields an empty slice.
func (id ObjectID) Bytes() []byte {
	return append([]byte(nil), id.sum[:id.alg.Size()]...)
}

// String returns the digest as lowercase hex, two characters per byte,
// with no prefix or separators. This is the canonical textual form.
func (id ObjectID) String() string { return encodeHex(id.sum[:id.alg.Size()]) }

// Segment splits the raw digest into the shard prefix and the remaining
// suffix. Every current variant uses a two-byte prefix. See Path for the
// on-disk convention.
//
// Both slices are fresh copies; the prefix has capacity 2, so appending to
// it never overwrites the suffix.
func (id ObjectID) Segment() (prefix, suffix []byte) {
	b := id.Bytes()
	if len(b) < prefixSize {
		return nil, nil
	}
	return b[:prefixSize:prefixSize], b[prefixSize:]
}

// WriteTo writes String() to w and implements io.WriterTo. Errors from w
// are returned unchanged.
func (id ObjectID) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, id.String())
	return int64(n), err
}

// MarshalText implements encoding.TextMarshaler.
func (id ObjectID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. It accepts exactly the
// forms Parse accepts.
func (id *ObjectID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Sum hashes buf with alg.
//
// ErrUnknownAlgorithm is returned when alg is not a supported variant.
func Sum(alg Algorithm, buf []byte) (ObjectID, error) {
	switch alg {
	case AlgSHA1:
		return FromBytes(buf), nil
	case AlgBLAKE3:
		return SumBLAKE3(buf), nil
	default:
		return ObjectID{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, alg)
	}
}

// New wraps raw, a digest produced by alg, without re-hashing.
//
// It is the entry point for digests read back from binary headers.
// ErrInvalidLength is returned when len(raw) differs from alg.Size().
func New(alg Algorithm, raw []byte) (ObjectID, error) {
	size := alg.Size()
	if size == 0 {
		return ObjectID{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, alg)
	}
	if len(raw) != size {
		return ObjectID{}, fmt.Errorf("%w: %s wants %d bytes, got %d", ErrInvalidLength, alg, size, len(raw))
	}
	return fromDigest(alg, raw), nil
}

// Parse converts the canonical hex form back into an ObjectID.
//
// The variant is chosen by length: 40 characters is SHA-1, 64 is BLAKE3.
// Upper-case hex is rejected so that Parse and String are exact inverses.
func Parse(s string) (ObjectID, error) {
	var alg Algorithm
	switch len(s) {
	case 2 * SHA1Size:
		alg = AlgSHA1
	case 2 * BLAKE3Size:
		alg = AlgBLAKE3
	default:
		return ObjectID{}, fmt.Errorf("%w: %d hex characters", ErrInvalidLength, len(s))
	}

	id := ObjectID{alg: alg}
	if err := decodeHexInto(id.sum[:alg.Size()], s); err != nil {
		return ObjectID{}, err
	}
	return id, nil
}

// fromDigest builds the id for alg from the output of a hash primitive.
// A length mismatch means the primitive broke its contract; that is a defect,
// not a value-level error, so it panics instead of truncating or padding.
func fromDigest(alg Algorithm, digest []byte) ObjectID {
	size := alg.Size()
	if size == 0 {
		panic(fmt.Sprintf("oid: no variant for algorithm %d", alg))
	}
	if len(digest) != size {
		panic(fmt.Sprintf("oid: %s digest is %d bytes, want %d", alg, len(digest), size))
	}
	id := ObjectID{alg: alg}
	copy(id.sum[:], digest)
	return id
}
