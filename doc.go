// Package oid provides content-addressable object identifiers for tensor
// objects.
//
// An ObjectID is a fixed-size cryptographic digest of an object's bytes.
// Identical content always yields the same identifier, so an ObjectID can
// name and locate a tensor in a storage or transport layer the way Git
// names blobs. SHA-1 is the default variant, and BLAKE3 is available
// through Sum and SumBLAKE3.
//
// The canonical text form is lowercase hex with no prefix (40 characters
// for SHA-1):
//
//	id := oid.FromBytes(tensorBytes)
//	fmt.Println(id) // 2aae6c35c94fcfb415dbe95f408b9ce91ee846ed
//
// Storage layout:
//
// Sharded stores place an object under a directory named after the hex of
// the first two digest bytes, with the hex of the remaining bytes as the
// file name:
//
//	2aae/6c35c94fcfb415dbe95f408b9ce91ee846ed
//
// Path, Shard and FilePath build these names. The convention defines the
// on-disk layout and is stable.
//
// ObjectIDs are immutable values and may be shared freely between
// goroutines. Store is an in-memory, size-bounded object store keyed by
// ObjectID and is safe for concurrent use.
package oid
