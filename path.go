package oid

import (
	"path"
	"path/filepath"
)

// Shard returns hex(prefix), the directory an object is placed under.
func Shard(id ObjectID) string {
	prefix, _ := id.Segment()
	return encodeHex(prefix)
}

// Path returns the two-level key for id: hex(prefix) "/" hex(suffix).
//
// For a SHA-1 id this is a 4-character shard, a slash, and a 36-character
// leaf, e.g. "2aae/6c35c94fcfb415dbe95f408b9ce91ee846ed". The separator is
// always '/', so the result also works as an object-store key. The layout
// is part of the on-disk format and must not change.
func Path(id ObjectID) string {
	prefix, suffix := id.Segment()
	return path.Join(encodeHex(prefix), encodeHex(suffix))
}

// FilePath joins root with the shard and leaf of id using the host path
// separator. It only builds the name; nothing is touched on disk.
func FilePath(root string, id ObjectID) string {
	prefix, suffix := id.Segment()
	return filepath.Join(root, encodeHex(prefix), encodeHex(suffix))
}
