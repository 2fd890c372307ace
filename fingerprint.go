package oid

import farm "github.com/dgryski/go-farm"

// Fingerprint returns a 64-bit FarmHash fingerprint of id's variant and
// digest bytes.
//
// It is meant for in-memory shortcuts such as bucket selection and bloom
// filters. The value must not be persisted or used as a portable
// identifier; use String or Bytes for that.
func Fingerprint(id ObjectID) uint64 {
	b := id.Bytes()
	buf := make([]byte, 0, len(b)+1)
	buf = append(buf, byte(id.Algorithm()))
	buf = append(buf, b...)
	return farm.Fingerprint64(buf)
}
