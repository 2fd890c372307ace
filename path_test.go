package oid

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The layout is an on-disk format; these fixtures must never change.
func TestPathLayout(t *testing.T) {
	tests := []struct {
		name  string
		id    ObjectID
		shard string
		path  string
	}{
		{"hello world", FromString("hello world"), "2aae", "2aae/6c35c94fcfb415dbe95f408b9ce91ee846ed"},
		{"empty", FromBytes(nil), "da39", "da39/a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"blake3 empty", SumBLAKE3(nil), "af13", "af13/49b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.shard, Shard(tt.id))
			assert.Equal(t, tt.path, Path(tt.id))
			assert.Equal(t, tt.id.String(), strings.Replace(Path(tt.id), "/", "", 1))
		})
	}
}

func TestFilePath(t *testing.T) {
	id := FromString("hello world")
	want := filepath.Join("objects", "2aae", "6c35c94fcfb415dbe95f408b9ce91ee846ed")
	assert.Equal(t, want, FilePath("objects", id))
	assert.Equal(t, filepath.FromSlash(Path(id)), FilePath("", id))
}
