package treesync

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"hash"
)

// HashType represents the type of hash algorithm
type HashType string

const (
	HashNone   HashType = ""
	HashMD5    HashType = "md5"
	HashSHA1   HashType = "sha1"
	HashSHA256 HashType = "sha256"
)

func (h HashType) new() (hash.Hash, error) {
	switch h {
	case HashMD5:
		return md5.New(), nil
	case HashSHA1:
		return sha1.New(), nil
	case HashSHA256:
		return sha256.New(), nil
	}

	return nil, ErrUnknownHashType.SetData(struct {
		HashType string `json:"hash_type"`
	}{
		HashType: string(h),
	})
}
