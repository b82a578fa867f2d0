package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"os"
	"sync"
)

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before use.
var hasherPool sync.Pool

// InitHasherPool initializes a sync.Pool of HMAC-SHA256 hashers, each
// configured with the provided key. Pooling avoids allocating a new
// hash.Hash per hashed identifier on the upload path.
func InitHasherPool(key []byte) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, key)
		},
	}
}

// Hash computes an HMAC-SHA256 digest over data using a hasher pulled from
// the pool, and returns the raw digest.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashString computes an HMAC-SHA256 digest over data with the given key and
// returns it hex-encoded. Unlike Hash it does not use the pool; suitable for
// one-off hashing where pool initialization is not desired.
func HashString(data string, key []byte) string {
	hasher := hmac.New(sha256.New, key)
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}

// LoadKeyFile reads the HMAC key from the given path. The key file is
// provided by the deployment (e.g. a mounted secret) and is never stored in
// configuration directly.
func LoadKeyFile(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading hash key file: %w", err)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("hash key file %q is empty", path)
	}
	return key, nil
}
