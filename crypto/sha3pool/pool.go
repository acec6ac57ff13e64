// Package sha3pool is a freelist for SHA3-256 hash objects.
//
// Tensority uses the original Keccak padding (domain byte 0x01), not the
// FIPS-202 variant, so every hasher handed out here comes from
// sha3.NewLegacyKeccak256.
package sha3pool

import (
	"hash"
	"sync"

	"golang.org/x/crypto/sha3"
)

var pool = &sync.Pool{New: func() interface{} { return sha3.NewLegacyKeccak256() }}

// Get256 returns an initialized SHA3-256 hash ready to use.
// The caller should call Put256 when finished with the returned object.
func Get256() hash.Hash {
	return pool.Get().(hash.Hash)
}

// Put256 resets h and puts it in the freelist.
func Put256(h hash.Hash) {
	h.Reset()
	pool.Put(h)
}

// Sum256 hashes data into hash using a hasher from the pool.
func Sum256(hash []byte, data []byte) {
	h := Get256()
	h.Write(data)
	h.Sum(hash[:0])
	Put256(h)
}
