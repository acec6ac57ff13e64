package go_algorithm

import (
	"github.com/bytom/tensority/crypto/scrypt"
	"github.com/bytom/tensority/crypto/sha3pool"
)

const (
	matSize     = 1 << 8 // Size of matrix
	matNum      = 1 << 8 // Number of matrix
	epochLength = 1 << 7 // Rounds of scrypt per matrix list
	padWords    = 32 * 1024
)

// extendBytes extends the 32-byte seed by round chained SHA3-256 digests.
func extendBytes(seed []byte, round int) []byte {
	extSeed := make([]byte, len(seed)*(round+1))
	copy(extSeed, seed)

	for i := 0; i < round; i++ {
		var h [32]byte
		sha3pool.Sum256(h[:], extSeed[i*32:(i+1)*32])
		copy(extSeed[(i+1)*32:(i+2)*32], h[:])
	}

	return extSeed
}

// calcSeedCache derives the scrypt pads for a seed. The extended seed carries
// the 1024-bit mixing state across all 128 rounds; the returned slice is the
// concatenation of the 32K-word pad of every round.
func calcSeedCache(seed []byte) (cache []uint32) {
	extSeed := extendBytes(seed, 3)
	v := make([]uint32, padWords)

	for i := 0; i < epochLength; i++ {
		scrypt.Smix(extSeed, v)
		cache = append(cache, v...)
	}

	return cache
}
