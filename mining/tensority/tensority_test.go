package tensority

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytom/tensority/common/hexutil"
	"github.com/bytom/tensority/protocol/bc"
)

func hashFromByte(b byte) *bc.Hash {
	var b32 [32]byte
	b32[31] = b
	h := bc.NewHash(b32)
	return &h
}

// Tests the wholesale flush: capacity+1 distinct seeds leave one entry.
func TestSeedCacheEvictionBound(t *testing.T) {
	if testing.Short() {
		t.Skip("matrix list derivation is slow in short mode")
	}

	s := newSeedCache(3)
	for i := 0; i < 3; i++ {
		s.get(hashFromByte(byte(i)))
	}
	require.Equal(t, 3, s.size())

	s.get(hashFromByte(3))
	require.Equal(t, 1, s.size())

	// The survivor is the seed that triggered the flush.
	matList := s.get(hashFromByte(3))
	require.Equal(t, 1, s.size())
	require.True(t, matList == s.get(hashFromByte(3)))
}

// Tests that a cache hit returns the resident matrix list.
func TestSeedCacheHit(t *testing.T) {
	if testing.Short() {
		t.Skip("matrix list derivation is slow in short mode")
	}

	s := newSeedCache(2)
	first := s.get(hashFromByte(7))
	second := s.get(hashFromByte(7))
	require.True(t, first == second)
	require.Equal(t, 1, s.size())
}

// Tests determinism across cache states and the 1-2-1 scenario.
func TestHashDeterminism(t *testing.T) {
	if testing.Short() {
		t.Skip("full evaluations are slow in short mode")
	}

	var zero [32]byte
	header := bc.NewHash(zero)
	seed := bc.NewHash(zero)

	headerOne := *hashFromByte(1)

	wantD1 := hexutil.MustDecode("0xc5d4a19ce842fee409696d14e483f9efe4a7ecc036d1cfeba0199f13f14dc90f")

	cache := NewCache()
	d1 := cache.Hash(&header, &seed)
	require.Equal(t, wantD1, d1.Bytes())

	d2 := cache.Hash(&headerOne, &seed)
	require.NotEqual(t, d1.Bytes(), d2.Bytes())

	// Back to the first header on the warm cache.
	d1Again := cache.Hash(&header, &seed)
	require.Equal(t, d1.Bytes(), d1Again.Bytes())

	// A fresh cache agrees with the warm one.
	fresh := NewCacheCapacity(1)
	require.Equal(t, d1.Bytes(), fresh.Hash(&header, &seed).Bytes())
}

// Tests the digest LRU fast path in front of the evaluator.
func TestAddCache(t *testing.T) {
	cache := NewCache()
	header := hashFromByte(1)
	seed := hashFromByte(2)
	fake := hashFromByte(3)

	cache.AddCache(header, seed, fake)
	require.True(t, cache.Hash(header, seed) == fake)

	other := hashFromByte(4)
	cache.AddCache(header, other, fake)
	cache.RemoveCache(header, other)
	cache.AddCache(header, other, fake)
	require.True(t, cache.Hash(header, other) == fake)
}
