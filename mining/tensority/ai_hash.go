package tensority

import (
	"sync"

	"github.com/golang/groupcache/lru"
	"golang.org/x/sys/cpu"

	"github.com/bytom/tensority/crypto/sha3pool"
	"github.com/bytom/tensority/mining/tensority/cgo_algorithm"
	"github.com/bytom/tensority/mining/tensority/go_algorithm"
	"github.com/bytom/tensority/protocol/bc"
)

const (
	// maxSeedCached bounds the number of matrix lists held at once. Every
	// list is 32 MiB, so the worst case resident set is about 1.3 GiB;
	// callers on tighter budgets should use NewCacheCapacity.
	maxSeedCached = 42
	// maxAIHashCached is the size of the digest LRU sitting in front of the
	// matrix evaluation.
	maxAIHashCached = 64
)

var (
	// AIHash is created for let different package share same cache
	AIHash = NewCache()
	// UseSIMD routes evaluation through the cgo kernel on hosts with AVX2.
	// Binaries built without the simd tag fall back to the Go kernel.
	UseSIMD = false
)

// Hash computes the tensority digest of a block header hash against an epoch
// seed through the shared cache.
func Hash(hash, seed *bc.Hash) *bc.Hash {
	return AIHash.Hash(hash, seed)
}

func calcCacheKey(hash, seed *bc.Hash) *bc.Hash {
	var b32 [32]byte
	sha3pool.Sum256(b32[:], append(hash.Bytes(), seed.Bytes()...))
	key := bc.NewHash(b32)
	return &key
}

// Cache is create for cache the tensority result
type Cache struct {
	mu       sync.Mutex
	seeds    *seedCache
	lruCache *lru.Cache
}

// NewCache create a cache struct with the default seed capacity.
func NewCache() *Cache {
	return NewCacheCapacity(maxSeedCached)
}

// NewCacheCapacity create a cache struct holding at most capacity matrix lists.
func NewCacheCapacity(capacity int) *Cache {
	return &Cache{
		seeds:    newSeedCache(capacity),
		lruCache: lru.New(maxAIHashCached),
	}
}

// AddCache is used for add tensority calculate result
func (a *Cache) AddCache(hash, seed, result *bc.Hash) {
	key := calcCacheKey(hash, seed)
	a.mu.Lock()
	a.lruCache.Add(*key, result)
	a.mu.Unlock()
}

// RemoveCache clean the cached result
func (a *Cache) RemoveCache(hash, seed *bc.Hash) {
	key := calcCacheKey(hash, seed)
	a.mu.Lock()
	a.lruCache.Remove(*key)
	a.mu.Unlock()
}

// Hash is the real entry for call tensority algorithm. It is deterministic
// and safe for concurrent use; one mutex covers the digest LRU lookup, the
// matrix list build and the evaluation, so cache state transitions are
// serialized.
func (a *Cache) Hash(hash, seed *bc.Hash) *bc.Hash {
	key := calcCacheKey(hash, seed)
	a.mu.Lock()
	defer a.mu.Unlock()
	if v, ok := a.lruCache.Get(*key); ok {
		return v.(*bc.Hash)
	}
	return a.algorithm(hash, seed)
}

func (a *Cache) algorithm(bh, seed *bc.Hash) *bc.Hash {
	if UseSIMD && cpu.X86.HasAVX2 {
		return cgo_algorithm.SimdAlgorithm(bh, seed)
	}
	return go_algorithm.Hash(bh, a.seeds.get(seed))
}
