package tensority

import (
	"github.com/bytom/tensority/mining/tensority/go_algorithm"
	"github.com/bytom/tensority/protocol/bc"
)

// seedCache maps an epoch seed to its derived matrix list. Eviction is a
// wholesale flush: once an insert would push the map past capacity, every
// existing entry is dropped before the new one goes in. Seeds churn on epoch
// boundaries, so per-entry eviction buys nothing over the bounded flush.
//
// Callers must hold the owning Cache mutex; seedCache itself is not
// synchronized.
type seedCache struct {
	capacity int
	lists    map[[32]byte]*go_algorithm.MatList
}

func newSeedCache(capacity int) *seedCache {
	return &seedCache{
		capacity: capacity,
		lists:    make(map[[32]byte]*go_algorithm.MatList),
	}
}

// get returns the matrix list for seed, deriving and caching it on a miss.
func (s *seedCache) get(seed *bc.Hash) *go_algorithm.MatList {
	key := seed.Byte32()
	if matList, ok := s.lists[key]; ok {
		return matList
	}

	matList := go_algorithm.CreateMatList(seed.Bytes())
	if len(s.lists) >= s.capacity {
		s.lists = make(map[[32]byte]*go_algorithm.MatList)
	}
	s.lists[key] = matList
	return matList
}

// size reports the number of resident matrix lists.
func (s *seedCache) size() int {
	return len(s.lists)
}
