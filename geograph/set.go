package geograph

import (
	"maps"
	"slices"
)

type set[K comparable] struct {
	items map[K]struct{}
}

func newSet[K comparable]() set[K] {
	return set[K]{
		items: make(map[K]struct{}),
	}
}

func (s set[K]) Add(item K) {
	s.items[item] = struct{}{}
}

func (s set[K]) Contains(item K) bool {
	_, ok := s.items[item]
	return ok
}

func (s set[K]) Remove(item K) {
	delete(s.items, item)
}

func (s set[K]) Len() int {
	return len(s.items)
}

func (s set[K]) Slice() []K {
	return slices.Collect(maps.Keys(s.items))
}

func (s set[K]) Clone() set[K] {
	return set[K]{items: maps.Clone(s.items)}
}
