package prefixtree

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/btree"
)

type entry struct {
	name string
	seq  uint64
}

func lessEntry(a, b entry) bool {
	if a.name != b.name {
		return a.name < b.name
	}
	return a.seq < b.seq
}

// Tree maps every prefix of an inserted name to the names sharing it, kept in
// lexicographic order. Names inserted twice are returned twice.
type Tree struct {
	mu      sync.RWMutex
	seq     uint64
	buckets map[string]*btree.BTreeG[entry]
}

func New() *Tree {
	return &Tree{
		buckets: map[string]*btree.BTreeG[entry]{},
	}
}

// AddWord registers name under each of its non-empty prefixes.
func (t *Tree) AddWord(name string) {
	if name == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	e := entry{name: name, seq: t.seq}

	for i := 0; i < len(name); {
		_, size := utf8.DecodeRuneInString(name[i:])
		i += size

		prefix := name[:i]
		bucket, ok := t.buckets[prefix]
		if !ok {
			bucket = btree.NewG(8, lessEntry)
			t.buckets[strings.Clone(prefix)] = bucket
		}
		bucket.ReplaceOrInsert(e)
	}
}

// LookupByPrefix returns the sorted names stored under exactly this prefix.
func (t *Tree) LookupByPrefix(prefix string) []string {
	result := []string{}
	if prefix == "" {
		return result
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	bucket, ok := t.buckets[prefix]
	if !ok {
		return result
	}
	result = make([]string, 0, bucket.Len())
	bucket.Ascend(func(e entry) bool {
		result = append(result, e.name)
		return true
	})
	return result
}

// Len returns the number of distinct prefixes.
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.buckets)
}
