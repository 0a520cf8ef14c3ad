package canon

import (
	"fmt"
	"sort"

	"github.com/mpvl/unique"
)

// Permutation is an automorphism witness: original vertex label -> image
// label, covering labels 0..nv-1.
type Permutation map[int]int

// Cache stores, per vertex v, the automorphism witnesses discovered while
// proving a labeling minimal via a seed rooted at v — reused, per §4.3,
// instead of re-enumerating cycle rotations once link(v) becomes complete.
// Entries for v must be purged whenever v's completeness flag flips (§9);
// callers do that via Purge, driven by core.Complex's newlyIncomplete
// reports.
type Cache struct {
	witnesses map[int][]Permutation
	encoded   map[int][]string
}

// NewCache returns an empty automorphism cache.
func NewCache() *Cache {
	return &Cache{
		witnesses: make(map[int][]Permutation),
		encoded:   make(map[int][]string),
	}
}

// Add records a witness permutation for vertex v, de-duplicating against
// previously cached witnesses for the same v via a sorted-and-uniqued key
// slice (mpvl/unique.Sort), matching the dedup idiom used elsewhere in the
// example pack for sorted-slice deduplication.
func (cache *Cache) Add(v int, toLabel map[int]int, nv int) {
	key := encode(toLabel, nv)
	keys := append(cache.encoded[v], key)
	sort.Strings(keys)
	n := unique.Sort(sort.StringSlice(keys))
	keys = keys[:n]
	cache.encoded[v] = keys

	witnesses := cache.witnesses[v]
	found := false
	for _, w := range witnesses {
		if encode(w, nv) == key {
			found = true
			break
		}
	}
	if !found {
		perm := make(Permutation, len(toLabel))
		for k, val := range toLabel {
			perm[k] = val
		}
		cache.witnesses[v] = append(witnesses, perm)
	}
}

// Witnesses returns the cached automorphisms for vertex v.
func (cache *Cache) Witnesses(v int) []Permutation { return cache.witnesses[v] }

// Purge drops every cached witness for vertex v, called when v's
// completeness flag transitions away from closed.
func (cache *Cache) Purge(v int) {
	delete(cache.witnesses, v)
	delete(cache.encoded, v)
}

func encode(toLabel map[int]int, nv int) string {
	buf := make([]byte, 0, nv*4)
	for orig := 0; orig < nv; orig++ {
		buf = append(buf, []byte(fmt.Sprintf("%d:%d,", orig, toLabel[orig]))...)
	}
	return string(buf)
}
