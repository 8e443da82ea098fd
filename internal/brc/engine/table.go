package engine

import (
	"bytes"

	"github.com/shandysiswandi/gobrc/internal/brc/entity"
)

const (
	// FNV-1a constants.
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211

	initialBuckets = 1 << 10
)

type bucket struct {
	used  bool
	name  []byte
	hash  uint64
	stats entity.Stats
}

// Table maps raw station names to their stats for a single worker.
//
// It is an open-addressing table with linear probing, doubled whenever it
// becomes half full. It is not safe for concurrent use.
type Table struct {
	buckets []bucket
	size    int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{buckets: make([]bucket, initialBuckets)}
}

// Slot returns the stats for name, inserting an empty record when the name
// is new. The pointer is only valid until the next Slot call.
func (t *Table) Slot(name []byte) *entity.Stats {
	hash := hashName(name)
	mask := uint64(len(t.buckets) - 1)

	for i := hash & mask; ; i = (i + 1) & mask {
		b := &t.buckets[i]
		if !b.used {
			if (t.size+1)*2 > len(t.buckets) {
				t.grow()
				return t.Slot(name)
			}
			b.used = true
			b.name = append(make([]byte, 0, len(name)), name...)
			b.hash = hash
			t.size++
			return &b.stats
		}

		if b.hash == hash && bytes.Equal(b.name, name) {
			return &b.stats
		}
	}
}

// Len returns the number of distinct stations.
func (t *Table) Len() int {
	return t.size
}

// Each calls fn for every station in unspecified order. fn must not retain
// name.
func (t *Table) Each(fn func(name []byte, s entity.Stats)) {
	for i := range t.buckets {
		if t.buckets[i].used {
			fn(t.buckets[i].name, t.buckets[i].stats)
		}
	}
}

func (t *Table) grow() {
	old := t.buckets
	t.buckets = make([]bucket, len(old)*2)
	mask := uint64(len(t.buckets) - 1)

	for _, b := range old {
		if !b.used {
			continue
		}
		i := b.hash & mask
		for t.buckets[i].used {
			i = (i + 1) & mask
		}
		t.buckets[i] = b
	}
}

func hashName(name []byte) uint64 {
	hash := offset64
	for _, ch := range name {
		hash ^= uint64(ch)
		hash *= prime64
	}
	return hash
}
