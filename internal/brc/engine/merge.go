package engine

import (
	"slices"

	"github.com/shandysiswandi/gobrc/internal/brc/entity"
	"golang.org/x/exp/maps"
)

// Result is the merged mapping from raw station name to stats.
type Result map[string]entity.Stats

// Merge combines per-worker tables. The outcome does not depend on the order
// of tables or on how the input was split between them.
func Merge(tables ...*Table) Result {
	res := make(Result)
	for _, t := range tables {
		if t == nil {
			continue
		}
		t.Each(func(name []byte, s entity.Stats) {
			res.add(string(name), s)
		})
	}
	return res
}

// Merge folds other into r.
func (r Result) Merge(other Result) {
	for name, s := range other {
		r.add(name, s)
	}
}

func (r Result) add(name string, s entity.Stats) {
	cur := r[name]
	cur.Merge(s)
	r[name] = cur
}

// Lines returns the number of readings across all stations.
func (r Result) Lines() int64 {
	var n int64
	for _, s := range r {
		n += s.Count
	}
	return n
}

// Rows returns the stations sorted by raw byte order.
func (r Result) Rows() []entity.StationRow {
	names := maps.Keys(r)
	slices.Sort(names)

	rows := make([]entity.StationRow, len(names))
	for i, name := range names {
		rows[i] = entity.StationRow{Name: name, Stats: r[name]}
	}
	return rows
}
