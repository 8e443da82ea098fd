package entity

import "testing"

func TestStatsAdd(t *testing.T) {
	var s Stats
	for _, v := range []int64{123, -50, 145} {
		s.Add(v)
	}

	want := Stats{Min: -50, Max: 145, Sum: 218, Count: 3}
	if s != want {
		t.Fatalf("Add() = %+v, want %+v", s, want)
	}
}

func TestStatsMerge(t *testing.T) {
	tests := []struct {
		name string
		a, b Stats
		want Stats
	}{
		{
			name: "both populated",
			a:    Stats{Min: 10, Max: 20, Sum: 30, Count: 2},
			b:    Stats{Min: -5, Max: 15, Sum: 10, Count: 2},
			want: Stats{Min: -5, Max: 20, Sum: 40, Count: 4},
		},
		{
			name: "empty receiver",
			b:    Stats{Min: 1, Max: 1, Sum: 1, Count: 1},
			want: Stats{Min: 1, Max: 1, Sum: 1, Count: 1},
		},
		{
			name: "empty argument",
			a:    Stats{Min: 3, Max: 9, Sum: 12, Count: 2},
			want: Stats{Min: 3, Max: 9, Sum: 12, Count: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a
			got.Merge(tt.b)
			if got != tt.want {
				t.Fatalf("Merge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStatsMean(t *testing.T) {
	s := Stats{Min: 123, Max: 145, Sum: 268, Count: 2}
	if got := s.Mean(); got < 13.399 || got > 13.401 {
		t.Fatalf("Mean() = %v, want 13.4", got)
	}
	if got := (Stats{}).Mean(); got != 0 {
		t.Fatalf("Mean() of empty = %v, want 0", got)
	}
}

func TestJobStatusFinished(t *testing.T) {
	if JobStatusQueued.Finished() || JobStatusProcessing.Finished() {
		t.Fatalf("queued/processing must not be finished")
	}
	if !JobStatusDone.Finished() || !JobStatusFailed.Finished() {
		t.Fatalf("done/failed must be finished")
	}
}
