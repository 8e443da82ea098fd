package entity

// Stats accumulates readings scaled by ten (23.4 is stored as 234).
//
// A zero Stats holds no readings; Min and Max are meaningful once Count > 0.
type Stats struct {
	Min   int64
	Max   int64
	Sum   int64
	Count int64
}

// Add records one scaled reading.
func (s *Stats) Add(v int64) {
	if s.Count == 0 {
		s.Min, s.Max = v, v
	} else {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
	}
	s.Sum += v
	s.Count++
}

// Merge folds o into s.
func (s *Stats) Merge(o Stats) {
	if o.Count == 0 {
		return
	}
	if s.Count == 0 {
		*s = o
		return
	}
	s.Min = min(s.Min, o.Min)
	s.Max = max(s.Max, o.Max)
	s.Sum += o.Sum
	s.Count += o.Count
}

// Mean returns the unscaled mean, computed the same way the output line is.
func (s Stats) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Sum) / float64(s.Count) * 0.1
}
