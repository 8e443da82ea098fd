package harness

import (
	"fmt"
	"io"
	"time"

	"github.com/aclements/go-moremath/stats"
)

// Summary describes the wall times of an outcome, in seconds.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

func Summarize(runs []time.Duration) Summary {
	if len(runs) == 0 {
		return Summary{}
	}

	s := stats.Sample{Xs: make([]float64, 0, len(runs))}
	for _, d := range runs {
		s.Xs = append(s.Xs, d.Seconds())
	}

	sum := Summary{N: len(runs), Mean: s.Mean()}
	sum.Min, sum.Max = s.Bounds()
	if len(runs) > 1 {
		sum.StdDev = s.StdDev()
	}
	return sum
}

// Report prints the timing table followed by the verdict.
func Report(w io.Writer, r Result) {
	fmt.Fprintln(w, "=== COMPARISON ===")
	for _, o := range []Outcome{r.Candidate, r.Reference} {
		s := Summarize(o.Runs)
		fmt.Fprintf(w, "%-10s runs %d  mean %.2f s  std dev %.2f s  min %.2f s  max %.2f s\n",
			o.Name, s.N, s.Mean, s.StdDev, s.Min, s.Max)
	}
	fmt.Fprintln(w)

	if r.Match {
		fmt.Fprintln(w, "Results match!")
		return
	}

	fmt.Fprintln(w, "Results differ!")
	fmt.Fprintf(w, "%s: %s\n", r.Candidate.Name, r.Candidate.Line)
	fmt.Fprintf(w, "%s: %s\n", r.Reference.Name, r.Reference.Line)
}
