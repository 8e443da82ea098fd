package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAggregateScenario(t *testing.T) {
	path := writeInput(t, "A;12.3\nB;-5.0\nA;14.5\n")
	eng := New(Config{MaxWorkers: 2})

	report, err := eng.Aggregate(context.Background(), path, 2)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}

	if got, want := report.String(), "{A=12.3/13.40/14.5, B=-5.0/-5.00/-5.0}"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
	if report.Workers != 2 || report.Lines() != 3 || report.Bytes != 21 {
		t.Fatalf("unexpected report counters: workers=%d lines=%d bytes=%d", report.Workers, report.Lines(), report.Bytes)
	}
}

func TestAggregateDeterministicAcrossWorkerCounts(t *testing.T) {
	path := writeInput(t, syntheticInput(3, 5000))
	eng := New(Config{})

	var outputs []string
	for _, workers := range []int{1, 4, 11} {
		report, err := eng.Aggregate(context.Background(), path, workers)
		if err != nil {
			t.Fatalf("Aggregate(workers=%d): %v", workers, err)
		}
		if report.Lines() != 5000 {
			t.Fatalf("workers=%d counted %d lines", workers, report.Lines())
		}
		outputs = append(outputs, report.String())
	}

	for i := 1; i < len(outputs); i++ {
		if outputs[i] != outputs[0] {
			t.Fatalf("output %d differs:\n%s\n%s", i, outputs[0], outputs[i])
		}
	}
}

func TestAggregateSingleVersusEightWorkers(t *testing.T) {
	path := writeInput(t, syntheticInput(1000, 1000))
	eng := New(Config{})

	one, err := eng.Aggregate(context.Background(), path, 1)
	if err != nil {
		t.Fatalf("Aggregate(1): %v", err)
	}
	eight, err := eng.Aggregate(context.Background(), path, 8)
	if err != nil {
		t.Fatalf("Aggregate(8): %v", err)
	}

	if one.String() != eight.String() {
		t.Fatalf("1 worker and 8 workers disagree:\n%s\n%s", one.String(), eight.String())
	}
}

func TestAggregateMatchesReference(t *testing.T) {
	input := syntheticInput(99, 3000)
	path := writeInput(t, input)
	eng := New(Config{})

	report, err := eng.Aggregate(context.Background(), path, 6)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	ref, err := eng.AggregateReference(context.Background(), path)
	if err != nil {
		t.Fatalf("AggregateReference: %v", err)
	}

	if report.String() != ref.String() {
		t.Fatalf("engine and reference disagree:\n%s\n%s", report.String(), ref.String())
	}
}

func TestAggregateMoreWorkersThanBytes(t *testing.T) {
	path := writeInput(t, "A;1.0\n")

	report, err := New(Config{}).Aggregate(context.Background(), path, 64)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if report.Workers != 6 {
		t.Fatalf("expected one worker per byte, got %d", report.Workers)
	}
	if report.String() != "{A=1.0/1.00/1.0}" {
		t.Fatalf("unexpected output %q", report.String())
	}
}

func TestAggregateEmptyFile(t *testing.T) {
	path := writeInput(t, "")

	report, err := New(Config{}).Aggregate(context.Background(), path, 4)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if report.String() != "{}" || report.Workers != 0 {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestAggregateMissingFile(t *testing.T) {
	_, err := New(Config{}).Aggregate(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), 2)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestAggregateDirectory(t *testing.T) {
	if _, err := New(Config{}).Aggregate(context.Background(), t.TempDir(), 2); err == nil {
		t.Fatalf("expected an error for a directory")
	}
}

func TestAggregateWorkerFailureFailsRun(t *testing.T) {
	path := writeInput(t, "A;1.0\n"+strings.Repeat("B;2.0\n", 50)+"broken\n")

	_, err := New(Config{}).Aggregate(context.Background(), path, 4)
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("expected ErrMalformedLine, got %v", err)
	}
}

func BenchmarkAggregate(b *testing.B) {
	path := writeInput(b, syntheticInput(5, 200_000))
	eng := New(Config{})

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := eng.Aggregate(context.Background(), path, 0); err != nil {
			b.Fatalf("Aggregate: %v", err)
		}
	}
}
