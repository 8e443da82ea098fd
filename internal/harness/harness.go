package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// Command is an external program taking part in a comparison.
type Command struct {
	Name string
	Path string
	Args []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// ExitError reports a command that exited with a non-zero code.
type ExitError struct {
	Name string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s failed with code %d", e.Name, e.Code)
}

// Outcome is what one command produced across all runs.
type Outcome struct {
	Name string
	Line string
	Runs []time.Duration
}

type Result struct {
	Candidate Outcome
	Reference Outcome
	Match     bool
}

type Harness struct {
	runs     int
	progress io.Writer
}

// New returns a harness running each command runs times (at least once).
// Progress lines go to progress when it is not nil.
func New(runs int, progress io.Writer) *Harness {
	if runs < 1 {
		runs = 1
	}
	return &Harness{runs: runs, progress: progress}
}

// Compare runs candidate then reference. A failing candidate stops the
// comparison before the reference is started.
func (h *Harness) Compare(ctx context.Context, candidate, reference Command) (Result, error) {
	cand, err := h.measure(ctx, candidate)
	if err != nil {
		return Result{}, err
	}

	ref, err := h.measure(ctx, reference)
	if err != nil {
		return Result{Candidate: cand}, err
	}

	return Result{
		Candidate: cand,
		Reference: ref,
		Match:     cand.Line == ref.Line,
	}, nil
}

func (h *Harness) measure(ctx context.Context, cmd Command) (Outcome, error) {
	out := Outcome{Name: cmd.Name, Runs: make([]time.Duration, 0, h.runs)}

	for i := 0; i < h.runs; i++ {
		h.printf("Running %s implementation...\n", cmd.Name)

		line, elapsed, err := runOnce(ctx, cmd)
		if err != nil {
			return out, err
		}

		h.printf("%s execution time: %.2f s\n\n", cmd.Name, elapsed.Seconds())

		if i == 0 {
			out.Line = line
		}
		out.Runs = append(out.Runs, elapsed)
	}

	return out, nil
}

func runOnce(ctx context.Context, cmd Command) (string, time.Duration, error) {
	var stdout bytes.Buffer

	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Stdout = &stdout

	start := time.Now()
	err := c.Run()
	elapsed := time.Since(start)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return "", elapsed, &ExitError{Name: cmd.Name, Code: exitErr.ExitCode()}
	}
	if err != nil {
		return "", elapsed, fmt.Errorf("run %s: %w", cmd.Name, err)
	}

	return firstLine(stdout.String()), elapsed, nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, "\r")
}

func (h *Harness) printf(format string, args ...any) {
	if h.progress != nil {
		fmt.Fprintf(h.progress, format, args...)
	}
}
