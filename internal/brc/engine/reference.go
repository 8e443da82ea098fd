package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// Reference aggregates r in a single sequential pass using general-purpose
// float parsing. It shares no scanning code with the chunked engine, so the
// two can be diffed against each other.
func Reference(r io.Reader) (Result, error) {
	res := make(Result)
	scanner := bufio.NewScanner(r)

	var n int
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		sep := strings.LastIndexByte(line, ';')
		if sep < 0 {
			return nil, fmt.Errorf("line %d: %w", n, ErrMalformedLine)
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(line[sep+1:]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}

		s := res[line[:sep]]
		s.Add(int64(math.Round(value * 10)))
		res[line[:sep]] = s
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return res, nil
}

// AggregateReference runs Reference over the file at path.
func (e *Engine) AggregateReference(ctx context.Context, path string) (Report, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Report{}, fmt.Errorf("stat input: %w", err)
	}

	res, err := Reference(bufio.NewReaderSize(f, e.bufferSize))
	if err != nil {
		return Report{}, fmt.Errorf("reference %s: %w", path, err)
	}

	return Report{
		Stations: res,
		Workers:  1,
		Bytes:    info.Size(),
		Elapsed:  time.Since(start),
	}, nil
}
