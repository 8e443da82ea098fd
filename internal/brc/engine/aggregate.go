package engine

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/shandysiswandi/gobrc/internal/brc/entity"
)

// DefaultBufferSize is the per-worker read buffer. It bounds the longest
// line a worker can read.
const DefaultBufferSize = 1 << 20

// ErrMalformedLine is returned for a non-blank line without a ';' separator.
var ErrMalformedLine = errors.New("malformed line")

// AggregateChunk scans every line whose first byte lies in
// [chunk.Start, chunk.End) and returns the per-station stats.
//
// A line that starts before chunk.Start belongs to the previous chunk and is
// skipped. The line straddling chunk.End is read to its end, so every line
// is owned by exactly one chunk.
func AggregateChunk(r io.ReaderAt, chunk entity.Chunk, bufSize int) (*Table, error) {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}

	// Start one byte early: if that byte is a newline, chunk.Start begins a line.
	pos := max(0, chunk.Start-1)
	br := bufio.NewReaderSize(io.NewSectionReader(r, pos, math.MaxInt64-pos), bufSize)
	table := NewTable()

	if chunk.Start > 0 {
		n, err := skipLine(br)
		pos += n
		if errors.Is(err, io.EOF) {
			return table, nil
		}
		if err != nil {
			return nil, fmt.Errorf("align chunk at offset %d: %w", chunk.Start, err)
		}
	}

	for pos < chunk.End {
		line, err := br.ReadSlice('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read line at offset %d: %w", pos, err)
		}

		if len(line) > 0 {
			if perr := addLine(table, line); perr != nil {
				return nil, fmt.Errorf("line at offset %d: %w", pos, perr)
			}
			pos += int64(len(line))
		}

		if err != nil {
			break
		}
	}

	return table, nil
}

// skipLine consumes bytes through the next newline and returns how many.
func skipLine(br *bufio.Reader) (int64, error) {
	var n int64
	for {
		frag, err := br.ReadSlice('\n')
		n += int64(len(frag))
		if !errors.Is(err, bufio.ErrBufferFull) {
			return n, err
		}
	}
}

func addLine(table *Table, line []byte) error {
	sep := bytes.LastIndexByte(line, ';')
	if sep < 0 {
		if len(bytes.TrimSpace(line)) == 0 {
			return nil
		}
		return ErrMalformedLine
	}

	table.Slot(line[:sep]).Add(ParseReading(line[sep+1:]))
	return nil
}
