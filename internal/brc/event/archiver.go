package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/shandysiswandi/gobrc/internal/brc/entity"
)

// FileArchiver writes the output of every successful job to
// <dir>/<job>.txt, or <dir>/<job>.txt.zst when compression is on.
type FileArchiver struct {
	dir     string
	encoder *zstd.Encoder
}

func NewFileArchiver(dir string, compress bool) (*FileArchiver, error) {
	if dir == "" {
		return nil, errors.New("archive dir is required")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}

	a := &FileArchiver{dir: dir}
	if compress {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("create zstd encoder: %w", err)
		}
		a.encoder = enc
	}

	return a, nil
}

// Path returns the archive file for jobID.
func (a *FileArchiver) Path(jobID string) string {
	name := jobID + ".txt"
	if a.encoder != nil {
		name += ".zst"
	}
	return filepath.Join(a.dir, name)
}

func (a *FileArchiver) Handle(ctx context.Context, event entity.JobEvent) error {
	if event.JobID == "" {
		return errors.New("missing job id")
	}

	if event.Status != entity.JobStatusDone {
		slog.InfoContext(ctx, "skip archiving unfinished job", "job_id", event.JobID, "status", event.Status)
		return nil
	}

	data := []byte(event.Output + "\n")
	if a.encoder != nil {
		data = a.encoder.EncodeAll(data, make([]byte, 0, len(data)))
	}

	path := a.Path(event.JobID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename archive: %w", err)
	}

	slog.InfoContext(ctx, "job output archived", "job_id", event.JobID, "path", path, "bytes", len(data))
	return nil
}

// ReadArchive returns the output stored for jobID.
func (a *FileArchiver) ReadArchive(jobID string) (string, error) {
	data, err := os.ReadFile(a.Path(jobID))
	if err != nil {
		return "", err
	}

	if a.encoder != nil {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return "", fmt.Errorf("create zstd decoder: %w", err)
		}
		defer dec.Close()

		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return "", fmt.Errorf("zstd decode: %w", err)
		}
	}

	if n := len(data); n > 0 && data[n-1] == '\n' {
		data = data[:n-1]
	}
	return string(data), nil
}

func (a *FileArchiver) Close() error {
	if a.encoder != nil {
		return a.encoder.Close()
	}
	return nil
}
