package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	rerrors "rie/internal/errors"
)

// Exporter writes report envelopes to disk as pretty JSON, optionally
// gzip-compressed.
type Exporter struct {
	dir      string
	compress bool
}

// NewExporter creates an exporter writing into dir. The directory is created
// on first write.
func NewExporter(dir string, compress bool) *Exporter {
	return &Exporter{dir: dir, compress: compress}
}

// Write persists the envelope under name (without extension) and returns the
// full path written.
func (e *Exporter) Write(name string, env *Envelope) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", rerrors.New(rerrors.ReportWriteFailed, "create report directory", err)
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", rerrors.New(rerrors.ReportWriteFailed, "encode report", err)
	}

	if !e.compress {
		path := filepath.Join(e.dir, name+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return "", rerrors.New(rerrors.ReportWriteFailed, fmt.Sprintf("write %s", path), err)
		}
		return path, nil
	}

	path := filepath.Join(e.dir, name+".json.gz")
	f, err := os.Create(path)
	if err != nil {
		return "", rerrors.New(rerrors.ReportWriteFailed, fmt.Sprintf("create %s", path), err)
	}

	zw := gzip.NewWriter(f)
	if _, err := zw.Write(data); err != nil {
		_ = zw.Close()
		_ = f.Close()
		return "", rerrors.New(rerrors.ReportWriteFailed, fmt.Sprintf("compress %s", path), err)
	}
	if err := zw.Close(); err != nil {
		_ = f.Close()
		return "", rerrors.New(rerrors.ReportWriteFailed, fmt.Sprintf("flush %s", path), err)
	}
	if err := f.Close(); err != nil {
		return "", rerrors.New(rerrors.ReportWriteFailed, fmt.Sprintf("close %s", path), err)
	}

	return path, nil
}
