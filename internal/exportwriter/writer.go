// Package exportwriter writes materialized export targets to disk.
//
// Each target becomes one indented JSON document in the export directory,
// written atomically. An exclusive lock file in the export directory keeps
// concurrent stationdeck processes from interleaving artifacts, and targets
// whose bytes match the file already on disk are left untouched.
package exportwriter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofrs/flock"

	"stationdeck/internal/export"
	"stationdeck/internal/fileutil"
	"stationdeck/internal/logging"
	"stationdeck/internal/textutil"
)

// LockFileName is created inside the export directory while writing.
const LockFileName = ".stationdeck.lock"

const lockRetryDelay = 100 * time.Millisecond

// ErrLocked is returned when another process holds the export lock until ctx
// is done.
var ErrLocked = errors.New("export directory is locked by another process")

// Result describes one written artifact.
type Result struct {
	ProfileID string
	Platform  string
	Path      string
	Stations  int
	Bytes     int
	Unchanged bool
}

// Writer writes export targets into one directory.
type Writer struct {
	dir    string
	logger *slog.Logger
}

// New creates a writer for dir. A nil logger discards output.
func New(dir string, logger *slog.Logger) *Writer {
	return &Writer{dir: dir, logger: logging.NewComponentLogger(logger, "exportwriter")}
}

// Dir returns the export directory.
func (w *Writer) Dir() string { return w.dir }

// Encode renders a payload exactly as Write stores it.
func Encode(payload export.Payload) ([]byte, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return append(data, '\n'), nil
}

// Write stores every target under the export lock. Targets are encoded up
// front so an encoding failure writes nothing.
func (w *Writer) Write(ctx context.Context, targets []export.Target) ([]Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure export directory: %w", err)
	}

	encoded := make([][]byte, len(targets))
	for i, target := range targets {
		data, err := Encode(target.Payload)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", target.FileName, err)
		}
		encoded[i] = data
	}

	lock := flock.New(filepath.Join(w.dir, LockFileName))
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrLocked, ctxErr)
		}
		return nil, fmt.Errorf("acquire export lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			w.logger.Warn("failed to release export lock", logging.Error(err))
		}
	}()

	results := make([]Result, 0, len(targets))
	for i, target := range targets {
		result, err := w.inspect(target, encoded[i])
		if err != nil {
			return results, err
		}
		if !result.Unchanged {
			if err := fileutil.WriteFileAtomic(result.Path, encoded[i], 0o644); err != nil {
				return results, fmt.Errorf("write %s: %w", result.Path, err)
			}
		}

		w.logger.Info("export target written",
			logging.String(logging.FieldProfileID, result.ProfileID),
			logging.String(logging.FieldPlatform, result.Platform),
			logging.String(logging.FieldPath, result.Path),
			logging.Int(logging.FieldStations, result.Stations),
			logging.Bool("unchanged", result.Unchanged),
		)
		results = append(results, result)
	}
	return results, nil
}

// Plan reports what Write would do for targets without touching the export
// directory.
func (w *Writer) Plan(targets []export.Target) ([]Result, error) {
	results := make([]Result, 0, len(targets))
	for _, target := range targets {
		data, err := Encode(target.Payload)
		if err != nil {
			return results, fmt.Errorf("%s: %w", target.FileName, err)
		}
		result, err := w.inspect(target, data)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (w *Writer) inspect(target export.Target, data []byte) (Result, error) {
	name := textutil.SanitizeFileName(target.FileName)
	if name == "" {
		return Result{}, fmt.Errorf("target for profile %q has no file name", target.ProfileID)
	}
	path := filepath.Join(w.dir, name)
	same, err := fileutil.SameContent(path, data)
	if err != nil {
		return Result{}, fmt.Errorf("compare %s: %w", path, err)
	}
	return Result{
		ProfileID: target.ProfileID,
		Platform:  target.Platform,
		Path:      path,
		Stations:  len(target.Payload.Stations),
		Bytes:     len(data),
		Unchanged: same,
	}, nil
}
