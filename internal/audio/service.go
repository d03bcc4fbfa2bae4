// Package audio orchestrates the editing operations: it validates requests,
// plans segment windows and crossfade schedules, and turns the plans into
// engine invocations. It never touches audio samples itself.
package audio

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/audiocut/audiocut/internal/engine"
	"github.com/audiocut/audiocut/internal/storage"
)

// Runner executes an engine invocation built from an argument list.
type Runner interface {
	Run(ctx context.Context, args []string) error
}

// Prober queries media metadata from the engine.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
	Probe(ctx context.Context, path string) (*engine.MediaInfo, error)
}

// audioExtensions are the file extensions merge considers, lowercased.
var audioExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".flac": true,
	".ogg":  true,
	".m4a":  true,
	".aac":  true,
}

// Service coordinates planning, engine invocation and output publishing for
// all editing operations.
type Service struct {
	runner   Runner
	prober   Prober
	store    storage.Storage
	logger   *slog.Logger
	validate *validator.Validate
}

// NewService creates a Service. The runner and prober are typically the same
// *engine.Engine; they are separate interfaces so tests can fake either side.
func NewService(runner Runner, prober Prober, store storage.Storage, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		runner:   runner,
		prober:   prober,
		store:    store,
		logger:   logger,
		validate: validator.New(),
	}
}

// statFile reports ErrInputNotFound for a missing input file.
func statFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	return nil
}

// listAudioFiles returns the audio files directly inside dir, sorted
// lexicographically. The sort order is the merge sequencing contract: split
// output named track_NN sorts back into timeline order.
func listAudioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if audioExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

// toMillis converts engine-reported seconds to the planner's millisecond grid.
func toMillis(seconds float64) int64 {
	return int64(math.Round(seconds * 1000))
}

// withoutExt strips the extension from a path.
func withoutExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// ext returns the extension of a path, ".wav" style.
func ext(path string) string {
	return filepath.Ext(path)
}

// copyFile copies a file byte for byte. Used for the single-track merge
// passthrough, which must not re-encode.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src) // #nosec G304 - src is provided by trusted internal code
	if err != nil {
		return fmt.Errorf("read source file: %w", err)
	}
	if err := os.WriteFile(dst, data, 0600); err != nil {
		return fmt.Errorf("write destination file: %w", err)
	}
	return nil
}

// publish uploads a produced file through the configured storage backend and
// logs the resulting URL.
func (s *Service) publish(ctx context.Context, path string) error {
	f, err := os.Open(path) // #nosec G304 - path was produced by this service
	if err != nil {
		return fmt.Errorf("open output for upload: %w", err)
	}
	defer func() { _ = f.Close() }()

	url, err := s.store.UploadToS3(ctx, filepath.Base(path), f)
	if err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}

	s.logger.Info("output uploaded",
		slog.String("path", path),
		slog.String("url", url),
	)
	return nil
}
