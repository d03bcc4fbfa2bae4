// Package bootstrap wires configuration, logging, storage and the engine into
// the audio service the CLI commands run against.
package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/audiocut/audiocut/internal/audio"
	"github.com/audiocut/audiocut/internal/config"
	"github.com/audiocut/audiocut/internal/engine"
	"github.com/audiocut/audiocut/internal/storage"
)

// Dependencies holds all initialized dependencies for one command execution.
type Dependencies struct {
	Config  *config.Config
	Logger  *slog.Logger
	Service *audio.Service
}

// NewDependencies loads configuration from the environment and builds the
// service stack.
func NewDependencies() (*Dependencies, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	store, err := initStorage(cfg, logger)
	if err != nil {
		return nil, err
	}

	eng := engine.New(cfg.FFmpegPath, cfg.FFprobePath, logger)
	svc := audio.NewService(eng, eng, store, logger)

	return &Dependencies{
		Config:  cfg,
		Logger:  logger,
		Service: svc,
	}, nil
}

// initStorage creates the appropriate storage backend based on configuration.
func initStorage(cfg *config.Config, logger *slog.Logger) (storage.Storage, error) {
	if cfg.S3Enabled() {
		s3Cfg := storage.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		}
		s3Store, err := storage.NewS3Storage(cfg.TempDir, s3Cfg)
		if err != nil {
			return nil, fmt.Errorf("create S3 storage: %w", err)
		}
		logger.Info("S3 storage configured",
			slog.String("bucket", cfg.S3Bucket),
			slog.String("region", cfg.S3Region),
		)
		return s3Store, nil
	}

	localStore, err := storage.NewLocalStorage(cfg.TempDir)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}
	return localStore, nil
}
