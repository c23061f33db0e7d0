package util

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/sidkik/leetsync/pkg/artifact"
	"github.com/sidkik/leetsync/pkg/config"
	"github.com/sidkik/leetsync/pkg/errors"
	"github.com/sidkik/leetsync/pkg/language"
	"github.com/sidkik/leetsync/pkg/leetcode"
	"github.com/sidkik/leetsync/pkg/metrics"
	"github.com/sidkik/leetsync/pkg/report"
	"github.com/sidkik/leetsync/pkg/sync"
	"github.com/sidkik/leetsync/pkg/watermark"
)

// Mocked out for unit testing.
var (
	fs           = afero.NewOsFs()
	clock        = clockwork.NewRealClock()
	newClient    = leetcode.New
	writeMetrics = metrics.WriteTextfile
)

// ParseConfig parses the leetsync config, and overrides the output directory
// if `output` is set. It also sets up reporting for the run.
func ParseConfig(path, output string) (config.Config, error) {
	cfg, err := config.Parse(path)
	if err != nil {
		return config.Config{}, errors.WithContext(err, "parse config")
	}
	if output != "" {
		cfg.Output = output
	}

	runID := uuid.New().String()
	report.Configure(cfg.ReportURL)
	report.SetRunID(runID)
	log.WithFields(log.Fields{
		"run":    runID,
		"output": cfg.Output,
	}).Debug("Starting run")
	return cfg, nil
}

// NewClient creates a LeetCode client using the credentials from the
// environment.
func NewClient(cfg config.Config) (leetcode.Client, error) {
	creds, err := config.ParseCredentials(config.DotenvPath)
	if err != nil {
		return nil, errors.WithContext(err, "get credentials")
	}
	return newClient(cfg.ClientOptions(creds)), nil
}

// NewPacer creates the pacer that spaces out requests to LeetCode.
func NewPacer(cfg config.Config) *leetcode.Pacer {
	return leetcode.NewPacer(clock, time.Duration(cfg.MaxPause))
}

// NewSyncer creates a Syncer that writes into the configured output
// directory.
func NewSyncer(cfg config.Config) (*sync.Syncer, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}

	writer, err := artifact.New(fs, cfg.Output, cfg.Templates)
	if err != nil {
		return nil, errors.WithContext(err, "create writer")
	}

	return sync.New(sync.Config{
		Client:   client,
		Writer:   writer,
		Store:    watermark.NewFileStore(fs, cfg.WatermarkPath()),
		Profiles: language.Default().With(cfg.Languages),
		Pacer:    NewPacer(cfg),
		PageSize: cfg.PageSize,
		Log:      log.StandardLogger(),
	}), nil
}

// FinishRun exports the metrics of a run, and reports its summary if it
// succeeded. Aborted runs are reported by HandleFatalError. Failing to export
// metrics doesn't fail the run.
func FinishRun(cfg config.Config, res sync.Result, runErr error) {
	if cfg.MetricsFile != "" {
		if err := writeMetrics(cfg.MetricsFile); err != nil {
			log.WithError(err).WithField("path", cfg.MetricsFile).Warn("Failed to write metrics")
		}
	}

	if runErr != nil {
		return
	}

	report.Log.WithFields(log.Fields{
		"username":  res.Username,
		"processed": res.Processed,
		"written":   res.Written,
		"skipped":   res.Skipped,
		"failed":    res.Failed,
		"watermark": res.NewWatermark,
	}).Info("Run complete")
}
