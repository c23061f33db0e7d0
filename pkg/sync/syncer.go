package sync

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sidkik/leetsync/pkg/artifact"
	"github.com/sidkik/leetsync/pkg/errors"
	"github.com/sidkik/leetsync/pkg/language"
	"github.com/sidkik/leetsync/pkg/leetcode"
	"github.com/sidkik/leetsync/pkg/metrics"
	"github.com/sidkik/leetsync/pkg/watermark"
)

// DefaultPageSize is the number of submissions requested per page.
const DefaultPageSize = 20

// State is the phase a run is in.
type State int

const (
	Init State = iota
	ValidatingSession
	Streaming
	Finalizing
	Done
	Aborted
)

func (s State) String() string {
	switch s {
	case Init:
		return "INIT"
	case ValidatingSession:
		return "VALIDATING_SESSION"
	case Streaming:
		return "STREAMING"
	case Finalizing:
		return "FINALIZING"
	case Done:
		return "DONE"
	case Aborted:
		return "ABORTED"
	default:
		return "UNKNOWN"
	}
}

// The outcome of handling a single submission.
const (
	written = "written"
	skipped = "skipped"
	failed  = "failed"
)

// Config contains the collaborators of a Syncer.
type Config struct {
	Client   leetcode.Client
	Writer   artifact.Writer
	Store    watermark.Store
	Profiles language.Profiles
	Pacer    Pauser
	PageSize int
	Log      *logrus.Logger
}

// Syncer mirrors accepted submissions into the local tree. A Syncer handles
// one run at a time, and runs are strictly sequential: each submission is
// fully written before the next one is requested.
//
// Nothing prevents two processes from syncing into the same tree at once.
// Callers that do so get undefined results.
type Syncer struct {
	Config
	state State
}

// Result summarizes a run.
type Result struct {
	Username     string
	OldWatermark int64
	NewWatermark int64

	// Processed counts every submission yielded by the listing, including
	// the ones that were skipped or failed.
	Processed int
	Written   int
	Skipped   int
	Failed    int
}

func (r *Result) record(outcome string) {
	metrics.Submissions.WithLabelValues(outcome).Inc()
	switch outcome {
	case written:
		r.Written++
	case skipped:
		r.Skipped++
	case failed:
		r.Failed++
	}
}

// New creates a Syncer.
func New(cfg Config) *Syncer {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	return &Syncer{Config: cfg}
}

// State returns the phase of the current or last run.
func (s *Syncer) State() State {
	return s.state
}

func (s *Syncer) transition(state State) {
	s.Log.WithField("state", state).Debug("Sync state changed")
	s.state = state
}

// Run syncs every accepted submission newer than the stored watermark, and
// then commits the newest timestamp it saw as the new watermark. If Run
// returns an error the watermark is left untouched, so the next run retries
// the same submissions.
func (s *Syncer) Run(ctx context.Context) (res Result, err error) {
	s.transition(Init)
	defer func() {
		if err != nil {
			s.transition(Aborted)
		}
	}()

	res.OldWatermark, err = s.Store.Load()
	if err != nil {
		return res, errors.WithContext(err, "load watermark")
	}

	res.Username, err = s.validateSession(ctx)
	if err != nil {
		return res, err
	}

	s.transition(Streaming)
	candidate := res.OldWatermark
	problems := map[string]error{}
	it := newIterator(s.Client.ListSubmissions, s.Pacer, s.Log, res.OldWatermark, s.PageSize)
	for {
		sub, ok, err := it.Next(ctx)
		if err != nil {
			return res, errors.WithContext(err, "list submissions")
		}
		if !ok {
			break
		}

		res.Processed++
		if sub.Timestamp > candidate {
			candidate = sub.Timestamp
		}

		outcome, err := s.handle(ctx, sub, problems)
		if err != nil {
			return res, err
		}
		res.record(outcome)
	}

	s.transition(Finalizing)
	if err := s.Store.Save(candidate); err != nil {
		return res, errors.WithContext(err, "save watermark")
	}
	res.NewWatermark = candidate
	metrics.Watermark.Set(float64(candidate))
	metrics.LastSuccess.Set(float64(time.Now().Unix()))

	s.transition(Done)
	s.Log.WithFields(logrus.Fields{
		"processed": res.Processed,
		"written":   res.Written,
		"skipped":   res.Skipped,
		"failed":    res.Failed,
		"watermark": candidate,
	}).Info("Sync complete")
	return res, nil
}

func (s *Syncer) validateSession(ctx context.Context) (string, error) {
	s.transition(ValidatingSession)
	username, err := s.Client.Authenticate(ctx)
	if err != nil {
		return "", errors.WithContext(err, "validate session")
	}
	s.Log.WithField("username", username).Info("Session is valid")
	return username, nil
}

// handle writes the artifacts for a single submission. Failures that only
// affect this submission are logged and reported through the outcome. The
// returned error is reserved for failures that should abort the run.
func (s *Syncer) handle(ctx context.Context, sub leetcode.Submission,
	problems map[string]error) (string, error) {

	log := s.Log.WithFields(logrus.Fields{
		"submission": sub.ID,
		"slug":       sub.TitleSlug,
	})

	profile, ok := s.Profiles.Lookup(sub.Lang)
	if !ok {
		log.WithField("lang", sub.Lang).Warn("Unsupported language. Skipping submission.")
		return skipped, nil
	}

	dir := artifact.ProblemDir(sub.QuestionID, sub.TitleSlug)
	if err := s.ensureProblem(ctx, dir, sub.TitleSlug, problems); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		log.WithError(err).Warn("Failed to get problem metadata. Skipping submission.")
		return failed, nil
	}

	solution := artifact.Solution{Submission: sub, Profile: profile}
	if err := s.Writer.WriteSolution(dir, solution); err != nil {
		log.WithError(err).Warn("Failed to write solution. Skipping submission.")
		return failed, nil
	}

	log.Info("Synced submission")
	return written, nil
}

// ensureProblem makes sure the metadata artifact for the problem exists. The
// metadata is fetched at most once per run, and never if it's already on
// disk. The outcome is remembered in `problems`, so that later submissions
// for a problem whose fetch failed are skipped without asking again.
func (s *Syncer) ensureProblem(ctx context.Context, dir, slug string,
	problems map[string]error) error {

	if err, ok := problems[slug]; ok {
		return err
	}

	exists, err := s.Writer.HasProblem(dir)
	if err != nil {
		err = errors.WithContext(err, "check metadata")
		problems[slug] = err
		return err
	}
	if exists {
		problems[slug] = nil
		return nil
	}

	problem, err := s.Client.FetchProblem(ctx, slug)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if pauseErr := s.Pacer.Pause(ctx); pauseErr != nil {
		return pauseErr
	}

	if err != nil {
		metrics.ProblemFetches.WithLabelValues("failed").Inc()
		err = errors.WithContext(err, "fetch problem")
	} else {
		metrics.ProblemFetches.WithLabelValues("ok").Inc()
		err = s.Writer.WriteProblem(dir, problem)
	}
	problems[slug] = err
	return err
}
