package sync

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/sidkik/leetsync/pkg/errors"
	"github.com/sidkik/leetsync/pkg/leetcode"
)

// Backfill syncs every accepted submission for the given problems,
// regardless of the watermark. It's meant for recovering problems whose
// artifacts were deleted locally. The watermark is neither read nor written.
func (s *Syncer) Backfill(ctx context.Context, slugs []string) (res Result, err error) {
	s.transition(Init)
	defer func() {
		if err != nil {
			s.transition(Aborted)
		}
	}()

	res.Username, err = s.validateSession(ctx)
	if err != nil {
		return res, err
	}

	s.transition(Streaming)
	problems := map[string]error{}
	for _, slug := range slugs {
		if err := s.backfillProblem(ctx, slug, problems, &res); err != nil {
			return res, errors.WithContext(err, slug)
		}
	}

	s.transition(Done)
	s.Log.WithFields(logrus.Fields{
		"problems":  len(slugs),
		"processed": res.Processed,
		"written":   res.Written,
		"skipped":   res.Skipped,
		"failed":    res.Failed,
	}).Info("Backfill complete")
	return res, nil
}

func (s *Syncer) backfillProblem(ctx context.Context, slug string,
	problems map[string]error, res *Result) error {

	listProblem := func(ctx context.Context, cursor string, offset, limit int) (leetcode.Page, error) {
		return s.Client.ListProblemSubmissions(ctx, slug, cursor, offset, limit)
	}

	it := newIterator(listProblem, s.Pacer, s.Log.WithField("slug", slug), 0, s.PageSize)
	for {
		summary, ok, err := it.Next(ctx)
		if err != nil {
			return errors.WithContext(err, "list submissions")
		}
		if !ok {
			return nil
		}
		res.Processed++

		// The per-problem listing doesn't include the code.
		sub, err := s.Client.FetchSubmission(ctx, summary.ID)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if pauseErr := s.Pacer.Pause(ctx); pauseErr != nil {
			return pauseErr
		}
		if err != nil {
			s.Log.WithError(err).WithFields(logrus.Fields{
				"submission": summary.ID,
				"slug":       slug,
			}).Warn("Failed to fetch submission. Skipping submission.")
			res.record(failed)
			continue
		}

		outcome, err := s.handle(ctx, sub, problems)
		if err != nil {
			return err
		}
		res.record(outcome)
	}
}
