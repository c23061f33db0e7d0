package sync

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/sidkik/leetsync/pkg/errors"
	"github.com/sidkik/leetsync/pkg/leetcode"
	"github.com/sidkik/leetsync/pkg/metrics"
)

// Pauser is implemented by leetcode.Pacer.
type Pauser interface {
	Pause(ctx context.Context) error
}

// pageSource fetches one page of a submission listing.
type pageSource func(ctx context.Context, cursor string, offset, limit int) (leetcode.Page, error)

// SubmissionIterator lazily walks a submission listing, newest first, and
// yields the accepted submissions that are newer than the watermark. It's
// single pass: once exhausted it stays exhausted.
type SubmissionIterator struct {
	fetch     pageSource
	pacer     Pauser
	log       logrus.FieldLogger
	watermark int64
	limit     int

	cursor   string
	offset   int
	pending  []leetcode.Submission
	lastPage bool
	done     bool
}

func newIterator(fetch pageSource, pacer Pauser, log logrus.FieldLogger,
	watermark int64, limit int) *SubmissionIterator {
	return &SubmissionIterator{
		fetch:     fetch,
		pacer:     pacer,
		log:       log,
		watermark: watermark,
		limit:     limit,
	}
}

// Next returns the next submission. The boolean is false once the sequence
// is exhausted. An error is only returned if the context is cancelled or the
// listing fails in a way that retrying can't fix.
func (it *SubmissionIterator) Next(ctx context.Context) (leetcode.Submission, bool, error) {
	if err := ctx.Err(); err != nil {
		return leetcode.Submission{}, false, err
	}

	for !it.done {
		for len(it.pending) > 0 {
			s := it.pending[0]
			it.pending = it.pending[1:]

			if !s.Accepted() {
				continue
			}

			// Listings are ordered newest first, so everything after this
			// submission has already been synced too.
			if s.Timestamp <= it.watermark {
				it.log.WithField("watermark", it.watermark).Info(
					"Reached previously synced submissions")
				it.done = true
				return leetcode.Submission{}, false, nil
			}
			return s, true, nil
		}

		if it.lastPage {
			it.done = true
			break
		}

		page, err := it.nextPage(ctx)
		if err != nil {
			return leetcode.Submission{}, false, err
		}

		it.pending = page.Submissions
		switch {
		case len(page.Submissions) == 0:
			it.log.WithField("offset", it.offset).Debug("Got an empty page")
			it.lastPage = true
		case !page.HasNext:
			it.lastPage = true
		default:
			it.cursor = page.LastKey
			it.offset += it.limit
		}
	}
	return leetcode.Submission{}, false, nil
}

// nextPage fetches the page at the current position, retrying transient
// failures until it succeeds. Every attempt is followed by a pause.
func (it *SubmissionIterator) nextPage(ctx context.Context) (leetcode.Page, error) {
	for {
		it.log.WithField("offset", it.offset).Debug("Fetching submissions")
		page, err := it.fetch(ctx, it.cursor, it.offset, it.limit)
		if ctx.Err() != nil {
			return leetcode.Page{}, ctx.Err()
		}

		if pauseErr := it.pacer.Pause(ctx); pauseErr != nil {
			return leetcode.Page{}, pauseErr
		}

		if err == nil {
			return page, nil
		}

		if !errors.IsTransient(err) {
			return leetcode.Page{}, errors.WithContext(err, "fetch page")
		}

		metrics.PageRetries.Inc()
		it.log.WithError(err).WithField("offset", it.offset).Warn(
			"Failed to fetch submissions. Retrying.")
	}
}
