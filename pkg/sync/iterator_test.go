package sync

import (
	"context"
	"testing"

	logrusTest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidkik/leetsync/pkg/errors"
	"github.com/sidkik/leetsync/pkg/leetcode"
)

type countingPauser struct {
	pauses int
}

func (p *countingPauser) Pause(ctx context.Context) error {
	p.pauses++
	return ctx.Err()
}

type pageRequest struct {
	cursor        string
	offset, limit int
}

type pageReply struct {
	page leetcode.Page
	err  error
}

// scriptedPages returns a pageSource that replies with `replies` in order,
// and records every request.
func scriptedPages(t *testing.T, replies []pageReply, requests *[]pageRequest) pageSource {
	return func(_ context.Context, cursor string, offset, limit int) (leetcode.Page, error) {
		*requests = append(*requests, pageRequest{cursor, offset, limit})
		require.True(t, len(*requests) <= len(replies), "unexpected page request")
		reply := replies[len(*requests)-1]
		return reply.page, reply.err
	}
}

func accepted(id, timestamp int64) leetcode.Submission {
	return leetcode.Submission{ID: id, Status: leetcode.StatusAccepted, Timestamp: timestamp}
}

func drain(t *testing.T, it *SubmissionIterator) []int64 {
	var timestamps []int64
	for {
		s, ok, err := it.Next(context.Background())
		require.NoError(t, err)
		if !ok {
			return timestamps
		}
		timestamps = append(timestamps, s.Timestamp)
	}
}

func TestIteratorStopsAtWatermark(t *testing.T) {
	var requests []pageRequest
	fetch := scriptedPages(t, []pageReply{
		{page: leetcode.Page{
			Submissions: []leetcode.Submission{
				accepted(4, 50), accepted(3, 40), accepted(2, 30), accepted(1, 20),
			},
			HasNext: true,
			LastKey: "next",
		}},
	}, &requests)

	logger, _ := logrusTest.NewNullLogger()
	it := newIterator(fetch, &countingPauser{}, logger, 35, 4)
	assert.Equal(t, []int64{50, 40}, drain(t, it))
	assert.Equal(t, []pageRequest{{"", 0, 4}}, requests)

	// The iterator stays exhausted.
	_, ok, err := it.Next(context.Background())
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, requests, 1)
}

func TestIteratorPagination(t *testing.T) {
	wrongAnswer := accepted(5, 55)
	wrongAnswer.Status = "Wrong Answer"

	var requests []pageRequest
	fetch := scriptedPages(t, []pageReply{
		{page: leetcode.Page{
			Submissions: []leetcode.Submission{accepted(6, 60), wrongAnswer},
			HasNext:     true,
			LastKey:     "key-1",
		}},
		{page: leetcode.Page{
			Submissions: []leetcode.Submission{accepted(4, 40), accepted(3, 30)},
			HasNext:     true,
			LastKey:     "key-2",
		}},
		{page: leetcode.Page{
			Submissions: []leetcode.Submission{accepted(2, 20)},
			HasNext:     false,
		}},
	}, &requests)

	pauser := &countingPauser{}
	logger, _ := logrusTest.NewNullLogger()
	it := newIterator(fetch, pauser, logger, 0, 2)
	assert.Equal(t, []int64{60, 40, 30, 20}, drain(t, it))
	assert.Equal(t, []pageRequest{
		{"", 0, 2},
		{"key-1", 2, 2},
		{"key-2", 4, 2},
	}, requests)
	assert.Equal(t, 3, pauser.pauses)
}

func TestIteratorEmptyPage(t *testing.T) {
	var requests []pageRequest
	fetch := scriptedPages(t, []pageReply{
		{page: leetcode.Page{HasNext: true, LastKey: "key"}},
	}, &requests)

	logger, _ := logrusTest.NewNullLogger()
	it := newIterator(fetch, &countingPauser{}, logger, 0, 20)
	assert.Empty(t, drain(t, it))
	assert.Len(t, requests, 1)
}

func TestIteratorRetriesTransientFailures(t *testing.T) {
	transient := errors.Transient{Op: "list submissions", Err: errors.New("502")}

	var requests []pageRequest
	fetch := scriptedPages(t, []pageReply{
		{page: leetcode.Page{
			Submissions: []leetcode.Submission{accepted(3, 30)},
			HasNext:     true,
			LastKey:     "key-1",
		}},
		{err: transient},
		{err: transient},
		{page: leetcode.Page{Submissions: []leetcode.Submission{accepted(2, 20)}}},
	}, &requests)

	pauser := &countingPauser{}
	logger, logHook := logrusTest.NewNullLogger()
	it := newIterator(fetch, pauser, logger, 0, 1)
	assert.Equal(t, []int64{30, 20}, drain(t, it))

	// Failed pages are retried at the same position.
	assert.Equal(t, []pageRequest{
		{"", 0, 1},
		{"key-1", 1, 1},
		{"key-1", 1, 1},
		{"key-1", 1, 1},
	}, requests)
	assert.Equal(t, 4, pauser.pauses)

	var warnings int
	for _, entry := range logHook.AllEntries() {
		if entry.Message == "Failed to fetch submissions. Retrying." {
			warnings++
		}
	}
	assert.Equal(t, 2, warnings)
}

func TestIteratorPermanentFailure(t *testing.T) {
	var requests []pageRequest
	fetch := scriptedPages(t, []pageReply{
		{err: assert.AnError},
	}, &requests)

	logger, _ := logrusTest.NewNullLogger()
	it := newIterator(fetch, &countingPauser{}, logger, 0, 20)
	_, ok, err := it.Next(context.Background())
	assert.False(t, ok)
	assert.Equal(t, assert.AnError, errors.RootCause(err))
}

func TestIteratorCancelled(t *testing.T) {
	var requests []pageRequest
	fetch := scriptedPages(t, []pageReply{
		{page: leetcode.Page{
			Submissions: []leetcode.Submission{accepted(2, 20), accepted(1, 10)},
		}},
	}, &requests)

	ctx, cancel := context.WithCancel(context.Background())
	logger, _ := logrusTest.NewNullLogger()
	it := newIterator(fetch, &countingPauser{}, logger, 0, 20)

	s, ok, err := it.Next(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(20), s.Timestamp)

	cancel()
	_, ok, err = it.Next(ctx)
	assert.False(t, ok)
	assert.Equal(t, context.Canceled, err)
}
