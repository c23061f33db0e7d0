package backfill

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidkik/leetsync/pkg/config"
	"github.com/sidkik/leetsync/pkg/errors"
	"github.com/sidkik/leetsync/pkg/sync"
)

type fakeBackfiller struct {
	slugs []string
	res   sync.Result
	err   error
}

func (b *fakeBackfiller) Backfill(_ context.Context, slugs []string) (sync.Result, error) {
	b.slugs = slugs
	return b.res, b.err
}

func TestRunBackfill(t *testing.T) {
	metricsFile := filepath.Join(t.TempDir(), "leetsync.prom")
	cfg := config.Config{MetricsFile: metricsFile}
	syncer := &fakeBackfiller{res: sync.Result{
		Username:  "kevin",
		Processed: 4,
		Written:   4,
	}}

	var out bytes.Buffer
	slugs := []string{"two-sum", "add-two-numbers"}
	err := runBackfill(context.Background(), &out, cfg, syncer, slugs)
	require.NoError(t, err)
	assert.Equal(t, slugs, syncer.slugs)
	assert.Equal(t, "Synced 4 submissions for 2 problems (0 skipped, 0 failed).\n", out.String())

	exists, err := afero.Exists(afero.NewOsFs(), metricsFile)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRunBackfillError(t *testing.T) {
	metricsFile := filepath.Join(t.TempDir(), "leetsync.prom")
	cfg := config.Config{MetricsFile: metricsFile}
	syncer := &fakeBackfiller{err: errors.WithContext(assert.AnError, "no-such-problem")}

	var out bytes.Buffer
	err := runBackfill(context.Background(), &out, cfg, syncer, []string{"no-such-problem"})
	assert.Equal(t, assert.AnError, errors.RootCause(err))
	assert.Empty(t, out.String())

	exists, err := afero.Exists(afero.NewOsFs(), metricsFile)
	require.NoError(t, err)
	assert.True(t, exists)
}
