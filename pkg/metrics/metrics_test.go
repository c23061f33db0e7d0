package metrics

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextfile(t *testing.T) {
	Watermark.Set(1569172899)
	Submissions.WithLabelValues("written").Add(3)
	assert.Equal(t, float64(1569172899), testutil.ToFloat64(Watermark))

	path := filepath.Join(t.TempDir(), "leetsync.prom")
	require.NoError(t, WriteTextfile(path))

	contents, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "leetsync_watermark_timestamp_seconds 1.569172899e+09")
	assert.Contains(t, string(contents), `leetsync_submissions_total{result="written"}`)

	// Only leetsync's own metrics are exported.
	assert.NotContains(t, string(contents), "go_goroutines")
}

func TestWriteTextfileBadPath(t *testing.T) {
	err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "leetsync.prom"))
	assert.Error(t, err)
}
