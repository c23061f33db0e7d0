package util

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sidkik/leetsync/pkg/config"
	"github.com/sidkik/leetsync/pkg/errors"
	"github.com/sidkik/leetsync/pkg/language"
	"github.com/sidkik/leetsync/pkg/leetcode"
	"github.com/sidkik/leetsync/pkg/leetcode/mocks"
	"github.com/sidkik/leetsync/pkg/sync"
)

func TestHandleFatalError(t *testing.T) {
	var exitCode int
	exit = func(code int) {
		exitCode = code
	}

	HandleFatalError(errors.WithContext(errors.ErrInvalidSession, "validate session"))
	assert.Equal(t, 1, exitCode)
}

func TestNewClient(t *testing.T) {
	t.Setenv(config.SessionEnvKey, "session")
	t.Setenv(config.CSRFTokenEnvKey, "csrf")

	var opts leetcode.Options
	newClient = func(o leetcode.Options) leetcode.Client {
		opts = o
		return &mocks.Client{}
	}
	defer func() { newClient = leetcode.New }()

	cfg := config.Config{APIURL: "http://localhost/api", RequestTimeout: config.Duration(time.Second)}
	_, err := NewClient(cfg)
	require.NoError(t, err)
	assert.Equal(t, leetcode.Options{
		APIURL:    "http://localhost/api",
		Session:   "session",
		CSRFToken: "csrf",
		Timeout:   time.Second,
	}, opts)
}

func TestNewSyncer(t *testing.T) {
	t.Setenv(config.SessionEnvKey, "session")
	t.Setenv(config.CSRFTokenEnvKey, "csrf")

	client := &mocks.Client{}
	client.On("Authenticate", mock.Anything).Return("kevin", nil)
	client.On("ListSubmissions", mock.Anything, "", 0, 5).Return(leetcode.Page{
		Submissions: []leetcode.Submission{{
			ID:         7,
			Title:      "Two Sum",
			TitleSlug:  "two-sum",
			QuestionID: 1,
			Status:     leetcode.StatusAccepted,
			Lang:       "zig",
			Code:       "const x = 1;",
			Timestamp:  1569172899,
		}},
	}, nil)
	client.On("FetchProblem", mock.Anything, "two-sum").Return(leetcode.Problem{
		QuestionID: 1,
		Title:      "Two Sum",
		TitleSlug:  "two-sum",
		Difficulty: "Easy",
	}, nil)

	newClient = func(leetcode.Options) leetcode.Client { return client }
	defer func() { newClient = leetcode.New }()
	fs = afero.NewMemMapFs()
	clock = clockwork.NewFakeClock()

	cfg := config.Config{
		Output:        "/out",
		WatermarkFile: "state/watermark",
		PageSize:      5,
		Languages: language.Profiles{
			"zig": {Extension: "zig", CommentSyntax: "//"},
		},
	}
	syncer, err := NewSyncer(cfg)
	require.NoError(t, err)

	res, err := syncer.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Written)
	client.AssertExpectations(t)

	exists, err := afero.Exists(fs, "/out/problems/0001.two-sum/solution_7.zig")
	require.NoError(t, err)
	assert.True(t, exists)

	watermark, err := afero.ReadFile(fs, filepath.Join("/out", "state", "watermark"))
	require.NoError(t, err)
	assert.Equal(t, "1569172899", string(watermark))
}

func TestNewSyncerBadTemplate(t *testing.T) {
	t.Setenv(config.SessionEnvKey, "session")
	t.Setenv(config.CSRFTokenEnvKey, "csrf")
	newClient = func(leetcode.Options) leetcode.Client { return &mocks.Client{} }
	defer func() { newClient = leetcode.New }()

	cfg := config.Config{Output: "/out"}
	cfg.Templates.Solution = "{{ .Code"
	_, err := NewSyncer(cfg)
	assert.Error(t, err)
}

func TestFinishRun(t *testing.T) {
	var written []string
	writeMetrics = func(path string) error {
		written = append(written, path)
		return nil
	}

	FinishRun(config.Config{}, sync.Result{}, nil)
	assert.Empty(t, written)

	cfg := config.Config{MetricsFile: "/var/lib/node_exporter/leetsync.prom"}
	FinishRun(cfg, sync.Result{}, assert.AnError)
	assert.Equal(t, []string{"/var/lib/node_exporter/leetsync.prom"}, written)
}
