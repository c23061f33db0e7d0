package report

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sidkik/leetsync/pkg/version"
)

var (
	// Log is the global report logger. Log events created via this object are
	// posted to the report webhook, if one is configured.
	Log = newReportLogger()

	// The webhook that events are posted to. Nothing is posted while it's
	// empty.
	endpoint string

	// Optional values for automatically enriching the reported events.
	source string
	runID  string

	// Mocked out for unit testing.
	httpPost = http.Post
)

const (
	contentType = "application/json"

	eventStream   = "event"
	loggingStream = "logging"
)

// formatter renames the standard fields so that the payload reads naturally
// in chat webhooks and log collectors.
var formatter = &logrus.JSONFormatter{
	FieldMap: logrus.FieldMap{
		logrus.FieldKeyTime:  "timestamp",
		logrus.FieldKeyLevel: "status",
		logrus.FieldKeyMsg:   "message",
	},
}

func newReportLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)
	logger.AddHook(&hook{logrus.AllLevels, eventStream})
	return logger
}

// Configure sets the webhook that events are posted to. An empty URL
// disables reporting.
func Configure(url string) {
	endpoint = url
}

// NewLogHook creates a new hook that forwards warnings and errors to the
// report webhook.
func NewLogHook() logrus.Hook {
	levels := []logrus.Level{logrus.WarnLevel, logrus.ErrorLevel}
	return &hook{levels, loggingStream}
}

// SetSource sets the command that is automatically added to reported events.
func SetSource(s string) {
	source = s
}

// SetRunID sets the run ID that is automatically added to reported events.
func SetRunID(id string) {
	runID = id
}

type hook struct {
	levels     []logrus.Level
	streamType string
}

func (h *hook) Levels() []logrus.Level {
	return h.levels
}

func (h *hook) Fire(entry *logrus.Entry) error {
	if endpoint == "" {
		return nil
	}

	tags := []string{
		fmt.Sprintf("stream:%s", h.streamType),
		fmt.Sprintf("leetsync-version:%s", version.Version),
	}
	if runID != "" {
		tags = append(tags, fmt.Sprintf("run:%s", runID))
	}

	dataCopy := map[string]interface{}{
		"source": source,
		"tags":   strings.Join(tags, ","),
	}
	for k, v := range entry.Data {
		dataCopy[k] = v
	}

	// Copy the entry so that we don't change it when we add the report
	// specific values to Data.
	entryCopy := *entry
	entryCopy.Data = dataCopy

	if entry.Level == logrus.PanicLevel {
		entryCopy.Level = logrus.FatalLevel
	}

	jsonBytes, err := formatter.Format(&entryCopy)
	if err != nil {
		logrus.WithError(err).Debug("Failed to marshal log entry for report")
		return nil
	}

	resp, err := httpPost(endpoint, contentType, bytes.NewReader(jsonBytes))
	if err != nil {
		logrus.WithError(err).Debug("Failed to post report")
	} else {
		// Close the body to avoid leaking resources.
		resp.Body.Close()
	}

	// Never return an error because doing so causes the error to be printed
	// directly to `stderr`: https://github.com/Sirupsen/logrus/issues/116
	return nil
}
