package config

import (
	"encoding/json"
	"path/filepath"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"

	"github.com/sidkik/leetsync/pkg/artifact"
	"github.com/sidkik/leetsync/pkg/errors"
	"github.com/sidkik/leetsync/pkg/language"
	"github.com/sidkik/leetsync/pkg/leetcode"
	"github.com/sidkik/leetsync/pkg/sync"
	"github.com/sidkik/leetsync/pkg/watermark"
)

const (
	// DefaultConfigPath is the default path to the leetsync config.
	DefaultConfigPath = "~/.leetsync.yaml"

	// InitialConfigVersion is the first version of the leetsync config.
	// Config files that do not specify a version will default to this
	// version.
	InitialConfigVersion = "v1alpha1"

	// SupportedConfigVersion is the config version supported by the current
	// leetsync binary.
	SupportedConfigVersion = "v1alpha1"
)

// Config is the optional leetsync config file. Every field has a default, so
// the file may be omitted entirely.
type Config struct {
	Version string `json:"version,omitempty"`

	// Output is the root of the local tree. It defaults to the working
	// directory.
	Output string `json:"output,omitempty"`

	// WatermarkFile defaults to a hidden file in Output. Relative paths are
	// evaluated relative to Output.
	WatermarkFile string `json:"watermarkFile,omitempty"`

	PageSize       int      `json:"pageSize,omitempty"`
	MaxPause       Duration `json:"maxPause,omitempty"`
	RequestTimeout Duration `json:"requestTimeout,omitempty"`

	GraphQLURL string `json:"graphqlURL,omitempty"`
	APIURL     string `json:"apiURL,omitempty"`
	UserAgent  string `json:"userAgent,omitempty"`

	// Languages are added to the built-in language table. They can't
	// override a built-in entry.
	Languages language.Profiles `json:"languages,omitempty"`

	Templates artifact.Templates `json:"templates,omitempty"`

	// MetricsFile is where the Prometheus textfile is written after each
	// run. Metrics aren't written if it's empty.
	MetricsFile string `json:"metricsFile,omitempty"`

	// ReportURL receives a JSON event for warnings, errors, and run
	// summaries. Nothing is reported if it's empty.
	ReportURL string `json:"reportURL,omitempty"`
}

// Duration is a time.Duration that's written as a string such as "1.5s" in
// the config file.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.New("durations must be strings such as \"1s\"")
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// homedirExpand will be overridden in mock tests
var homedirExpand = homedir.Expand

// Parse parses the config at `path`, or at DefaultConfigPath if `path` is
// empty, and fills in defaults for the unset fields. The default config file
// doesn't have to exist, but an explicitly requested one does.
func Parse(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	path, err := homedirExpand(path)
	if err != nil {
		return Config{}, errors.WithContext(err, "expand config path")
	}

	config := Config{Version: InitialConfigVersion}
	if err := readConfig(path, &config); err != nil {
		if _, ok := err.(errors.FileNotFound); !ok {
			return Config{}, errors.WithContext(err, "parse")
		}
		if explicit {
			return Config{}, errors.NewFriendlyError(
				"The leetsync config file doesn't exist at %q.", path)
		}
		log.WithField("path", path).Debug("No config file found. Using defaults.")
		config = Config{Version: SupportedConfigVersion}
	}

	if err := config.setDefaults(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c *Config) setDefaults() error {
	if c.PageSize < 0 {
		return errors.NewFriendlyError("pageSize must be positive, got %d.", c.PageSize)
	}
	if c.MaxPause < 0 {
		return errors.NewFriendlyError("maxPause must be positive, got %s.",
			time.Duration(c.MaxPause))
	}
	if c.RequestTimeout < 0 {
		return errors.NewFriendlyError("requestTimeout must be positive, got %s.",
			time.Duration(c.RequestTimeout))
	}

	if c.Output == "" {
		c.Output = "."
	}
	if c.WatermarkFile == "" {
		c.WatermarkFile = watermark.DefaultFilename
	}
	if c.PageSize == 0 {
		c.PageSize = sync.DefaultPageSize
	}
	if c.MaxPause == 0 {
		c.MaxPause = Duration(leetcode.DefaultMaxPause)
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = Duration(leetcode.DefaultTimeout)
	}

	var err error
	c.Output, err = homedirExpand(c.Output)
	if err != nil {
		return errors.WithContext(err, "expand output path")
	}

	c.WatermarkFile, err = homedirExpand(c.WatermarkFile)
	if err != nil {
		return errors.WithContext(err, "expand watermark path")
	}

	if c.MetricsFile != "" {
		c.MetricsFile, err = homedirExpand(c.MetricsFile)
		if err != nil {
			return errors.WithContext(err, "expand metrics path")
		}
	}
	return nil
}

// WatermarkPath returns the path to the watermark file. A relative
// WatermarkFile is evaluated relative to the output directory.
func (c Config) WatermarkPath() string {
	if filepath.IsAbs(c.WatermarkFile) {
		return c.WatermarkFile
	}
	return filepath.Join(c.Output, c.WatermarkFile)
}

// ClientOptions returns the options for connecting to LeetCode with the
// given credentials.
func (c Config) ClientOptions(creds Credentials) leetcode.Options {
	return leetcode.Options{
		GraphQLURL: c.GraphQLURL,
		APIURL:     c.APIURL,
		Session:    creds.Session,
		CSRFToken:  creds.CSRFToken,
		UserAgent:  c.UserAgent,
		Timeout:    time.Duration(c.RequestTimeout),
	}
}
