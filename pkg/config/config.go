package config

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
	"github.com/spf13/afero"

	"github.com/sidkik/leetsync/pkg/errors"
)

// invalidYAMLTemplate is shown when the config file isn't valid YAML or
// doesn't match the Config schema. The parser's message is passed through
// as-is.
const invalidYAMLTemplate = "The leetsync config %q is invalid.\n" +
	"Check that every field is spelled correctly and has the right type.\n\n" +
	"Parser error: %s"

type incompatibleVersionError struct {
	path, exp, actual string
}

func (err incompatibleVersionError) Error() string {
	return err.FriendlyMessage()
}

func (err incompatibleVersionError) FriendlyMessage() string {
	return fmt.Sprintf("The leetsync config %q has version %q, but this "+
		"build of leetsync only reads version %q.", err.path, err.actual, err.exp)
}

// readConfig decodes the file at `path` into `config`. Fields that are
// already set are kept unless the file overrides them.
func readConfig(path string, config *Config) error {
	configBytes, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.FileNotFound{Path: path}
		}
		return errors.WithContext(err, "read file")
	}

	if err := yaml.Unmarshal(configBytes, config); err != nil {
		return errors.NewFriendlyError(invalidYAMLTemplate, path, err)
	}

	// Unknown fields are only rejected once the version is known to match,
	// so that a config written for another version reports the mismatch.
	if config.Version != SupportedConfigVersion {
		return incompatibleVersionError{path, SupportedConfigVersion, config.Version}
	}

	err = yaml.UnmarshalStrict(configBytes, config, yaml.DisallowUnknownFields)
	if err != nil {
		return errors.NewFriendlyError(invalidYAMLTemplate, path, err)
	}
	return nil
}
