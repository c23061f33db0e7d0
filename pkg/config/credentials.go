package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/sidkik/leetsync/pkg/errors"
)

const (
	// SessionEnvKey is the environment variable holding the LEETCODE_SESSION
	// browser cookie.
	SessionEnvKey = "LEETCODE_SESSION"

	// CSRFTokenEnvKey is the environment variable holding the csrftoken
	// browser cookie.
	CSRFTokenEnvKey = "LEETCODE_CSRF_TOKEN"

	// DotenvPath is the env file that's loaded, if it exists, before reading
	// the credentials from the environment.
	DotenvPath = ".env"
)

// Credentials authenticate requests to LeetCode as the user.
type Credentials struct {
	Session   string
	CSRFToken string
}

// ParseCredentials reads the credentials from the environment. Variables in
// the env file at `dotenvPath` are used as a fallback for variables that
// aren't set.
func ParseCredentials(dotenvPath string) (Credentials, error) {
	if err := loadDotenv(dotenvPath); err != nil {
		return Credentials{}, errors.WithContext(err, "load env file")
	}

	creds := Credentials{
		Session:   os.Getenv(SessionEnvKey),
		CSRFToken: os.Getenv(CSRFTokenEnvKey),
	}

	var missing []string
	if creds.Session == "" {
		missing = append(missing, SessionEnvKey)
	}
	if creds.CSRFToken == "" {
		missing = append(missing, CSRFTokenEnvKey)
	}
	if len(missing) != 0 {
		return Credentials{}, errors.NewFriendlyError("Missing LeetCode credentials: %s.\n"+
			"Set them in the environment or in %q. Their values are the "+
			"cookies of the same name in a logged in browser session.",
			strings.Join(missing, ", "), dotenvPath)
	}
	return creds, nil
}

// loadDotenv sets the variables defined in the env file, without overriding
// variables that are already set. A missing file is ignored.
func loadDotenv(path string) error {
	f, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", path).Debug("No env file found")
			return nil
		}
		return errors.WithContext(err, "open")
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return errors.NewFriendlyError("The env file %q could not be parsed:\n%s", path, err)
	}

	for key, val := range vars {
		if _, ok := os.LookupEnv(key); ok {
			continue
		}
		if err := os.Setenv(key, val); err != nil {
			return errors.WithContext(err, "set "+key)
		}
	}
	return nil
}
