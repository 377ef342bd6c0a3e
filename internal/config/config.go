package config

import (
	"errors"
	"os"
	"strings"
)

type Config struct {
	SourceDir string
	TargetDir string
	Subdir    string
	Plain     bool
	NoPreview bool
	Verbose   bool
	Debug     bool
}

// ApplyEnv fills fields left empty on the command line from PHOTRIAGE_*
// variables.
func (c *Config) ApplyEnv() {
	if c.SourceDir == "" {
		c.SourceDir = envOrEmpty("PHOTRIAGE_FROM")
	}
	if c.TargetDir == "" {
		c.TargetDir = envOrEmpty("PHOTRIAGE_TO")
	}
	if c.Subdir == "" {
		c.Subdir = envOrEmpty("PHOTRIAGE_SUBDIR")
	}
	if !c.Verbose {
		c.Verbose = envTruthy("PHOTRIAGE_VERBOSE")
	}
}

func (c Config) Validate() error {
	if c.SourceDir == "" || c.TargetDir == "" {
		return errors.New("from and to are required")
	}
	return nil
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
