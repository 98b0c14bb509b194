package config

import (
	"errors"
	"fmt"
	"regexp"
)

var codePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Validate ensures the configuration is usable. Broker and language values are
// checked for shape only; whether they are supported is decided by the broker
// and translation tables at run time.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateRun(); err != nil {
		return err
	}
	if err := c.validateExtraction(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.SourceDir == "" {
		return errors.New("paths.source_dir must be set")
	}
	if c.Paths.TargetDir == "" {
		return errors.New("paths.target_dir must be set")
	}
	if c.Paths.SourceDir == c.Paths.TargetDir {
		return errors.New("paths.source_dir and paths.target_dir must differ")
	}
	return nil
}

func (c *Config) validateRun() error {
	if !codePattern.MatchString(c.Run.Broker) {
		return fmt.Errorf("run.broker %q is not a valid broker code", c.Run.Broker)
	}
	if !codePattern.MatchString(c.Run.Language) {
		return fmt.Errorf("run.language %q is not a valid language code", c.Run.Language)
	}
	return nil
}

func (c *Config) validateExtraction() error {
	if c.Extraction.MaxPages < 0 {
		return errors.New("extraction.max_pages must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}
