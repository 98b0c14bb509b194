package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeRun(); err != nil {
		return err
	}
	c.normalizeExtraction()
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.SourceDir) == "" {
		c.Paths.SourceDir = defaultSourceDir
	}
	if c.Paths.SourceDir, err = expandPath(c.Paths.SourceDir); err != nil {
		return fmt.Errorf("paths.source_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.TargetDir) == "" {
		c.Paths.TargetDir = defaultTargetDir
	}
	if c.Paths.TargetDir, err = expandPath(c.Paths.TargetDir); err != nil {
		return fmt.Errorf("paths.target_dir: %w", err)
	}
	c.Paths.TranslationsDir = strings.TrimSpace(c.Paths.TranslationsDir)
	if c.Paths.TranslationsDir, err = expandPath(c.Paths.TranslationsDir); err != nil {
		return fmt.Errorf("paths.translations_dir: %w", err)
	}
	if c.Paths.EnvFile, err = expandPath(strings.TrimSpace(c.Paths.EnvFile)); err != nil {
		return fmt.Errorf("paths.env_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeRun() error {
	dotenv, err := readEnvFile(c.Paths.EnvFile)
	if err != nil {
		return err
	}
	c.Run.Broker = strings.ToLower(strings.TrimSpace(c.Run.Broker))
	if c.Run.Broker == "" {
		c.Run.Broker = lookupEnv(dotenv, "BROKERDOCS_BROKER", "BROKER")
	}
	if c.Run.Broker == "" {
		c.Run.Broker = defaultBroker
	}
	c.Run.Language = strings.ToLower(strings.TrimSpace(c.Run.Language))
	if c.Run.Language == "" {
		c.Run.Language = lookupEnv(dotenv, "BROKERDOCS_LANGUAGE", "LANGUAGE")
	}
	if c.Run.Language == "" {
		c.Run.Language = defaultLanguage
	}
	return nil
}

func (c *Config) normalizeExtraction() {
	if c.Extraction.MaxPages == 0 {
		c.Extraction.MaxPages = defaultMaxPages
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

// readEnvFile parses the optional dotenv file without touching the process
// environment. A missing file yields an empty map.
func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("paths.env_file: read %s: %w", path, err)
	}
	return values, nil
}

// lookupEnv returns the first non-empty value for keys, preferring the process
// environment over the dotenv file.
func lookupEnv(dotenv map[string]string, keys ...string) string {
	for _, key := range keys {
		if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
			return strings.ToLower(strings.TrimSpace(value))
		}
	}
	for _, key := range keys {
		if value := strings.TrimSpace(dotenv[key]); value != "" {
			return strings.ToLower(value)
		}
	}
	return ""
}
