package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"brokerdocs/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The source directory exists; the target directory does not.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.SourceDir = filepath.Join(base, "input")
	cfgVal.Paths.TargetDir = filepath.Join(base, "output")
	cfgVal.Paths.EnvFile = ""
	cfgVal.Run.Broker = "traderepublic"
	cfgVal.Run.Language = "de"
	if err := os.MkdirAll(cfgVal.Paths.SourceDir, 0o755); err != nil {
		t.Fatalf("mkdir source dir: %v", err)
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithGrouping sets both grouping flags.
func WithGrouping(byType, byCode bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Run.GroupByType = byType
		b.cfg.Run.GroupByCode = byCode
	}
}

// WithKeepOldFiles toggles clearing of the target before a run.
func WithKeepOldFiles(keep bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Run.KeepOldFiles = keep
	}
}

// WithTranslations writes the given files into a translations directory and
// points the config at it.
func WithTranslations(files map[string]string) ConfigOption {
	return func(b *configBuilder) {
		dir := filepath.Join(b.baseDir, "translations")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			b.t.Fatalf("mkdir translations dir: %v", err)
		}
		for name, body := range files {
			if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
				b.t.Fatalf("write translation %s: %v", name, err)
			}
		}
		b.cfg.Paths.TranslationsDir = dir
	}
}

// WriteConfigFile serializes cfg's paths and run section into a TOML file
// under the config's base directory and returns its path.
func WriteConfigFile(t testing.TB, cfg *config.Config) string {
	t.Helper()
	path := filepath.Join(BaseDir(cfg), "brokerdocs.toml")
	body := "[paths]\n" +
		"source_dir = " + quote(cfg.Paths.SourceDir) + "\n" +
		"target_dir = " + quote(cfg.Paths.TargetDir) + "\n" +
		"translations_dir = " + quote(cfg.Paths.TranslationsDir) + "\n" +
		"env_file = \"\"\n\n" +
		"[run]\n" +
		"broker = " + quote(cfg.Run.Broker) + "\n" +
		"language = " + quote(cfg.Run.Language) + "\n" +
		"group_by_type = " + boolString(cfg.Run.GroupByType) + "\n" +
		"group_by_code = " + boolString(cfg.Run.GroupByCode) + "\n" +
		"keep_old_files = " + boolString(cfg.Run.KeepOldFiles) + "\n\n" +
		"[logging]\nlevel = \"error\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.SourceDir)
}

func quote(s string) string {
	return "'" + s + "'"
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
