package config

const (
	defaultSourceDir    = "./input"
	defaultTargetDir    = "./output"
	defaultBroker       = "traderepublic"
	defaultLanguage     = "de"
	defaultMaxPages     = 1
	defaultVerifyCopies = true
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultEnvFile      = ".env"
)

// Default returns a Config populated with repository defaults. Broker and
// language stay empty so environment fallbacks can fill them during
// normalization.
func Default() Config {
	return Config{
		Paths: Paths{
			SourceDir: defaultSourceDir,
			TargetDir: defaultTargetDir,
			EnvFile:   defaultEnvFile,
		},
		Extraction: Extraction{
			MaxPages:     defaultMaxPages,
			VerifyCopies: defaultVerifyCopies,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
