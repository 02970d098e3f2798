package config

const (
	defaultLanguage  = ""
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// Default returns a Config populated with repository defaults. An empty
// default language means the language is auto-detected per file.
func Default() Config {
	return Config{
		Defaults: Defaults{
			Language: defaultLanguage,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
