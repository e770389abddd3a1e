package config

const (
	defaultStateDir  = "~/.local/share/shelve"
	defaultLogDir    = "~/.local/share/shelve/logs"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"

	historyFileName = "history.db"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: true,
		},
	}
}
