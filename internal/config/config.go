package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/adrg/xdg"
)

var (
	errConfigWrite    = errors.New("failed to write config file")
	errConfigRead     = errors.New("failed to read config file")
	errLoggerInit     = errors.New("failed to initialize logger")
	ErrConfigNotFound = errors.New("config file not found")
)

const (
	ConfigDirName       = "zona"
	DefaultConfigName   = "zona"
	DefaultConfigType   = "yaml"
	DefaultDBName       = "zona.db"
	DefaultLogName      = "zona.log"
	EnvPrefix           = "zona"
	DefaultFPS          = 30
	DefaultCompactWidth = 80
)

type Config struct {
	Debug bool `mapstructure:"debug"`
	// FPS caps the renderer frame rate.
	FPS          int  `mapstructure:"fps"`
	MouseEnabled bool `mapstructure:"mouse_enabled"`
	// CompactWidth is the terminal width below which the inline navbar collapses into the
	// toggleable menu.
	CompactWidth int    `mapstructure:"compact_width"`
	LogLevel     string `mapstructure:"log_level"`
	// DatabasePath points at the ratings database. Empty uses zona.db in the config dir.
	DatabasePath string `mapstructure:"database_path"`
}

// Default returns the configuration written on first run.
func Default() Config {
	return Config{
		Debug:        false,
		FPS:          DefaultFPS,
		MouseEnabled: true,
		CompactWidth: DefaultCompactWidth,
		LogLevel:     "info",
		DatabasePath: "",
	}
}

// Level parses LogLevel, falling back to info for unknown values.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}

	return level
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(logPath)
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
