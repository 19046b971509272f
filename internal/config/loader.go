package config

import (
	"errors"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes     chan<- Config
	done        chan struct{}
	closeOnce   sync.Once
	defaultFile string
}

// NewLoader creates a loader searching searchPaths in order. With no paths, the xdg config dir and
// the working directory are searched. The first path also receives the config file on first run.
func NewLoader(changes chan<- Config, searchPaths ...string) *Loader {
	if len(searchPaths) == 0 {
		searchPaths = []string{Path(""), "."}
	}

	defaults := Default()
	loader := Loader{
		changes:     changes,
		done:        make(chan struct{}),
		Viper:       viper.New(),
		defaultFile: filepath.Join(searchPaths[0], DefaultConfigName+"."+DefaultConfigType),
	}
	loader.SetDefault("debug", defaults.Debug)
	loader.SetDefault("fps", defaults.FPS)
	loader.SetDefault("mouse_enabled", defaults.MouseEnabled)
	loader.SetDefault("compact_width", defaults.CompactWidth)
	loader.SetDefault("log_level", defaults.LogLevel)
	loader.SetDefault("database_path", defaults.DatabasePath)
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType(DefaultConfigType)
	loader.SetEnvPrefix(EnvPrefix)
	for _, searchPath := range searchPaths {
		loader.AddConfigPath(searchPath)
	}
	loader.AutomaticEnv()

	return &loader
}

// Watch starts reloading the config whenever the file in use changes on disk. Must be called after
// a config file has been read.
func (cl *Loader) Watch() {
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	if used := cl.ConfigFileUsed(); used != "" {
		return used
	}

	return cl.defaultFile
}

// Dir is the directory holding the config file in use. Logs and the default database live next to it.
func (cl *Loader) Dir() string {
	return filepath.Dir(cl.Path())
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if in.Op != fsnotify.Write && in.Op != fsnotify.Rename {
		return
	}

	slog.Debug("External config reload triggered")
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	if cl.changes == nil {
		return
	}

	select {
	case cl.changes <- config:
	case <-cl.done:
		slog.Debug("Config reload dropped, loader closed")
	}
}

// Close stops delivering reloaded configs. Pending and future reloads are dropped instead of
// blocking the watcher.
func (cl *Loader) Close() {
	cl.closeOnce.Do(func() { close(cl.done) })
}

func (cl *Loader) Write(config Config) error {
	cl.Set("debug", config.Debug)
	cl.Set("fps", config.FPS)
	cl.Set("mouse_enabled", config.MouseEnabled)
	cl.Set("compact_width", config.CompactWidth)
	cl.Set("log_level", config.LogLevel)
	cl.Set("database_path", config.DatabasePath)

	var errWrite error
	if cl.ConfigFileUsed() == "" {
		errWrite = cl.WriteConfigAs(cl.defaultFile)
	} else {
		errWrite = cl.WriteConfig()
	}

	if errWrite != nil {
		return errors.Join(errWrite, errConfigWrite)
	}

	return nil
}

func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, ErrConfigNotFound)
		}

		return Config{}, errors.Join(err, errConfigRead)
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if config.FPS <= 0 {
		config.FPS = DefaultFPS
	}

	if config.CompactWidth <= 0 {
		config.CompactWidth = DefaultCompactWidth
	}

	return config, nil
}
