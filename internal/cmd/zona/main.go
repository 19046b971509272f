package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"github.com/zona-batam/zona/internal/config"
	"github.com/zona-batam/zona/internal/store"
	"github.com/zona-batam/zona/internal/ui"
	"golang.org/x/sync/errgroup"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgDir         string
	rootCmd        = &cobra.Command{
		Use:   "zona",
		Short: "Explore Batam from your terminal",
		Long:  `zona - The ZoNa Batam tourism guide as a terminal UI`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about zona",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	ratingsCmd = &cobra.Command{
		Use:               "ratings",
		Short:             "Print the rating summary",
		Long:              "Print the summary of all star ratings submitted from the reviews section",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              ratings,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", config.Path(""), "Directory containing zona.yaml")
	rootCmd.AddCommand(versionCmd, ratingsCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("zona - Batam Terminal Guide\n\n")   //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)     //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)      //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)        //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion) //nolint:forbidigo
}

// loadConfig reads the user config, writing the defaults out first when no config file exists yet.
func loadConfig(configUpdates chan<- config.Config) (*config.Loader, config.Config, error) {
	// Make sure our config & data home exists.
	if err := os.MkdirAll(cfgDir, 0o750); err != nil {
		return nil, config.Config{}, errors.Join(err, errApp)
	}

	loader := config.NewLoader(configUpdates, cfgDir)
	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		if !errors.Is(errConfig, config.ErrConfigNotFound) {
			return nil, config.Config{}, errors.Join(errApp, errConfig)
		}

		if errWrite := loader.Write(config.Default()); errWrite != nil {
			return nil, config.Config{}, errors.Join(errApp, errWrite)
		}

		if userConfig, errConfig = loader.Read(); errConfig != nil {
			return nil, config.Config{}, errors.Join(errApp, errConfig)
		}
	}

	return loader, userConfig, nil
}

func databasePath(userConfig config.Config, dir string) string {
	if userConfig.DatabasePath != "" {
		return userConfig.DatabasePath
	}

	return filepath.Join(dir, config.DefaultDBName)
}

// ratings prints the stored rating summary without starting the UI.
func ratings(cmd *cobra.Command, _ []string) error {
	loader, userConfig, errConfig := loadConfig(nil)
	if errConfig != nil {
		return errConfig
	}

	database, errDB := store.Open(cmd.Context(), databasePath(userConfig, loader.Dir()), true)
	if errDB != nil {
		return errors.Join(errDB, errApp)
	}

	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Error closing database", slog.String("error", err.Error()))
		}
	}()

	summary, errSummary := store.New(database).RatingSummary(cmd.Context())
	if errSummary != nil {
		return errors.Join(errSummary, errApp)
	}

	fmt.Println(summary.String()) //nolint:forbidigo

	return nil
}

// run is the main entry point of zona.
func run(cmd *cobra.Command, _ []string) error {
	configUpdates := make(chan config.Config)

	configLoader, userConfig, errConfig := loadConfig(configUpdates)
	if errConfig != nil {
		return errConfig
	}

	configLoader.Watch()
	defer configLoader.Close()

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(filepath.Join(configLoader.Dir(), config.DefaultLogName), userConfig.Level())
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting zona", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()), slog.String("config", configLoader.Path()))

	// Setup the sqlite database system.
	dbPath := databasePath(userConfig, configLoader.Dir())
	database, errDB := store.Open(cmd.Context(), dbPath, true)
	if errDB != nil {
		return errors.Join(errDB, errApp)
	}

	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Error closing database", slog.String("error", err.Error()))
		}
	}()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	program := ui.New(ctx, userConfig, store.New(database), uuid.New(),
		ui.BuildInfo{Version: BuildVersion, Commit: BuildCommit, Date: BuildDate},
		configLoader.Path(), dbPath)
	app := NewApp(program, configUpdates)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		// Stop the forwarder once the user quits.
		defer cancel()

		return program.Run()
	})
	group.Go(func() error {
		return app.Start(groupCtx)
	})

	if err := group.Wait(); err != nil {
		slog.Error("Failed to run UI", slog.String("error", err.Error()))

		return errors.Join(err, errApp)
	}

	return nil
}
