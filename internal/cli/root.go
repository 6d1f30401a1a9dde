// Package cli implements the command-line interface for gocube.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver/internal/config"
	"github.com/SeamusWaldron/gocube_solver/internal/storage"
)

const version = "0.2.0"

var (
	// Global flags
	cfgPath string
	dbPath  string
	verbose bool

	// Loaded by PersistentPreRunE
	cfgFile *config.File
	cfg     = config.Default()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "gocube",
	Short: "Two-phase Rubik's Cube solver",
	Long: `gocube - A command-line Rubik's Cube solver.

Solve any valid 3x3 cube in at most 22 moves using the two-phase method,
generate random-state scrambles, check facelet strings for errors, and
step through saved solutions one move at a time.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file path (default: ~/.gocube_solver/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.gocube_solver/history.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// setup loads the configuration and points the logger at stderr.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgPath != "" {
		cfgFile, err = config.Load(cfgPath)
	} else {
		cfgFile, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}
	cfg = cfgFile.Config()

	level := cfg.Level()
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
		NoColor:    !cfg.Color,
	}).With().Timestamp().Logger()

	return nil
}

// getDBPath returns the database path from flag or config.
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.DBPath // Empty uses the default
}

func openDB() (*storage.DB, error) {
	path := getDBPath()
	var db *storage.DB
	var err error

	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	log.Debug().Str("path", db.Path()).Msg("opened-history")
	return db, nil
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}
