// Package cmd provides the command-line interface for the tock countdown timer.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jhenders/tock/internal/config"
	"github.com/jhenders/tock/internal/duration"
	"github.com/jhenders/tock/internal/tui"
	"github.com/jhenders/tock/internal/version"
)

var (
	cfgFile string
	rootCmd *cobra.Command
)

// runTimer is swapped out in tests.
var runTimer = tui.Run

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.go. It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) error {
	if rootCmd == nil {
		rootCmd = NewRootCmd()
	}
	return rootCmd.ExecuteContext(ctx)
}

// NewRootCmd creates and returns the root command for tock
func NewRootCmd() *cobra.Command {
	var (
		dvd      bool
		noNotify bool
		fps      int
	)

	rootCmd := &cobra.Command{
		Use:   "tock <hh:mm:ss>",
		Short: "Full-screen countdown timer for the terminal",
		Long: `tock counts down the given hh:mm:ss duration in the terminal.
Space pauses and resumes; q, Esc, or Ctrl+C quits. When the countdown
expires the readout blinks and a desktop notification fires.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := duration.Parse(args[0])
			if err != nil {
				return err
			}

			settings := config.Resolve()
			if cmd.Flags().Changed("fps") {
				settings.FPS = fps
			}
			if cmd.Flags().Changed("dvd") {
				settings.DVD = dvd
			}
			if noNotify {
				settings.Notify = false
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			return runTimer(cmd.Context(), tui.Options{
				Duration: d,
				FPS:      settings.FPS,
				DVD:      settings.DVD,
				Notify:   settings.Notify,
			})
		},
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default locations: $XDG_CONFIG_HOME/tock/config.yaml, ~/.config/tock/config.yaml, or ~/.tock.yaml)")

	rootCmd.Flags().BoolVar(&dvd, "dvd", false, "let the readout drift and bounce around the terminal")
	rootCmd.Flags().BoolVar(&noNotify, "no-notify", false, "suppress the desktop notification on expiry")
	rootCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second for the display")

	// Add subcommands
	rootCmd.AddCommand(newConfigCmd())

	// PersistentPreRun handles configuration initialization
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initConfig()
	}

	return rootCmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find config file in standard locations, seeding the template
		// on first run.
		var configDir string
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			configDir = filepath.Join(xdgConfigHome, "tock")
			viper.AddConfigPath(configDir)
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get user home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config", "tock")
			viper.AddConfigPath(configDir)
			viper.AddConfigPath(home)
		}
		if err := config.EnsureConfigExists(filepath.Join(configDir, "config.yaml")); err != nil {
			return err
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("TOCK")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		// Config file not found; ignore error if desired
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	setupLogging()
	return nil
}

// setupLogging configures the default slog logger from the log_level key.
func setupLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(viper.GetString("log_level")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
