package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/cloudquest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "cloudquest",
	Short: "Gamified AWS learning in the terminal",
	Long:  "CloudQuest is a terminal dashboard for learning AWS, with an AI tutor, quizzes, XP and levels.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CLOUDQUEST_DB env var)")
	rootCmd.PersistentFlags().String("lang", "", "UI language, e.g. en or zh-Hans (overrides CLOUDQUEST_LANG env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file (overrides CLOUDQUEST_LOG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides CLOUDQUEST_LOG_LEVEL env var)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(curriculumCmd)
	rootCmd.AddCommand(versionCmd)
}

// flagOrEnv returns the named flag when set, else the environment variable.
func flagOrEnv(cmd *cobra.Command, flag, env string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return os.Getenv(env)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CLOUDQUEST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// setupLogging installs the default slog handler. The TUI owns the terminal,
// so without a log file everything is discarded.
func setupLogging(cmd *cobra.Command) error {
	level, err := parseLevel(flagOrEnv(cmd, "log-level", "CLOUDQUEST_LOG_LEVEL"))
	if err != nil {
		return err
	}
	opts := &slog.HandlerOptions{Level: level}

	path := flagOrEnv(cmd, "log-file", "CLOUDQUEST_LOG_FILE")
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, opts)))
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(f, opts)))
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}
