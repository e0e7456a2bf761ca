package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/cloudquest/internal/app"
	"github.com/abhisek/cloudquest/internal/curriculum"
	"github.com/abhisek/cloudquest/internal/i18n"
	"github.com/abhisek/cloudquest/internal/llm"
	"github.com/abhisek/cloudquest/internal/nav"
	"github.com/abhisek/cloudquest/internal/notify"
	"github.com/abhisek/cloudquest/internal/store"
	"github.com/abhisek/cloudquest/internal/tutor"
	"github.com/abhisek/cloudquest/internal/ui/components"
	"github.com/abhisek/cloudquest/internal/xp"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, cfg, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		if errors.Is(err, llm.ErrNoCredentials) {
			return err
		}
		return fmt.Errorf("configure LLM provider: %w", err)
	}
	slog.Info("llm provider ready", "provider", cfg.Provider)

	printer := i18n.New(flagOrEnv(cmd, "lang", "CLOUDQUEST_LANG"))
	notes := notify.NewChannel()
	confetti := components.NewConfetti(uint64(time.Now().UnixNano()))
	engine := xp.NewEngine(notes, xp.WithMessages(printer), xp.WithEffect(confetti))
	ctrl := nav.New(curriculum.Default(), engine, printer, nav.WithEffect(confetti))

	skipSplash, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{
		Controller:    ctrl,
		Tutor:         tutor.NewService(provider, tutor.DefaultConfig(), printer),
		Printer:       printer,
		Notifications: notes,
		Confetti:      confetti,
		SkipSplash:    skipSplash,
	})
}
