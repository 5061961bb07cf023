package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"najah/internal/bootstrap"
	"najah/internal/platform/config"
	"najah/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "najah",
		Short:         "Study companion for the Moroccan BAC",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "directory holding najah.db and najah.yaml")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newTimerCmd(&dataDir))
	root.AddCommand(newResourceCmd(&dataDir))
	root.AddCommand(newTutorCmd(&dataDir))
	root.AddCommand(newProfileCmd(&dataDir))
	root.AddCommand(newPlanCmd(&dataDir))
	root.AddCommand(newProgressCmd(&dataDir))
	return root
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".najah"
	}
	return filepath.Join(home, ".najah")
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logging.New(cfg.Log, os.Stderr))
}

// withApp loads the application, runs fn and releases it.
func withApp(dataDir string, fn func(app *bootstrap.App) error) error {
	app, err := loadApp(dataDir)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(app)
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(*dataDir, bootstrap.RunTUI)
		},
	}
}

func newTutorCmd(dataDir *string) *cobra.Command {
	tutor := &cobra.Command{Use: "tutor", Short: "Ask the AI tutor"}

	var subject string
	askCmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask one question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out := app.TutorCLI.Ask(cmd.Context(), strings.Join(args, " "), subject)
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Answer)
				return nil
			})
		},
	}
	askCmd.Flags().StringVar(&subject, "subject", "", "subject hint, e.g. Mathématiques")

	tutor.AddCommand(askCmd)
	return tutor
}

func newProfileCmd(dataDir *string) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Onboarding preferences"}

	profile.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				prefs, err := app.ProfileCLI.Show(cmd.Context())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "onboarded=%t language=%s level=%s track=%s\n", prefs.Onboarded, prefs.Language, prefs.Level, prefs.Track)
				return nil
			})
		},
	})

	var language, level, track string
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Save preferences and finish onboarding",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				prefs, err := app.ProfileCLI.Set(cmd.Context(), language, level, track)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved language=%s level=%s track=%s\n", prefs.Language, prefs.Level, prefs.Track)
				return nil
			})
		},
	}
	setCmd.Flags().StringVar(&language, "lang", "", "FR|AR|EN")
	setCmd.Flags().StringVar(&level, "level", "", "1ère Bac|2ème Bac")
	setCmd.Flags().StringVar(&track, "track", "", "track (filière) name")

	profile.AddCommand(setCmd, &cobra.Command{
		Use:   "reset",
		Short: "Restart onboarding",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				if err := app.ProfileCLI.Reset(cmd.Context()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "onboarding reset")
				return nil
			})
		},
	})
	return profile
}
