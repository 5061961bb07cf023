package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"najah/internal/bootstrap"
)

func newPlanCmd(dataDir *string) *cobra.Command {
	plan := &cobra.Command{Use: "plan", Short: "Study task planner"}

	plan.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List tasks, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				tasks, err := app.PlannerCLI.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(tasks) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aucune tâche pour le moment. Félicitations !")
					return nil
				}
				for _, t := range tasks {
					mark := "[ ]"
					if t.Completed {
						mark = "[x]"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\t%s\n", mark, t.ID, t.DueDate, t.Text)
				}
				return nil
			})
		},
	}, &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task due today",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				t, err := app.PlannerCLI.Add(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", t.ID, t.Text)
				return nil
			})
		},
	}, &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a task done or open again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				t, err := app.PlannerCLI.Toggle(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				state := "open"
				if t.Completed {
					state = "done"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is %s\n", t.ID, state)
				return nil
			})
		},
	}, &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				if err := app.PlannerCLI.Remove(cmd.Context(), args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
				return nil
			})
		},
	})
	return plan
}

func newProgressCmd(dataDir *string) *cobra.Command {
	progress := &cobra.Command{
		Use:   "progress",
		Short: "Chapter progress and the BAC countdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				d, err := app.ProgressCLI.Dashboard(cmd.Context())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "progression: %d%% (%d/%d chapitres)\n", d.Percent, d.Completed, d.Total)
				if d.LastSeen != "" {
					_, _ = fmt.Fprintf(w, "dernier chapitre: %s\n", d.LastSeen)
				}
				if len(d.Favorites) > 0 {
					_, _ = fmt.Fprintf(w, "favoris: %s\n", strings.Join(d.Favorites, ", "))
				}
				_, _ = fmt.Fprintf(w, "BAC %s: %dj %dh %dmin\n", d.ExamAt.Format("02/01/2006 15:04"), d.Days, d.Hours, d.Mins)
				return nil
			})
		},
	}

	var subject string
	chaptersCmd := &cobra.Command{
		Use:   "chapters",
		Short: "List chapters with their seen and favourite marks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				chapters, err := app.ProgressCLI.Chapters(cmd.Context(), subject)
				if err != nil {
					return err
				}
				for _, c := range chapters {
					seen, fav := " ", " "
					if c.Seen {
						seen = "✓"
					}
					if c.Favorite {
						fav = "★"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s%s %s\t%s\t%s\n", seen, fav, c.ID, c.SubjectID, c.Title)
				}
				return nil
			})
		},
	}
	chaptersCmd.Flags().StringVar(&subject, "subject", "", "only this subject id")

	progress.AddCommand(chaptersCmd, &cobra.Command{
		Use:   "seen <chapter>",
		Short: "Toggle the seen mark of a chapter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				c, err := app.ProgressCLI.Seen(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s seen=%t\n", c.ID, c.Seen)
				return nil
			})
		},
	}, &cobra.Command{
		Use:   "favorite <chapter>",
		Short: "Toggle the favourite mark of a chapter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				c, err := app.ProgressCLI.Favorite(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s favorite=%t\n", c.ID, c.Favorite)
				return nil
			})
		},
	})
	return progress
}
