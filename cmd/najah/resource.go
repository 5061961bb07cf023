package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"najah/internal/bootstrap"
	catalogdto "najah/internal/modules/catalog/dto"
	"najah/internal/platform/curriculum"
)

func newResourceCmd(dataDir *string) *cobra.Command {
	resource := &cobra.Command{Use: "resource", Short: "Manage the learning resource catalog"}

	var search, subject, track string
	var activeOnly bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List resources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				resources, err := app.CatalogCLI.List(cmd.Context(), search, subject, track, activeOnly)
				if err != nil {
					return err
				}
				if len(resources) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no resources")
					return nil
				}
				for _, r := range resources {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Status, r.Type, r.SubjectID, r.Title, r.Provider)
				}
				return nil
			})
		},
	}
	listCmd.Flags().StringVar(&search, "search", "", "match title or provider (case-insensitive)")
	listCmd.Flags().StringVar(&subject, "subject", "All", "subject id, or All")
	listCmd.Flags().StringVar(&track, "track", "", "track (filière), or "+curriculum.AllTracks)
	listCmd.Flags().BoolVar(&activeOnly, "active", false, "only active resources")

	resource.AddCommand(listCmd)
	resource.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				r, err := app.CatalogCLI.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printResource(cmd, r)
				return nil
			})
		},
	})
	resource.AddCommand(newResourceAddCmd(dataDir), newResourceEditCmd(dataDir))
	resource.AddCommand(&cobra.Command{
		Use:   "toggle <id>",
		Short: "Switch a resource between Active and Inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				r, err := app.CatalogCLI.Toggle(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", r.ID, r.Status)
				return nil
			})
		},
	})
	resource.AddCommand(newResourceRemoveCmd(dataDir))

	var format string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Print the whole catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				raw, err := app.CatalogCLI.Export(cmd.Context(), format)
				if err != nil {
					return err
				}
				_, _ = cmd.OutOrStdout().Write(raw)
				if len(raw) > 0 && raw[len(raw)-1] != '\n' {
					_, _ = fmt.Fprintln(cmd.OutOrStdout())
				}
				return nil
			})
		},
	}
	exportCmd.Flags().StringVar(&format, "format", "json", "json|yaml")
	resource.AddCommand(exportCmd)
	return resource
}

func newResourceAddCmd(dataDir *string) *cobra.Command {
	var input catalogdto.AddInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a resource",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				r, err := app.CatalogCLI.Add(cmd.Context(), input)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", r.Title, r.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&input.Title, "title", "", "title (required)")
	cmd.Flags().StringVar(&input.Link, "link", "", "document link (required)")
	cmd.Flags().StringVar(&input.Type, "type", "Course", "Course|Exercise|Exam|Video|Quiz")
	cmd.Flags().StringVar(&input.Provider, "provider", "NAJAH", "provider")
	cmd.Flags().StringVar(&input.SubjectID, "subject", "math", "subject id")
	cmd.Flags().StringVar(&input.Track, "track", curriculum.TrackPC, "track (filière)")
	cmd.Flags().StringVar(&input.Year, "year", "", "exam year")
	return cmd
}

func newResourceEditCmd(dataDir *string) *cobra.Command {
	var title, link, typ, provider, subject, track, year string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a resource; unset flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := catalogdto.UpdateInput{ID: args[0]}
			flags := cmd.Flags()
			for name, pair := range map[string]struct {
				src string
				dst **string
			}{
				"title":    {title, &input.Title},
				"link":     {link, &input.Link},
				"type":     {typ, &input.Type},
				"provider": {provider, &input.Provider},
				"subject":  {subject, &input.SubjectID},
				"track":    {track, &input.Track},
				"year":     {year, &input.Year},
			} {
				if flags.Changed(name) {
					v := pair.src
					*pair.dst = &v
				}
			}
			return withApp(*dataDir, func(app *bootstrap.App) error {
				r, err := app.CatalogCLI.Update(cmd.Context(), input)
				if err != nil {
					return err
				}
				printResource(cmd, r)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "title")
	cmd.Flags().StringVar(&link, "link", "", "document link")
	cmd.Flags().StringVar(&typ, "type", "", "Course|Exercise|Exam|Video|Quiz")
	cmd.Flags().StringVar(&provider, "provider", "", "provider")
	cmd.Flags().StringVar(&subject, "subject", "", "subject id")
	cmd.Flags().StringVar(&track, "track", "", "track (filière)")
	cmd.Flags().StringVar(&year, "year", "", "exam year")
	return cmd
}

func newResourceRemoveCmd(dataDir *string) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a resource after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				r, err := app.CatalogCLI.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !yes && !confirm(cmd, fmt.Sprintf("Supprimer « %s » ? [y/N] ", r.Title)) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
					return nil
				}
				if err := app.CatalogCLI.Remove(cmd.Context(), r.ID); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", r.ID)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func confirm(cmd *cobra.Command, prompt string) bool {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), prompt)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes" || answer == "o" || answer == "oui"
}

func printResource(cmd *cobra.Command, r catalogdto.ResourceOutput) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "id:       %s\n", r.ID)
	_, _ = fmt.Fprintf(w, "title:    %s\n", r.Title)
	_, _ = fmt.Fprintf(w, "type:     %s\n", r.Type)
	_, _ = fmt.Fprintf(w, "status:   %s\n", r.Status)
	_, _ = fmt.Fprintf(w, "link:     %s\n", r.Link)
	_, _ = fmt.Fprintf(w, "provider: %s\n", r.Provider)
	_, _ = fmt.Fprintf(w, "subject:  %s\n", r.SubjectID)
	_, _ = fmt.Fprintf(w, "track:    %s\n", r.Track)
	if r.Year != "" {
		_, _ = fmt.Fprintf(w, "year:     %s\n", r.Year)
	}
}
