package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"roadmap/internal/bootstrap"
	"roadmap/internal/platform/config"
	apperrors "roadmap/internal/platform/errors"
)

type rootOptions struct {
	dataDir string
	storage string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "roadmap",
		Short:         "Data engineering learning roadmap tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", ".", "directory holding roadmap state and reports")
	root.PersistentFlags().StringVar(&opts.storage, "storage", "", "storage backend: file|sqlite (default from ROADMAP_STORAGE or file)")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newStageCmd(opts))
	root.AddCommand(newProgressCmd(opts))
	root.AddCommand(newResourceCmd(opts))
	root.AddCommand(newScheduleCmd(opts))
	root.AddCommand(newGoalCmd(opts))
	root.AddCommand(newChecklistCmd(opts))
	root.AddCommand(newAnalyticsCmd(opts))
	root.AddCommand(newReportCmd(opts))
	return root
}

func loadConfig(opts *rootOptions) (config.Config, error) {
	cfg, err := config.New(opts.dataDir)
	if err != nil {
		return config.Config{}, err
	}
	if opts.storage != "" {
		cfg.Storage = opts.storage
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

func loadApp(opts *rootOptions) (*bootstrap.App, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

// withApp runs fn against a freshly wired app and releases it afterwards.
func withApp(opts *rootOptions, fn func(app *bootstrap.App) error) error {
	app, err := loadApp(opts)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(app)
}

// saved turns a non-fatal persistence failure into a warning on stderr.
func saved(cmd *cobra.Command, err error) error {
	if errors.Is(err, apperrors.ErrNotSaved) {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		return nil
	}
	return err
}

func requireFlag(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("--%s is required", name)
	}
	return nil
}

func requireStage(stageID int) error {
	if stageID <= 0 {
		return fmt.Errorf("--stage is required")
	}
	return nil
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the roadmap terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if cfg.LogPath == "stderr" {
				cfg.LogPath = filepath.Join(cfg.StateDir, "roadmap.log")
			}
			app, err := bootstrap.New(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(app)
		},
	}
}

func newStageCmd(opts *rootOptions) *cobra.Command {
	stage := &cobra.Command{Use: "stage", Short: "Browse roadmap stages"}

	stage.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stages with progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				summary, err := app.ProgressCLI.Summary(context.Background())
				if err != nil {
					return err
				}
				for _, s := range summary.Stages {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d/%d\t%d%%\n", s.StageID, s.Title, s.Completed, s.Total, s.Percent)
				}
				return nil
			})
		},
	})

	var stageID int
	show := &cobra.Command{
		Use:   "show --id <n>",
		Short: "Show stage resources with completion and tracking status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if stageID <= 0 {
				return fmt.Errorf("--id is required")
			}
			return withApp(opts, func(app *bootstrap.App) error {
				ctx := context.Background()
				s, err := app.CatalogCLI.GetStage(ctx, stageID)
				if err != nil {
					return err
				}
				progress, err := app.ProgressCLI.StageProgress(ctx, stageID)
				if err != nil {
					return err
				}
				tracked, err := app.TrackingCLI.StageResources(ctx, stageID)
				if err != nil {
					return err
				}
				schedule, err := app.TrackingCLI.Schedule(ctx, stageID)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(out, "stage: %d %s\nprogress: %d%% (%d/%d)\nduration: %d days\n%s\n\n", s.ID, s.Title, progress.Percent, progress.Completed, progress.Total, schedule.EstimatedDuration, s.Description)
				for idx, r := range s.Resources {
					mark := " "
					if progress.Resources[idx].Completed {
						mark = "x"
					}
					_, _ = fmt.Fprintf(out, "[%s] %s\t%s\t%s\t%s\t%s\n", mark, r.ID, r.Name, tracked[idx].Status, tracked[idx].TimeLabel, r.URL)
				}
				return nil
			})
		},
	}
	show.Flags().IntVar(&stageID, "id", 0, "stage id")
	stage.AddCommand(show)
	return stage
}

func newProgressCmd(opts *rootOptions) *cobra.Command {
	progress := &cobra.Command{Use: "progress", Short: "Resource completion progress"}

	progress.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show overall progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				s, err := app.ProgressCLI.Summary(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "progress: %d%%\ncompleted: %d/%d\nstages: %d\n%s\n", s.Percent, s.Completed, s.Total, s.StageCount, s.Message)
				return nil
			})
		},
	})

	var stageID int
	var resourceID string
	toggle := &cobra.Command{
		Use:   "toggle --stage <n> --resource <id>",
		Short: "Toggle a resource's completion",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireStage(stageID); err != nil {
				return err
			}
			if err := requireFlag("resource", resourceID); err != nil {
				return err
			}
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.ProgressCLI.Toggle(context.Background(), stageID, resourceID)
				if err := saved(cmd, err); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stage=%d resource=%s completed=%t stage_progress=%d%%\n", out.StageID, out.ResourceID, out.Completed, out.StagePercent)
				return nil
			})
		},
	}
	toggle.Flags().IntVar(&stageID, "stage", 0, "stage id")
	toggle.Flags().StringVar(&resourceID, "resource", "", "resource id")

	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear --yes",
		Short: "Forget every completed resource",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear progress without --yes")
			}
			return withApp(opts, func(app *bootstrap.App) error {
				if err := saved(cmd, app.ProgressCLI.Clear(context.Background())); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "progress cleared")
				return nil
			})
		},
	}
	clearCmd.Flags().BoolVar(&yes, "yes", false, "confirm clearing all progress")

	progress.AddCommand(toggle, clearCmd)
	return progress
}

func newResourceCmd(opts *rootOptions) *cobra.Command {
	resource := &cobra.Command{Use: "resource", Short: "Per-resource tracking"}

	var stageID int
	var resourceID, status string
	statusCmd := &cobra.Command{
		Use:   "status --stage <n> --resource <id> [--set not-started|watching|completed]",
		Short: "Show or set a resource's tracking status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireStage(stageID); err != nil {
				return err
			}
			if err := requireFlag("resource", resourceID); err != nil {
				return err
			}
			return withApp(opts, func(app *bootstrap.App) error {
				ctx := context.Background()
				if status == "" {
					out, err := app.TrackingCLI.Resource(ctx, stageID, resourceID)
					if err != nil {
						return err
					}
					printTracking(cmd, out.StageID, out.ResourceID, out.Status, out.TimeLabel, out.StartDate, out.CompletedDate, out.LastAccessed)
					return nil
				}
				out, err := app.TrackingCLI.SetStatus(ctx, stageID, resourceID, status)
				if err := saved(cmd, err); err != nil {
					return err
				}
				printTracking(cmd, out.StageID, out.ResourceID, out.Status, out.TimeLabel, out.StartDate, out.CompletedDate, out.LastAccessed)
				return nil
			})
		},
	}
	statusCmd.Flags().IntVar(&stageID, "stage", 0, "stage id")
	statusCmd.Flags().StringVar(&resourceID, "resource", "", "resource id")
	statusCmd.Flags().StringVar(&status, "set", "", "new status: not-started|watching|completed")

	var timeStage, minutes int
	var timeResource string
	timeCmd := &cobra.Command{
		Use:   "time --stage <n> --resource <id> --minutes <m>",
		Short: "Add minutes spent on a resource",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireStage(timeStage); err != nil {
				return err
			}
			if err := requireFlag("resource", timeResource); err != nil {
				return err
			}
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.TrackingCLI.AddTime(context.Background(), timeStage, timeResource, minutes)
				if err := saved(cmd, err); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stage=%d resource=%s time_spent=%s\n", out.StageID, out.ResourceID, out.TimeLabel)
				return nil
			})
		},
	}
	timeCmd.Flags().IntVar(&timeStage, "stage", 0, "stage id")
	timeCmd.Flags().StringVar(&timeResource, "resource", "", "resource id")
	timeCmd.Flags().IntVar(&minutes, "minutes", 0, "minutes to add")

	resource.AddCommand(statusCmd, timeCmd)
	return resource
}

func printTracking(cmd *cobra.Command, stageID int, resourceID, status, timeLabel string, started, completed, accessed *time.Time) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stage=%d resource=%s status=%s time_spent=%s\n", stageID, resourceID, status, timeLabel)
	for _, line := range []struct {
		label string
		at    *time.Time
	}{{"started", started}, {"completed", completed}, {"last_accessed", accessed}} {
		if line.at != nil {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", line.label, line.at.Format(time.RFC3339))
		}
	}
}

func newScheduleCmd(opts *rootOptions) *cobra.Command {
	schedule := &cobra.Command{Use: "schedule", Short: "Stage schedules"}

	var stageID int
	var start, end string
	set := &cobra.Command{
		Use:   "set --stage <n> --start <date> --end <date>",
		Short: "Schedule a stage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireStage(stageID); err != nil {
				return err
			}
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.TrackingCLI.SetSchedule(context.Background(), stageID, start, end)
				if err := saved(cmd, err); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stage=%d start=%s end=%s duration=%d days\n", out.StageID, out.StartDate, out.EndDate, out.EstimatedDuration)
				return nil
			})
		},
	}
	set.Flags().IntVar(&stageID, "stage", 0, "stage id")
	set.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	set.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD)")

	var showStage int
	show := &cobra.Command{
		Use:   "show [--stage <n>]",
		Short: "Show stage schedules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				ctx := context.Background()
				if showStage > 0 {
					s, err := app.TrackingCLI.Schedule(ctx, showStage)
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%d days\n", s.StageID, s.StageTitle, orDash(s.StartDate), orDash(s.EndDate), s.EstimatedDuration)
					return nil
				}
				all, err := app.TrackingCLI.Schedules(ctx)
				if err != nil {
					return err
				}
				for _, s := range all {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%d days\n", s.StageID, s.StageTitle, orDash(s.StartDate), orDash(s.EndDate), s.EstimatedDuration)
				}
				return nil
			})
		},
	}
	show.Flags().IntVar(&showStage, "stage", 0, "stage id (all stages when omitted)")

	schedule.AddCommand(set, show)
	return schedule
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func newGoalCmd(opts *rootOptions) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Weekly goals"}

	var title, target, description string
	add := &cobra.Command{
		Use:   "add --title <t> --target <date>",
		Short: "Add a weekly goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.TrackingCLI.AddGoal(context.Background(), title, description, target)
				if err := saved(cmd, err); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal added: %s %q target=%s\n", out.ID, out.Title, out.TargetDate)
				return nil
			})
		},
	}
	add.Flags().StringVar(&title, "title", "", "goal title")
	add.Flags().StringVar(&target, "target", "", "target date (YYYY-MM-DD)")
	add.Flags().StringVar(&description, "description", "", "optional description")

	goal.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List weekly goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				goals, err := app.TrackingCLI.Goals(context.Background())
				if err != nil {
					return err
				}
				if len(goals) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no goals")
					return nil
				}
				for _, g := range goals {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t[%s]\t%s\t%s\n", g.ID, checkMark(g.Completed), g.TargetDate, g.Title)
				}
				return nil
			})
		},
	})

	var toggleID string
	toggle := &cobra.Command{
		Use:   "toggle --id <id>",
		Short: "Toggle a goal's completion",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlag("id", toggleID); err != nil {
				return err
			}
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.TrackingCLI.ToggleGoal(context.Background(), toggleID)
				if err := saved(cmd, err); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal %s completed=%t\n", out.ID, out.Completed)
				return nil
			})
		},
	}
	toggle.Flags().StringVar(&toggleID, "id", "", "goal id")

	var deleteID string
	del := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete a goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlag("id", deleteID); err != nil {
				return err
			}
			return withApp(opts, func(app *bootstrap.App) error {
				if err := saved(cmd, app.TrackingCLI.DeleteGoal(context.Background(), deleteID)); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal %s deleted\n", deleteID)
				return nil
			})
		},
	}
	del.Flags().StringVar(&deleteID, "id", "", "goal id")

	goal.AddCommand(add, toggle, del)
	return goal
}

func newChecklistCmd(opts *rootOptions) *cobra.Command {
	checklist := &cobra.Command{Use: "checklist", Short: "Daily checklist"}

	var title, date string
	add := &cobra.Command{
		Use:   "add --title <t> [--date <date>]",
		Short: "Add a checklist item (today by default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.TrackingCLI.AddChecklistItem(context.Background(), title, date)
				if err := saved(cmd, err); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "item added: %s %q date=%s\n", out.ID, out.Title, out.Date)
				return nil
			})
		},
	}
	add.Flags().StringVar(&title, "title", "", "item title")
	add.Flags().StringVar(&date, "date", "", "day (YYYY-MM-DD), today when omitted")

	var listDate string
	list := &cobra.Command{
		Use:   "list [--date <date>]",
		Short: "List checklist items for a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				items, err := app.TrackingCLI.Checklist(context.Background(), listDate)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no checklist items")
					return nil
				}
				for _, item := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t[%s]\t%s\n", item.ID, checkMark(item.Completed), item.Title)
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&listDate, "date", "", "day (YYYY-MM-DD), today when omitted")

	var toggleID string
	toggle := &cobra.Command{
		Use:   "toggle --id <id>",
		Short: "Toggle a checklist item",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlag("id", toggleID); err != nil {
				return err
			}
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.TrackingCLI.ToggleChecklistItem(context.Background(), toggleID)
				if err := saved(cmd, err); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "item %s completed=%t\n", out.ID, out.Completed)
				return nil
			})
		},
	}
	toggle.Flags().StringVar(&toggleID, "id", "", "item id")

	checklist.AddCommand(add, list, toggle)
	return checklist
}

func checkMark(done bool) string {
	if done {
		return "x"
	}
	return " "
}

func newAnalyticsCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show learning analytics and weak areas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				a, err := app.TrackingCLI.Analytics(context.Background())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if asJSON {
					enc := json.NewEncoder(out)
					enc.SetIndent("", "  ")
					return enc.Encode(a)
				}
				_, _ = fmt.Fprintf(out, "time_spent: %s (%d hours)\n", a.TotalTimeLabel, a.TotalHours)
				_, _ = fmt.Fprintf(out, "completion_speed: %d (%s)\n", a.AverageCompletionTime, a.CompletionSpeed)
				_, _ = fmt.Fprintf(out, "topics_restarted: %d\ntopics_delayed: %d\nstreak_days: %d\n", a.TopicsRestarted, a.TopicsDelayed, a.StreakDays)
				if a.LastActivityDate != nil {
					_, _ = fmt.Fprintf(out, "last_activity: %s\n", a.LastActivityDate.Format(time.RFC3339))
				}
				if len(a.WeakAreas) > 0 {
					_, _ = fmt.Fprintln(out, "weak_areas:")
					for _, w := range a.WeakAreas {
						_, _ = fmt.Fprintf(out, "  %d\t%s\t%s\n", w.StageID, w.StageTitle, w.Label)
					}
				}
				for _, line := range a.Insights {
					_, _ = fmt.Fprintf(out, "* %s\n", line)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print analytics as JSON")
	return cmd
}

func newReportCmd(opts *rootOptions) *cobra.Command {
	report := &cobra.Command{Use: "report", Short: "Markdown progress reports"}

	report.AddCommand(&cobra.Command{
		Use:   "export",
		Short: "Write the markdown report and per-stage notes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.ReportCLI.Export(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "report=%s stage_notes=%d\n", out.ReportPath, len(out.StagePaths))
				return nil
			})
		},
	})

	var width int
	show := &cobra.Command{
		Use:   "show",
		Short: "Render the report in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.ReportCLI.Show(context.Background(), width)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Rendered)
				return nil
			})
		},
	}
	show.Flags().IntVar(&width, "width", 100, "wrap width, 0 disables wrapping")
	report.AddCommand(show)
	return report
}
