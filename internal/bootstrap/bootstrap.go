package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	cataloginadapter "najah/internal/modules/catalog/adapter/in"
	catalogoutadapter "najah/internal/modules/catalog/adapter/out"
	catalogservice "najah/internal/modules/catalog/service"
	catalogusecase "najah/internal/modules/catalog/usecase"
	focusinadapter "najah/internal/modules/focus/adapter/in"
	focusoutadapter "najah/internal/modules/focus/adapter/out"
	focusdomain "najah/internal/modules/focus/domain"
	focusout "najah/internal/modules/focus/port/out"
	focusservice "najah/internal/modules/focus/service"
	focususecase "najah/internal/modules/focus/usecase"
	plannerinadapter "najah/internal/modules/planner/adapter/in"
	planneroutadapter "najah/internal/modules/planner/adapter/out"
	plannerservice "najah/internal/modules/planner/service"
	plannerusecase "najah/internal/modules/planner/usecase"
	profileinadapter "najah/internal/modules/profile/adapter/in"
	profileoutadapter "najah/internal/modules/profile/adapter/out"
	profileservice "najah/internal/modules/profile/service"
	profileusecase "najah/internal/modules/profile/usecase"
	progressinadapter "najah/internal/modules/progress/adapter/in"
	progressoutadapter "najah/internal/modules/progress/adapter/out"
	progressservice "najah/internal/modules/progress/service"
	progressusecase "najah/internal/modules/progress/usecase"
	tutorinadapter "najah/internal/modules/tutor/adapter/in"
	tutoroutadapter "najah/internal/modules/tutor/adapter/out"
	tutorout "najah/internal/modules/tutor/port/out"
	tutorservice "najah/internal/modules/tutor/service"
	tutorusecase "najah/internal/modules/tutor/usecase"
	"najah/internal/platform/clock"
	"najah/internal/platform/config"
	"najah/internal/platform/id"
	"najah/internal/platform/kv"
	uiapp "najah/internal/ui/app"
)

type App struct {
	FocusCLI    focusinadapter.CLIHandler
	CatalogCLI  cataloginadapter.CLIHandler
	TutorCLI    tutorinadapter.CLIHandler
	ProfileCLI  profileinadapter.CLIHandler
	PlannerCLI  plannerinadapter.CLIHandler
	ProgressCLI progressinadapter.CLIHandler

	cfg     config.Config
	logger  *slog.Logger
	store   *kv.SQLiteStore
	timer   *focusservice.TimerService
	notices *noticeRelay
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	clk := clock.SystemClock{}
	examAt, err := cfg.Exam.At()
	if err != nil {
		return nil, fmt.Errorf("exam date: %w", err)
	}

	store, err := kv.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	intervals, err := focusoutadapter.NewSQLiteIntervalLog(store.DB())
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("new interval log: %w", err)
	}

	notices := &noticeRelay{}
	sinks := focusoutadapter.MultiNotifier{notices}
	if cfg.Timer.DesktopNotify {
		sinks = append(sinks, focusoutadapter.NewDBusNotifier())
	}
	timer := focusservice.NewTimerService(
		focusdomain.DurationsFrom(cfg.Timer.WorkDuration, cfg.Timer.BreakDuration),
		clk,
		focusoutadapter.NewTickerScheduler(),
		sinks,
		intervals,
		logger.With("module", "focus"),
	)
	focusUC := focususecase.NewInteractor(timer, clk)

	catalogSvc := catalogservice.NewCatalogService(id.TimeOrdered{}, catalogoutadapter.NewKVResourceStore(store), logger.With("module", "catalog"))
	catalogUC := catalogusecase.NewInteractor(catalogSvc)

	var generator tutorout.Generator
	if cfg.Tutor.APIKey != "" {
		generator = tutoroutadapter.NewGeminiGenerator(cfg.Tutor.APIKey, cfg.Tutor.Model)
	}
	tutorUC := tutorusecase.NewInteractor(tutorservice.NewTutorService(generator, cfg.Tutor.Timeout, logger.With("module", "tutor")))

	profileUC := profileusecase.NewInteractor(profileservice.NewProfileService(profileoutadapter.NewKVPreferenceStore(store)))

	plannerSvc := plannerservice.NewPlannerService(id.TimeOrdered{}, clk, planneroutadapter.NewKVTaskStore(store), logger.With("module", "planner"))
	plannerUC := plannerusecase.NewInteractor(plannerSvc)

	progressUC := progressusecase.NewInteractor(progressservice.NewProgressService(progressoutadapter.NewKVProgressStore(store), clk, examAt))

	return &App{
		FocusCLI:    focusinadapter.NewCLIHandler(focusUC),
		CatalogCLI:  cataloginadapter.NewCLIHandler(catalogUC),
		TutorCLI:    tutorinadapter.NewCLIHandler(tutorUC),
		ProfileCLI:  profileinadapter.NewCLIHandler(profileUC),
		PlannerCLI:  plannerinadapter.NewCLIHandler(plannerUC),
		ProgressCLI: progressinadapter.NewCLIHandler(progressUC),
		cfg:         cfg,
		logger:      logger,
		store:       store,
		timer:       timer,
		notices:     notices,
	}, nil
}

// RingBell routes interval completions to the terminal bell on w, when
// audible notifications are enabled.
func (a *App) RingBell(w io.Writer) {
	if a.cfg.Timer.Notify {
		a.notices.set(focusoutadapter.NewBellNotifier(w))
	}
}

// Close stops the timer schedule and releases the database.
func (a *App) Close() error {
	a.timer.Close()
	a.notices.set(nil)
	return a.store.Close()
}

func RunTUI(app *App) error {
	durations := app.timer.Durations()
	model := uiapp.NewModel(app.FocusCLI, app.CatalogCLI, app.TutorCLI, app.ProfileCLI, durations.Work, durations.Break)
	if app.cfg.Timer.Notify {
		model = model.WithBell(os.Stdout)
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	app.notices.set(focusoutadapter.FuncNotifier(func(_ context.Context, kind focusdomain.NotificationKind) error {
		program.Send(uiapp.CompletionMsg{Kind: string(kind), Message: focusoutadapter.Message(kind)})
		return nil
	}))
	defer app.notices.set(nil)
	_, err := program.Run()
	return err
}

// noticeRelay forwards completions to whichever front end is attached.
type noticeRelay struct {
	mu   sync.RWMutex
	sink focusout.NotificationSink
}

func (r *noticeRelay) set(sink focusout.NotificationSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sink = sink
}

func (r *noticeRelay) Notify(ctx context.Context, kind focusdomain.NotificationKind) error {
	r.mu.RLock()
	sink := r.sink
	r.mu.RUnlock()
	if sink == nil {
		return nil
	}
	return sink.Notify(ctx, kind)
}
