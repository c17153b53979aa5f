package bootstrap

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	cataloginadapter "roadmap/internal/modules/catalog/adapter/in"
	catalogoutadapter "roadmap/internal/modules/catalog/adapter/out"
	catalogservice "roadmap/internal/modules/catalog/service"
	catalogusecase "roadmap/internal/modules/catalog/usecase"
	progressinadapter "roadmap/internal/modules/progress/adapter/in"
	progressoutadapter "roadmap/internal/modules/progress/adapter/out"
	progressservice "roadmap/internal/modules/progress/service"
	progressusecase "roadmap/internal/modules/progress/usecase"
	reportinadapter "roadmap/internal/modules/report/adapter/in"
	reportoutadapter "roadmap/internal/modules/report/adapter/out"
	reportservice "roadmap/internal/modules/report/service"
	reportusecase "roadmap/internal/modules/report/usecase"
	trackinginadapter "roadmap/internal/modules/tracking/adapter/in"
	trackingoutadapter "roadmap/internal/modules/tracking/adapter/out"
	trackingservice "roadmap/internal/modules/tracking/service"
	trackingusecase "roadmap/internal/modules/tracking/usecase"
	"roadmap/internal/platform/clock"
	"roadmap/internal/platform/config"
	"roadmap/internal/platform/id"
	"roadmap/internal/platform/kv"
	"roadmap/internal/platform/logger"
	uiapp "roadmap/internal/ui/app"
)

type App struct {
	CatalogCLI  cataloginadapter.CLIHandler
	ProgressCLI progressinadapter.CLIHandler
	TrackingCLI trackinginadapter.CLIHandler
	ReportCLI   reportinadapter.CLIHandler
	Log         *logger.Logger

	closers []func() error
}

func New(cfg config.Config) (*App, error) {
	if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	log, err := logger.New(cfg.LogMode, cfg.LogPath)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	app := &App{Log: log}

	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		app.closers = append(app.closers, closer.Close)
	}
	log.Debug("storage ready", "backend", cfg.Storage, "state_dir", cfg.StateDir)

	clk := clock.SystemClock{}
	ids := id.TimeOrdered{Clock: clk}

	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(
		catalogoutadapter.NewYAMLCatalogSource(cfg.CatalogPath),
	))
	progressUC := progressusecase.NewInteractor(
		progressservice.NewProgressService(progressoutadapter.NewKVProgressStore(store), log),
		catalogUC,
	)
	trackingUC := trackingusecase.NewInteractor(
		trackingservice.NewTrackingService(clk, ids, trackingoutadapter.NewKVStateStore(store, clk), log),
		catalogUC,
	)
	reportUC := reportusecase.NewInteractor(
		reportservice.NewReportService(),
		clk,
		catalogUC,
		progressUC,
		trackingUC,
		reportoutadapter.NewVaultNoteWriter(cfg.ReportDir),
		reportoutadapter.NewGlamourRenderer(""),
	)

	app.CatalogCLI = cataloginadapter.NewCLIHandler(catalogUC)
	app.ProgressCLI = progressinadapter.NewCLIHandler(progressUC)
	app.TrackingCLI = trackinginadapter.NewCLIHandler(trackingUC)
	app.ReportCLI = reportinadapter.NewCLIHandler(reportUC)
	return app, nil
}

func newStore(cfg config.Config) (kv.Store, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		store, err := kv.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	default:
		return kv.NewFileStore(cfg.StateDir), nil
	}
}

// Close releases storage handles and flushes the logger.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.Log.Sync()
	return first
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.CatalogCLI, app.ProgressCLI, app.TrackingCLI, app.ReportCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
