package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jask/discovery/core/assembly"
	"github.com/jask/discovery/core/display"
	"github.com/jask/discovery/core/router"
	"github.com/jask/discovery/internal/config"
	"github.com/jask/discovery/internal/database"
	"github.com/jask/discovery/internal/database/repository"
	"github.com/jask/discovery/internal/logging"
	"github.com/jask/discovery/internal/messages"
	"github.com/jask/discovery/internal/podbay"
	"github.com/jask/discovery/internal/service"
	"github.com/jask/discovery/internal/telemetry"
	"github.com/jask/discovery/internal/tui"
	"github.com/jask/discovery/screens"
)

const consoleName = "DISCOVERY ONE · HAL 9000"

func ProvideLogger(cfg config.Config) (*zap.Logger, func(), error) {
	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	return log, func() { _ = log.Sync() }, nil
}

// ProvideDB migrates, opens and seeds the database at cfg.Database.Path.
func ProvideDB(ctx context.Context, cfg config.Config, log *zap.Logger) (*sql.DB, func(), error) {
	path := cfg.Database.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(path); err != nil {
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(path, cfg.Database.BusyTimeout)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("seed defaults: %w", err)
	}
	log.Info("database ready", zap.String("path", path))
	return db, func() { _ = db.Close() }, nil
}

func ProvideCrewRepo(db *sql.DB) *repository.CrewRepo {
	return repository.NewCrewRepo(db)
}

func ProvideDoorRequestRepo(db *sql.DB) *repository.DoorRequestRepo {
	return repository.NewDoorRequestRepo(db)
}

func ProvideRoster(crew *repository.CrewRepo) *service.Roster {
	return &service.Roster{Crew: crew}
}

func ProvideDoorLog(requests *repository.DoorRequestRepo) *service.DoorLog {
	return &service.DoorLog{Requests: requests}
}

func ProvideMaintenance(db *sql.DB) *service.MaintenanceService {
	return &service.MaintenanceService{DB: db}
}

func ProvideMetrics() *telemetry.Metrics {
	return telemetry.NewMetrics()
}

// MetricsServer is the running prometheus endpoint, if any.
type MetricsServer struct {
	Addr string
}

func ProvideMetricsServer(cfg config.Config, m *telemetry.Metrics, log *zap.Logger) (MetricsServer, func()) {
	stop := telemetry.Serve(cfg.Metrics.Addr, m, log)
	return MetricsServer{Addr: cfg.Metrics.Addr}, stop
}

// ProvideObserver reports every build to the log and to metrics.
func ProvideObserver(log *zap.Logger, m *telemetry.Metrics) assembly.Observer {
	return assembly.Observers{logging.NewObserver(log), m}
}

func ProvideCatalog(cfg config.Config) (*messages.Catalog, error) {
	bundle, err := messages.NewBundle()
	if err != nil {
		return nil, fmt.Errorf("messages: %w", err)
	}
	return messages.New(bundle, cfg.UI.Locale), nil
}

func ProvideFormatter(cfg config.Config) display.Formatter {
	return display.NewFormatter(cfg.UI.Locale,
		display.WithDateLayout(cfg.UI.DateFormat),
		display.WithClockLayout(cfg.UI.ClockFormat),
		display.WithLocation(cfg.UI.Location()),
	)
}

func ProvideKeys() *tui.KeyRegistry {
	return tui.NewKeyRegistry(tui.DefaultKeyBindings())
}

func ProvideScreenDeps(keys *tui.KeyRegistry, f display.Formatter) screens.Deps {
	return screens.Deps{Keys: keys, Format: f}
}

func ProvideStack(log *zap.Logger, m *telemetry.Metrics) *tui.Stack {
	s := tui.NewStack(log)
	s.OnPresent(m.ScreenPresented)
	return s
}

// ProvideRouter returns a router already bound to the stack.
func ProvideRouter(stack *tui.Stack) *router.Router[tui.Screen] {
	r := router.New[tui.Screen]()
	r.Bind(stack)
	return r
}

func ProvideEnv(ctx context.Context, log *zap.Logger, catalog *messages.Catalog, m *telemetry.Metrics) podbay.Env {
	return podbay.Env{
		Ctx:      ctx,
		Log:      log.Named("podbay"),
		Messages: catalog,
		Metrics:  m,
		Clock:    database.Now,
	}
}

// Screens are the builders for every screen the console can show.
type Screens struct {
	PodBay assembly.Builder[tui.Screen]
	Crew   assembly.Builder[tui.Screen]
	Log    assembly.Builder[tui.Screen]
}

// ProvideScreens assembles the builder graph. Services are shared; handlers
// and screens are built fresh on every Build.
func ProvideScreens(
	cfg config.Config,
	env podbay.Env,
	doorLog *service.DoorLog,
	roster *service.Roster,
	deps screens.Deps,
	r *router.Router[tui.Screen],
	obs assembly.Observer,
) Screens {
	observe := assembly.Observe(obs)
	settings := assembly.Shared(podbay.Settings{
		KillDave:  cfg.Mission.KillDave,
		Commander: cfg.Mission.Commander,
		LogLimit:  cfg.Mission.LogLimit,
	})
	envB := assembly.Shared(env)
	nav := assembly.Shared[podbay.Navigator](r)
	depsB := assembly.Shared(deps)

	crew := screens.Crew(
		podbay.CrewHandlers(envB, assembly.Shared[podbay.CrewLister](roster), observe),
		nav, depsB, observe)
	log := screens.Log(
		podbay.LogHandlers(settings, envB, assembly.Shared[podbay.DoorHistory](doorLog), observe),
		nav, depsB, observe)
	dest := assembly.Shared(podbay.Destinations{Crew: crew, Log: log})
	podBay := screens.PodBay(
		podbay.DoorHandlers(settings, envB, assembly.Shared[podbay.DoorRecorder](doorLog), dest, observe),
		nav, depsB, observe)

	return Screens{PodBay: podBay, Crew: crew, Log: log}
}

// ProvideConsole presents the pod bay and returns the bubbletea model.
func ProvideConsole(stack *tui.Stack, keys *tui.KeyRegistry, r *router.Router[tui.Screen], s Screens, log *zap.Logger) (tui.Model, error) {
	if err := r.Present(s.PodBay); err != nil {
		return tui.Model{}, fmt.Errorf("present pod bay: %w", err)
	}
	return tui.NewModel(consoleName, stack, keys, log.Named("tui")), nil
}
