package app

import (
	"context"
	"database/sql"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/discovery/core/router"
	"github.com/jask/discovery/internal/service"
	"github.com/jask/discovery/internal/telemetry"
	"github.com/jask/discovery/internal/tui"
)

// Store is the database and the services the CLI subcommands use.
type Store struct {
	Logger      *zap.Logger
	DB          *sql.DB
	Roster      *service.Roster
	DoorLog     *service.DoorLog
	Maintenance *service.MaintenanceService
}

// App is the fully wired console.
type App struct {
	Store   *Store
	Metrics *telemetry.Metrics
	Server  MetricsServer
	Screens Screens
	Router  *router.Router[tui.Screen]
	Console tui.Model
}

// Run blocks until the console exits or ctx is cancelled.
func (a *App) Run(ctx context.Context, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(a.Console, opts...).Run(); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	a.Store.Logger.Info("console closed")
	return nil
}
