package app

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/jask/discovery/internal/config"
	"github.com/jask/discovery/internal/tui"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "data", "discovery.db")},
		Mission:  config.MissionConfig{KillDave: true, Commander: "Dave", LogLimit: 5},
		UI:       config.UIConfig{Locale: "en", DateFormat: "2006-01-02", ClockFormat: "15:04:05", Timezone: "UTC"},
		Log:      config.LogConfig{Level: "info", Environment: "production"},
	}
}

func TestInitializePresentsPodBay(t *testing.T) {
	a, cleanup, err := Initialize(context.Background(), testConfig(t))
	require.NoError(t, err)
	t.Cleanup(cleanup)

	stack := a.Console.Stack()
	require.Equal(t, 1, stack.Len())
	require.Equal(t, tui.ScopePodBay, stack.Top().Scope())
	require.Equal(t, 1.0, testutil.ToFloat64(a.Metrics.Builds.WithLabelValues("screens.PodBay")))
	require.Equal(t, 1.0, testutil.ToFloat64(a.Metrics.Presented.WithLabelValues(tui.ScopePodBay)))

	next, _ := a.Console.Update(tea.WindowSizeMsg{Width: 100, Height: 24})
	view := ansi.Strip(next.View())
	require.True(t, strings.Contains(view, "Open the pod bay doors, HAL."), view)
}

func TestConsoleRecordsRefusal(t *testing.T) {
	cfg := testConfig(t)
	a, cleanup, err := Initialize(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	next, _ := a.Console.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	view := ansi.Strip(next.View())
	require.True(t, strings.Contains(view, "I know you and Frank"), view)

	rows, err := a.Store.DoorLog.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Dave", rows[0].RequestedBy)
	require.Equal(t, 1.0, testutil.ToFloat64(a.Metrics.DoorRequests.WithLabelValues("refused")))
}

func TestConsoleNavigatesToCrewAndBack(t *testing.T) {
	a, cleanup, err := Initialize(context.Background(), testConfig(t))
	require.NoError(t, err)
	t.Cleanup(cleanup)

	var m tea.Model = a.Console
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	require.Equal(t, tui.ScopeCrew, m.(tui.Model).ActiveScope())
	require.True(t, strings.Contains(ansi.Strip(m.View()), "Frank Poole"))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, tui.ScopePodBay, m.(tui.Model).ActiveScope())
	require.Equal(t, 1.0, testutil.ToFloat64(a.Metrics.Builds.WithLabelValues("screens.Crew")))
}

func TestInitializeStore(t *testing.T) {
	cfg := testConfig(t)
	s, cleanup, err := InitializeStore(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	crew, err := s.Roster.List(context.Background())
	require.NoError(t, err)
	require.Len(t, crew, 5)
	require.NoError(t, s.Maintenance.ClearDoorLog(context.Background()))
}

func TestInitializeRejectsBadLogLevel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Log.Level = "chatty"
	_, _, err := Initialize(context.Background(), cfg)
	require.Error(t, err)
}
