package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

type fakeScreen struct {
	title     string
	scope     string
	activated int
	closed    int
	keys      []string
	popOn     string
}

func (s *fakeScreen) Update(msg tea.Msg) (tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		s.keys = append(s.keys, k.String())
		return nil, k.String() == s.popOn
	}
	return nil, false
}

func (s *fakeScreen) View(width, height int) string { return "body of " + s.title }
func (s *fakeScreen) Scope() string                 { return s.scope }
func (s *fakeScreen) Title() string                 { return s.title }
func (s *fakeScreen) Activate()                     { s.activated++ }
func (s *fakeScreen) Close()                        { s.closed++ }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStackPresentAndDismiss(t *testing.T) {
	stack := NewStack(nil)
	var presented []string
	stack.OnPresent(func(scope string) { presented = append(presented, scope) })

	root := &fakeScreen{title: "Pod Bay", scope: ScopePodBay}
	crew := &fakeScreen{title: "Crew", scope: ScopeCrew}
	stack.Present(root)
	stack.Present(crew)
	stack.Present(nil)

	require.Equal(t, 2, stack.Len())
	require.Same(t, crew, stack.Top())
	require.Equal(t, []string{"Pod Bay", "Crew"}, stack.Titles())
	require.Equal(t, []string{ScopePodBay, ScopeCrew}, presented)
	require.Equal(t, 1, crew.activated)

	stack.Dismiss()
	require.Equal(t, 1, crew.closed)
	require.Equal(t, 0, root.closed)
	require.Same(t, root, stack.Top())

	stack.Dismiss()
	stack.Dismiss()
	require.Equal(t, 0, stack.Len())
	require.Nil(t, stack.Top())
}

func TestKeyRegistryScopes(t *testing.T) {
	keys := NewKeyRegistry(DefaultKeyBindings())

	require.True(t, keys.IsAction(runes("q"), "quit", ScopePodBay))
	require.False(t, keys.IsAction(runes("q"), "quit", ScopeCrew))
	require.True(t, keys.IsAction(runes("q"), "close", ScopeCrew))
	require.Equal(t, "open-doors", keys.Action(tea.KeyMsg{Type: tea.KeyEnter}, ScopePodBay))
	require.Equal(t, "submit", keys.Action(tea.KeyMsg{Type: tea.KeyEnter}, ScopePrompt))
	require.Empty(t, keys.Action(runes("x"), ScopePodBay))
	require.False(t, keys.IsAction(runes("x"), "", ScopePodBay))

	help := keys.Help(ScopeLog)
	require.Len(t, help, 2)
	require.Equal(t, "r", help[0].Help().Key)
}

func TestModelRoutesKeysToTopScreen(t *testing.T) {
	stack := NewStack(nil)
	root := &fakeScreen{title: "Pod Bay", scope: ScopePodBay}
	crew := &fakeScreen{title: "Crew", scope: ScopeCrew, popOn: "esc"}
	stack.Present(root)
	stack.Present(crew)
	m := NewModel("DISCOVERY ONE", stack, NewKeyRegistry(DefaultKeyBindings()), nil)

	next, _ := m.Update(runes("r"))
	m = next.(Model)
	require.Equal(t, []string{"r"}, crew.keys)
	require.Empty(t, root.keys)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	require.Equal(t, 1, crew.closed)
	require.Equal(t, ScopePodBay, m.ActiveScope())

	next, cmd := m.Update(runes("q"))
	m = next.(Model)
	require.NotNil(t, cmd)
	require.Equal(t, "Goodbye\n", m.View())
}

func TestModelQuitsWhenLastScreenPops(t *testing.T) {
	stack := NewStack(nil)
	stack.Present(&fakeScreen{title: "Only", scope: ScopeLog, popOn: "esc"})
	m := NewModel("DISCOVERY ONE", stack, NewKeyRegistry(nil), nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.Equal(t, 0, next.(Model).Stack().Len())
}

func TestModelViewFramesTopScreen(t *testing.T) {
	stack := NewStack(nil)
	stack.Present(&fakeScreen{title: "Pod Bay", scope: ScopePodBay})
	m := NewModel("DISCOVERY ONE", stack, NewKeyRegistry(DefaultKeyBindings()), nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	m = next.(Model)
	next, _ = m.Update(StatusMsg{Text: "doors sealed"})
	m = next.(Model)

	view := m.View()
	require.True(t, strings.Contains(view, "DISCOVERY ONE"))
	require.True(t, strings.Contains(view, "body of Pod Bay"))
	require.True(t, strings.Contains(view, "doors sealed"))
	require.Equal(t, 12, strings.Count(view, "\n")+1)
}

type overlayScreen struct{ fakeScreen }

func (s *overlayScreen) Overlay() bool { return true }

func TestOverlayRendersOverScreenBelow(t *testing.T) {
	stack := NewStack(nil)
	stack.Present(&fakeScreen{title: "Pod Bay", scope: ScopePodBay})
	stack.Present(&overlayScreen{fakeScreen{title: "Crew", scope: ScopeCrew}})
	require.Equal(t, "Pod Bay", stack.Below().Title())

	body := renderBody(stack, 60, 20)
	require.True(t, strings.Contains(body, "body of Pod Bay"))
	require.True(t, strings.Contains(body, "body of Crew"))
}

func TestErrorCmdReachesStatusBar(t *testing.T) {
	stack := NewStack(nil)
	stack.Present(&fakeScreen{title: "Crew", scope: ScopeCrew})
	m := NewModel("DISCOVERY ONE", stack, NewKeyRegistry(nil), nil)

	msg := ErrorCmd(errors.New("roster unavailable"))()
	require.Equal(t, StatusMsg{Text: "roster unavailable", IsErr: true}, msg)
	require.Equal(t, StatusMsg{}, ErrorCmd(nil)())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 8})
	next, _ = next.Update(msg)
	require.True(t, strings.Contains(next.View(), "roster unavailable"))
}
