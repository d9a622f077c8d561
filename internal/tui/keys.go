package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen scopes used by key bindings.
const (
	ScopePodBay = "screen:podbay"
	ScopeCrew   = "screen:crew"
	ScopeLog    = "screen:log"
	ScopePrompt = "screen:podbay:prompt"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyRegistry resolves key presses to actions per scope.
type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{ScopePodBay}},
		{Keys: []string{"o", "enter"}, Action: "open-doors", Description: "open the pod bay doors", Scopes: []string{ScopePodBay}},
		{Keys: []string{"c"}, Action: "show-crew", Description: "crew", Scopes: []string{ScopePodBay}},
		{Keys: []string{"l"}, Action: "show-log", Description: "door log", Scopes: []string{ScopePodBay}},
		{Keys: []string{":"}, Action: "prompt", Description: "speak", Scopes: []string{ScopePodBay}},
		{Keys: []string{"r"}, Action: "refresh", Description: "refresh", Scopes: []string{ScopeCrew, ScopeLog}},
		{Keys: []string{"esc", "q"}, Action: "close", Description: "back", Scopes: []string{ScopeCrew, ScopeLog}},
		{Keys: []string{"enter"}, Action: "submit", Description: "say it", Scopes: []string{ScopePrompt}},
		{Keys: []string{"esc"}, Action: "cancel", Description: "never mind", Scopes: []string{ScopePrompt}},
	}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// Help returns bubbles key bindings for scope, for rendering with bubbles/help.
func (r *KeyRegistry) Help(scope string) []key.Binding {
	bindings := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description)))
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	return r.Action(msg, scope) == action && action != ""
}

// Action returns the first action bound to msg in scope, or "".
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
