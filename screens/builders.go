package screens

import (
	"github.com/jask/discovery/core/assembly"
	"github.com/jask/discovery/core/display"
	"github.com/jask/discovery/internal/podbay"
	"github.com/jask/discovery/internal/tui"
)

// Deps are the rendering collaborators shared by every screen.
type Deps struct {
	Keys   *tui.KeyRegistry
	Format display.Formatter
}

// PodBay builds a pod bay screen with a fresh door handler bound to it.
func PodBay(handlers assembly.Builder[*podbay.DoorHandler], nav assembly.Builder[podbay.Navigator], deps assembly.Builder[Deps], opts ...assembly.Option) assembly.Builder[tui.Screen] {
	return assembly.New3(handlers, nav, deps, func(h *podbay.DoorHandler, n podbay.Navigator, d Deps) (tui.Screen, error) {
		s := NewPodBayScreen(h, d)
		db, nb := h.Bind(s), h.BindRouter(n)
		s.release = func() {
			h.Release(db)
			h.ReleaseRouter(nb)
		}
		return s, nil
	}, named("screens.PodBay", opts)...)
}

func Crew(handlers assembly.Builder[*podbay.CrewHandler], nav assembly.Builder[podbay.Navigator], deps assembly.Builder[Deps], opts ...assembly.Option) assembly.Builder[tui.Screen] {
	return assembly.New3(handlers, nav, deps, func(h *podbay.CrewHandler, n podbay.Navigator, d Deps) (tui.Screen, error) {
		s := NewCrewScreen(h, d)
		db, nb := h.Bind(s), h.BindRouter(n)
		s.release = func() {
			h.Release(db)
			h.ReleaseRouter(nb)
		}
		return s, nil
	}, named("screens.Crew", opts)...)
}

func Log(handlers assembly.Builder[*podbay.LogHandler], nav assembly.Builder[podbay.Navigator], deps assembly.Builder[Deps], opts ...assembly.Option) assembly.Builder[tui.Screen] {
	return assembly.New3(handlers, nav, deps, func(h *podbay.LogHandler, n podbay.Navigator, d Deps) (tui.Screen, error) {
		s := NewLogScreen(h, d)
		db, nb := h.Bind(s), h.BindRouter(n)
		s.release = func() {
			h.Release(db)
			h.ReleaseRouter(nb)
		}
		return s, nil
	}, named("screens.Log", opts)...)
}

func named(name string, opts []assembly.Option) []assembly.Option {
	return append([]assembly.Option{assembly.Named(name)}, opts...)
}
