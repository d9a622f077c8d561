// Package router turns "present this screen" requests into a build followed by
// a hand-off to the platform's presentation mechanism.
//
// A reaction handler never constructs the screen it navigates to. It passes
// the screen's builder to the router, which builds it and asks the bound
// presenter to show it:
//
//	r := router.New[tui.Screen]()
//	r.Bind(stack) // the platform presenter, not owned by the router
//
//	// inside a handler
//	if err := r.Present(crewScreens); err != nil {
//	    // misconfiguration: the crew screen could not be assembled
//	}
//
// Handlers receive the router through a Bind call rather than their
// constructor because they do not own its lifetime.
package router

import (
	"github.com/jask/discovery/core/assembly"
	"github.com/jask/discovery/core/reaction"
)

// Presenter displays a fully built screen.
type Presenter[S any] interface {
	Present(screen S)
}

// Dismisser is implemented by presenters that can remove the topmost screen.
type Dismisser interface {
	Dismiss()
}

// PresenterFunc adapts a plain function to Presenter.
type PresenterFunc[S any] func(screen S)

func (f PresenterFunc[S]) Present(screen S) {
	f(screen)
}

// Router delegates presentation requests to a builder and a presenter.
type Router[S any] struct {
	presenter *reaction.Slot[Presenter[S]]
}

func New[S any]() *Router[S] {
	return &Router[S]{presenter: reaction.NewSlot[Presenter[S]]("presenter")}
}

// Bind stores a non-owning reference to the presenter. Rebinding replaces it.
// The presenter keeps the returned binding to release itself later.
func (r *Router[S]) Bind(p Presenter[S]) reaction.Binding {
	return r.presenter.Bind(p)
}

// Release forgets the presenter bound by b if it is still the latest one.
// Later requests are dropped until a presenter is bound again.
func (r *Router[S]) Release(b reaction.Binding) bool {
	return r.presenter.Release(b)
}

// Bound reports whether a presenter is currently bound.
func (r *Router[S]) Bound() bool {
	return r.presenter.Bound()
}

// Present builds the screen and hands it to the presenter. Calling Present
// before any presenter was bound panics with a *reaction.PreconditionError;
// nothing is built in that case. A build failure is returned unchanged and
// nothing is presented.
func (r *Router[S]) Present(b assembly.Builder[S]) error {
	var err error
	r.presenter.Use("present", func(p Presenter[S]) {
		var screen S
		screen, err = b.Build()
		if err != nil {
			return
		}
		p.Present(screen)
	})
	return err
}

// Dismiss asks the presenter to remove its topmost screen. Presenters that
// cannot dismiss ignore the request.
func (r *Router[S]) Dismiss() {
	r.presenter.Use("dismiss", func(p Presenter[S]) {
		if d, ok := p.(Dismisser); ok {
			d.Dismiss()
		}
	})
}
