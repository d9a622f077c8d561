package podbay

import (
	"go.uber.org/zap"

	"github.com/jask/discovery/core/assembly"
	"github.com/jask/discovery/core/reaction"
	"github.com/jask/discovery/internal/tui"
)

// base is embedded by every handler: shared collaborators plus the router
// binding.
type base struct {
	name string
	env  Env
	log  *zap.Logger
	nav  *reaction.Slot[Navigator]
}

func newBase(name string, env Env) base {
	env = env.withDefaults()
	return base{
		name: name,
		env:  env,
		log:  env.Log.Named(name),
		nav:  reaction.NewSlot[Navigator]("router"),
	}
}

// BindRouter binds the navigator used for screen transitions.
func (b *base) BindRouter(n Navigator) reaction.Binding {
	return b.nav.Bind(n)
}

// ReleaseRouter unbinds the navigator bound by nb.
func (b *base) ReleaseRouter(nb reaction.Binding) bool {
	return b.nav.Release(nb)
}

func (b *base) received(ev Event) {
	b.env.Metrics.Event(b.name, ev.String())
	b.log.Debug("event", zap.Stringer("event", ev))
}

func (b *base) navigate(to assembly.Builder[tui.Screen]) {
	b.nav.Use("navigate", func(n Navigator) {
		if to == nil {
			b.log.Warn("no destination")
			return
		}
		if err := n.Present(to); err != nil {
			b.log.Error("navigation failed", zap.Error(err))
		}
	})
}

func (b *base) dismiss() {
	b.nav.Use("dismiss", func(n Navigator) { n.Dismiss() })
}

func (b *base) text(id string, data map[string]any) string {
	return b.env.Messages.Text(id, data)
}
