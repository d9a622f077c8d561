// Package display defines the contract through which payloads reach a
// rendering surface, plus the formatting helpers payloads use for their
// primitive fields.
//
// A payload is an immutable value. A surface renders the same output for
// equal payloads no matter how often or in what order Show is called, and
// Show has no failure path: a surface that cannot render a payload is a
// defect, not a runtime condition.
package display

// Display is implemented by anything that can render a P.
type Display[P any] interface {
	Show(payload P)
}

// Func adapts a plain function to Display.
type Func[P any] func(payload P)

func (f Func[P]) Show(payload P) {
	f(payload)
}

// Tee shows every payload on each display in order.
type Tee[P any] []Display[P]

func (t Tee[P]) Show(payload P) {
	for _, d := range t {
		d.Show(payload)
	}
}
