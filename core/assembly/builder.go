package assembly

import (
	"reflect"
	"time"
)

// Builder constructs a new T on every call. Build is the only operation a
// builder exposes.
type Builder[T any] interface {
	Build() (T, error)
}

// Func adapts a plain function to Builder.
type Func[T any] func() (T, error)

func (f Func[T]) Build() (T, error) {
	return f()
}

// ArgBuilder constructs a new T from per-call arguments.
type ArgBuilder[A, T any] interface {
	Build(args A) (T, error)
}

// ArgFunc adapts a plain function to ArgBuilder.
type ArgFunc[A, T any] func(args A) (T, error)

func (f ArgFunc[A, T]) Build(args A) (T, error) {
	return f(args)
}

// With fixes the per-call arguments of b, producing a Builder that can be
// handed to anything expecting one (a router, another builder).
func With[A, T any](b ArgBuilder[A, T], args A) Builder[T] {
	return Func[T](func() (T, error) {
		return b.Build(args)
	})
}

// Shared returns a builder that yields v on every call. It is the only way two
// consumers end up holding the same instance.
func Shared[T any](v T) Builder[T] {
	return Func[T](func() (T, error) {
		return v, nil
	})
}

// Option configures a builder created by New or one of its variants.
type Option func(*options)

type options struct {
	name     string
	observer Observer
}

// Named overrides the component name used in errors and observations. The
// default is the Go type name of the built value.
func Named(name string) Option {
	return func(o *options) { o.name = name }
}

// Observe reports every build and build failure to obs.
func Observe(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// node is the single implementation behind New..New4. resolve pulls the
// sub-dependencies; construct is the one constructor this builder owns.
type node[T any] struct {
	opts    options
	resolve func() (T, error)
}

func newNode[T any](opts []Option, resolve func() (T, error)) *node[T] {
	n := &node[T]{resolve: resolve}
	for _, opt := range opts {
		opt(&n.opts)
	}
	if n.opts.name == "" {
		n.opts.name = typeName[T]()
	}
	return n
}

func (n *node[T]) Build() (T, error) {
	start := time.Now()
	v, err := n.resolve()
	if err != nil {
		var zero T
		err = wrap(n.opts.name, err)
		if n.opts.observer != nil {
			n.opts.observer.Failed(n.opts.name, err)
		}
		return zero, err
	}
	if n.opts.observer != nil {
		n.opts.observer.Built(n.opts.name, time.Since(start))
	}
	return v, nil
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}
