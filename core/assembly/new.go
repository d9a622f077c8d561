package assembly

// New returns a builder for a component without dependencies.
func New[T any](ctor func() (T, error), opts ...Option) Builder[T] {
	return newNode(opts, ctor)
}

// New1 returns a builder that resolves d1 and passes it to ctor.
func New1[D1, T any](d1 Builder[D1], ctor func(D1) (T, error), opts ...Option) Builder[T] {
	return newNode(opts, func() (T, error) {
		var zero T
		v1, err := d1.Build()
		if err != nil {
			return zero, err
		}
		return ctor(v1)
	})
}

// New2 returns a builder that resolves d1 then d2 and passes both to ctor.
func New2[D1, D2, T any](d1 Builder[D1], d2 Builder[D2], ctor func(D1, D2) (T, error), opts ...Option) Builder[T] {
	return newNode(opts, func() (T, error) {
		var zero T
		v1, err := d1.Build()
		if err != nil {
			return zero, err
		}
		v2, err := d2.Build()
		if err != nil {
			return zero, err
		}
		return ctor(v1, v2)
	})
}

// New3 returns a builder that resolves d1, d2 and d3 in order and passes them
// to ctor.
func New3[D1, D2, D3, T any](d1 Builder[D1], d2 Builder[D2], d3 Builder[D3], ctor func(D1, D2, D3) (T, error), opts ...Option) Builder[T] {
	return newNode(opts, func() (T, error) {
		var zero T
		v1, err := d1.Build()
		if err != nil {
			return zero, err
		}
		v2, err := d2.Build()
		if err != nil {
			return zero, err
		}
		v3, err := d3.Build()
		if err != nil {
			return zero, err
		}
		return ctor(v1, v2, v3)
	})
}

// New4 is New3 with one more dependency. Components needing more than four
// should group related collaborators behind their own builder.
func New4[D1, D2, D3, D4, T any](d1 Builder[D1], d2 Builder[D2], d3 Builder[D3], d4 Builder[D4], ctor func(D1, D2, D3, D4) (T, error), opts ...Option) Builder[T] {
	return newNode(opts, func() (T, error) {
		var zero T
		v1, err := d1.Build()
		if err != nil {
			return zero, err
		}
		v2, err := d2.Build()
		if err != nil {
			return zero, err
		}
		v3, err := d3.Build()
		if err != nil {
			return zero, err
		}
		v4, err := d4.Build()
		if err != nil {
			return zero, err
		}
		return ctor(v1, v2, v3, v4)
	})
}

// NewArg1 returns an ArgBuilder that resolves d1 on every call and passes it to
// ctor together with the call's arguments.
func NewArg1[A, D1, T any](d1 Builder[D1], ctor func(A, D1) (T, error), opts ...Option) ArgBuilder[A, T] {
	return ArgFunc[A, T](func(args A) (T, error) {
		return newNode(opts, func() (T, error) {
			var zero T
			v1, err := d1.Build()
			if err != nil {
				return zero, err
			}
			return ctor(args, v1)
		}).Build()
	})
}
