// Package options implements the functional-option pattern generically, so
// every configurable type in the module shares one option mechanism instead
// of redeclaring it.
package options

// Option configures a target of type T and may reject invalid settings.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option.
type Func[T any] struct {
	fn func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.fn(target)
}

// New wraps fn as an Option. The function runs when the option is applied
// and its error aborts the whole Apply chain.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{fn: fn}
}

// Apply runs opts against target in order, stopping at the first error. The
// target may be partially configured when an error is returned; constructors
// discard it in that case.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
