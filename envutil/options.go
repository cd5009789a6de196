package envutil

// Option transforms a Reader after the raw lookup and parse.
type Option[T any] func(Reader[T]) Reader[T]

// Default supplies a fallback value used when the variable is absent.
// Parse errors are not masked; use ValueOrElse for that.
func Default[T any](dfl T) Option[T] {
	return func(r Reader[T]) Reader[T] {
		if !r.present && r.err == nil {
			r.value = dfl
			r.present = true
		}

		return r
	}
}

// Validate attaches a validation step that can reject parsed values.
func Validate[T any](f func(T) error) Option[T] {
	return func(r Reader[T]) Reader[T] {
		if r.present && r.err == nil {
			r.err = f(r.value)
		}

		return r
	}
}
