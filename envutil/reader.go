package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

var (
	// ErrEnvVarMissing indicates that the environment variable was not set.
	ErrEnvVarMissing = errors.New("missing environment variable")
	// ErrBadEnvVar indicates that the environment variable could not be parsed.
	ErrBadEnvVar = errors.New("malformed environment variable")
)

// Reader holds the result of reading a single environment variable:
// the key, whether it was present, the (possibly defaulted) parsed value,
// and any parse error.
type Reader[A any] struct {
	key     string
	present bool
	value   A
	err     error
}

// Key returns the environment variable key this reader was built from.
func (e Reader[A]) Key() string {
	return e.key
}

// Value returns the value of the environment variable, or an error if the
// value is missing or could not be parsed.
func (e Reader[A]) Value() (A, error) { //nolint:ireturn
	if e.err != nil {
		return e.value, fmt.Errorf("%w %s: %w (given value is %v)", ErrBadEnvVar, e.key, e.err, e.value)
	}

	if !e.present {
		return e.value, fmt.Errorf("%w %s", ErrEnvVarMissing, e.key)
	}

	return e.value, nil
}

// ValueOrFatal returns the value of the environment variable, or exits the
// program if the value is missing or if there was an error parsing it.
func (e Reader[A]) ValueOrFatal() A { //nolint:ireturn
	value, err := e.Value()
	if err != nil {
		slog.Error("error reading environment variable", "key", e.key, "error", err)
		os.Exit(1)
	}

	return value
}

// ValueOrElse returns the value of the environment variable, or a default value
// if the value is missing or if there was an error parsing it.
func (e Reader[A]) ValueOrElse(v A) A { //nolint:ireturn
	if e.present && e.err == nil {
		return e.value
	}

	if e.err != nil {
		slog.Warn("error reading environment variable, using fallback value",
			"key", e.key, "value", e.value, "error", e.err, "fallback", v)
	}

	return v
}

// HasValue returns true if the variable was present and parsed cleanly.
func (e Reader[A]) HasValue() bool {
	return e.present && e.err == nil
}

// Error returns the parse error, if any.
func (e Reader[A]) Error() error {
	return e.err
}

// Map converts a Reader of one type to another by passing the value through f.
// Absent values and prior errors are propagated without calling f.
func Map[A any, B any](env Reader[A], f func(A) (B, error)) Reader[B] {
	out := Reader[B]{
		key:     env.key,
		present: env.present,
		err:     env.err,
	}

	if env.present && env.err == nil {
		out.value, out.err = f(env.value)
	}

	return out
}
