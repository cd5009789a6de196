// Package envutil provides typed, composable readers for environment
// variables. Each reader carries the raw lookup result plus any parse error,
// so callers can decide how strictly to treat missing or malformed values
// (Value, ValueOrElse, ValueOrFatal).
package envutil

import (
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"time"
)

// get returns a Reader for the given environment variable key.
func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	rdr := get(key)
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

func Bool(key string, opts ...Option[bool]) Reader[bool] {
	rdr := Map(get(key), strconv.ParseBool)
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

func Int(key string, opts ...Option[int]) Reader[int] {
	rdr := Map(get(key), strconv.Atoi)
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

func Duration(key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	rdr := Map(get(key), time.ParseDuration)
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

func URL(key string, opts ...Option[*url.URL]) Reader[*url.URL] {
	rdr := Map(get(key), url.Parse)
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	rdr := Map(get(key), func(raw string) (slog.Level, error) {
		var level slog.Level

		err := level.UnmarshalText([]byte(raw))

		return level, err
	})
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}
