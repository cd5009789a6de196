// Package intent defines the tagged descriptors that drive all state
// changes. An intent is a kind plus an optional payload; slices match on
// the kind and ignore intents they don't recognize.
package intent

// Intent is an immutable description of a requested state change.
// Kind identifies the change; Payload carries kind-dependent data.
// Kinds are namespaced by slice, e.g. "counter/increment" or
// "users/fetch.pending".
type Intent struct {
	Kind    string
	Payload any
}

// New creates a payload-less intent of the given kind.
func New(kind string) Intent {
	return Intent{Kind: kind}
}

// NewWithPayload creates an intent carrying a payload.
func NewWithPayload(kind string, payload any) Intent {
	return Intent{Kind: kind, Payload: payload}
}

// Payload extracts the intent's payload as type T. The second return value
// is false when the payload is absent or has a different type; reducers
// treat such intents as unrecognized rather than failing.
func Payload[T any](it Intent) (T, bool) { //nolint:ireturn
	val, ok := it.Payload.(T)

	return val, ok
}
