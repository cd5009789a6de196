// Package store implements the state container: it holds the current
// aggregate state tree, applies dispatched intents through the root
// combinator, and notifies subscribers of newly published trees.
//
// Stores are explicit instances created with New and passed to consumers
// at construction; there is no package-level singleton. Multiple stores
// coexist without interfering.
package store

import (
	"context"
	"runtime/debug"
	"sync"
	"time"

	"github.com/amp-labs/amp-state/channels"
	"github.com/amp-labs/amp-state/intent"
	"github.com/amp-labs/amp-state/logger"
	"github.com/amp-labs/amp-state/reducer"
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Listener is notified after a new tree has been published. Listeners take
// no arguments and re-read the state they care about via State and
// selectors. Dispatching from inside a listener is permitted.
type Listener func()

// Store holds the current state tree and serializes all updates to it.
type Store struct {
	name    string
	combine func(reducer.Tree, intent.Intent) reducer.Tree

	// dispatchMu serializes dispatches; a reducer invocation never
	// overlaps another.
	dispatchMu sync.Mutex
	tree       atomic.Pointer[reducer.Tree]

	listenerMu sync.RWMutex
	listeners  map[string]Listener

	watcherMu sync.Mutex
	watchers  map[string]chan<- reducer.Tree
}

// New creates a store over the given slices. The initial tree holds every
// slice's initial sub-state. The name is used for logging, metrics, and
// tracing.
func New(name string, slices ...reducer.Slice) *Store {
	s := &Store{
		name:      name,
		combine:   reducer.Combine(slices...),
		listeners: make(map[string]Listener),
		watchers:  make(map[string]chan<- reducer.Tree),
	}

	initial := reducer.InitialTree(slices...)
	s.tree.Store(&initial)

	subsystem := logger.GetSubsystem(context.Background())

	dispatchTotal.WithLabelValues(subsystem, name).Add(0)
	listenerPanics.WithLabelValues(subsystem, name).Add(0)
	activeListeners.WithLabelValues(subsystem, name).Set(0)
	activeWatchers.WithLabelValues(subsystem, name).Set(0)
	storesCreated.Inc()

	return s
}

// Name returns the store's name.
func (s *Store) Name() string {
	return s.name
}

// State returns the latest published tree. The returned tree is a stable
// snapshot: it is never mutated after publication.
func (s *Store) State() reducer.Tree {
	return *s.tree.Load()
}

// Dispatch runs the root combinator against the current tree, publishes the
// resulting tree wholesale, and then synchronously notifies every currently
// subscribed listener. Within a single dispatch every slice is updated
// against the same intent and the same prior tree; across dispatches the
// apparent order is the order Dispatch was invoked.
func (s *Store) Dispatch(ctx context.Context, it intent.Intent) {
	ctx, span := startDispatchSpan(ctx, s.name, it.Kind)
	defer span.End()

	subsystem := logger.GetSubsystem(ctx)

	start := time.Now()

	s.dispatchMu.Lock()

	prev := *s.tree.Load()
	next := s.combine(prev, it)
	s.tree.Store(&next)

	// Watchers receive trees in publish order, so push while still
	// holding the dispatch lock. The infinite channel never blocks.
	s.watcherMu.Lock()

	for _, ch := range s.watchers {
		ch <- next
	}

	s.watcherMu.Unlock()
	s.dispatchMu.Unlock()

	dispatchTotal.WithLabelValues(subsystem, s.name).Inc()
	dispatchDuration.WithLabelValues(subsystem, s.name).Observe(time.Since(start).Seconds())

	logger.Get(logger.WithStore(ctx, s.name)).Debug("dispatched intent", "kind", it.Kind)

	s.notify(ctx)
}

// notify runs every currently subscribed listener. The listener set is
// snapshotted first, so listeners may subscribe or unsubscribe (or
// dispatch) without deadlocking.
func (s *Store) notify(ctx context.Context) {
	s.listenerMu.RLock()

	snapshot := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		snapshot = append(snapshot, l)
	}

	s.listenerMu.RUnlock()

	start := time.Now()

	for _, l := range snapshot {
		s.runListener(ctx, l)
	}

	notifyDuration.WithLabelValues(logger.GetSubsystem(ctx), s.name).Observe(time.Since(start).Seconds())
}

// runListener invokes a single listener with panic recovery. A panicking
// listener is logged with its stack trace and must not take down the
// dispatch path or skip the remaining listeners.
func (s *Store) runListener(ctx context.Context, l Listener) {
	defer func() {
		if err := recover(); err != nil {
			listenerPanics.WithLabelValues(logger.GetSubsystem(ctx), s.name).Inc()

			logger.Get(ctx).Error("store listener recovered from panic",
				"store", s.name,
				"error", err,
				"stack", string(debug.Stack()))
		}
	}()

	l()
}

// Subscribe registers a listener and returns a capability that removes
// exactly that listener. Calling the returned function more than once is
// safe.
func (s *Store) Subscribe(l Listener) func() {
	id := uuid.NewString()

	s.listenerMu.Lock()
	s.listeners[id] = l
	s.listenerMu.Unlock()

	subsystem := logger.GetSubsystem(context.Background())

	activeListeners.WithLabelValues(subsystem, s.name).Inc()

	return func() {
		s.listenerMu.Lock()
		defer s.listenerMu.Unlock()

		if _, ok := s.listeners[id]; !ok {
			return
		}

		delete(s.listeners, id)
		activeListeners.WithLabelValues(subsystem, s.name).Dec()
	}
}

// Watch returns a channel that receives every tree published after the
// call, in publish order. The backing buffer is unbounded, so a slow
// receiver never blocks dispatch. The channel is closed when the context
// is canceled.
func (s *Store) Watch(ctx context.Context) <-chan reducer.Tree {
	in, out := channels.Infinite[reducer.Tree]()

	id := uuid.NewString()

	s.watcherMu.Lock()
	s.watchers[id] = in
	s.watcherMu.Unlock()

	subsystem := logger.GetSubsystem(ctx)

	activeWatchers.WithLabelValues(subsystem, s.name).Inc()

	go func() {
		<-ctx.Done()

		s.watcherMu.Lock()
		delete(s.watchers, id)
		s.watcherMu.Unlock()

		activeWatchers.WithLabelValues(subsystem, s.name).Dec()
		channels.CloseIgnorePanic(in)
	}()

	return out
}
