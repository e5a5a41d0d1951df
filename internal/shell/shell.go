// Package shell holds the view state of the storefront layout: the cart
// summary shown in the header badge and the text typed into the search
// forms.
//
// A Shell lives for one mount of the layout. Mount issues a single cart
// read; when it resolves the new count replaces the old one and every
// subscriber is called with the new State. Rendering is a pure function of
// State, so subscribers simply re-render.
package shell

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/smartmart/storefront/internal/cart"
	"github.com/smartmart/storefront/internal/metrics"
	"github.com/smartmart/storefront/internal/routes"
)

// State is everything the layout renders from.
type State struct {
	ItemCount int
	Query     string
}

// Shell is the layout's view state for one mount.
type Shell struct {
	cart   cart.Lister
	logger *slog.Logger

	mu        sync.Mutex
	state     State
	mounted   bool
	unmounted bool
	done      chan struct{}
	cancel    context.CancelFunc
	listeners map[int]func(State)
	nextID    int
}

// New creates an unmounted shell reading from c.
func New(c cart.Lister, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{
		cart:      c,
		logger:    logger,
		done:      make(chan struct{}),
		listeners: make(map[int]func(State)),
	}
}

// Mount starts the cart count load. Only the first call issues a read.
// The returned channel is closed once the load has settled, whatever its
// outcome.
func (s *Shell) Mount(ctx context.Context) <-chan struct{} {
	s.mu.Lock()
	if s.mounted || s.unmounted {
		s.mu.Unlock()
		return s.done
	}
	s.mounted = true
	ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	go func() {
		defer close(s.done)
		s.loadCartCount(ctx)
	}()

	return s.done
}

// Unmount ends the shell's lifetime. A cart load still in flight is
// cancelled and its result discarded.
func (s *Shell) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unmounted {
		return
	}
	s.unmounted = true
	if s.cancel != nil {
		s.cancel()
	}
	if !s.mounted {
		close(s.done)
	}
	clear(s.listeners)
}

func (s *Shell) loadCartCount(ctx context.Context) {
	items, err := s.cart.List(ctx)
	if s.isUnmounted() {
		metrics.CartSummaryLoads.WithLabelValues(metrics.OutcomeDropped).Inc()
		s.logger.Debug("cart count resolved after unmount", "error", err)
		return
	}
	if err != nil {
		metrics.CartSummaryLoads.WithLabelValues(metrics.OutcomeError).Inc()
		s.logger.Error("error loading cart count", "error", fmt.Errorf("%w: %w", cart.ErrUnavailable, err))
		return
	}

	metrics.CartSummaryLoads.WithLabelValues(metrics.OutcomeOK).Inc()
	s.update(func(st *State) { st.ItemCount = cart.Count(items) })
}

// SetQuery records the search text as typed.
func (s *Shell) SetQuery(text string) {
	s.update(func(st *State) { st.Query = text })
}

// Submit returns the search destination for the current query. ok is false
// when the query is empty or whitespace, in which case nothing should
// navigate.
func (s *Shell) Submit() (dest string, ok bool) {
	dest, ok = routes.SearchDestination(s.State().Query)
	metrics.SearchSubmissions.WithLabelValues(fmt.Sprint(ok)).Inc()
	return dest, ok
}

// State returns a snapshot of the current state.
func (s *Shell) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called with the new state after every
// change. fn runs on the goroutine that made the change, outside the
// shell's lock, so it may call State. The returned func removes it;
// Unmount removes all of them.
func (s *Shell) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Shell) isUnmounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unmounted
}

// update applies fn under the lock, then notifies listeners outside it.
// Updates after unmount are dropped.
func (s *Shell) update(fn func(*State)) {
	s.mu.Lock()
	if s.unmounted {
		s.mu.Unlock()
		return
	}
	fn(&s.state)
	st := s.state
	listeners := make([]func(State), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(st)
	}
}
