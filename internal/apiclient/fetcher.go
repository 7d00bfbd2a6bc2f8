package apiclient

import (
	"context"
	"sync"
)

// FetchStatus is the mutually exclusive UI state of one list fetch.
type FetchStatus int

const (
	StatusIdle FetchStatus = iota
	StatusLoading
	StatusError
	StatusEmpty
	StatusLoaded
)

func (s FetchStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusEmpty:
		return "empty"
	case StatusLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent read of a fetcher's state.
type Snapshot[T any] struct {
	Status FetchStatus
	Docs   []T
	Err    error
}

// LatestFetcher guarantees that only the most recently issued request for a
// given consumer updates visible state. Each Fetch gets a generation number;
// a response whose generation has been superseded is discarded instead of
// committed, so a fast facet double-change can never leave stale results on
// screen. Superseding a request also cancels its context.
type LatestFetcher[T any] struct {
	mu       sync.Mutex
	gen      uint64
	cancel   context.CancelFunc
	snapshot Snapshot[T]
}

// Fetch issues fn on its own goroutine and transitions to loading. The
// returned channel closes when this request has been settled: committed, or
// discarded because a newer Fetch superseded it.
func (f *LatestFetcher[T]) Fetch(ctx context.Context, fn func(context.Context) ([]T, error)) <-chan struct{} {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	if f.cancel != nil {
		f.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.snapshot.Status = StatusLoading
	f.snapshot.Err = nil
	f.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)

		docs, err := fn(fetchCtx)

		f.mu.Lock()
		defer f.mu.Unlock()
		if gen != f.gen {
			// A newer request was issued while this one was in flight.
			return
		}
		switch {
		case err != nil:
			f.snapshot = Snapshot[T]{Status: StatusError, Err: err}
		case len(docs) == 0:
			f.snapshot = Snapshot[T]{Status: StatusEmpty, Docs: []T{}}
		default:
			f.snapshot = Snapshot[T]{Status: StatusLoaded, Docs: docs}
		}
	}()

	return done
}

// Snapshot returns the current visible state.
func (f *LatestFetcher[T]) Snapshot() Snapshot[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot
}
