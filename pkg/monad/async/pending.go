package async

import (
	"context"

	"github.com/ib-77/fluentutils/pkg/monad"
)

// Pending is a Result that is still being computed.
type Pending[T any] struct {
	done     chan struct{}
	result   monad.Result[T]
	panicked any
}

// Start runs fn in its own goroutine. A panic inside fn is held and raised
// again by Await.
func Start[T any](ctx context.Context, fn func(ctx context.Context) monad.Result[T]) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{})}

	go func() {
		defer close(p.done)
		defer func() {
			if r := recover(); r != nil {
				p.panicked = r
			}
		}()

		p.result = fn(ctx)
	}()

	return p
}

// Resolved returns an already completed Pending.
func Resolved[T any](r monad.Result[T]) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{}), result: r}
	close(p.done)
	return p
}

// FromChan completes with the first Result received from ch, or with the
// invalid zero Result if ch is closed without one.
func FromChan[T any](ctx context.Context, ch <-chan monad.Result[T]) *Pending[T] {
	return Start(ctx, func(context.Context) monad.Result[T] {
		r, ok := <-ch
		if !ok {
			return monad.Result[T]{}
		}
		return r
	})
}

// Await blocks until p completes. A nil Pending awaits to the invalid zero
// Result.
func (p *Pending[T]) Await() monad.Result[T] {
	if p == nil || p.done == nil {
		return monad.Result[T]{}
	}

	<-p.done
	if p.panicked != nil {
		panic(p.panicked)
	}
	return p.result
}

// Done is closed once p completes.
func (p *Pending[T]) Done() <-chan struct{} {
	if p == nil || p.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return p.done
}

// Chan delivers the awaited Result once and is then closed.
func (p *Pending[T]) Chan() <-chan monad.Result[T] {
	out := make(chan monad.Result[T], 1)
	go func() {
		defer close(out)
		out <- p.Await()
	}()
	return out
}
