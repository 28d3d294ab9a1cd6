// Copyright 2024 Ahmad Sameh(asmsh)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package future

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Future represents a lazily evaluated process, composed of stages,
// that eventually results in a value of type T, or a Failure.
//
// A Future is a thin facade over the pipeline's continuation chain.
// It's a single-owner value: every combinator and terminal consumes the
// receiver and, for combinators, returns a new Future wrapping the
// extended chain. Using a consumed Future panics.
//
// Nothing runs until Done or Await attaches the terminal sink.
type Future[T any] struct {
	ch *chain[T]
}

// New returns a Future over the given starter. The starter will be run
// once the pipeline is terminated, and is responsible for eventually
// delivering its promise, exactly once. A starter that stashes the
// promise and returns makes the future asynchronous.
func New[T any](starter func(p Promise[T])) *Future[T] {
	if starter == nil {
		panic(nilStarterPanicMsg)
	}
	return &Future[T]{ch: newChain(starter)}
}

// futureOf wraps an already built chain.
func futureOf[T any](c *chain[T]) *Future[T] {
	return &Future[T]{ch: c}
}

// take extracts the underlying chain, consuming the future.
func (f *Future[T]) take() *chain[T] {
	if f == nil {
		panic(nilFuturePanicMsg)
	}
	if f.ch == nil {
		panic(consumedFuturePanicMsg)
	}
	c := f.ch
	f.ch = nil
	return c
}

// ID returns the pipeline id of this future. The id is stamped when the
// pipeline's first future is built, and is kept across the combinators
// that extend a pipeline (Then, Catch, Map, Enqueue, and the like), so
// it identifies the whole pipeline in debug events. And, Or, Seq, All,
// and Any start a new pipeline, with a new id.
func (f *Future[T]) ID() uuid.UUID {
	if f == nil || f.ch == nil {
		panic(consumedFuturePanicMsg)
	}
	return f.ch.id
}

// Then is the same-type form of the package-level Then.
func (f *Future[T]) Then(cb func(val T) Result[T]) *Future[T] {
	return Then(f, cb)
}

// Catch returns a Future whose pipeline handles a failure of this one.
// The callback runs iff the inbound outcome is rejected, receiving the
// wrapped error; its Result may recover with a new value, re-raise with
// Err or Raise, or splice in a nested future. A fulfilled inbound
// outcome is forwarded unchanged and the callback never runs.
func (f *Future[T]) Catch(cb func(err error) Result[T]) *Future[T] {
	return futureOf(catchCall(f.take(), cb))
}

// CatchFailure is the re-raise-only form of Catch: the callback takes
// the inbound Failure and returns the Failure to forward, possibly
// transformed. Since it can't recover, it works for any value type,
// which makes it the right shape for reusable failure handlers.
func (f *Future[T]) CatchFailure(cb func(f Failure) Failure) *Future[T] {
	return futureOf(catchFailureCall(f.take(), cb))
}

// Finally is the same-type form of the package-level Finally.
func (f *Future[T]) Finally(cb func(o Outcome[T]) Outcome[T]) *Future[T] {
	return Finally(f, cb)
}

// Enqueue returns a Future that re-schedules everything downstream of
// this point through e: once the upstream stage completes, the pending
// outcome and the downstream promise are captured into a task and
// submitted, and e decides when and on which goroutine it runs.
//
// The executor value is retained in the stage, so it's reused on every
// evaluation. The module does no synchronisation on its behalf; if e
// introduces real parallelism, serialising the downstream stages is
// its responsibility.
func (f *Future[T]) Enqueue(e Executor) *Future[T] {
	return futureOf(enqueueCall(f.take(), e))
}

// Delay returns a Future that holds this future's outcome for at least
// duration d before forwarding it.
//
// If no conditions are passed, every outcome is delayed. Otherwise a
// fulfilled outcome is delayed only if OnSuccess (or OnAll) is present,
// and a rejected one only if OnError (or OnAll) is.
//
// The sleep happens inline on the driving goroutine; combine with
// Enqueue to delay off it.
func (f *Future[T]) Delay(d time.Duration, cond ...DelayCond) *Future[T] {
	return futureOf(delayCall(f.take(), d, getDelayFlags(cond)))
}

// Done terminates the pipeline with sink and triggers its evaluation.
// The sink is invoked exactly once, with the final outcome, unless some
// stage suspended and never delivered its promise.
func (f *Future[T]) Done(sink func(o Outcome[T])) {
	f.take().evaluateInto(sink)
}

// Await terminates the pipeline and blocks until its final outcome
// arrives, or until ctx is done, whichever comes first.
// It returns the fulfilled value, or the rejection's wrapped error, or
// ctx.Err() on expiry.
//
// It's the bridge from pipeline composition back to plain blocking Go
// code; stages suspended inside external completion sources are waited
// for like everything else.
func (f *Future[T]) Await(ctx context.Context) (val T, err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	resChan := make(chan Outcome[T], 1)
	f.Done(func(o Outcome[T]) {
		resChan <- o
	})

	select {
	case o := <-resChan:
		if o.IsRejected() {
			return val, o.Failure().Err()
		}
		return o.Value(), nil
	case <-ctx.Done():
		return val, ctx.Err()
	}
}

// Cancel abandons the pipeline: it's marked as not-to-be-evaluated and
// no stage will ever run. The future is consumed.
//
// Cancelling is never required; a future that's simply never terminated
// executes nothing either. It exists for making the abandonment
// explicit at the call site.
func (f *Future[T]) Cancel() {
	f.take().cancel()
}

// Then returns a Future whose pipeline continues this one's through cb.
// The callback runs iff the inbound outcome is fulfilled, receiving its
// value; the Result it returns completes the stage with a value, a
// failure, or a nested future. A rejected inbound outcome bypasses the
// callback and its failure is forwarded verbatim.
func Then[T, U any](f *Future[T], cb func(val T) Result[U]) *Future[U] {
	return futureOf(thenCall(f.take(), cb))
}

// ThenDo is Then for callbacks with nothing to return: the stage
// completes with the empty Void value once cb returns.
func ThenDo[T any](f *Future[T], cb func(val T)) *Future[Void] {
	if cb == nil {
		panic(nilCallbackPanicMsg)
	}
	return Then(f, func(val T) Result[Void] {
		cb(val)
		return Empty[Void]()
	})
}

// ThenFuture sequences the prepared future next after f: next's chain
// is extracted now, at composition time, but runs only once f has
// produced a fulfilled outcome (whose value is dropped). If f fails,
// next is cancelled, so its stages never run, and the failure is
// forwarded instead.
func ThenFuture[T, U any](f *Future[T], next *Future[U]) *Future[U] {
	return futureOf(thenFutureCall(f.take(), next.take()))
}

// Map returns a Future whose pipeline transforms this one's outcome,
// success or failure, through cb. It's the only combinator whose
// callback observes both outcomes; the Outcome it returns is forwarded
// as-is.
func Map[T, U any](f *Future[T], cb func(o Outcome[T]) Outcome[U]) *Future[U] {
	return futureOf(mapCall(f.take(), cb))
}

// Finally is Map under the name that reads better at the end of a
// pipeline. The two are observationally identical.
func Finally[T, U any](f *Future[T], cb func(o Outcome[T]) Outcome[U]) *Future[U] {
	return Map(f, cb)
}
