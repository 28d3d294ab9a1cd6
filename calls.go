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

// calls.go: contains the stage adapters behind the public combinators.
// they are extracted here since they are shared between the package
// functions and the same-type methods.

package future

import "time"

func thenCall[T, U any](c *chain[T], cb thenCallback[T, U]) *chain[U] {
	if cb == nil {
		panic(nilCallbackPanicMsg)
	}

	return transformChain(c, func(o Outcome[T], p Promise[U]) {
		if o.IsFulfilled() {
			resolveWithCallback(o, cb, p)
		} else {
			// forward just the failure, the callback never sees it
			p.Reject(o.Failure())
		}
	})
}

func thenFutureCall[T, U any](c *chain[T], next *chain[U]) *chain[U] {
	return transformChain(c, func(o Outcome[T], p Promise[U]) {
		if o.IsFulfilled() {
			// the predecessor's value is dropped; only its success matters
			next.evaluateInto(func(no Outcome[U]) {
				p.Deliver(no)
			})
		} else {
			// cancel the staged chain so it never runs, and forward the
			// failure
			next.cancel()
			p.Reject(o.Failure())
		}
	})
}

func catchCall[T any](c *chain[T], cb catchCallback[T]) *chain[T] {
	if cb == nil {
		panic(nilCallbackPanicMsg)
	}

	return transformChain(c, func(o Outcome[T], p Promise[T]) {
		if o.IsRejected() {
			res := cb(o.Failure().Err())
			res.ResolvePromise(p)
		} else {
			p.Deliver(o)
		}
	})
}

func catchFailureCall[T any](c *chain[T], cb failureCallback) *chain[T] {
	if cb == nil {
		panic(nilCallbackPanicMsg)
	}

	return transformChain(c, func(o Outcome[T], p Promise[T]) {
		if o.IsRejected() {
			p.Reject(cb(o.Failure()))
		} else {
			p.Deliver(o)
		}
	})
}

func mapCall[T, U any](c *chain[T], cb mapCallback[T, U]) *chain[U] {
	if cb == nil {
		panic(nilCallbackPanicMsg)
	}

	return transformChain(c, func(o Outcome[T], p Promise[U]) {
		p.Deliver(cb(o))
	})
}

func enqueueCall[T any](c *chain[T], e Executor) *chain[T] {
	if e == nil {
		panic(nilExecutorPanicMsg)
	}

	return transformChain(c, func(o Outcome[T], p Promise[T]) {
		// capture the pending outcome and the downstream promise into a
		// task; the executor decides when and where it runs.
		e.Submit(func() {
			p.Deliver(o)
		})
	})
}

// handles rejection and fulfillment only
func delayCall[T any](c *chain[T], d time.Duration, flags delayFlags) *chain[T] {
	return transformChain(c, func(o Outcome[T], p Promise[T]) {
		if o.IsRejected() {
			if flags.onError {
				time.Sleep(d)
			}
		} else {
			if flags.onSuccess {
				time.Sleep(d)
			}
		}
		p.Deliver(o)
	})
}
