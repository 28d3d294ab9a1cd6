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

import "github.com/asmsh/future/internal/status"

// Promise is the one-shot continuation sink of a single stage.
// The stage that holds it completes by calling Fulfill, Reject, or
// Deliver, exactly once. Delivering inline, before the stage returns,
// makes the stage synchronous; stashing the promise somewhere and
// delivering later makes it asynchronous.
//
// A Promise may be copied (to hand it to some completion source), but
// all copies share the same one-shot guard: the second delivery through
// any copy panics.
//
// The zero Promise is not usable; delivering through it panics.
type Promise[T any] struct {
	deliver func(Outcome[T])
	state   *status.Prom
}

func newPromise[T any](deliver func(Outcome[T])) Promise[T] {
	return Promise[T]{deliver: deliver, state: new(status.Prom)}
}

// Fulfill completes the stage with val.
func (p Promise[T]) Fulfill(val T) {
	p.Deliver(Succeed(val))
}

// Reject completes the stage with f.
func (p Promise[T]) Reject(f Failure) {
	p.Deliver(FailWith[T](f))
}

// Deliver completes the stage with the outcome o, success or failure.
func (p Promise[T]) Deliver(o Outcome[T]) {
	if p.deliver == nil {
		panic(zeroPromisePanicMsg)
	}
	if !p.state.SetDelivered() {
		panic(redeliverPanicMsg)
	}
	p.deliver(o)
}
