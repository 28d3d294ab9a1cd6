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
	"github.com/asmsh/future/internal/status"
	"github.com/google/uuid"
)

// chain is the transport under every Future: an owned, single-shot
// pipeline of stages that, once evaluated into a sink, produces exactly
// one Outcome[T].
//
// Stages are recorded by composing closures: transformChain wraps the
// previous run function with an adapter that feeds the previous stage's
// outcome, plus the downstream promise, to the new stage. Nothing runs
// until evaluateInto attaches the terminal sink and invokes the
// outermost run function.
//
// Each chain carries a pipeline id, stamped when the pipeline's first
// chain is built and inherited across transforms, so debug events from
// all stages of one pipeline correlate.
type chain[T any] struct {
	id  uuid.UUID
	st  *status.Chain
	run starterCallback[T]
}

func newChain[T any](starter starterCallback[T]) *chain[T] {
	c := &chain[T]{
		id:  uuid.New(),
		st:  new(status.Chain),
		run: starter,
	}
	debug(c.id, chainCreated)
	return c
}

// transformChain appends a stage to c, consuming c, and returns the new
// chain whose sink type is U.
func transformChain[T, U any](c *chain[T], stage func(Outcome[T], Promise[U])) *chain[U] {
	if !c.st.SetConsumed() {
		panic(consumedChainPanicMsg)
	}
	debug(c.id, chainTransformed)

	prevRun := c.run
	return &chain[U]{
		id: c.id,
		st: new(status.Chain),
		run: func(p Promise[U]) {
			prevRun(newPromise(func(o Outcome[T]) {
				stage(o, p)
			}))
		},
	}
}

// evaluateInto terminates the chain with sink and drives it: every
// recorded stage runs, threading into the next, and sink consumes the
// final outcome.
// Evaluating a cancelled chain is a no-op; no stage runs and sink is
// never invoked.
func (c *chain[T]) evaluateInto(sink sinkCallback[T]) {
	if sink == nil {
		panic(nilSinkPanicMsg)
	}
	if c.st.IsCancelled() {
		debug(c.id, chainDropped)
		return
	}
	if !c.st.SetEvaluated() {
		panic(consumedChainPanicMsg)
	}
	debug(c.id, chainEvaluated)
	c.run(newPromise(sink))
}

// cancel marks the chain as not-to-be-evaluated. Cancelling an already
// claimed chain is a no-op.
func (c *chain[T]) cancel() {
	if c.st.SetCancelled() {
		debug(c.id, chainCancelled)
	}
}
