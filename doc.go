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

// Package future provides a lightweight, lazily evaluated, composable
// future implementation.
//
// A Future describes a pipeline of computation steps ("stages") that
// eventually produces a value of some type, or a Failure. Each stage can
// complete synchronously, by delivering through its Promise before
// returning, or asynchronously, by stashing the Promise somewhere and
// delivering it later.
//
// Nothing runs until the pipeline is terminated. Composing futures with
// Then, Catch, Map, and the rest only records stages; the first stage
// starts when Done (or Await) attaches the terminal sink. A future that
// is composed but never terminated executes nothing.
//
// Building a pipeline:
//
//	f := future.New(func(p future.Promise[int]) {
//		p.Fulfill(6581)
//	})
//	g := future.Then(f, func(v int) future.Result[string] {
//		return future.Val("text")
//	})
//	g.Done(func(o future.Outcome[string]) {
//		// o.Value() == "text"
//	})
//
// Type-changing combinators are package functions, since Go methods
// can't introduce new type parameters; same-type forms exist as methods.
//
// Failures produced by any stage bypass all following Then stages and
// reach the nearest Catch, Map, or Finally stage, or the terminal sink.
//
// A Future is a single-owner value. Every combinator and terminal
// consumes its receiver; using a consumed future panics. The Result
// value returned from a Then callback may carry a plain value, a
// Failure, or a whole nested Future, which gets spliced into the
// pipeline at that stage boundary.
//
// General Notes:-
//
// * A terminated pipeline delivers exactly one Outcome to its sink.
//
// * Each stage's callback runs at most once per evaluation.
//
// * A Promise must be delivered exactly once; a second delivery panics.
//
// * The package itself is single-threaded and cooperative. Stages run
// inline on whatever goroutine drives them; an Executor passed to
// Enqueue decides where the downstream stages run, and serializing them
// is that executor's responsibility.
package future
