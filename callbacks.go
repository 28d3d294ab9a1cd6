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

// the types of the callbacks accepted by the different combinators.
type (
	// starterCallback bridges an external event source to the first
	// promise of a pipeline.
	starterCallback[T any] func(p Promise[T])

	// thenCallback transforms a fulfilled value into the next stage's
	// result envelope.
	thenCallback[T, U any] func(val T) Result[U]

	// catchCallback handles a rejected outcome's error, recovering with
	// a value, re-raising, or transforming the error.
	catchCallback[T any] func(err error) Result[T]

	// failureCallback is the reusable re-raise form of catchCallback;
	// it runs without knowing the pipeline's value type.
	failureCallback func(f Failure) Failure

	// mapCallback observes both outcomes of a stage and returns the next
	// stage's outcome directly.
	mapCallback[T, U any] func(o Outcome[T]) Outcome[U]

	// sinkCallback consumes the final outcome of a pipeline.
	sinkCallback[T any] func(o Outcome[T])
)

// resolveWithCallback hands the fulfilled value of o to cb, and lets
// the returned envelope deliver into p.
// It must only be called with a fulfilled outcome.
func resolveWithCallback[T, U any](o Outcome[T], cb thenCallback[T, U], p Promise[U]) {
	res := cb(o.Value())
	res.ResolvePromise(p)
}
