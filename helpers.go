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

import "context"

// Fulfilled returns a Future whose starter delivers val.
// Fulfilled(Void{}) is the value-less form.
func Fulfilled[T any](val T) *Future[T] {
	return New(func(p Promise[T]) {
		p.Fulfill(val)
	})
}

// Rejected returns a Future whose starter delivers a Failure wrapping
// err.
func Rejected[T any](err error) *Future[T] {
	return New(func(p Promise[T]) {
		p.Reject(NewFailure(err))
	})
}

// Wrap lifts a Result envelope into a Future: a value result becomes a
// fulfilled future, a failure result a rejected one, and a nested
// future is returned as-is.
func Wrap[T any](r Result[T]) *Future[T] {
	if r.kind == resFuture {
		return r.fut
	}
	return New(func(p Promise[T]) {
		r.ResolvePromise(p)
	})
}

// MustAwait calls Await on the provided future, and returns its value,
// only if the returned error is nil, otherwise, it panics.
//
// By name convention, the function will return the value successfully,
// or a panic will happen.
func MustAwait[T any](ctx context.Context, f *Future[T]) T {
	val, err := f.Await(ctx)
	if err != nil {
		panic("future: Await returned a non-nil error: " + err.Error())
	}
	return val
}
