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

// FromContext returns a Future that settles once ctx is done, rejected
// with a Failure wrapping ctx.Err(). It's the bridge from context
// cancellation into a pipeline, typically raced against real work:
//
//	expired := future.Then(future.FromContext(ctx), func(future.Void) future.Result[int] {
//		return future.Empty[int]() // never runs: FromContext only rejects
//	})
//	future.Or(work, expired)
//
// A ctx that can never be done yields a future that never settles; its
// pipeline stays suspended without holding any extra resources.
func FromContext(ctx context.Context) *Future[Void] {
	if ctx == nil {
		panic(nilCtxPanicMsg)
	}

	return New(func(p Promise[Void]) {
		if ctx.Done() == nil {
			// this ctx value can never be closed, so the only equivalent
			// outcome is a pipeline that stays suspended forever.
			return
		}
		if err := ctx.Err(); err != nil {
			p.Reject(NewFailure(err))
			return
		}
		go func() {
			<-ctx.Done()
			p.Reject(NewFailure(ctx.Err()))
		}()
	})
}
