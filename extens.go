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

import "fmt"

// IdxRes is a positional outcome view, that represents the outcome of
// the future at index Idx in the original list provided.
type IdxRes[T any] struct {
	Idx int
	Outcome[T]
}

func (ir IdxRes[T]) String() string {
	return fmt.Sprintf("[%d]%v", ir.Idx, ir.Outcome)
}

// All joins a homogeneous list of futures. Once terminated, every
// sub-pipeline is launched, in list order, and the joined future fires
// when all of them have reported.
//
// On all successes it fulfills with the values in list order. If any
// side fails, the first-arriving failure is produced instead, and the
// remaining failures are dropped; either way it fires only after every
// side has reported.
//
// An empty list fulfills with a nil slice.
func All[T any](futs ...*Future[T]) *Future[[]T] {
	chains := takeAll(futs)

	return New(func(p Promise[[]T]) {
		if len(chains) == 0 {
			p.Fulfill(nil)
			return
		}

		col := &listResult[T]{
			p:       p,
			outs:    make([]*Outcome[T], len(chains)),
			pending: len(chains),
		}
		for i, c := range chains {
			i := i
			c.evaluateInto(func(o Outcome[T]) {
				col.assign(i, o)
			})
		}
	})
}

// Any races a homogeneous list of futures. The joined future fulfills
// with the first outcome to arrive, success or failure, wrapped in an
// IdxRes holding the index of the future that produced it. All later
// outcomes are dropped.
//
// It panics if no futures are provided.
func Any[T any](futs ...*Future[T]) *Future[IdxRes[T]] {
	if len(futs) == 0 {
		panic(noFuturesPanicMsg)
	}
	chains := takeAll(futs)

	return New(func(p Promise[IdxRes[T]]) {
		ar := &anyResult[IdxRes[T]]{p: p}
		for i, c := range chains {
			i := i
			c.evaluateInto(func(o Outcome[T]) {
				ar.assign(Succeed(IdxRes[T]{Idx: i, Outcome: o}))
			})
		}
	})
}

func takeAll[T any](futs []*Future[T]) []*chain[T] {
	chains := make([]*chain[T], len(futs))
	for i, f := range futs {
		chains[i] = f.take()
	}
	return chains
}

// listResult collects the outcomes of All. Like tupleResult, it's
// shared by all sub-pipelines' sinks and expected to be touched
// serially.
type listResult[T any] struct {
	p       Promise[[]T]
	outs    []*Outcome[T]
	pending int

	firstFail *Failure
}

func (lr *listResult[T]) assign(idx int, o Outcome[T]) {
	if lr.outs[idx] != nil {
		// the sub-pipeline's sink fired twice; the promise's one-shot
		// guard would catch it later, but don't corrupt the count.
		return
	}
	lr.outs[idx] = &o
	if o.IsRejected() && lr.firstFail == nil {
		f := o.Failure()
		lr.firstFail = &f
	}

	lr.pending--
	if lr.pending != 0 {
		return
	}

	if lr.firstFail != nil {
		lr.p.Reject(*lr.firstFail)
		return
	}

	vals := make([]T, len(lr.outs))
	for i, out := range lr.outs {
		vals[i] = out.Value()
	}
	lr.p.Fulfill(vals)
}
