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

// And joins two futures concurrently. Once the joined future is
// terminated, both sub-pipelines are launched, LHS first, and their
// completions may interleave in any order.
//
// The joined future fulfills with the merged Tuple of both values (see
// Tuple for the flattening rules) once both sides have reported. If one
// side fails, that failure is produced instead; if both fail, the
// first-arriving failure wins and the other one is dropped.
func And[A, B any](lhs *Future[A], rhs *Future[B]) *Future[Tuple] {
	lhsChain, rhsChain := lhs.take(), rhs.take()

	return New(func(p Promise[Tuple]) {
		tr := newTupleResult[A, B](p)
		lhsChain.evaluateInto(tr.assignLHS)
		rhsChain.evaluateInto(tr.assignRHS)
	})
}

// Or races two futures of the same type. The first outcome to arrive,
// success or failure, becomes the raced future's outcome; the later one
// is dropped.
//
// When both sub-pipelines complete synchronously, the LHS wins by
// construction, since it's launched first.
func Or[T any](lhs, rhs *Future[T]) *Future[T] {
	lhsChain, rhsChain := lhs.take(), rhs.take()

	return New(func(p Promise[T]) {
		ar := &anyResult[T]{p: p}
		lhsChain.evaluateInto(ar.assign)
		rhsChain.evaluateInto(ar.assign)
	})
}

// Seq joins two futures sequentially: the RHS pipeline is launched only
// from inside the LHS's sink, after the LHS has reported. The produced
// value and failure semantics are those of And.
//
// Note that the RHS runs even when the LHS has failed; its outcome is
// still collected, and the LHS failure is what the joined future
// produces. Callers that want the RHS skipped on LHS failure should
// sequence with ThenFuture instead.
func Seq[A, B any](lhs *Future[A], rhs *Future[B]) *Future[Tuple] {
	lhsChain, rhsChain := lhs.take(), rhs.take()

	return New(func(p Promise[Tuple]) {
		tr := newTupleResult[A, B](p)
		lhsChain.evaluateInto(func(o Outcome[A]) {
			tr.assignLHS(o)
			rhsChain.evaluateInto(tr.assignRHS)
		})
	})
}

// tupleResult collects the two outcomes of a join. It's shared by both
// sub-pipelines' sinks and fires its promise exactly once, when both
// slots are filled.
//
// Both sinks are expected to touch it serially; if a user's executor
// drives the two sides from different goroutines, synchronising them is
// the user's responsibility.
type tupleResult[A, B any] struct {
	p   Promise[Tuple]
	lhs *Outcome[A]
	rhs *Outcome[B]

	// firstFail records the first-arriving failure of either side.
	// any later failure is dropped.
	firstFail *Failure
}

func newTupleResult[A, B any](p Promise[Tuple]) *tupleResult[A, B] {
	return &tupleResult[A, B]{p: p}
}

func (tr *tupleResult[A, B]) assignLHS(o Outcome[A]) {
	tr.lhs = &o
	if o.IsRejected() {
		tr.noteFailure(o.Failure())
	}
	tr.emit()
}

func (tr *tupleResult[A, B]) assignRHS(o Outcome[B]) {
	tr.rhs = &o
	if o.IsRejected() {
		tr.noteFailure(o.Failure())
	}
	tr.emit()
}

func (tr *tupleResult[A, B]) noteFailure(f Failure) {
	if tr.firstFail == nil {
		tr.firstFail = &f
	}
}

func (tr *tupleResult[A, B]) emit() {
	if tr.lhs == nil || tr.rhs == nil {
		// the other side hasn't reported yet
		return
	}

	if tr.firstFail != nil {
		tr.p.Reject(*tr.firstFail)
		return
	}
	tr.p.Fulfill(mergeTuple(tr.lhs.Value(), tr.rhs.Value()))
}

// anyResult collects the first outcome of a race. It's shared by both
// sub-pipelines' sinks; the first arrival fires the promise and later
// arrivals are dropped.
type anyResult[T any] struct {
	p       Promise[T]
	settled bool
}

func (ar *anyResult[T]) assign(o Outcome[T]) {
	if ar.settled {
		return
	}
	ar.settled = true
	ar.p.Deliver(o)
}
