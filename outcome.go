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

// Void is the payload of value-less futures. A Future[Void] produces no
// useful value, only success or failure.
type Void struct{}

type State int

const (
	// the order here matter
	unknown State = iota
	Fulfilled
	Rejected
)

func (s State) String() string {
	switch s {
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "<unknown>"
	}
}

// Outcome is the value that flows along a pipeline: the result of one
// stage, consumed by the next stage or by the terminal sink.
// It holds either a fulfilled value of type T, or a Failure.
//
// The zero Outcome is a fulfilled outcome with the zero value of T.
type Outcome[T any] struct {
	val   T
	fail  Failure
	state State
}

// Succeed returns a fulfilled Outcome holding val.
func Succeed[T any](val T) Outcome[T] {
	return Outcome[T]{val: val, state: Fulfilled}
}

// FailWith returns a rejected Outcome holding f.
func FailWith[T any](f Failure) Outcome[T] {
	return Outcome[T]{fail: f, state: Rejected}
}

func (o Outcome[T]) State() State {
	if o.state == Rejected {
		return Rejected
	}
	return Fulfilled
}

func (o Outcome[T]) IsFulfilled() bool {
	return o.state != Rejected
}

func (o Outcome[T]) IsRejected() bool {
	return o.state == Rejected
}

// Value returns the fulfilled value.
// It panics if the outcome is rejected.
func (o Outcome[T]) Value() T {
	if o.IsRejected() {
		panic(valueOnRejectedPanicMsg)
	}
	return o.val
}

// Failure returns the carried Failure.
// It panics if the outcome is fulfilled.
func (o Outcome[T]) Failure() Failure {
	if o.IsFulfilled() {
		panic(failureOnFulfilledPanicMsg)
	}
	return o.fail
}

// Err returns the wrapped error of a rejected outcome, or nil for a
// fulfilled one.
func (o Outcome[T]) Err() error {
	if o.IsRejected() {
		return o.fail.err
	}
	return nil
}

func (o Outcome[T]) String() string {
	if o.IsRejected() {
		return fmt.Sprintf("rejected: %s", o.fail.Error())
	}
	return fmt.Sprintf("fulfilled: %v", o.val)
}
