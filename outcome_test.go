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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome_States(t *testing.T) {
	t.Parallel()

	ok := Succeed(5)
	assert.True(t, ok.IsFulfilled())
	assert.False(t, ok.IsRejected())
	assert.Equal(t, Fulfilled, ok.State())
	assert.Equal(t, 5, ok.Value())
	assert.NoError(t, ok.Err())

	bad := FailWith[int](NewFailure(errBusy))
	assert.True(t, bad.IsRejected())
	assert.Equal(t, Rejected, bad.State())
	assert.Equal(t, errBusy, bad.Failure().Err())
	assert.Equal(t, errBusy, bad.Err())
}

func TestOutcome_ZeroValueIsFulfilled(t *testing.T) {
	t.Parallel()

	var o Outcome[int]
	assert.True(t, o.IsFulfilled())
	assert.Zero(t, o.Value())
}

func TestOutcome_WrongVariantPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, valueOnRejectedPanicMsg, func() {
		FailWith[int](NewFailure(errBusy)).Value()
	})
	assert.PanicsWithValue(t, failureOnFulfilledPanicMsg, func() {
		Succeed(1).Failure()
	})
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fulfilled: 5", Succeed(5).String())
	assert.Equal(t, "rejected: busy", FailWith[int](NewFailure(errBusy)).String())
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fulfilled", Fulfilled.String())
	assert.Equal(t, "rejected", Rejected.String())
	assert.Equal(t, "<unknown>", unknown.String())
}

func TestFailure_WrapsError(t *testing.T) {
	t.Parallel()

	wrapped := errors.New("inner")
	f := NewFailure(wrapped)

	assert.Equal(t, wrapped, f.Err())
	assert.Equal(t, "inner", f.Error())
	assert.True(t, errors.Is(f, wrapped))
}

func TestTuple_Helpers(t *testing.T) {
	t.Parallel()

	var empty Tuple
	_, ok := empty.First()
	assert.False(t, ok)
	_, ok = empty.Last()
	assert.False(t, ok)

	tp := Tuple{1, "a", 2.5}
	first, ok := tp.First()
	assert.True(t, ok)
	assert.Equal(t, 1, first)
	last, ok := tp.Last()
	assert.True(t, ok)
	assert.Equal(t, 2.5, last)

	cp := tp.Copy()
	assert.Equal(t, tp, cp)
	cp[0] = 9
	assert.Equal(t, 1, tp[0])
}

func TestMergeTuple(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Tuple{1, "a"}, mergeTuple(1, "a"))
	assert.Equal(t, Tuple{1, 2, "a"}, mergeTuple(Tuple{1, 2}, "a"))
	assert.Equal(t, Tuple{1, 2, 3}, mergeTuple(1, Tuple{2, 3}))
	assert.Equal(t, Tuple{1, 2, 3, 4}, mergeTuple(Tuple{1, 2}, Tuple{3, 4}))
	assert.Equal(t, Tuple{1}, mergeTuple(Void{}, 1))
	assert.Equal(t, Tuple{1}, mergeTuple(1, Void{}))
	assert.Equal(t, Tuple{}, mergeTuple(Void{}, Void{}))
}
