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
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queueExecutor collects submitted tasks and runs them only when
// drained, which makes stage deferral observable.
type queueExecutor struct {
	tasks []func()
}

func (e *queueExecutor) Submit(task func()) {
	e.tasks = append(e.tasks, task)
}

func (e *queueExecutor) drain() {
	for len(e.tasks) != 0 {
		task := e.tasks[0]
		e.tasks = e.tasks[1:]
		task()
	}
}

func TestEnqueue_DefersDownstreamStages(t *testing.T) {
	t.Parallel()

	exec := &queueExecutor{}
	downstreamRuns := 0
	sp := &sinkProbe[int]{}

	Fulfilled(1).
		Enqueue(exec).
		Then(func(v int) Result[int] {
			downstreamRuns++
			return Val(v + 1)
		}).
		Done(sp.sink)

	// the upstream stage completed, but everything downstream of the
	// enqueue point must wait for the executor.
	require.Zero(t, downstreamRuns)
	require.Zero(t, sp.calls)
	require.Len(t, exec.tasks, 1)

	exec.drain()
	assert.Equal(t, 1, downstreamRuns)
	require.Equal(t, 1, sp.calls)
	assert.Equal(t, 2, sp.last.Value())
}

func TestEnqueue_ImmediateIsTransparent(t *testing.T) {
	t.Parallel()

	plain := &sinkProbe[int]{}
	Fulfilled(1).
		Then(func(v int) Result[int] { return Val(v * 10) }).
		Done(plain.sink)

	enqueued := &sinkProbe[int]{}
	Fulfilled(1).
		Enqueue(Immediate).
		Then(func(v int) Result[int] { return Val(v * 10) }).
		Done(enqueued.sink)

	assert.Equal(t, plain.calls, enqueued.calls)
	assert.Equal(t, plain.last.Value(), enqueued.last.Value())
}

func TestEnqueue_ForwardsFailures(t *testing.T) {
	t.Parallel()

	exec := &queueExecutor{}
	sp := &sinkProbe[int]{}
	Rejected[int](errBusy).Enqueue(exec).Done(sp.sink)

	require.Zero(t, sp.calls)
	exec.drain()
	require.Equal(t, 1, sp.calls)
	require.True(t, sp.last.IsRejected())
	assert.Equal(t, errBusy, sp.last.Failure().Err())
}

func TestGoExecutor_RunsTasks(t *testing.T) {
	t.Parallel()

	exec := NewGoExecutor(0)
	var ran atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		exec.Submit(func() {
			defer wg.Done()
			ran.Add(1)
		})
	}
	wg.Wait()

	assert.Equal(t, int32(10), ran.Load())
}

func TestGoExecutor_SizeCapsConcurrency(t *testing.T) {
	t.Parallel()

	exec := NewGoExecutor(1)
	release := make(chan struct{})
	started := make(chan struct{})

	exec.Submit(func() {
		close(started)
		<-release
	})
	<-started

	// the executor is full; the next Submit must block until the
	// running task frees its slot.
	submitted := make(chan struct{})
	go func() {
		exec.Submit(func() {})
		close(submitted)
	}()

	select {
	case <-submitted:
		t.Fatal("Submit returned while the executor was full")
	case <-time.After(10 * time.Millisecond):
	}

	close(release)
	select {
	case <-submitted:
	case <-time.After(time.Second):
		t.Fatal("Submit didn't return after a slot was freed")
	}
}

func TestAwait_ReturnsValue(t *testing.T) {
	t.Parallel()

	f := New(func(p Promise[int]) {
		go func() {
			time.Sleep(time.Millisecond)
			p.Fulfill(42)
		}()
	})

	val, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, val)
}

func TestAwait_ReturnsError(t *testing.T) {
	t.Parallel()

	_, err := Rejected[int](errNotFound).Await(context.Background())
	assert.Equal(t, errNotFound, err)
}

func TestAwait_CtxExpiry(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// a pipeline that never settles
	f := New(func(p Promise[int]) {})

	_, err := f.Await(ctx)
	assert.Equal(t, context.Canceled, err)
}

func TestMustAwait(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, MustAwait(context.Background(), Fulfilled(5)))
	assert.Panics(t, func() {
		MustAwait(context.Background(), Rejected[int](errBusy))
	})
}
