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

// Executor is the plug-point of Enqueue: something that accepts a
// zero-argument task and is obliged to run it exactly once, at a time,
// and on a goroutine, of its choosing.
//
// The module does no synchronisation around an executor; it may move
// tasks across goroutines freely, and serialising the stages it runs is
// its own business.
type Executor interface {
	Submit(task func())
}

// ExecutorFunc adapts a plain function to the Executor interface.
type ExecutorFunc func(task func())

func (f ExecutorFunc) Submit(task func()) {
	f(task)
}

// Immediate is the executor that runs each submitted task inline on the
// caller's goroutine. Enqueueing through it is observationally a no-op.
var Immediate Executor = ExecutorFunc(func(task func()) {
	task()
})

// GoExecutor runs each submitted task on its own goroutine.
type GoExecutor struct {
	reserveChan chan struct{}
}

// NewGoExecutor returns a GoExecutor that can run up to size tasks at
// once; Submit blocks while the executor is full. If size is 0 or less,
// the number of concurrent tasks is unlimited.
func NewGoExecutor(size int) *GoExecutor {
	e := &GoExecutor{}
	if size > 0 {
		e.reserveChan = make(chan struct{}, size)
	}
	return e
}

func (e *GoExecutor) Submit(task func()) {
	e.reserveGoroutine()
	go func() {
		defer e.freeGoroutine()
		task()
	}()
}

func (e *GoExecutor) reserveGoroutine() {
	if e != nil {
		if e.reserveChan != nil {
			e.reserveChan <- struct{}{}
		}
	}
}

func (e *GoExecutor) freeGoroutine() {
	if e != nil {
		if e.reserveChan != nil {
			<-e.reserveChan
		}
	}
}
