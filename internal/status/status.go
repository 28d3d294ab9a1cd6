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

package status

import "sync/atomic"

var (
	cas  = atomic.CompareAndSwapUint32
	load = atomic.LoadUint32
)

// Chain holds the lifecycle of one continuation chain.
// It's read and written/updated atomically.
//
// A chain starts out fresh, then moves into exactly one of three final
// modes: consumed (a combinator appended a stage and took ownership),
// evaluated (a terminal sink was attached and the stages ran), or
// cancelled (the chain was abandoned and must never run).
type Chain uint32

// the chain's modes, each using 1 bit
const (
	consumed uint32 = 1 << iota
	evaluated
	cancelled
)

// SetConsumed claims the chain for composition. It reports false if the
// chain has already been consumed, evaluated, or cancelled.
func (s *Chain) SetConsumed() bool {
	return s.claim(consumed)
}

// SetEvaluated claims the chain for evaluation. It reports false if the
// chain has already been consumed, evaluated, or cancelled.
func (s *Chain) SetEvaluated() bool {
	return s.claim(evaluated)
}

// SetCancelled claims the chain for cancellation. It reports false if
// the chain has already been consumed, evaluated, or cancelled.
func (s *Chain) SetCancelled() bool {
	return s.claim(cancelled)
}

// claim moves the chain from fresh into mode, for only one caller.
func (s *Chain) claim(mode uint32) bool {
	for {
		cs := load((*uint32)(s))
		if cs != 0 {
			// the chain has already been claimed for some mode
			return false
		}
		if cas((*uint32)(s), cs, mode) {
			return true
		}
	}
}

func (s *Chain) IsConsumed() bool {
	return load((*uint32)(s))&consumed != 0
}

func (s *Chain) IsEvaluated() bool {
	return load((*uint32)(s))&evaluated != 0
}

func (s *Chain) IsCancelled() bool {
	return load((*uint32)(s))&cancelled != 0
}

func (s *Chain) String() string {
	switch load((*uint32)(s)) {
	case consumed:
		return "consumed"
	case evaluated:
		return "evaluated"
	case cancelled:
		return "cancelled"
	default:
		return "fresh"
	}
}

// Prom holds the one-shot delivery guard of a single Promise.
// It's read and written/updated atomically, so double-delivery is
// detected even when an executor moves the promise across goroutines.
type Prom uint32

// SetDelivered claims the one delivery. It reports false on any call
// after the first.
func (p *Prom) SetDelivered() bool {
	return cas((*uint32)(p), 0, 1)
}

func (p *Prom) IsDelivered() bool {
	return load((*uint32)(p)) != 0
}
