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

import "github.com/google/uuid"

type debugEvent int

const (
	_ debugEvent = iota

	// chain lifecycle values
	chainCreated
	chainTransformed
	chainEvaluated
	chainCancelled

	// chainDropped is fired when a cancelled chain's evaluation is
	// requested and silently skipped.
	chainDropped
)

func (de debugEvent) String() string {
	switch de {
	case chainCreated:
		return "chainCreated"
	case chainTransformed:
		return "chainTransformed"
	case chainEvaluated:
		return "chainEvaluated"
	case chainCancelled:
		return "chainCancelled"
	case chainDropped:
		return "chainDropped"
	default:
		return "<unknown event>"
	}
}

// debugCB is called with the pipeline id and the event, for every event,
// when the module is built with the enable_future_debug tag.
var debugCB func(id uuid.UUID, de debugEvent)

// SetDebugCallback installs cb as the debug-event handler. It only has
// an effect when the module is built with the enable_future_debug tag;
// in normal builds events aren't fired at all.
//
// It's meant to be set once, at startup, before any pipeline is built.
func SetDebugCallback(cb func(id uuid.UUID, de debugEvent)) {
	debugCB = cb
}
