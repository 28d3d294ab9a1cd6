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

// Tuple is the value type produced by joining futures with And and Seq.
// It holds the joined values in composition order, LHS values before RHS
// values, regardless of which side completed first.
//
// Joining flattens: a side that already produced a Tuple contributes its
// elements, not the Tuple itself, and a Void side contributes nothing.
//
// Values of this type must not be modified after being delivered.
type Tuple []any

// First returns the first element of this Tuple value and true, if its
// length is not 0, otherwise it returns nil and false.
func (t Tuple) First() (first any, ok bool) {
	if len(t) == 0 {
		return nil, false
	}
	return t[0], true
}

// Last returns the last element of this Tuple value and true, if its
// length is not 0, otherwise it returns nil and false.
func (t Tuple) Last() (last any, ok bool) {
	n := len(t)
	if n == 0 {
		return nil, false
	}
	return t[n-1], true
}

// Copy returns a new copy of this Tuple value if it's not empty,
// otherwise returns this Tuple value.
func (t Tuple) Copy() (newT Tuple) {
	n := len(t)
	if n == 0 {
		return t
	}

	newT = make(Tuple, n)
	copy(newT, t)
	return newT
}

// appendJoined appends one join operand to dst, flattening Tuple
// operands and dropping Void ones.
func appendJoined(dst Tuple, v any) Tuple {
	switch tv := v.(type) {
	case Void:
		return dst
	case Tuple:
		return append(dst, tv...)
	default:
		return append(dst, v)
	}
}

// mergeTuple builds the joined value of two sides, LHS first.
func mergeTuple(lhs, rhs any) Tuple {
	return appendJoined(appendJoined(Tuple{}, lhs), rhs)
}
