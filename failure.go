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

// Failure wraps the error value that a rejected stage carries through
// the pipeline. It's produced at the failure site, moves from stage to
// stage untouched by Then stages, and is consumed by a Catch stage or
// by the terminal sink.
type Failure struct {
	err error
}

// NewFailure returns a Failure wrapping err.
func NewFailure(err error) Failure {
	return Failure{err: err}
}

// Err returns the wrapped error value.
func (f Failure) Err() error {
	return f.err
}

// Error implements the error interface, so a Failure can be returned
// or wrapped wherever an error value is expected.
func (f Failure) Error() string {
	if f.err == nil {
		return "<nil>"
	}
	return f.err.Error()
}

// Unwrap makes the wrapped error visible to errors.Is and errors.As.
func (f Failure) Unwrap() error {
	return f.err
}
