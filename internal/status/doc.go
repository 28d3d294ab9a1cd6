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

// Package status implements the lock-free lifecycle values used by the
// future module.
//
// The main logic behind this package is the need for an atomic claim of
// a one-way transition: a chain can be consumed, evaluated, or cancelled
// by exactly one caller, and a promise can be delivered exactly once.
// Both values are plain uint32s updated through compare-and-swap, so the
// claim stays sound even when a user's executor crosses goroutines,
// without the module taking any locks.
package status
