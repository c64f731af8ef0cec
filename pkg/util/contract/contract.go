// Copyright 2016-2020, Pulumi Corporation.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package contract holds the invariant checks used across wlp4type. A failed check is a bug in wlp4type itself, never
// a problem with the program being analyzed, so every failure panics.
package contract

import (
	"fmt"
	"io"
)

const assertMsg = "An assertion has failed"

// Assert checks a condition and Fails if it is false.
func Assert(cond bool) {
	if !cond {
		failfast(assertMsg)
	}
}

// Assertf checks a condition and Failfs if it is false, formatting and logging the given message.
func Assertf(cond bool, msg string, args ...interface{}) {
	if !cond {
		failfast(fmt.Sprintf("%v: %v", assertMsg, fmt.Sprintf(msg, args...)))
	}
}

// Fail unconditionally abandons the process.
func Fail() {
	failfast("A failure has occurred")
}

// Failf unconditionally abandons the process, formatting and logging the given message.
func Failf(msg string, args ...interface{}) {
	failfast(fmt.Sprintf("A failure has occurred: %v", fmt.Sprintf(msg, args...)))
}

// IgnoreError explicitly ignores an error. It exists so that dropped errors are greppable.
func IgnoreError(err error) {
	_ = err
}

// IgnoreClose closes a resource and ignores any error from doing so.
func IgnoreClose(cr io.Closer) {
	err := cr.Close()
	IgnoreError(err)
}

func failfast(msg string) {
	panic(fmt.Sprintf("fatal: %v", msg))
}
