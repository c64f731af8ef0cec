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

package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/wlp4/wlp4type/pkg/util/contract"
	"github.com/wlp4/wlp4type/pkg/util/logging"
)

func main() {
	defer logging.Flush()

	if err := newWLP4TypeCmd().Execute(); err != nil {
		if errors.Cause(err) != errDiagnostics {
			_, err = fmt.Fprintf(os.Stderr, "error: %v\n", err)
			contract.IgnoreError(err)
		}
		logging.Flush()
		os.Exit(1)
	}
}
