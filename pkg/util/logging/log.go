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

// Package logging is a thin wrapper over glog so that the rest of wlp4type never touches glog's flag plumbing.
package logging

import (
	"flag"
	"strconv"

	"github.com/golang/glog"

	"github.com/wlp4/wlp4type/pkg/util/contract"
)

func V(level glog.Level) glog.Verbose {
	return glog.V(level)
}

func Infof(format string, args ...interface{}) {
	glog.Infof(format, args...)
}

func Warningf(format string, args ...interface{}) {
	glog.Warningf(format, args...)
}

func Flush() {
	glog.Flush()
}

// InitLogging ensures the glog library has been initialized with the given settings.
func InitLogging(logToStderr bool, verbose int) {
	// glog reads its configuration from the standard flag set; parse an empty argument list so that glog does not
	// complain about being used before flag.Parse.
	if !flag.Parsed() {
		contract.IgnoreError(flag.CommandLine.Parse([]string{}))
	}

	if logToStderr {
		err := flag.Lookup("logtostderr").Value.Set("true")
		contract.Assertf(err == nil, "error setting logtostderr: %v", err)
	}
	if verbose > 0 {
		err := flag.Lookup("v").Value.Set(strconv.Itoa(verbose))
		contract.Assertf(err == nil, "error setting verbosity: %v", err)
	}
}
