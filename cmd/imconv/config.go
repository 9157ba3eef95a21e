// Copyright 2026 go-convolve Authors
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
	"os"
	"strconv"

	"github.com/golang/glog"
)

// workersEnv names the environment variable holding the default for
// --workers.
const workersEnv = "IMCONV_WORKERS"

// workersFromEnv returns the worker count from IMCONV_WORKERS, or 0
// (GOMAXPROCS) when it is unset or not an integer.
func workersFromEnv() int {
	val := os.Getenv(workersEnv)
	if val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		glog.Warningf("ignoring %s=%q: want a non-negative integer", workersEnv, val)
		return 0
	}
	return n
}
