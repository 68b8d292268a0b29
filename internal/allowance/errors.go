// Copyright © 2021 Kaleido, Inc.
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

package allowance

import (
	"regexp"
)

var chainExecuteError = regexp.MustCompile(`failed to execute message; message index: \d+: (.*?)(?:: execute wasm contract failed)?$`)

// ErrorDescription extracts the most specific description from an error. Contract errors
// reported by the chain are wrapped in execution context, which is removed.
func ErrorDescription(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if match := chainExecuteError.FindStringSubmatch(msg); match != nil && match[1] != "" {
		return match[1]
	}
	return msg
}
