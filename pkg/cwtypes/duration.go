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

package cwtypes

import (
	"strconv"
	"time"
)

// ParseDurationString accepts a Go duration such as "1.5s", or a plain number in the default unit
func ParseDurationString(str string, defaultUnit time.Duration) (time.Duration, error) {
	if num, err := strconv.ParseFloat(str, 64); err == nil {
		return time.Duration(num * float64(defaultUnit)), nil
	}
	return time.ParseDuration(str)
}
