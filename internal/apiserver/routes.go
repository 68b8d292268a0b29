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

package apiserver

import (
	"reflect"

	"github.com/cosmicdapp/cw20wallet/internal/oapispec"
)

const (
	routeTagTokens     = "Tokens"
	routeTagAllowances = "Allowances"
	routeTagResults    = "Results"
)

var routes = []*oapispec.Route{
	getAllowance,
	getBalance,
	getResultByID,
	getResults,
	getTokenInfo,
	postAllowance,
}

func isNil(output interface{}) bool {
	if output == nil {
		return true
	}
	v := reflect.ValueOf(output)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}
