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
	"context"
	"net/http"

	"github.com/cosmicdapp/cw20wallet/internal/allowance"
	"github.com/cosmicdapp/cw20wallet/internal/i18n"
	"github.com/cosmicdapp/cw20wallet/internal/oapispec"
	"github.com/cosmicdapp/cw20wallet/pkg/cwtypes"
)

// postAllowance returns 200 with a failure result when the chain rejects the change,
// as the failure has been reported like any other outcome. Only invalid input is an HTTP error.
var postAllowance = &oapispec.Route{
	Name:   "postAllowance",
	Path:   "contracts/{contract}/allowances",
	Method: http.MethodPost,
	PathParams: []*oapispec.PathParam{
		{Name: "contract", Description: i18n.MsgAPIContractParamDesc},
	},
	Description:    i18n.MsgAPIPostAllowanceDesc,
	Tag:            routeTagAllowances,
	JSONInputValue: func() interface{} { return &cwtypes.AllowanceInput{} },
	JSONInputParser: func(ctx context.Context, b []byte) (interface{}, error) {
		return allowance.ParseInput(ctx, b)
	},
	JSONInputSchema: allowance.InputSchemaJSON,
	JSONOutputValue: func() interface{} { return &cwtypes.OperationResult{} },
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *oapispec.APIRequest) (output interface{}, err error) {
		return r.Allowances.SetAllowance(r.Ctx, r.PP["contract"], r.Input.(*cwtypes.AllowanceInput))
	},
}
