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
	"net/http"

	"github.com/cosmicdapp/cw20wallet/internal/i18n"
	"github.com/cosmicdapp/cw20wallet/internal/oapispec"
	"github.com/cosmicdapp/cw20wallet/pkg/cwtypes"
)

var getResultByID = &oapispec.Route{
	Name:   "getResultByID",
	Path:   "results/{id}",
	Method: http.MethodGet,
	PathParams: []*oapispec.PathParam{
		{Name: "id", Description: i18n.MsgAPIResultIDParamDesc},
	},
	Description:     i18n.MsgAPIGetResultByIDDesc,
	Tag:             routeTagResults,
	JSONOutputValue: func() interface{} { return &cwtypes.OperationResult{} },
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *oapispec.APIRequest) (output interface{}, err error) {
		return r.Results.Get(r.Ctx, r.PP["id"])
	},
}
