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
	"context"
	"encoding/json"
	"strings"

	"github.com/cosmicdapp/cw20wallet/internal/config"
	"github.com/cosmicdapp/cw20wallet/internal/i18n"
	"github.com/cosmicdapp/cw20wallet/pkg/cwtypes"
	"github.com/cosmicdapp/cw20wallet/pkg/decimal"
	"github.com/xeipuuv/gojsonschema"
)

const allowanceInputSchema = `{
	"type": "object",
	"properties": {
		"address": {
			"type": "string",
			"minLength": 1
		},
		"amount": {
			"type": "string",
			"pattern": "^[0-9]+$"
		}
	},
	"required": ["address", "amount"],
	"additionalProperties": false
}`

var inputSchema *gojsonschema.Schema

// InputSchemaJSON is the JSON schema of the allowance input, for API documentation
func InputSchemaJSON(ctx context.Context) string {
	return allowanceInputSchema
}

func init() {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(allowanceInputSchema))
	if err != nil {
		panic(err)
	}
	inputSchema = schema
}

func validateSchema(ctx context.Context, doc gojsonschema.JSONLoader) error {
	res, err := inputSchema.Validate(doc)
	if err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgAllowanceSchemaFailed)
	}
	if !res.Valid() {
		errStrings := make([]string, len(res.Errors()))
		for i, e := range res.Errors() {
			errStrings[i] = e.String()
		}
		return i18n.NewError(ctx, i18n.MsgAllowanceInputInvalid, strings.Join(errStrings, ","))
	}
	return nil
}

// ParseInput checks raw JSON against the input schema before decoding it, so that
// missing and unknown fields are rejected. Keys are matched exactly, so a differently
// cased duplicate of a field is an unknown field rather than an override.
func ParseInput(ctx context.Context, b []byte) (*cwtypes.AllowanceInput, error) {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgJSONDecodeFailed)
	}
	if err := validateSchema(ctx, gojsonschema.NewGoLoader(raw)); err != nil {
		return nil, err
	}
	var input cwtypes.AllowanceInput
	if err := json.Unmarshal(b, &input); err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgJSONDecodeFailed)
	}
	return &input, nil
}

// ValidateAddress checks an address against the configured bech32 prefix
func ValidateAddress(ctx context.Context, kind, address string) error {
	return cwtypes.ValidateAddress(ctx, kind, address, config.GetString(config.CW20AddressPrefix))
}

// ValidateInput checks an allowance input for a contract, before any call is made to the chain
func ValidateInput(ctx context.Context, contract string, input *cwtypes.AllowanceInput) error {
	if input == nil {
		return i18n.NewError(ctx, i18n.MsgAllowanceInputInvalid, "no input")
	}
	if err := validateSchema(ctx, gojsonschema.NewGoLoader(input)); err != nil {
		return err
	}
	if err := ValidateAddress(ctx, "contract", contract); err != nil {
		return err
	}
	if err := ValidateAddress(ctx, "spender", input.Address); err != nil {
		return err
	}
	// The decimals of the token do not change the range of the atomics
	if _, err := decimal.FromAtomics(input.Amount, 0); err != nil {
		return i18n.NewError(ctx, i18n.MsgAllowanceInputInvalid, err)
	}
	return nil
}
