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
	"testing"

	"github.com/cosmicdapp/cw20wallet/internal/config"
	"github.com/cosmicdapp/cw20wallet/pkg/cwtypes"
	"github.com/stretchr/testify/assert"
)

func TestParseInputOK(t *testing.T) {
	config.Reset()
	input, err := ParseInput(context.Background(), []byte(`{"address":"`+testSpender+`","amount":"2500000"}`))
	assert.NoError(t, err)
	assert.Equal(t, testSpender, input.Address)
	assert.Equal(t, "2500000", input.Amount)
}

func TestParseInputSchemaErrors(t *testing.T) {
	config.Reset()
	for _, body := range []string{
		`{"address":"` + testSpender + `"}`,
		`{"amount":"1"}`,
		`{"address":"` + testSpender + `","amount":2500000}`,
		`{"address":"` + testSpender + `","amount":"-1"}`,
		`{"address":"` + testSpender + `","amount":"1","memo":"x"}`,
		`{"address":"","amount":"1"}`,
	} {
		_, err := ParseInput(context.Background(), []byte(body))
		assert.Regexp(t, "FF10400", err, body)
	}
}

func TestParseInputBadJSON(t *testing.T) {
	config.Reset()
	_, err := ParseInput(context.Background(), []byte(`{!`))
	assert.Regexp(t, "FF10103", err)
}

func TestParseInputRecasedDuplicate(t *testing.T) {
	config.Reset()
	_, err := ParseInput(context.Background(), []byte(`{"address":"`+testSpender+`","amount":"1","AMOUNT":"999999"}`))
	assert.Regexp(t, "FF10400.*AMOUNT", err)
}

func TestValidateInputOK(t *testing.T) {
	config.Reset()
	err := ValidateInput(context.Background(), testContract, &cwtypes.AllowanceInput{
		Address: testSpender,
		Amount:  "0",
	})
	assert.NoError(t, err)
}

func TestValidateInputNil(t *testing.T) {
	config.Reset()
	err := ValidateInput(context.Background(), testContract, nil)
	assert.Regexp(t, "FF10400", err)
}

func TestValidateInputBadContract(t *testing.T) {
	config.Reset()
	err := ValidateInput(context.Background(), "wasm1nope", &cwtypes.AllowanceInput{
		Address: testSpender,
		Amount:  "1",
	})
	assert.Regexp(t, "FF10119.*contract", err)
}

func TestValidateInputBadSpenderLength(t *testing.T) {
	config.Reset()
	err := ValidateInput(context.Background(), testContract, &cwtypes.AllowanceInput{
		Address: "wasm1qypqxpq9qcrsszg2jgfrd6",
		Amount:  "1",
	})
	assert.Regexp(t, "FF10121", err)
}

func TestValidateInputCustomPrefix(t *testing.T) {
	config.Reset()
	config.Set(config.CW20AddressPrefix, "cosmos")
	err := ValidateInput(context.Background(), testContract, &cwtypes.AllowanceInput{
		Address: testSpender,
		Amount:  "1",
	})
	assert.Regexp(t, "FF10120", err)
}

func TestValidateInputAmountTooLarge(t *testing.T) {
	config.Reset()
	err := ValidateInput(context.Background(), testContract, &cwtypes.AllowanceInput{
		Address: testSpender,
		Amount:  "1000000000000000000000000000000000000000000000000000000000000000000000000000000",
	})
	assert.Regexp(t, "FF10400.*FF10201", err)
}

func TestInputSchemaJSON(t *testing.T) {
	assert.Contains(t, InputSchemaJSON(context.Background()), `"required": ["address", "amount"]`)
}
