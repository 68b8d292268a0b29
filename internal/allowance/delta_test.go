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
	"testing"

	"github.com/cosmicdapp/cw20wallet/pkg/cwtypes"
	"github.com/cosmicdapp/cw20wallet/pkg/decimal"
	"github.com/stretchr/testify/assert"
)

func atomics(t *testing.T, s string) decimal.Decimal {
	d, err := decimal.FromAtomics(s, 6)
	assert.NoError(t, err)
	return d
}

func TestComputeDelta(t *testing.T) {
	for _, tc := range []struct {
		current, target string
		skipZero        bool
		op              cwtypes.AllowanceOperation
		amount          string
	}{
		{"1000000", "2500000", false, cwtypes.AllowanceOperationIncrease, "1500000"},
		{"2500000", "1000000", false, cwtypes.AllowanceOperationDecrease, "1500000"},
		{"1000000", "1000000", false, cwtypes.AllowanceOperationDecrease, "0"},
		{"1000000", "1000000", true, cwtypes.AllowanceOperationNone, "0"},
		{"0", "0", false, cwtypes.AllowanceOperationDecrease, "0"},
		{"0", "1", true, cwtypes.AllowanceOperationIncrease, "1"},
		{"1", "0", true, cwtypes.AllowanceOperationDecrease, "1"},
		{"340282366920938463463374607431768211455", "0", false, cwtypes.AllowanceOperationDecrease, "340282366920938463463374607431768211455"},
	} {
		d, err := ComputeDelta(atomics(t, tc.current), atomics(t, tc.target), tc.skipZero)
		assert.NoError(t, err)
		assert.Equal(t, tc.op, d.Operation, "%s -> %s", tc.current, tc.target)
		assert.Equal(t, tc.amount, d.Amount.Atomics(), "%s -> %s", tc.current, tc.target)
	}
}

func TestComputeDeltaReachesTarget(t *testing.T) {
	values := []string{"0", "1", "999999", "1000000", "123456789012345678901234567890"}
	for _, c := range values {
		for _, tgt := range values {
			current, target := atomics(t, c), atomics(t, tgt)
			d, err := ComputeDelta(current, target, false)
			assert.NoError(t, err)
			var reached decimal.Decimal
			if d.Operation == cwtypes.AllowanceOperationIncrease {
				reached, err = current.Plus(d.Amount)
			} else {
				reached, err = current.Minus(d.Amount)
			}
			assert.NoError(t, err)
			assert.Equal(t, tgt, reached.Atomics())
		}
	}
}

func TestComputeDeltaDigitsMismatch(t *testing.T) {
	d0, _ := decimal.FromAtomics("1", 0)
	d6, _ := decimal.FromAtomics("1", 6)
	_, err := ComputeDelta(d0, d6, false)
	assert.Regexp(t, "FF10204", err)
}

func TestComputeDeltaUninitialized(t *testing.T) {
	_, err := ComputeDelta(decimal.Decimal{}, atomics(t, "1"), false)
	assert.Regexp(t, "FF10207", err)
	_, err = ComputeDelta(atomics(t, "1"), decimal.Decimal{}, true)
	assert.Regexp(t, "FF10207", err)
}
