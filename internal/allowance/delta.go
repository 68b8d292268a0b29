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
	"github.com/cosmicdapp/cw20wallet/pkg/cwtypes"
	"github.com/cosmicdapp/cw20wallet/pkg/decimal"
)

// Delta is the single operation that moves the current allowance to the target
type Delta struct {
	Operation cwtypes.AllowanceOperation
	Amount    decimal.Decimal
	Current   decimal.Decimal
	Target    decimal.Decimal
}

// ComputeDelta compares the target with the current allowance. A target above the current
// allowance is an increase by the difference. Anything else is a decrease by the difference,
// which is zero when the two are equal, unless skipZero asks for no operation in that case.
func ComputeDelta(current, target decimal.Decimal, skipZero bool) (*Delta, error) {
	greater, err := target.IsGreaterThan(current)
	if err != nil {
		return nil, err
	}
	d := &Delta{
		Current: current,
		Target:  target,
	}
	if greater {
		d.Operation = cwtypes.AllowanceOperationIncrease
		d.Amount, err = target.Minus(current)
	} else {
		d.Operation = cwtypes.AllowanceOperationDecrease
		d.Amount, err = current.Minus(target)
	}
	if err != nil {
		return nil, err
	}
	if skipZero && d.Amount.IsZero() {
		d.Operation = cwtypes.AllowanceOperationNone
	}
	return d, nil
}
