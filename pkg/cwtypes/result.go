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

// AllowanceOperation is the mutating call chosen to move an allowance to its target
type AllowanceOperation string

const (
	// AllowanceOperationIncrease raises the allowance by the delta
	AllowanceOperationIncrease AllowanceOperation = "increase"
	// AllowanceOperationDecrease lowers the allowance by the delta (possibly zero)
	AllowanceOperationDecrease AllowanceOperation = "decrease"
	// AllowanceOperationNone means no call was made, as the allowance was already at the target
	AllowanceOperationNone AllowanceOperation = "none"
)

// FollowUp is the action offered to the user once a result has been displayed
type FollowUp struct {
	Text string `json:"text,omitempty"`
	Path string `json:"path,omitempty"`
}

// OperationResult is the single success/failure descriptor produced by each submission
type OperationResult struct {
	ID        *UUID              `json:"id"`
	Success   bool               `json:"success"`
	Message   string             `json:"message"`
	Error     string             `json:"error,omitempty"`
	FollowUp  *FollowUp          `json:"followUp,omitempty"`
	Contract  string             `json:"contract"`
	Owner     string             `json:"owner,omitempty"`
	Spender   string             `json:"spender"`
	Target    string             `json:"target"`
	Operation AllowanceOperation `json:"operation,omitempty"`
	Amount    string             `json:"amount,omitempty"`
	TxHash    string             `json:"txHash,omitempty"`
	Created   *Timestamp         `json:"created,omitempty"`
}
