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

// TokenInfo is the metadata of a CW20 token contract
type TokenInfo struct {
	Contract    string `json:"contract,omitempty"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    uint8  `json:"decimals"`
	TotalSupply string `json:"totalSupply"`
}

// Expiration is the point at which an allowance lapses. At most one of the fields is set,
// and none set is equivalent to Never.
type Expiration struct {
	AtHeight *uint64    `json:"atHeight,omitempty"`
	AtTime   *Timestamp `json:"atTime,omitempty"`
	Never    bool       `json:"never,omitempty"`
}

// AllowanceInfo is the current allowance an owner has granted to a spender on a contract
type AllowanceInfo struct {
	Contract  string      `json:"contract"`
	Owner     string      `json:"owner"`
	Spender   string      `json:"spender"`
	Allowance string      `json:"allowance"`
	Expires   *Expiration `json:"expires,omitempty"`
}

// AllowanceInput is the submitted request to set the allowance of a spender to a target amount
type AllowanceInput struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
}

// BalanceInfo is the token balance of an address on a contract
type BalanceInfo struct {
	Contract string `json:"contract"`
	Address  string `json:"address"`
	Balance  string `json:"balance"`
}

// TxReceipt is the outcome of a transaction once it has been included in a block
type TxReceipt struct {
	TxHash string `json:"txHash"`
	Height int64  `json:"height"`
	Code   uint32 `json:"code"`
	RawLog string `json:"rawLog,omitempty"`
}

// Succeeded is true when the transaction executed without error
func (r *TxReceipt) Succeeded() bool {
	return r.Code == 0
}
