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

package cw20

import (
	"context"

	"github.com/cosmicdapp/cw20wallet/internal/config"
	"github.com/cosmicdapp/cw20wallet/pkg/cwtypes"
)

// Client is the interface implemented by each CW20 chain client plugin
type Client interface {
	// Name gets the name of the plugin
	Name() string

	// InitPrefix initializes the set of configuration options that are valid, with defaults
	InitPrefix(prefix config.Prefix)

	// Init initializes the plugin with configuration. Executes are submitted on behalf of the sender account
	Init(ctx context.Context, prefix config.Prefix, sender string) error

	// Use returns a handle to a single CW20 contract
	Use(contract string) Contract

	// GetTx looks up a transaction by hash. Returns an error with a 404 status hint until the transaction is in a block
	GetTx(ctx context.Context, txHash string) (*cwtypes.TxReceipt, error)
}

// Contract is a handle to a single CW20 token contract
type Contract interface {
	// Address is the bech32 address of the contract
	Address() string

	// TokenInfo queries the name, symbol, decimals and total supply of the token
	TokenInfo(ctx context.Context) (*cwtypes.TokenInfo, error)

	// Allowance queries the atomic allowance the owner has granted to the spender
	Allowance(ctx context.Context, owner, spender string) (*cwtypes.AllowanceInfo, error)

	// Balance queries the atomic balance of an address
	Balance(ctx context.Context, address string) (*cwtypes.BalanceInfo, error)

	// IncreaseAllowance submits an increase_allowance execute, returning the transaction hash once accepted
	IncreaseAllowance(ctx context.Context, spender, amount string) (string, error)

	// DecreaseAllowance submits a decrease_allowance execute, returning the transaction hash once accepted
	DecreaseAllowance(ctx context.Context, spender, amount string) (string, error)
}
