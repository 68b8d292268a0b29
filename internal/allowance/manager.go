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
	"fmt"
	"time"

	"github.com/cosmicdapp/cw20wallet/internal/config"
	"github.com/cosmicdapp/cw20wallet/internal/i18n"
	"github.com/cosmicdapp/cw20wallet/internal/log"
	"github.com/cosmicdapp/cw20wallet/internal/metrics"
	"github.com/cosmicdapp/cw20wallet/internal/results"
	"github.com/cosmicdapp/cw20wallet/internal/retry"
	"github.com/cosmicdapp/cw20wallet/internal/session"
	"github.com/cosmicdapp/cw20wallet/pkg/cwtypes"
	"github.com/cosmicdapp/cw20wallet/pkg/decimal"
	"github.com/karlseguin/ccache"
)

const maxSanitizedLength = 128

type Manager interface {
	// TokenInfo gets the metadata of a token, cached for tokeninfo.cache.ttl after each use
	TokenInfo(ctx context.Context, contract string) (*cwtypes.TokenInfo, error)

	// GetAllowance gets the allowance granted by an owner to a spender. An empty owner is the session account
	GetAllowance(ctx context.Context, contract, owner, spender string) (*cwtypes.AllowanceInfo, error)

	// GetBalance gets the balance of an address. An empty address is the session account
	GetBalance(ctx context.Context, contract, address string) (*cwtypes.BalanceInfo, error)

	// AtomicsFromDisplayAmount converts a human amount like "2.5" into atomics, using the decimals of the token
	AtomicsFromDisplayAmount(ctx context.Context, contract, displayAmount string) (string, error)

	// SetAllowance moves the allowance of the session account for a spender to a target atomic amount.
	// An error is only returned when the input is invalid, in which case nothing is submitted or reported.
	// Otherwise exactly one result is reported, and returned, whether the change succeeded or failed.
	SetAllowance(ctx context.Context, contract string, input *cwtypes.AllowanceInput) (*cwtypes.OperationResult, error)
}

type allowanceManager struct {
	session     *session.Session
	reporter    results.Reporter
	metrics     metrics.Manager
	tokenCache  *ccache.Cache
	tokenTTL    time.Duration
	skipZero    bool
	waitConfirm bool
	confirm     *retry.Retry
	confirmTime time.Duration
}

func NewAllowanceManager(ctx context.Context, s *session.Session, reporter results.Reporter, mm metrics.Manager) (Manager, error) {
	if s == nil || reporter == nil || mm == nil {
		return nil, i18n.NewError(ctx, i18n.MsgInitializationNilDepError)
	}
	return &allowanceManager{
		session:  s,
		reporter: reporter,
		metrics:  mm,
		tokenCache: ccache.New(
			ccache.Configure().MaxSize(config.GetInt64(config.TokenInfoCacheSize)),
		),
		tokenTTL:    config.GetDuration(config.TokenInfoCacheTTL),
		skipZero:    config.GetBool(config.AllowanceSkipZeroDelta),
		waitConfirm: config.GetBool(config.AllowanceWaitConfirm),
		confirm:     retry.NewFromConfig(config.AllowanceConfirmInitialDelay, config.AllowanceConfirmMaxDelay, config.AllowanceConfirmFactor),
		confirmTime: config.GetDuration(config.AllowanceConfirmTimeout),
	}, nil
}

func (am *allowanceManager) TokenInfo(ctx context.Context, contract string) (*cwtypes.TokenInfo, error) {
	if cached := am.tokenCache.Get(contract); cached != nil && !cached.Expired() {
		cached.Extend(am.tokenTTL)
		return cached.Value().(*cwtypes.TokenInfo), nil
	}
	am.metrics.ChainQuery("token_info")
	info, err := am.session.Contract(contract).TokenInfo(ctx)
	if err != nil {
		return nil, err
	}
	am.tokenCache.Set(contract, info, am.tokenTTL)
	return info, nil
}

func (am *allowanceManager) GetAllowance(ctx context.Context, contract, owner, spender string) (*cwtypes.AllowanceInfo, error) {
	if owner == "" {
		owner = am.session.Account.Address
	}
	for _, a := range []struct{ kind, address string }{
		{"contract", contract}, {"owner", owner}, {"spender", spender},
	} {
		if err := ValidateAddress(ctx, a.kind, a.address); err != nil {
			return nil, err
		}
	}
	am.metrics.ChainQuery("allowance")
	return am.session.Contract(contract).Allowance(ctx, owner, spender)
}

func (am *allowanceManager) GetBalance(ctx context.Context, contract, address string) (*cwtypes.BalanceInfo, error) {
	if address == "" {
		address = am.session.Account.Address
	}
	if err := ValidateAddress(ctx, "contract", contract); err != nil {
		return nil, err
	}
	if err := ValidateAddress(ctx, "address", address); err != nil {
		return nil, err
	}
	am.metrics.ChainQuery("balance")
	return am.session.Contract(contract).Balance(ctx, address)
}

func (am *allowanceManager) AtomicsFromDisplayAmount(ctx context.Context, contract, displayAmount string) (string, error) {
	if err := ValidateAddress(ctx, "contract", contract); err != nil {
		return "", err
	}
	info, err := am.TokenInfo(ctx, contract)
	if err != nil {
		return "", err
	}
	d, err := decimal.FromUserInput(displayAmount, uint(info.Decimals))
	if err != nil {
		return "", err
	}
	return d.Atomics(), nil
}

func (am *allowanceManager) SetAllowance(ctx context.Context, contract string, input *cwtypes.AllowanceInput) (*cwtypes.OperationResult, error) {
	if err := ValidateInput(ctx, contract, input); err != nil {
		return nil, err
	}

	result := &cwtypes.OperationResult{
		ID:       cwtypes.NewUUID(),
		Contract: contract,
		Owner:    am.session.Account.Address,
		Spender:  input.Address,
		Target:   input.Amount,
		Created:  cwtypes.Now(),
	}
	ctx = log.WithLogField(ctx, "result", result.ID.String())

	info, err := am.applyDelta(ctx, contract, input, result)
	if err != nil {
		am.failed(ctx, result, err)
	} else {
		am.succeeded(ctx, result, info)
	}
	am.reporter.Report(ctx, result)
	return result, nil
}

// applyDelta runs each step of the change in turn, recording the operation on the result as it goes.
// Every failure along the way is returned to the single reporting path in SetAllowance.
func (am *allowanceManager) applyDelta(ctx context.Context, contract string, input *cwtypes.AllowanceInput, result *cwtypes.OperationResult) (*cwtypes.TokenInfo, error) {
	info, err := am.TokenInfo(ctx, contract)
	if err != nil {
		return nil, err
	}

	am.metrics.ChainQuery("allowance")
	c := am.session.Contract(contract)
	current, err := c.Allowance(ctx, am.session.Account.Address, input.Address)
	if err != nil {
		return nil, err
	}

	decimals := uint(info.Decimals)
	targetAmount, err := decimal.FromAtomics(input.Amount, decimals)
	if err != nil {
		return nil, err
	}
	currentAmount, err := decimal.FromAtomics(current.Allowance, decimals)
	if err != nil {
		return nil, err
	}

	delta, err := ComputeDelta(currentAmount, targetAmount, am.skipZero)
	if err != nil {
		return nil, err
	}
	result.Operation = delta.Operation
	result.Amount = delta.Amount.Atomics()
	log.L(ctx).Infof("Allowance for %s on %s: current=%s target=%s operation=%s amount=%s",
		input.Address, contract, current.Allowance, input.Amount, delta.Operation, result.Amount)

	switch delta.Operation {
	case cwtypes.AllowanceOperationNone:
		return info, nil
	case cwtypes.AllowanceOperationIncrease:
		am.metrics.AllowanceSubmitted(result.ID, delta.Operation)
		result.TxHash, err = c.IncreaseAllowance(ctx, input.Address, result.Amount)
	default:
		am.metrics.AllowanceSubmitted(result.ID, delta.Operation)
		result.TxHash, err = c.DecreaseAllowance(ctx, input.Address, result.Amount)
	}
	if err != nil {
		return nil, err
	}

	if am.waitConfirm {
		if err := am.waitForReceipt(ctx, result.TxHash); err != nil {
			return nil, err
		}
	}
	return info, nil
}

func (am *allowanceManager) waitForReceipt(ctx context.Context, txHash string) error {
	confirmCtx, cancel := context.WithTimeout(ctx, am.confirmTime)
	defer cancel()
	err := am.confirm.Do(confirmCtx, fmt.Sprintf("confirm tx %s", txHash), func(attempt int) (retry bool, err error) {
		receipt, err := am.session.Client.GetTx(confirmCtx, txHash)
		if err != nil {
			// Not found until the transaction is in a block, and other errors may be transient
			return true, err
		}
		if !receipt.Succeeded() {
			return false, i18n.NewError(ctx, i18n.MsgCW20TxFailed, txHash, receipt.Code, receipt.RawLog)
		}
		log.L(ctx).Infof("Transaction %s confirmed at height %d", txHash, receipt.Height)
		return false, nil
	})
	if err != nil && confirmCtx.Err() != nil && ctx.Err() == nil {
		return i18n.NewError(ctx, i18n.MsgAllowanceConfirmTimeout, txHash)
	}
	return err
}

func (am *allowanceManager) succeeded(ctx context.Context, result *cwtypes.OperationResult, info *cwtypes.TokenInfo) {
	// The target always parses here, as it was used to compute the delta
	target, _ := decimal.FromAtomics(result.Target, uint(info.Decimals))
	symbol := i18n.SanitizeLimit(info.Symbol, maxSanitizedLength)
	spender := i18n.SanitizeLimit(result.Spender, maxSanitizedLength)
	result.Success = true
	if result.Operation == cwtypes.AllowanceOperationNone {
		result.Message = i18n.Expand(ctx, i18n.MsgAllowanceUnchanged, target.String(), symbol, spender)
	} else {
		result.Message = i18n.Expand(ctx, i18n.MsgAllowanceSetSucceeded, target.String(), symbol, spender)
	}
	result.FollowUp = &cwtypes.FollowUp{
		Text: "Tokens",
		Path: "/tokens",
	}
}

func (am *allowanceManager) failed(ctx context.Context, result *cwtypes.OperationResult, err error) {
	result.Success = false
	result.Message = i18n.Expand(ctx, i18n.MsgAllowanceSetFailed)
	result.Error = ErrorDescription(err)
	result.FollowUp = &cwtypes.FollowUp{
		Text: "Allowances",
		Path: fmt.Sprintf("/allowances/%s", result.Contract),
	}
}
