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

package cwconnect

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cosmicdapp/cw20wallet/internal/config"
	"github.com/cosmicdapp/cw20wallet/internal/i18n"
	"github.com/cosmicdapp/cw20wallet/internal/log"
	"github.com/cosmicdapp/cw20wallet/internal/restclient"
	"github.com/cosmicdapp/cw20wallet/pkg/cw20"
	"github.com/cosmicdapp/cw20wallet/pkg/cwtypes"
	"github.com/go-resty/resty/v2"
)

// CWConnect queries CW20 contracts through the smart query endpoint of a chain LCD,
// and submits executes through a signing connector that holds the key of the sender
type CWConnect struct {
	ctx         context.Context
	sender      string
	executePath string
	lcd         *resty.Client
	connector   *resty.Client
}

type contract struct {
	c       *CWConnect
	address string
}

type smartQueryResponse struct {
	Data json.RawMessage `json:"data"`
}

type tokenInfoQuery struct {
	TokenInfo struct{} `json:"token_info"`
}

type tokenInfoResponse struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    uint8  `json:"decimals"`
	TotalSupply string `json:"total_supply"`
}

type allowanceQuery struct {
	Allowance struct {
		Owner   string `json:"owner"`
		Spender string `json:"spender"`
	} `json:"allowance"`
}

type expiration struct {
	AtHeight *uint64   `json:"at_height,omitempty"`
	AtTime   *string   `json:"at_time,omitempty"`
	Never    *struct{} `json:"never,omitempty"`
}

type allowanceResponse struct {
	Allowance string      `json:"allowance"`
	Expires   *expiration `json:"expires"`
}

type balanceQuery struct {
	Balance struct {
		Address string `json:"address"`
	} `json:"balance"`
}

type balanceResponse struct {
	Balance string `json:"balance"`
}

type allowanceChange struct {
	Spender string `json:"spender"`
	Amount  string `json:"amount"`
}

type executeMsg struct {
	IncreaseAllowance *allowanceChange `json:"increase_allowance,omitempty"`
	DecreaseAllowance *allowanceChange `json:"decrease_allowance,omitempty"`
}

type coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

type executeRequest struct {
	RequestID string     `json:"requestId"`
	Contract  string     `json:"contract"`
	Sender    string     `json:"sender"`
	Msg       executeMsg `json:"msg"`
	Funds     []coin     `json:"funds"`
}

type executeResponse struct {
	TransactionHash string `json:"transactionHash"`
}

type connectorError struct {
	Error string `json:"error"`
}

type txResponse struct {
	TxResponse *struct {
		TxHash string `json:"txhash"`
		Height string `json:"height"`
		Code   uint32 `json:"code"`
		RawLog string `json:"raw_log"`
	} `json:"tx_response"`
}

func (c *CWConnect) Name() string {
	return "cwconnect"
}

func (c *CWConnect) Init(ctx context.Context, prefix config.Prefix, sender string) error {
	c.ctx = log.WithLogField(ctx, "proto", "cwconnect")
	c.sender = sender

	lcdPrefix := prefix.SubPrefix(CWConfigLCD)
	if lcdPrefix.GetString(restclient.HTTPConfigURL) == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, "url", "cw20.lcd")
	}
	connectorPrefix := prefix.SubPrefix(CWConfigConnector)
	if connectorPrefix.GetString(restclient.HTTPConfigURL) == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, "url", "cw20.connector")
	}

	c.lcd = restclient.New(c.ctx, lcdPrefix)
	c.connector = restclient.New(c.ctx, connectorPrefix)
	c.executePath = prefix.GetString(CWConfigExecutePath)
	return nil
}

func (c *CWConnect) Use(address string) cw20.Contract {
	return &contract{c: c, address: address}
}

func (c *CWConnect) GetTx(ctx context.Context, txHash string) (*cwtypes.TxReceipt, error) {
	var body txResponse
	res, err := c.lcd.R().
		SetContext(ctx).
		ExpectContentType("application/json").
		SetResult(&body).
		Get(fmt.Sprintf("/cosmos/tx/v1beta1/txs/%s", url.PathEscape(txHash)))
	if err == nil && res.StatusCode() == http.StatusNotFound {
		return nil, i18n.NewError(ctx, i18n.MsgCW20TxNotFound, txHash)
	}
	if err != nil || !res.IsSuccess() {
		return nil, restclient.WrapRestErr(ctx, res, err, i18n.MsgCW20QueryErr)
	}
	if body.TxResponse == nil {
		return nil, i18n.NewError(ctx, i18n.MsgCW20QueryResultInvalid, "tx", res.String())
	}
	receipt := &cwtypes.TxReceipt{
		TxHash: body.TxResponse.TxHash,
		Code:   body.TxResponse.Code,
		RawLog: body.TxResponse.RawLog,
	}
	if body.TxResponse.Height != "" {
		if receipt.Height, err = strconv.ParseInt(body.TxResponse.Height, 10, 64); err != nil {
			return nil, i18n.NewError(ctx, i18n.MsgCW20QueryResultInvalid, "tx", err)
		}
	}
	return receipt, nil
}

// smartQueryPath builds the LCD path for a smart query. The query is passed as URL-safe base64,
// which the gateway accepts alongside standard base64
func smartQueryPath(contract string, query []byte) string {
	return fmt.Sprintf("/cosmwasm/wasm/v1/contract/%s/smart/%s",
		url.PathEscape(contract), base64.URLEncoding.EncodeToString(query))
}

func (c *CWConnect) smartQuery(ctx context.Context, contract, queryName string, query interface{}, result interface{}) error {
	queryBytes, _ := json.Marshal(query)
	var body smartQueryResponse
	res, err := c.lcd.R().
		SetContext(ctx).
		ExpectContentType("application/json").
		SetResult(&body).
		Get(smartQueryPath(contract, queryBytes))
	if err != nil || !res.IsSuccess() {
		return restclient.WrapRestErr(ctx, res, err, i18n.MsgCW20QueryErr)
	}
	if len(body.Data) == 0 {
		return i18n.NewError(ctx, i18n.MsgCW20QueryResultInvalid, queryName, res.String())
	}
	if err := json.Unmarshal(body.Data, result); err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgCW20QueryResultInvalid, queryName, err)
	}
	return nil
}

func (c *CWConnect) execute(ctx context.Context, contract string, msg executeMsg) (string, error) {
	req := &executeRequest{
		RequestID: cwtypes.NewUUID().String(),
		Contract:  contract,
		Sender:    c.sender,
		Msg:       msg,
		Funds:     []coin{},
	}
	var body executeResponse
	var errBody connectorError
	res, err := c.connector.R().
		SetContext(ctx).
		ExpectContentType("application/json").
		SetBody(req).
		SetResult(&body).
		SetError(&errBody).
		Post(c.executePath)
	if err == nil && !res.IsSuccess() && errBody.Error != "" {
		return "", i18n.NewError(ctx, i18n.MsgCW20ConnectorErr, errBody.Error)
	}
	if err != nil || !res.IsSuccess() {
		return "", restclient.WrapRestErr(ctx, res, err, i18n.MsgCW20ConnectorErr)
	}
	if body.TransactionHash == "" {
		return "", i18n.NewError(ctx, i18n.MsgCW20ConnectorNoTxHash)
	}
	log.L(ctx).Infof("Submitted execute request=%s contract=%s tx=%s", req.RequestID, contract, body.TransactionHash)
	return body.TransactionHash, nil
}

func (k *contract) Address() string {
	return k.address
}

func (k *contract) TokenInfo(ctx context.Context) (*cwtypes.TokenInfo, error) {
	var info tokenInfoResponse
	if err := k.c.smartQuery(ctx, k.address, "token_info", &tokenInfoQuery{}, &info); err != nil {
		return nil, err
	}
	return &cwtypes.TokenInfo{
		Contract:    k.address,
		Name:        info.Name,
		Symbol:      info.Symbol,
		Decimals:    info.Decimals,
		TotalSupply: info.TotalSupply,
	}, nil
}

func (k *contract) Allowance(ctx context.Context, owner, spender string) (*cwtypes.AllowanceInfo, error) {
	q := &allowanceQuery{}
	q.Allowance.Owner = owner
	q.Allowance.Spender = spender
	var allowance allowanceResponse
	if err := k.c.smartQuery(ctx, k.address, "allowance", q, &allowance); err != nil {
		return nil, err
	}
	info := &cwtypes.AllowanceInfo{
		Contract:  k.address,
		Owner:     owner,
		Spender:   spender,
		Allowance: allowance.Allowance,
	}
	if allowance.Expires != nil {
		exp, err := allowance.Expires.toExpiration(ctx)
		if err != nil {
			return nil, err
		}
		info.Expires = exp
	}
	return info, nil
}

func (e *expiration) toExpiration(ctx context.Context) (*cwtypes.Expiration, error) {
	switch {
	case e.AtHeight != nil:
		return &cwtypes.Expiration{AtHeight: e.AtHeight}, nil
	case e.AtTime != nil:
		// Timestamps on chain are nanoseconds since the epoch, as a string
		ns, err := strconv.ParseInt(*e.AtTime, 10, 64)
		if err != nil {
			return nil, i18n.NewError(ctx, i18n.MsgCW20QueryResultInvalid, "allowance", err)
		}
		return &cwtypes.Expiration{AtTime: cwtypes.UnixTime(ns)}, nil
	default:
		return &cwtypes.Expiration{Never: true}, nil
	}
}

func (k *contract) Balance(ctx context.Context, address string) (*cwtypes.BalanceInfo, error) {
	q := &balanceQuery{}
	q.Balance.Address = address
	var balance balanceResponse
	if err := k.c.smartQuery(ctx, k.address, "balance", q, &balance); err != nil {
		return nil, err
	}
	return &cwtypes.BalanceInfo{
		Contract: k.address,
		Address:  address,
		Balance:  balance.Balance,
	}, nil
}

func (k *contract) IncreaseAllowance(ctx context.Context, spender, amount string) (string, error) {
	return k.c.execute(ctx, k.address, executeMsg{
		IncreaseAllowance: &allowanceChange{Spender: spender, Amount: amount},
	})
}

func (k *contract) DecreaseAllowance(ctx context.Context, spender, amount string) (string, error) {
	return k.c.execute(ctx, k.address, executeMsg{
		DecreaseAllowance: &allowanceChange{Spender: spender, Amount: amount},
	})
}
