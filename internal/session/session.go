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

package session

import (
	"context"

	"github.com/cosmicdapp/cw20wallet/internal/config"
	"github.com/cosmicdapp/cw20wallet/internal/cw20/cwfactory"
	"github.com/cosmicdapp/cw20wallet/internal/i18n"
	"github.com/cosmicdapp/cw20wallet/internal/log"
	"github.com/cosmicdapp/cw20wallet/pkg/cw20"
	"github.com/cosmicdapp/cw20wallet/pkg/cwtypes"
)

var cw20Config = config.NewPluginConfig("cw20")

// Account is the signing account that owns the allowances managed through the session
type Account struct {
	Address string `json:"address"`
}

// Session carries the account and the chain client. It is passed explicitly to
// everything that needs to act on behalf of the account.
type Session struct {
	Account Account
	Client  cw20.Client
}

// InitConfig registers the cw20 client configuration. Must be called after config.Reset
func InitConfig() {
	cwfactory.InitPrefix(cw20Config)
}

// New builds a session for the configured account, using the configured client plugin
func New(ctx context.Context) (*Session, error) {
	client, err := cwfactory.GetPlugin(ctx, cw20Config.GetString(cwfactory.PluginConfigType))
	if err != nil {
		return nil, err
	}
	return NewWithClient(ctx, client)
}

// NewWithClient builds a session for the configured account, on a supplied client
func NewWithClient(ctx context.Context, client cw20.Client) (*Session, error) {
	address := config.GetString(config.AccountAddress)
	if address == "" {
		return nil, i18n.NewError(ctx, i18n.MsgMissingAccountAddress)
	}
	if err := cwtypes.ValidateAddress(ctx, "account", address, config.GetString(config.CW20AddressPrefix)); err != nil {
		return nil, err
	}
	if err := client.Init(ctx, cw20Config, address); err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Session started for account %s using %s", address, client.Name())
	return &Session{
		Account: Account{Address: address},
		Client:  client,
	}, nil
}

// Contract is shorthand for a handle to a contract, through the session client
func (s *Session) Contract(address string) cw20.Contract {
	return s.Client.Use(address)
}
