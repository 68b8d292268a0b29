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
	"fmt"
	"testing"

	"github.com/cosmicdapp/cw20wallet/internal/config"
	"github.com/cosmicdapp/cw20wallet/internal/cw20/cwfactory"
	"github.com/cosmicdapp/cw20wallet/internal/restclient"
	"github.com/cosmicdapp/cw20wallet/mocks/cw20mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testAccount = "wasm1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc547at0h"

func resetConf() {
	config.Reset()
	InitConfig()
}

func TestNewWithClientOK(t *testing.T) {
	resetConf()
	config.Set(config.AccountAddress, testAccount)

	mc := &cw20mocks.Client{}
	mcon := &cw20mocks.Contract{}
	mc.On("Init", mock.Anything, cw20Config, testAccount).Return(nil)
	mc.On("Name").Return("utclient")
	mc.On("Use", "wasm1contract").Return(mcon)

	s, err := NewWithClient(context.Background(), mc)
	assert.NoError(t, err)
	assert.Equal(t, testAccount, s.Account.Address)
	assert.Equal(t, mcon, s.Contract("wasm1contract"))
	mc.AssertExpectations(t)
}

func TestNewWithClientMissingAccount(t *testing.T) {
	resetConf()
	_, err := NewWithClient(context.Background(), &cw20mocks.Client{})
	assert.Regexp(t, "FF10118", err)
}

func TestNewWithClientBadAccount(t *testing.T) {
	resetConf()
	config.Set(config.AccountAddress, testAccount)
	config.Set(config.CW20AddressPrefix, "juno")
	_, err := NewWithClient(context.Background(), &cw20mocks.Client{})
	assert.Regexp(t, "FF10120", err)
}

func TestNewWithClientInitFail(t *testing.T) {
	resetConf()
	config.Set(config.AccountAddress, testAccount)

	mc := &cw20mocks.Client{}
	mc.On("Init", mock.Anything, cw20Config, testAccount).Return(fmt.Errorf("pop"))

	_, err := NewWithClient(context.Background(), mc)
	assert.Regexp(t, "pop", err)
}

func TestNewUnknownPlugin(t *testing.T) {
	resetConf()
	cw20Config.Set(cwfactory.PluginConfigType, "wrong")
	_, err := New(context.Background())
	assert.Regexp(t, "FF10306", err)
}

func TestNewDefaultPlugin(t *testing.T) {
	resetConf()
	config.Set(config.AccountAddress, testAccount)
	cw20Config.SubPrefix("lcd").Set(restclient.HTTPConfigURL, "http://localhost:1317")
	cw20Config.SubPrefix("connector").Set(restclient.HTTPConfigURL, "http://localhost:3000")

	s, err := New(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "cwconnect", s.Client.Name())
}
