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

package wsclient

import (
	"github.com/cosmicdapp/cw20wallet/internal/config"
	"github.com/cosmicdapp/cw20wallet/internal/restclient"
	"github.com/cosmicdapp/cw20wallet/pkg/cwtypes"
)

const (
	defaultInitialConnectAttempts = 5
	defaultBufferSize             = "16Kb"
	defaultRetryInitialDelay      = "100ms"
	defaultRetryMaxDelay          = "1s"
)

const (
	WSConfigKeyWriteBufferSize        = "ws.writeBufferSize"
	WSConfigKeyReadBufferSize         = "ws.readBufferSize"
	WSConfigKeyInitialConnectAttempts = "ws.initialConnectAttempts"
	WSConfigKeyRetryInitialDelay      = "ws.retry.initialDelay"
	WSConfigKeyRetryMaxDelay          = "ws.retry.maxDelay"
)

// InitConfigPrefix ensures the prefix is initialized for HTTP too, as the HTTP options
// (url, headers and auth) apply to the initial upgrade
func InitConfigPrefix(prefix config.Prefix) {
	restclient.InitConfigPrefix(prefix)
	prefix.AddKnownKey(WSConfigKeyWriteBufferSize, defaultBufferSize)
	prefix.AddKnownKey(WSConfigKeyReadBufferSize, defaultBufferSize)
	prefix.AddKnownKey(WSConfigKeyInitialConnectAttempts, defaultInitialConnectAttempts)
	prefix.AddKnownKey(WSConfigKeyRetryInitialDelay, defaultRetryInitialDelay)
	prefix.AddKnownKey(WSConfigKeyRetryMaxDelay, defaultRetryMaxDelay)
}

// GenerateConfigFromPrefix reads a WSConfig from a prefix initialized with InitConfigPrefix
func GenerateConfigFromPrefix(prefix config.Prefix) *WSConfig {
	conf := &WSConfig{
		URL:                    prefix.GetString(restclient.HTTPConfigURL),
		Headers:                map[string]string{},
		WriteBufferSize:        cwtypes.ParseToByteSize(prefix.GetString(WSConfigKeyWriteBufferSize)),
		ReadBufferSize:         cwtypes.ParseToByteSize(prefix.GetString(WSConfigKeyReadBufferSize)),
		InitialConnectAttempts: prefix.GetInt(WSConfigKeyInitialConnectAttempts),
		RetryInitialDelay:      prefix.GetDuration(WSConfigKeyRetryInitialDelay),
		RetryMaxDelay:          prefix.GetDuration(WSConfigKeyRetryMaxDelay),
	}
	for k, v := range prefix.GetStringMap(restclient.HTTPConfigHeaders) {
		if vs, ok := v.(string); ok {
			conf.Headers[k] = vs
		}
	}
	if username := prefix.GetString(restclient.HTTPConfigAuthUsername); username != "" {
		conf.Auth = &WSAuthConfig{
			Username: username,
			Password: prefix.GetString(restclient.HTTPConfigAuthPassword),
		}
	}
	return conf
}
