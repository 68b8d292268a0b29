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

package cwfactory

import (
	"context"
	"testing"

	"github.com/cosmicdapp/cw20wallet/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestGetPluginUnknown(t *testing.T) {
	_, err := GetPlugin(context.Background(), "foo")
	assert.Regexp(t, "FF10306", err)
}

func TestGetPluginCWConnect(t *testing.T) {
	plugin, err := GetPlugin(context.Background(), "cwconnect")
	assert.NoError(t, err)
	assert.Equal(t, "cwconnect", plugin.Name())
}

func TestInitPrefixDefaults(t *testing.T) {
	config.Reset()
	prefix := config.NewPluginConfig("cw20")
	InitPrefix(prefix)
	assert.Equal(t, "cwconnect", prefix.GetString(PluginConfigType))
	assert.Equal(t, "/api/v1/execute", prefix.GetString("connector.executePath"))
}
