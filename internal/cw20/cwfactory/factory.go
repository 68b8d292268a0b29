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

	"github.com/cosmicdapp/cw20wallet/internal/config"
	"github.com/cosmicdapp/cw20wallet/internal/cw20/cwconnect"
	"github.com/cosmicdapp/cw20wallet/internal/i18n"
	"github.com/cosmicdapp/cw20wallet/pkg/cw20"
)

const (
	// PluginConfigType selects the client plugin within the cw20 section
	PluginConfigType = "type"

	defaultPluginType = "cwconnect"
)

var pluginsByName = map[string]func() cw20.Client{
	(*cwconnect.CWConnect)(nil).Name(): func() cw20.Client { return &cwconnect.CWConnect{} },
}

// InitPrefix registers the type key, and the configuration of every known plugin, on the prefix
func InitPrefix(prefix config.Prefix) {
	prefix.AddKnownKey(PluginConfigType, defaultPluginType)
	for _, plugin := range pluginsByName {
		plugin().InitPrefix(prefix)
	}
}

func GetPlugin(ctx context.Context, pluginType string) (cw20.Client, error) {
	plugin, ok := pluginsByName[pluginType]
	if !ok {
		return nil, i18n.NewError(ctx, i18n.MsgUnknownCW20Plugin, pluginType)
	}
	return plugin(), nil
}
