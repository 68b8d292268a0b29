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
	"github.com/cosmicdapp/cw20wallet/internal/config"
	"github.com/cosmicdapp/cw20wallet/internal/restclient"
)

const (
	// CWConfigLCD is the sub-prefix for the REST client to the chain LCD, used for smart queries and tx lookups
	CWConfigLCD = "lcd"
	// CWConfigConnector is the sub-prefix for the REST client to the signing connector, used for executes
	CWConfigConnector = "connector"
	// CWConfigExecutePath is the path on the signing connector that accepts execute requests
	CWConfigExecutePath = "connector.executePath"

	defaultExecutePath = "/api/v1/execute"
)

func (c *CWConnect) InitPrefix(prefix config.Prefix) {
	restclient.InitConfigPrefix(prefix.SubPrefix(CWConfigLCD))
	restclient.InitConfigPrefix(prefix.SubPrefix(CWConfigConnector))
	prefix.AddKnownKey(CWConfigExecutePath, defaultExecutePath)
}
