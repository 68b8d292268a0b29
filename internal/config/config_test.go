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

package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestInitConfigOK(t *testing.T) {
	viper.Reset()
	err := ReadConfig("")
	assert.Regexp(t, "Not Found", err.Error())
}

func TestDefaults(t *testing.T) {
	cwd, _ := os.Getwd()
	defer os.Chdir(cwd)
	os.Chdir("testdata")
	err := ReadConfig("")
	assert.NoError(t, err)

	assert.Equal(t, "info", GetString(LogLevel))
	assert.True(t, GetBool(LogColor))
	assert.Equal(t, uint(0), GetUint(HTTPPort))
	assert.Equal(t, -1, GetInt(DebugPort))
	assert.Equal(t, float64(2.0), GetFloat64(AllowanceConfirmFactor))
	assert.Equal(t, 15*time.Second, GetDuration(HTTPReadTimeout))
	assert.Equal(t, []string{"*"}, GetStringSlice(CorsAllowedOrigins))
	assert.Equal(t, "wasm", GetString(CW20AddressPrefix))
	assert.False(t, GetBool(AllowanceSkipZeroDelta))
	assert.Equal(t, "wasm1u0h6gtr6c2en0kpvxuuqlmk2ytj6xy2zf5ypt6", GetString(AccountAddress))
}

func TestSpecificConfigFileOk(t *testing.T) {
	err := ReadConfig("testdata/cw20wallet.yaml")
	assert.NoError(t, err)
	assert.Equal(t, "wasm1u0h6gtr6c2en0kpvxuuqlmk2ytj6xy2zf5ypt6", GetString(AccountAddress))
}

func TestSpecificConfigFileFail(t *testing.T) {
	err := ReadConfig("testdata/no.hope.yaml")
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	os.Setenv("CW20WALLET_ALLOWANCE_SKIPZERODELTA", "true")
	defer os.Unsetenv("CW20WALLET_ALLOWANCE_SKIPZERODELTA")
	err := ReadConfig("testdata/cw20wallet.yaml")
	assert.NoError(t, err)
	assert.True(t, GetBool(AllowanceSkipZeroDelta))
}

func TestAttemptToAccessRandomKey(t *testing.T) {
	assert.Panics(t, func() {
		GetString("any.key")
	})
}

func TestSetGetMap(t *testing.T) {
	Reset()
	Set(MetricsPath, map[string]interface{}{"some": "map"})
	assert.Equal(t, map[string]interface{}{"some": "map"}, GetStringMap(MetricsPath))
}

func TestSetGetRawInterace(t *testing.T) {
	Reset()
	type myType struct{ name string }
	Set(MetricsPath, &myType{name: "test"})
	v := Get(MetricsPath)
	assert.Equal(t, myType{name: "test"}, *(v.(*myType)))
}

func TestPluginConfig(t *testing.T) {
	pic := NewPluginConfig("my")
	pic.AddKnownKey("special.config", 12345)
	assert.Equal(t, 12345, pic.GetInt("special.config"))
	assert.Equal(t, "my.special.config", pic.Resolve("special.config"))
}

func TestPluginConfigArrayInit(t *testing.T) {
	pic := NewPluginConfig("my").SubPrefix("special")
	pic.AddKnownKey("config", "val1", "val2", "val3")
	assert.Equal(t, []string{"val1", "val2", "val3"}, pic.GetStringSlice("config"))
}

func TestPluginConfigDurations(t *testing.T) {
	pic := NewPluginConfig("timed")
	pic.AddKnownKey("wait", "250ms")
	pic.AddKnownKey("factor", 1.5)
	pic.AddKnownKey("count", uint(3))
	pic.AddKnownKey("flag", true)
	assert.Equal(t, 250*time.Millisecond, pic.GetDuration("wait"))
	assert.Equal(t, 1.5, pic.GetFloat64("factor"))
	assert.Equal(t, uint(3), pic.GetUint("count"))
	assert.True(t, pic.GetBool("flag"))
	pic.Set("flag", false)
	assert.False(t, pic.GetBool("flag"))
}

func TestGetKnownKeys(t *testing.T) {
	knownKeys := GetKnownKeys()
	assert.NotEmpty(t, knownKeys)
	for _, k := range knownKeys {
		assert.NotEmpty(t, root.Resolve(k))
	}
}

func TestUnmarshalKey(t *testing.T) {
	err := ReadConfig("testdata/cw20wallet.yaml")
	assert.NoError(t, err)
	pic := NewPluginConfig("cw20")
	pic.AddKnownKey("lcd")
	var lcd struct {
		URL string `json:"url"`
	}
	err = pic.UnmarshalKey(context.Background(), "lcd", &lcd)
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:1317", lcd.URL)
}

func TestUnmarshalKeyFail(t *testing.T) {
	Reset()
	Set(MetricsPath, "not a map")
	var target struct{}
	err := UnmarshalKey(context.Background(), MetricsPath, &target)
	assert.Regexp(t, "FF10101", err)
}

func TestAllSettings(t *testing.T) {
	Reset()
	all := AllSettings()
	assert.NotEmpty(t, all["log"])
}
