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

package apiserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/cosmicdapp/cw20wallet/internal/config"
	"github.com/cosmicdapp/cw20wallet/internal/i18n"
	"github.com/cosmicdapp/cw20wallet/internal/metrics"
	"github.com/cosmicdapp/cw20wallet/internal/wsserver"
	"github.com/cosmicdapp/cw20wallet/mocks/allowancemocks"
	"github.com/cosmicdapp/cw20wallet/mocks/resultsmocks"
	"github.com/cosmicdapp/cw20wallet/pkg/cwtypes"
	ws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	testContract = "wasm1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5z5tpwxqergd3c8g7rusq6fq5d3"
	testSpender  = "wasm1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc547at0h"
)

func newTestAPIServer() (*apiServer, *allowancemocks.Manager, *resultsmocks.Store, *httptest.Server) {
	config.Reset()
	metrics.Clear()
	am := &allowancemocks.Manager{}
	rs := &resultsmocks.Store{}
	as := NewAPIServer(am, rs, wsserver.NewWebSocketServer(context.Background())).(*apiServer)
	s := httptest.NewServer(as.createMuxRouter(context.Background()))
	return as, am, rs, s
}

func decodeError(t *testing.T, res *http.Response) string {
	var resJSON restError
	err := json.NewDecoder(res.Body).Decode(&resJSON)
	assert.NoError(t, err)
	return resJSON.Error
}

func TestGetTokenInfo(t *testing.T) {
	_, am, _, s := newTestAPIServer()
	defer s.Close()

	am.On("TokenInfo", mock.Anything, testContract).Return(&cwtypes.TokenInfo{
		Name: "Ash Token", Symbol: "ASH", Decimals: 6, TotalSupply: "1000000000",
	}, nil)

	res, err := http.Get(fmt.Sprintf("%s/api/v1/contracts/%s/tokeninfo", s.URL, testContract))
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)
	var info cwtypes.TokenInfo
	err = json.NewDecoder(res.Body).Decode(&info)
	assert.NoError(t, err)
	assert.Equal(t, "ASH", info.Symbol)
	assert.Equal(t, uint8(6), info.Decimals)
}

func TestGetTokenInfoBadContract(t *testing.T) {
	_, am, _, s := newTestAPIServer()
	defer s.Close()

	res, err := http.Get(fmt.Sprintf("%s/api/v1/contracts/%s/tokeninfo", s.URL, "cosmos1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5lzv7xu"))
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode)
	assert.Regexp(t, "FF10120", decodeError(t, res))
	am.AssertNotCalled(t, "TokenInfo", mock.Anything, mock.Anything)
}

func TestGetTokenInfoQueryFails(t *testing.T) {
	_, am, _, s := newTestAPIServer()
	defer s.Close()

	am.On("TokenInfo", mock.Anything, testContract).Return(nil, i18n.NewError(context.Background(), i18n.MsgCW20QueryErr, "pop"))

	res, err := http.Get(fmt.Sprintf("%s/api/v1/contracts/%s/tokeninfo", s.URL, testContract))
	assert.NoError(t, err)
	assert.Equal(t, 500, res.StatusCode)
	assert.Regexp(t, "FF10300.*pop", decodeError(t, res))
}

func TestGetBalance(t *testing.T) {
	_, am, _, s := newTestAPIServer()
	defer s.Close()

	am.On("GetBalance", mock.Anything, testContract, testSpender).Return(&cwtypes.BalanceInfo{Balance: "42"}, nil)

	res, err := http.Get(fmt.Sprintf("%s/api/v1/contracts/%s/balance?address=%s", s.URL, testContract, testSpender))
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)
	var balance cwtypes.BalanceInfo
	err = json.NewDecoder(res.Body).Decode(&balance)
	assert.NoError(t, err)
	assert.Equal(t, "42", balance.Balance)
}

func TestGetAllowanceDefaultOwner(t *testing.T) {
	_, am, _, s := newTestAPIServer()
	defer s.Close()

	am.On("GetAllowance", mock.Anything, testContract, "", testSpender).Return(&cwtypes.AllowanceInfo{
		Allowance: "1000000",
		Expires:   &cwtypes.Expiration{Never: true},
	}, nil)

	res, err := http.Get(fmt.Sprintf("%s/api/v1/contracts/%s/allowances/%s", s.URL, testContract, testSpender))
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)
	var info cwtypes.AllowanceInfo
	err = json.NewDecoder(res.Body).Decode(&info)
	assert.NoError(t, err)
	assert.Equal(t, "1000000", info.Allowance)
	assert.True(t, info.Expires.Never)
}

func TestGetAllowanceNoResult(t *testing.T) {
	_, am, _, s := newTestAPIServer()
	defer s.Close()

	am.On("GetAllowance", mock.Anything, testContract, "", testSpender).Return(nil, nil)

	res, err := http.Get(fmt.Sprintf("%s/api/v1/contracts/%s/allowances/%s", s.URL, testContract, testSpender))
	assert.NoError(t, err)
	assert.Equal(t, 404, res.StatusCode)
	assert.Regexp(t, "FF10109", decodeError(t, res))
}

func TestPostAllowance(t *testing.T) {
	_, am, _, s := newTestAPIServer()
	defer s.Close()

	result := &cwtypes.OperationResult{
		ID:        cwtypes.NewUUID(),
		Success:   true,
		Message:   "2.5 ASH allowance for " + testSpender + " successfully added",
		Contract:  testContract,
		Spender:   testSpender,
		Operation: cwtypes.AllowanceOperationIncrease,
		Amount:    "1500000",
	}
	am.On("SetAllowance", mock.Anything, testContract, &cwtypes.AllowanceInput{
		Address: testSpender,
		Amount:  "2500000",
	}).Return(result, nil)

	body := fmt.Sprintf(`{"address":"%s","amount":"2500000"}`, testSpender)
	res, err := http.Post(fmt.Sprintf("%s/api/v1/contracts/%s/allowances", s.URL, testContract), "application/json", strings.NewReader(body))
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)
	var out cwtypes.OperationResult
	err = json.NewDecoder(res.Body).Decode(&out)
	assert.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, result.ID.String(), out.ID.String())
	assert.Equal(t, "1500000", out.Amount)
}

func TestPostAllowanceFailureResultIsOK(t *testing.T) {
	_, am, _, s := newTestAPIServer()
	defer s.Close()

	am.On("SetAllowance", mock.Anything, testContract, mock.Anything).Return(&cwtypes.OperationResult{
		Success: false,
		Message: "Could not set allowance:",
		Error:   "Unauthorized",
	}, nil)

	body := fmt.Sprintf(`{"address":"%s","amount":"1"}`, testSpender)
	res, err := http.Post(fmt.Sprintf("%s/api/v1/contracts/%s/allowances", s.URL, testContract), "application/json", strings.NewReader(body))
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)
	var out cwtypes.OperationResult
	err = json.NewDecoder(res.Body).Decode(&out)
	assert.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, "Unauthorized", out.Error)
}

func TestPostAllowanceInvalidInput(t *testing.T) {
	_, am, _, s := newTestAPIServer()
	defer s.Close()

	body := fmt.Sprintf(`{"address":"%s","amount":"2.5"}`, testSpender)
	res, err := http.Post(fmt.Sprintf("%s/api/v1/contracts/%s/allowances", s.URL, testContract), "application/json", strings.NewReader(body))
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode)
	assert.Regexp(t, "FF10400", decodeError(t, res))
	am.AssertNotCalled(t, "SetAllowance", mock.Anything, mock.Anything, mock.Anything)
}

func TestPostAllowanceUnknownAndRecasedFields(t *testing.T) {
	_, am, _, s := newTestAPIServer()
	defer s.Close()

	body := fmt.Sprintf(`{"address":"%s","amount":"1","AMOUNT":"999999","extra":true}`, testSpender)
	res, err := http.Post(fmt.Sprintf("%s/api/v1/contracts/%s/allowances", s.URL, testContract), "application/json", strings.NewReader(body))
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode)
	assert.Regexp(t, "FF10400.*AMOUNT", decodeError(t, res))
	am.AssertNotCalled(t, "SetAllowance", mock.Anything, mock.Anything, mock.Anything)
}

func TestPostAllowanceRecasedFieldOnly(t *testing.T) {
	_, am, _, s := newTestAPIServer()
	defer s.Close()

	body := fmt.Sprintf(`{"Address":"%s","Amount":"1"}`, testSpender)
	res, err := http.Post(fmt.Sprintf("%s/api/v1/contracts/%s/allowances", s.URL, testContract), "application/json", strings.NewReader(body))
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode)
	assert.Regexp(t, "FF10400", decodeError(t, res))
	am.AssertNotCalled(t, "SetAllowance", mock.Anything, mock.Anything, mock.Anything)
}

func TestPostAllowanceBadJSON(t *testing.T) {
	_, am, _, s := newTestAPIServer()
	defer s.Close()

	res, err := http.Post(fmt.Sprintf("%s/api/v1/contracts/%s/allowances", s.URL, testContract), "application/json", strings.NewReader(`{!`))
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode)
	assert.Regexp(t, "FF10103", decodeError(t, res))
	am.AssertNotCalled(t, "SetAllowance", mock.Anything, mock.Anything, mock.Anything)
}

func TestPostAllowanceBadContentType(t *testing.T) {
	_, _, _, s := newTestAPIServer()
	defer s.Close()

	res, err := http.Post(fmt.Sprintf("%s/api/v1/contracts/%s/allowances", s.URL, testContract), "text/plain", strings.NewReader(`hello`))
	assert.NoError(t, err)
	assert.Equal(t, 415, res.StatusCode)
	assert.Regexp(t, "FF10110", decodeError(t, res))
}

func TestGetResults(t *testing.T) {
	_, _, rs, s := newTestAPIServer()
	defer s.Close()

	rs.On("List", mock.Anything).Return([]*cwtypes.OperationResult{
		{ID: cwtypes.NewUUID(), Success: true},
		{ID: cwtypes.NewUUID(), Success: false},
	})

	res, err := http.Get(fmt.Sprintf("%s/api/v1/results", s.URL))
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)
	var out []*cwtypes.OperationResult
	err = json.NewDecoder(res.Body).Decode(&out)
	assert.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestGetResultByIDNotFound(t *testing.T) {
	_, _, rs, s := newTestAPIServer()
	defer s.Close()

	id := cwtypes.NewUUID().String()
	rs.On("Get", mock.Anything, id).Return(nil, i18n.NewError(context.Background(), i18n.MsgResultNotFound, id))

	res, err := http.Get(fmt.Sprintf("%s/api/v1/results/%s", s.URL, id))
	assert.NoError(t, err)
	assert.Equal(t, 404, res.StatusCode)
	assert.Regexp(t, "FF10123", decodeError(t, res))
}

func TestNotFound(t *testing.T) {
	_, _, _, s := newTestAPIServer()
	defer s.Close()

	res, err := http.Get(fmt.Sprintf("%s/api/v1/wrong", s.URL))
	assert.NoError(t, err)
	assert.Equal(t, 404, res.StatusCode)
	assert.Regexp(t, "FF10109", decodeError(t, res))
}

func TestOpenAPIDocument(t *testing.T) {
	_, _, _, s := newTestAPIServer()
	defer s.Close()

	res, err := http.Get(fmt.Sprintf("%s/api/openapi.json", s.URL))
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)
	var doc map[string]interface{}
	err = json.NewDecoder(res.Body).Decode(&doc)
	assert.NoError(t, err)
	paths := doc["paths"].(map[string]interface{})
	assert.Contains(t, paths, "/contracts/{contract}/allowances")
	assert.Contains(t, paths, "/results/{id}")

	res, err = http.Get(fmt.Sprintf("%s/api/openapi.yaml", s.URL))
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)
	assert.Equal(t, "application/x-yaml", res.Header.Get("Content-Type"))

	res, err = http.Get(fmt.Sprintf("%s/api", s.URL))
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)
	b, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(b), "/api/openapi.yaml")
}

func TestMetricsEndpoint(t *testing.T) {
	_, am, _, s := newTestAPIServer()
	defer s.Close()

	am.On("TokenInfo", mock.Anything, testContract).Return(&cwtypes.TokenInfo{Symbol: "ASH"}, nil)
	res, err := http.Get(fmt.Sprintf("%s/api/v1/contracts/%s/tokeninfo", s.URL, testContract))
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)

	res, err = http.Get(fmt.Sprintf("%s/metrics", s.URL))
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)
	b, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(b), "cw20wallet_apiserver_rest_requests_total")
}

func TestMetricsDisabled(t *testing.T) {
	config.Reset()
	config.Set(config.MetricsEnabled, false)
	as := NewAPIServer(&allowancemocks.Manager{}, &resultsmocks.Store{}, nil).(*apiServer)
	s := httptest.NewServer(as.createMuxRouter(context.Background()))
	defer s.Close()

	res, err := http.Get(fmt.Sprintf("%s/metrics", s.URL))
	assert.NoError(t, err)
	assert.Equal(t, 404, res.StatusCode)
}

func TestWebSocketRoute(t *testing.T) {
	as, _, _, s := newTestAPIServer()
	defer s.Close()

	u, _ := url.Parse(s.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	c, _, err := ws.DefaultDialer.Dial(u.String(), nil)
	assert.NoError(t, err)
	defer c.Close()

	err = c.WriteJSON(map[string]string{"type": "listen", "topic": "results"})
	assert.NoError(t, err)
	var reply map[string]interface{}
	err = c.ReadJSON(&reply)
	assert.NoError(t, err)
	assert.Equal(t, "listening", reply["type"])

	as.ws.Broadcast(context.Background(), "results", &cwtypes.OperationResult{Message: "hello"})
	err = c.ReadJSON(&reply)
	assert.NoError(t, err)
	assert.Equal(t, "event", reply["type"])
}

func TestRequestTimeoutHeader(t *testing.T) {
	as, _, _, s := newTestAPIServer()
	defer s.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/results", nil)
	assert.Equal(t, 120*time.Second, as.getTimeout(req))

	req.Header.Set("Request-Timeout", "5")
	assert.Equal(t, 5*time.Second, as.getTimeout(req))

	req.Header.Set("Request-Timeout", "1h")
	assert.Equal(t, 10*time.Minute, as.getTimeout(req))

	req.Header.Set("Request-Timeout", "bad")
	assert.Equal(t, 120*time.Second, as.getTimeout(req))
}

func TestTimeoutMapsTo408(t *testing.T) {
	as, _, _, s := newTestAPIServer()
	defer s.Close()

	handler := as.apiWrapper(func(res http.ResponseWriter, req *http.Request) (int, error) {
		<-req.Context().Done()
		return 500, fmt.Errorf("pop")
	})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/results", nil)
	req.Header.Set("Request-Timeout", "1ms")
	rec := httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, 408, rec.Code)
	assert.Regexp(t, "FF10111", rec.Body.String())
}

func TestServeCancel(t *testing.T) {
	config.Reset()
	metrics.Clear()
	config.Set(config.HTTPPort, 0)
	as := NewAPIServer(&allowancemocks.Manager{}, &resultsmocks.Store{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- as.Serve(ctx)
	}()
	cancel()
	assert.NoError(t, <-done)
}

func TestServeBadAddress(t *testing.T) {
	config.Reset()
	metrics.Clear()
	config.Set(config.HTTPAddress, "not an address")
	as := NewAPIServer(&allowancemocks.Manager{}, &resultsmocks.Store{}, nil)
	err := as.Serve(context.Background())
	assert.Regexp(t, "FF10104", err)
}

func TestServeBadCAFile(t *testing.T) {
	config.Reset()
	metrics.Clear()
	config.Set(config.HTTPPort, 0)
	config.Set(config.HTTPTLSCAFile, "/does/not/exist")
	as := NewAPIServer(&allowancemocks.Manager{}, &resultsmocks.Store{}, nil)
	err := as.Serve(context.Background())
	assert.Regexp(t, "FF10105", err)
}

func TestCorsDisabled(t *testing.T) {
	config.Reset()
	config.Set(config.CorsEnabled, false)
	h := http.NotFoundHandler()
	assert.Equal(t, fmt.Sprintf("%p", h), fmt.Sprintf("%p", wrapCorsIfEnabled(context.Background(), h)))
}

func TestCorsPreflight(t *testing.T) {
	config.Reset()
	h := wrapCorsIfEnabled(context.Background(), http.NotFoundHandler())
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/results", bytes.NewReader(nil))
	req.Header.Set("Origin", "http://wallet.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
