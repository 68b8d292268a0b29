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
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/cosmicdapp/cw20wallet/internal/allowance"
	"github.com/cosmicdapp/cw20wallet/internal/config"
	"github.com/cosmicdapp/cw20wallet/internal/i18n"
	"github.com/cosmicdapp/cw20wallet/internal/log"
	"github.com/cosmicdapp/cw20wallet/internal/metrics"
	"github.com/cosmicdapp/cw20wallet/internal/oapispec"
	"github.com/cosmicdapp/cw20wallet/internal/results"
	"github.com/cosmicdapp/cw20wallet/internal/wsserver"
	"github.com/cosmicdapp/cw20wallet/pkg/cwtypes"
	"github.com/ghodss/yaml"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var ffcodeExtractor = regexp.MustCompile(`^(FF\d+):`)

// Server is the external interface for the API Server
type Server interface {
	Serve(ctx context.Context) error
}

type apiServer struct {
	allowances     allowance.Manager
	results        results.Store
	ws             wsserver.WebSocketServer
	apiTimeout     time.Duration
	apiMaxTimeout  time.Duration
	metricsEnabled bool
}

type restError struct {
	Error string `json:"error"`
}

func NewAPIServer(am allowance.Manager, rs results.Store, ws wsserver.WebSocketServer) Server {
	return &apiServer{
		allowances:     am,
		results:        rs,
		ws:             ws,
		apiTimeout:     config.GetDuration(config.APIRequestTimeout),
		apiMaxTimeout:  config.GetDuration(config.APIRequestMaxTimeout),
		metricsEnabled: config.GetBool(config.MetricsEnabled),
	}
}

// Serve is the main entry point for the API Server
func (as *apiServer) Serve(ctx context.Context) (err error) {
	httpErrChan := make(chan error)

	apiHTTPServer, err := newHTTPServer(ctx, "api", as.createMuxRouter(ctx), httpErrChan)
	if err != nil {
		return err
	}
	go apiHTTPServer.serveHTTP(ctx)

	return <-httpErrChan
}

func (as *apiServer) getParams(req *http.Request, route *oapispec.Route) (queryParams, pathParams map[string]string) {
	queryParams = make(map[string]string)
	pathParams = make(map[string]string)
	if len(route.PathParams) > 0 {
		v := mux.Vars(req)
		for _, pp := range route.PathParams {
			pathParams[pp.Name] = v[pp.Name]
		}
	}
	for _, qp := range route.QueryParams {
		val, exists := req.URL.Query()[qp.Name]
		if qp.IsBool {
			if exists && (len(val) == 0 || val[0] == "" || strings.EqualFold(val[0], "true")) {
				val = []string{"true"}
			} else {
				val = []string{"false"}
			}
		}
		if exists && len(val) > 0 {
			queryParams[qp.Name] = val[0]
		}
	}
	return queryParams, pathParams
}

func (as *apiServer) routeHandler(route *oapispec.Route) http.HandlerFunc {
	return as.apiWrapper(func(res http.ResponseWriter, req *http.Request) (int, error) {

		var jsonInput interface{}
		if route.JSONInputValue != nil {
			jsonInput = route.JSONInputValue()
		}
		var err error
		if req.Method != http.MethodGet && req.Method != http.MethodDelete {
			contentType := req.Header.Get("Content-Type")
			if !strings.HasPrefix(strings.ToLower(contentType), "application/json") {
				return 415, i18n.NewError(req.Context(), i18n.MsgInvalidContentType)
			}
			switch {
			case route.JSONInputParser != nil:
				b, err := ioutil.ReadAll(req.Body)
				if err != nil {
					return 400, i18n.WrapError(req.Context(), err, i18n.MsgJSONDecodeFailed)
				}
				if jsonInput, err = route.JSONInputParser(req.Context(), b); err != nil {
					return 400, err
				}
			case jsonInput != nil:
				if err = json.NewDecoder(req.Body).Decode(&jsonInput); err != nil {
					return 400, i18n.WrapError(req.Context(), err, i18n.MsgJSONDecodeFailed)
				}
			}
		}

		queryParams, pathParams := as.getParams(req, route)
		r := &oapispec.APIRequest{
			Ctx:           req.Context(),
			Allowances:    as.allowances,
			Results:       as.results,
			Req:           req,
			PP:            pathParams,
			QP:            queryParams,
			Input:         jsonInput,
			SuccessStatus: http.StatusOK,
		}
		if len(route.JSONOutputCodes) > 0 {
			r.SuccessStatus = route.JSONOutputCodes[0]
		}
		output, err := route.JSONHandler(r)
		if err != nil {
			return 500, err
		}
		return as.handleOutput(req.Context(), res, r.SuccessStatus, output)
	})
}

func (as *apiServer) handleOutput(ctx context.Context, res http.ResponseWriter, status int, output interface{}) (int, error) {
	if isNil(output) {
		if status != http.StatusNoContent {
			return 404, i18n.NewError(ctx, i18n.Msg404NotFound)
		}
		res.WriteHeader(http.StatusNoContent)
		return status, nil
	}
	res.Header().Add("Content-Type", "application/json")
	res.WriteHeader(status)
	if err := json.NewEncoder(res).Encode(output); err != nil {
		err = i18n.WrapError(ctx, err, i18n.MsgResponseMarshalError)
		log.L(ctx).Errorf(err.Error())
		return 500, err
	}
	return status, nil
}

func (as *apiServer) getTimeout(req *http.Request) time.Duration {
	// Allow the client to request a shorter, or longer, server-side timeout up to the configured maximum.
	// The allowance workflow is bounded by this context, including the wait for confirmation.
	reqTimeout := as.apiTimeout
	reqTimeoutHeader := req.Header.Get("Request-Timeout")
	if reqTimeoutHeader != "" {
		customTimeout, err := cwtypes.ParseDurationString(reqTimeoutHeader, time.Second /* default is seconds */)
		if err != nil {
			log.L(req.Context()).Warnf("Invalid Request-Timeout header '%s': %s", reqTimeoutHeader, err)
		} else {
			reqTimeout = customTimeout
			if reqTimeout > as.apiMaxTimeout {
				reqTimeout = as.apiMaxTimeout
			}
		}
	}
	return reqTimeout
}

func (as *apiServer) apiWrapper(handler func(res http.ResponseWriter, req *http.Request) (status int, err error)) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {

		reqTimeout := as.getTimeout(req)
		ctx, cancel := context.WithTimeout(req.Context(), reqTimeout)
		httpReqID := cwtypes.ShortID()
		ctx = log.WithLogField(ctx, "httpreq", httpReqID)
		req = req.WithContext(ctx)
		defer cancel()

		// Wrap the request itself in a log wrapper, that gives minimal request/response and timing info
		l := log.L(ctx)
		l.Infof("--> %s %s", req.Method, req.URL.Path)
		startTime := time.Now()
		status, err := handler(res, req)
		durationMS := float64(time.Since(startTime)) / float64(time.Millisecond)
		if err != nil {

			// Routes don't need to set the status code for errors, as the FF code carries a status hint
			ffcodeExtract := ffcodeExtractor.FindStringSubmatch(err.Error())
			if len(ffcodeExtract) >= 2 {
				if statusHint, ok := i18n.GetStatusHint(ffcodeExtract[1]); ok {
					status = statusHint
				}
			}

			// If the context is done, we wrap in 408
			if status != http.StatusRequestTimeout {
				select {
				case <-ctx.Done():
					l.Errorf("Request failed and context is closed. Returning %d (overriding %d): %s", http.StatusRequestTimeout, status, err)
					status = http.StatusRequestTimeout
					err = i18n.WrapError(ctx, err, i18n.MsgRequestTimeout, httpReqID, durationMS)
				default:
				}
			}

			// ... or we default to 500
			if status < 300 {
				status = 500
			}
			l.Infof("<-- %s %s [%d] (%.2fms): %s", req.Method, req.URL.Path, status, durationMS, err)
			res.Header().Add("Content-Type", "application/json")
			res.WriteHeader(status)
			_ = json.NewEncoder(res).Encode(&restError{
				Error: err.Error(),
			})
		} else {
			l.Infof("<-- %s %s [%d] (%.2fms)", req.Method, req.URL.Path, status, durationMS)
		}
	}
}

func (as *apiServer) notFoundHandler(res http.ResponseWriter, req *http.Request) (status int, err error) {
	return 404, i18n.NewError(req.Context(), i18n.Msg404NotFound)
}

func (as *apiServer) swaggerUIHandler(url string) func(res http.ResponseWriter, req *http.Request) (status int, err error) {
	return func(res http.ResponseWriter, req *http.Request) (status int, err error) {
		res.Header().Add("Content-Type", "text/html")
		_, _ = res.Write(oapispec.SwaggerUIHTML(req.Context(), url))
		return 200, nil
	}
}

func (as *apiServer) getPublicURL() string {
	publicURL := config.GetString(config.HTTPPublicURL)
	if publicURL == "" {
		proto := "https"
		if !config.GetBool(config.HTTPTLSEnabled) {
			proto = "http"
		}
		publicURL = fmt.Sprintf("%s://%s:%s", proto, config.GetString(config.HTTPAddress), config.GetString(config.HTTPPort))
	}
	return publicURL
}

func (as *apiServer) swaggerHandler(url string) func(res http.ResponseWriter, req *http.Request) (status int, err error) {
	return func(res http.ResponseWriter, req *http.Request) (status int, err error) {
		doc := oapispec.SwaggerGen(req.Context(), routes, &oapispec.SwaggerGenConfig{
			Title:   "cw20wallet",
			Version: "1.0",
			BaseURL: url + "/api/v1",
		})
		if mux.Vars(req)["ext"] == ".json" {
			res.Header().Add("Content-Type", "application/json")
			b, _ := json.Marshal(&doc)
			_, _ = res.Write(b)
		} else {
			res.Header().Add("Content-Type", "application/x-yaml")
			b, _ := yaml.Marshal(&doc)
			_, _ = res.Write(b)
		}
		return 200, nil
	}
}

func (as *apiServer) createMuxRouter(ctx context.Context) *mux.Router {
	r := mux.NewRouter()
	if as.metricsEnabled {
		r.Use(metrics.GetRestServerInstrumentation().Middleware)
		r.Path(config.GetString(config.MetricsPath)).Handler(promhttp.InstrumentMetricHandler(metrics.Registry(),
			promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))
	}

	for _, route := range routes {
		if route.JSONHandler != nil {
			r.HandleFunc(fmt.Sprintf("/api/v1/%s", route.Path), as.routeHandler(route)).
				Methods(route.Method)
		}
	}
	publicURL := as.getPublicURL()
	r.HandleFunc(`/api/openapi{ext:\.yaml|\.json|}`, as.apiWrapper(as.swaggerHandler(publicURL)))
	r.HandleFunc(`/api`, as.apiWrapper(as.swaggerUIHandler(publicURL)))
	if as.ws != nil {
		r.HandleFunc(`/ws`, as.ws.Handler())
	}
	log.L(ctx).Debugf("Registered %d API routes", len(routes))

	r.NotFoundHandler = as.apiWrapper(as.notFoundHandler)
	return r
}
