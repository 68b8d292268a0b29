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

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cosmicdapp/cw20wallet/internal/config"
	"github.com/cosmicdapp/cw20wallet/internal/i18n"
	"github.com/cosmicdapp/cw20wallet/internal/log"
	"github.com/cosmicdapp/cw20wallet/internal/restclient"
	"github.com/cosmicdapp/cw20wallet/internal/wsclient"
	"github.com/cosmicdapp/cw20wallet/pkg/cwtypes"
	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

// remoteConfig addresses a running server, over REST and websockets
var remoteConfig = config.NewPluginConfig("remote")

var (
	remoteURL  string
	watchCount int
)

type watchEvent struct {
	Type    string          `json:"type"`
	Topic   string          `json:"topic,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

var resultsCommand = &cobra.Command{
	Use:   "results",
	Short: "Follow the results of allowance changes on a running server",
}

var resultsWatchCommand = &cobra.Command{
	Use:   "watch",
	Short: "Print results as the server publishes them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := setup()
		if err != nil {
			return err
		}
		ctx, cancelCtx := context.WithCancel(ctx)
		defer cancelCtx()

		signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigs)
		go func() {
			select {
			case <-sigs:
				cancelCtx()
			case <-ctx.Done():
			}
		}()
		return watchResults(ctx, cmd)
	},
}

var resultsListCommand = &cobra.Command{
	Use:   "list",
	Short: "List the recent results held by the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := setup()
		if err != nil {
			return err
		}
		var list []*cwtypes.OperationResult
		if err := remoteGet(ctx, "/api/v1/results", &list); err != nil {
			return err
		}
		return printOutput(ctx, cmd.OutOrStdout(), list)
	},
}

var resultsGetCommand = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single result held by the server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := setup()
		if err != nil {
			return err
		}
		id, err := cwtypes.ParseUUID(ctx, args[0])
		if err != nil {
			return err
		}
		var result cwtypes.OperationResult
		if err := remoteGet(ctx, fmt.Sprintf("/api/v1/results/%s", id), &result); err != nil {
			return err
		}
		return printOutput(ctx, cmd.OutOrStdout(), &result)
	},
}

// serverURL is the base HTTP URL of the server, from the flag, then remote.url, then the local http listener
func serverURL() string {
	u := remoteURL
	if u == "" {
		u = remoteConfig.GetString(restclient.HTTPConfigURL)
	}
	if u == "" {
		u = fmt.Sprintf("http://%s:%d", config.GetString(config.HTTPAddress), config.GetUint(config.HTTPPort))
	}
	return strings.TrimSuffix(u, "/")
}

func remoteGet(ctx context.Context, path string, result interface{}) error {
	client := restclient.New(ctx, remoteConfig).SetHostURL(serverURL())
	res, err := client.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil || !res.IsSuccess() {
		return remoteErr(ctx, res, err)
	}
	return nil
}

// remoteErr surfaces the error the server returned, if there was one
func remoteErr(ctx context.Context, res *resty.Response, err error) error {
	if err == nil && res != nil {
		var restErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(res.Body(), &restErr) == nil && restErr.Error != "" {
			return i18n.NewError(ctx, i18n.MsgRemoteRequestFailed, restErr.Error)
		}
	}
	return restclient.WrapRestErr(ctx, res, err, i18n.MsgRemoteRequestFailed)
}

func watchResults(ctx context.Context, cmd *cobra.Command) error {
	wsConf := wsclient.GenerateConfigFromPrefix(remoteConfig)
	u := serverURL()
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}
	wsConf.URL = u + "/ws"

	topic := config.GetString(config.ResultsTopic)
	listen, _ := json.Marshal(&watchEvent{Type: "listen", Topic: topic})

	w, err := wsclient.NewWSClient(ctx, wsConf, listen)
	if err != nil {
		return err
	}
	defer w.Close()

	received := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case b, ok := <-w.Receive():
			if !ok {
				return nil
			}
			var event watchEvent
			if err := json.Unmarshal(b, &event); err != nil {
				log.L(ctx).Warnf("Unparsable websocket message: %s", b)
				continue
			}
			switch event.Type {
			case "listening":
				log.L(ctx).Infof("Watching results on topic '%s' at %s", event.Topic, wsConf.URL)
			case "error":
				log.L(ctx).Errorf("Websocket error: %s", event.Message)
			case "event":
				var result interface{}
				if err := json.Unmarshal(event.Data, &result); err != nil {
					return err
				}
				if err := printOutput(ctx, cmd.OutOrStdout(), result); err != nil {
					return err
				}
				received++
				if watchCount > 0 && received >= watchCount {
					return nil
				}
			}
		}
	}
}

func init() {
	resultsCommand.PersistentFlags().StringVarP(&remoteURL, "url", "u", "", "server URL, overriding remote.url in the config")
	resultsWatchCommand.Flags().IntVarP(&watchCount, "count", "n", 0, "exit after this many results")
	resultsCommand.AddCommand(resultsWatchCommand)
	resultsCommand.AddCommand(resultsListCommand)
	resultsCommand.AddCommand(resultsGetCommand)
	addOutputFlag(resultsCommand)
	rootCmd.AddCommand(resultsCommand)
}
