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
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/cosmicdapp/cw20wallet/internal/allowance"
	"github.com/cosmicdapp/cw20wallet/internal/apiserver"
	"github.com/cosmicdapp/cw20wallet/internal/config"
	"github.com/cosmicdapp/cw20wallet/internal/i18n"
	"github.com/cosmicdapp/cw20wallet/internal/log"
	"github.com/cosmicdapp/cw20wallet/internal/metrics"
	"github.com/cosmicdapp/cw20wallet/internal/results"
	"github.com/cosmicdapp/cw20wallet/internal/session"
	"github.com/cosmicdapp/cw20wallet/internal/wsclient"
	"github.com/cosmicdapp/cw20wallet/internal/wsserver"
	"github.com/ghodss/yaml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var sigs = make(chan os.Signal, 1)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "cw20wallet",
	Short: "CW20 token wallet",
	Long: `Manages the allowances an account grants to spenders on CW20 token contracts.
Queries go to the chain LCD, and transactions to a signing connector.`,
	SilenceUsage: true,
}

var showConfigCommand = &cobra.Command{
	Use:     "showconfig",
	Aliases: []string{"showconf"},
	Short:   "List out the configuration options",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Show the config without requiring a config file
		_ = readConfig()
		b, err := yaml.Marshal(config.AllSettings())
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), string(b))
		return err
	},
}

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API and websocket server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := setup()
		if err != nil {
			return err
		}
		return serve(ctx)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "", "config file")
	rootCmd.AddCommand(showConfigCommand)
	rootCmd.AddCommand(serveCommand)
}

// components are what every command acts on, built from configuration
type components struct {
	allowances allowance.Manager
	results    results.Store
	ws         wsserver.WebSocketServer
}

// _utComponents replaces the configured components in unit tests
var _utComponents *components

// Close releases the websocket connections
func (c *components) Close() {
	if c.ws != nil {
		c.ws.Close()
	}
}

func getComponents(ctx context.Context, withWebSocket bool) (*components, error) {
	if _utComponents != nil {
		return _utComponents, nil
	}
	c := &components{}
	mm := metrics.NewMetricsManager(ctx)
	if withWebSocket {
		c.ws = wsserver.NewWebSocketServer(ctx)
		c.results = results.NewResultStore(ctx, c.ws, mm)
	} else {
		c.results = results.NewResultStore(ctx, nil, mm)
	}
	s, err := session.New(ctx)
	if err != nil {
		return nil, err
	}
	if c.allowances, err = allowance.NewAllowanceManager(ctx, s, c.results, mm); err != nil {
		return nil, err
	}
	return c, nil
}

func readConfig() error {
	err := config.ReadConfig(cfgFile)
	// Plugin keys are registered after the reset done by reading
	session.InitConfig()
	wsclient.InitConfigPrefix(remoteConfig)
	return err
}

func setupLogging() {
	log.SetLevel(config.GetString(config.LogLevel))
	log.SetFormatting(log.Formatting{
		DisableColor:    !config.GetBool(config.LogColor),
		TimestampFormat: config.GetString(config.LogTimeFormat),
		UTC:             config.GetBool(config.LogUTC),
	})
}

func setup() (context.Context, error) {
	// Read the configuration first of all
	err := readConfig()

	// Setup logging after reading config (even if failed), to output header correctly
	ctx := log.WithLogger(context.Background(), logrus.WithField("pid", fmt.Sprintf("%d", os.Getpid())))
	setupLogging()

	// Deferred error return from reading config
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgConfigFailed, cfgFile)
	}

	debugPort := config.GetInt(config.DebugPort)
	if debugPort > 0 {
		go func() {
			err := http.ListenAndServe(fmt.Sprintf("localhost:%d", debugPort), nil)
			log.L(ctx).Errorf(i18n.Expand(ctx, i18n.MsgDebugServerFailed, err))
		}()
		log.L(ctx).Debugf("Debug HTTP endpoint listening on localhost:%d", debugPort)
	}
	return ctx, nil
}

func serve(ctx context.Context) error {
	ctx, cancelCtx := context.WithCancel(ctx)
	defer cancelCtx()

	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	c, err := getComponents(ctx, true)
	if err != nil {
		return err
	}
	defer c.Close()

	go func() {
		select {
		case sig := <-sigs:
			log.L(ctx).Infof("Shutting down due to %s", sig.String())
			cancelCtx()
		case <-ctx.Done():
		}
	}()

	log.L(ctx).Infof("cw20wallet API server starting")
	return apiserver.NewAPIServer(c.allowances, c.results, c.ws).Serve(ctx)
}

// Execute is called by the main method of the package
func Execute() error {
	return rootCmd.Execute()
}
