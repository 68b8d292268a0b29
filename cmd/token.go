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
	"github.com/cosmicdapp/cw20wallet/internal/allowance"
	"github.com/spf13/cobra"
)

var tokenCommand = &cobra.Command{
	Use:   "token",
	Short: "Query CW20 token contracts",
}

var tokenInfoCommand = &cobra.Command{
	Use:   "info <contract>",
	Short: "Show the name, symbol, decimals and total supply of a token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := setup()
		if err != nil {
			return err
		}
		if err := allowance.ValidateAddress(ctx, "contract", args[0]); err != nil {
			return err
		}
		c, err := getComponents(ctx, false)
		if err != nil {
			return err
		}
		info, err := c.allowances.TokenInfo(ctx, args[0])
		if err != nil {
			return err
		}
		return printOutput(ctx, cmd.OutOrStdout(), info)
	},
}

var balanceAddress string

var tokenBalanceCommand = &cobra.Command{
	Use:   "balance <contract>",
	Short: "Show the token balance of an address, by default the configured account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := setup()
		if err != nil {
			return err
		}
		c, err := getComponents(ctx, false)
		if err != nil {
			return err
		}
		balance, err := c.allowances.GetBalance(ctx, args[0], balanceAddress)
		if err != nil {
			return err
		}
		return printOutput(ctx, cmd.OutOrStdout(), balance)
	},
}

func init() {
	tokenBalanceCommand.Flags().StringVarP(&balanceAddress, "address", "a", "", "address to query")
	tokenCommand.AddCommand(tokenInfoCommand)
	tokenCommand.AddCommand(tokenBalanceCommand)
	addOutputFlag(tokenCommand)
	rootCmd.AddCommand(tokenCommand)
}
