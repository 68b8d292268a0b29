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
	"github.com/cosmicdapp/cw20wallet/internal/i18n"
	"github.com/cosmicdapp/cw20wallet/pkg/cwtypes"
	"github.com/spf13/cobra"
)

var allowanceCommand = &cobra.Command{
	Use:   "allowance",
	Short: "Query and set the allowances granted to spenders",
}

var allowanceOwner string

var allowanceGetCommand = &cobra.Command{
	Use:   "get <contract> <spender>",
	Short: "Show the allowance granted by an owner, by default the configured account, to a spender",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := setup()
		if err != nil {
			return err
		}
		c, err := getComponents(ctx, false)
		if err != nil {
			return err
		}
		info, err := c.allowances.GetAllowance(ctx, args[0], allowanceOwner, args[1])
		if err != nil {
			return err
		}
		return printOutput(ctx, cmd.OutOrStdout(), info)
	},
}

var setAmount, setDisplayAmount string

var allowanceSetCommand = &cobra.Command{
	Use:   "set <contract> <spender>",
	Short: "Increase or decrease the allowance of a spender, to reach a target amount",
	Long: `Reads the current allowance of the spender, and submits a single increase or decrease
so that it becomes the target. The target is given in atomic units with --amount,
or in the display units of the token with --display-amount.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := setup()
		if err != nil {
			return err
		}
		if (setAmount == "") == (setDisplayAmount == "") {
			return i18n.NewError(ctx, i18n.MsgAllowanceDisplayAmountMode)
		}
		c, err := getComponents(ctx, false)
		if err != nil {
			return err
		}
		amount := setAmount
		if setDisplayAmount != "" {
			if amount, err = c.allowances.AtomicsFromDisplayAmount(ctx, args[0], setDisplayAmount); err != nil {
				return err
			}
		}
		result, err := c.allowances.SetAllowance(ctx, args[0], &cwtypes.AllowanceInput{
			Address: args[1],
			Amount:  amount,
		})
		if err != nil {
			return err
		}
		if err := printOutput(ctx, cmd.OutOrStdout(), result); err != nil {
			return err
		}
		if !result.Success {
			return i18n.NewError(ctx, i18n.MsgAllowanceResultFailed, result.Error)
		}
		return nil
	},
}

func init() {
	allowanceGetCommand.Flags().StringVar(&allowanceOwner, "owner", "", "owner of the allowance")
	allowanceSetCommand.Flags().StringVar(&setAmount, "amount", "", "target allowance in atomic units")
	allowanceSetCommand.Flags().StringVar(&setDisplayAmount, "display-amount", "", "target allowance in display units, such as 2.5")
	allowanceCommand.AddCommand(allowanceGetCommand)
	allowanceCommand.AddCommand(allowanceSetCommand)
	addOutputFlag(allowanceCommand)
	rootCmd.AddCommand(allowanceCommand)
}
