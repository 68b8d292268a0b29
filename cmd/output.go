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
	"io"

	"github.com/cosmicdapp/cw20wallet/internal/i18n"
	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
)

var outputFormat = "yaml"

func printOutput(ctx context.Context, w io.Writer, v interface{}) error {
	var (
		b   []byte
		err error
	)
	switch outputFormat {
	case "json":
		b, err = json.MarshalIndent(v, "", "  ")
	case "yaml":
		b, err = yaml.Marshal(v)
	default:
		err = i18n.NewError(ctx, i18n.MsgInvalidOutputOption, outputFormat)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "yaml", "output format (\"yaml\"|\"json\")")
}
