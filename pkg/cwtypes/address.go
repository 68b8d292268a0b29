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

package cwtypes

import (
	"context"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/cosmicdapp/cw20wallet/internal/i18n"
)

// ValidateAddress checks a bech32 account or contract address has the expected human readable
// prefix, and a 20 byte (account) or 32 byte (contract) payload.
// The kind is only used in error messages.
func ValidateAddress(ctx context.Context, kind, address, hrp string) error {
	if address != strings.ToLower(address) {
		// Mixed case is rejected by the decoder, but upper case is valid bech32 that the chain will not accept
		return i18n.NewError(ctx, i18n.MsgInvalidAddress, kind, address, "must be lower case")
	}
	foundHRP, data, err := bech32.DecodeNoLimit(address)
	if err != nil {
		return i18n.NewError(ctx, i18n.MsgInvalidAddress, kind, address, err)
	}
	if foundHRP != hrp {
		return i18n.NewError(ctx, i18n.MsgInvalidAddressPrefix, kind, address, hrp, foundHRP)
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return i18n.NewError(ctx, i18n.MsgInvalidAddress, kind, address, err)
	}
	if len(payload) != 20 && len(payload) != 32 {
		return i18n.NewError(ctx, i18n.MsgInvalidAddressLength, kind, address, len(payload))
	}
	return nil
}
