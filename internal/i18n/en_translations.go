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

package i18n

import "net/http"

//revive:disable
var (
	MsgConfigFailed              = ffm("FF10101", "Failed to read config: %s")
	MsgJSONDecodeFailed          = ffm("FF10103", "Failed to decode input JSON", http.StatusBadRequest)
	MsgAPIServerStartFailed      = ffm("FF10104", "Unable to start listener on %s: %s")
	MsgTLSConfigFailed           = ffm("FF10105", "Failed to initialize TLS configuration")
	MsgInvalidCAFile             = ffm("FF10106", "Invalid CA certificates file")
	MsgResponseMarshalError      = ffm("FF10107", "Failed to serialize response data", http.StatusBadRequest)
	MsgWebsocketClientError      = ffm("FF10108", "Error received from WebSocket client: %s")
	Msg404NotFound               = ffm("FF10109", "Not found", http.StatusNotFound)
	MsgInvalidContentType        = ffm("FF10110", "Invalid content type", http.StatusUnsupportedMediaType)
	MsgRequestTimeout            = ffm("FF10111", "The request with id '%s' timed out after %.2fms", http.StatusRequestTimeout)
	MsgContextCanceled           = ffm("FF10112", "Context cancelled")
	MsgInvalidOutputOption       = ffm("FF10113", "Invalid output option '%s'")
	MsgMissingPluginConfig       = ffm("FF10114", "Missing configuration '%s' for %s")
	MsgInvalidUUID               = ffm("FF10115", "Invalid UUID supplied", http.StatusBadRequest)
	MsgTimeParseFail             = ffm("FF10116", "Cannot parse time as RFC3339, Unix, or UnixNano: '%s'", http.StatusBadRequest)
	MsgWebsocketTopicRequired    = ffm("FF10117", "A topic is required to listen on a websocket")
	MsgMissingAccountAddress     = ffm("FF10118", "No account address configured for the session")
	MsgInvalidAddress            = ffm("FF10119", "Invalid %s address '%s': %s", http.StatusBadRequest)
	MsgInvalidAddressPrefix      = ffm("FF10120", "Invalid %s address '%s': expected prefix '%s' but found '%s'", http.StatusBadRequest)
	MsgInvalidAddressLength      = ffm("FF10121", "Invalid %s address '%s': unexpected payload length %d", http.StatusBadRequest)
	MsgNotFound                  = ffm("FF10122", "%s not found", http.StatusNotFound)
	MsgResultNotFound            = ffm("FF10123", "Operation result '%s' not found", http.StatusNotFound)
	MsgDebugServerFailed         = ffm("FF10124", "Debug server failed: %s")
	MsgInitializationNilDepError = ffm("FF10125", "Initialization error due to a nil dependency")
	MsgWSSendTimedOut            = ffm("FF10126", "Websocket send timed out")
	MsgWSClosing                 = ffm("FF10127", "Websocket closing")
	MsgWSConnectFailed           = ffm("FF10128", "Websocket connect failed")
	MsgRemoteRequestFailed       = ffm("FF10129", "Request to the cw20wallet server failed: %s")

	MsgInvalidAtomics           = ffm("FF10200", "Invalid atomic amount '%s': only non-negative integers are accepted", http.StatusBadRequest)
	MsgAtomicsTooLarge          = ffm("FF10201", "Atomic amount '%s' exceeds the maximum supported size", http.StatusBadRequest)
	MsgTooManyFractionalDigits  = ffm("FF10202", "Fractional digits %d exceeds the maximum of %d", http.StatusBadRequest)
	MsgInvalidUserAmount        = ffm("FF10203", "Invalid amount '%s': %s", http.StatusBadRequest)
	MsgFractionalDigitsMismatch = ffm("FF10204", "Fractional digits do not match: %d != %d")
	MsgNegativeDecimal          = ffm("FF10205", "Decimal must not be negative")
	MsgUserAmountTooPrecise     = ffm("FF10206", "Amount '%s' has more than %d fractional digits", http.StatusBadRequest)
	MsgUninitializedDecimal     = ffm("FF10207", "Decimal has no value")

	MsgCW20QueryErr           = ffm("FF10300", "Error from chain query endpoint: %s")
	MsgCW20ConnectorErr       = ffm("FF10301", "Error from signing connector: %s")
	MsgCW20QueryResultInvalid = ffm("FF10302", "Invalid response to '%s' query: %s")
	MsgCW20TxNotFound         = ffm("FF10303", "Transaction '%s' not found", http.StatusNotFound)
	MsgCW20TxFailed           = ffm("FF10304", "Transaction '%s' failed with code %d: %s")
	MsgCW20ConnectorNoTxHash  = ffm("FF10305", "Signing connector did not return a transaction hash")
	MsgUnknownCW20Plugin      = ffm("FF10306", "Unknown CW20 client plugin '%s'")

	MsgAllowanceInputInvalid      = ffm("FF10400", "Invalid allowance input: %s", http.StatusBadRequest)
	MsgAllowanceSchemaFailed      = ffm("FF10401", "Failed to validate allowance input against schema")
	MsgAllowanceConfirmTimeout    = ffm("FF10402", "Timed out waiting for transaction '%s' to be confirmed")
	MsgAllowanceSetSucceeded      = ffm("FF10403", "%s %s allowance for %s successfully added")
	MsgAllowanceSetFailed         = ffm("FF10404", "Could not set allowance:")
	MsgAllowanceUnchanged         = ffm("FF10405", "%s %s allowance for %s is already set")
	MsgAllowanceDisplayAmountMode = ffm("FF10406", "Specify exactly one of --amount or --display-amount", http.StatusBadRequest)
	MsgAllowanceResultFailed      = ffm("FF10407", "Allowance change failed: %s")

	MsgAPIGetTokenInfoDesc   = ffm("FF10500", "Gets the CW20 token info of a contract")
	MsgAPIGetAllowanceDesc   = ffm("FF10501", "Gets the allowance granted by the owner (default the session account) to a spender")
	MsgAPIPostAllowanceDesc  = ffm("FF10502", "Sets the allowance for a spender, by increasing or decreasing the current allowance")
	MsgAPIGetResultsDesc     = ffm("FF10503", "Lists the recent operation results")
	MsgAPIGetResultByIDDesc  = ffm("FF10504", "Gets an operation result by ID")
	MsgAPIGetBalanceDesc     = ffm("FF10505", "Gets the token balance of an address (default the session account)")
	MsgAPIContractParamDesc  = ffm("FF10506", "The bech32 address of the CW20 contract")
	MsgAPISpenderParamDesc   = ffm("FF10507", "The bech32 address of the spender")
	MsgAPIOwnerParamDesc     = ffm("FF10508", "The bech32 address of the owner")
	MsgAPIResultIDParamDesc  = ffm("FF10509", "The ID of the operation result")
	MsgAPIAddressParamDesc   = ffm("FF10510", "The bech32 address to query")
	MsgAPISuccessResponse    = ffm("FF10511", "Success")
	MsgAPIRequestTimeoutDesc = ffm("FF10512", "Server-side request timeout (seconds, or set a custom suffix like 10s)")
)
