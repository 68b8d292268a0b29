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

// Package decimal provides a fixed-point token amount: an integer count of atomic
// units plus the number of fractional digits the token is displayed with.
//
// Amounts can only be compared or combined with amounts of the same fractional
// digits, and can never be negative.
package decimal

import (
	"context"
	"math/big"
	"regexp"
	"strings"

	sdkmath "cosmossdk.io/math"
	"github.com/cosmicdapp/cw20wallet/internal/i18n"
	"github.com/shopspring/decimal"
)

// MaxFractionalDigits is the largest number of fractional digits supported
const MaxFractionalDigits = 100

var atomicsRegex = regexp.MustCompile(`^[0-9]+$`)

// Decimal is an immutable fixed-point amount. Use one of the constructors, as
// the zero value is not usable.
type Decimal struct {
	atomics          sdkmath.Int
	fractionalDigits uint
}

// FromAtomics parses an atomic integer string, such as a CW20 Uint128, with the given number of fractional digits
func FromAtomics(atomics string, fractionalDigits uint) (Decimal, error) {
	ctx := context.Background()
	if err := verifyFractionalDigits(ctx, fractionalDigits); err != nil {
		return Decimal{}, err
	}
	if !atomicsRegex.MatchString(atomics) {
		return Decimal{}, i18n.NewError(ctx, i18n.MsgInvalidAtomics, atomics)
	}
	i, _ := new(big.Int).SetString(atomics, 10)
	return fromBigInt(ctx, atomics, i, fractionalDigits)
}

// FromUserInput parses a human entered amount like "2.5" into atomics, with the given number of fractional digits.
// More fractional digits than the token supports is an error, rather than being rounded.
func FromUserInput(input string, fractionalDigits uint) (Decimal, error) {
	ctx := context.Background()
	if err := verifyFractionalDigits(ctx, fractionalDigits); err != nil {
		return Decimal{}, err
	}
	trimmed := strings.TrimSpace(input)
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Decimal{}, i18n.NewError(ctx, i18n.MsgInvalidUserAmount, input, err)
	}
	if d.IsNegative() {
		return Decimal{}, i18n.NewError(ctx, i18n.MsgInvalidUserAmount, input, i18n.Expand(ctx, i18n.MsgNegativeDecimal))
	}
	shifted := d.Shift(int32(fractionalDigits))
	if !shifted.IsInteger() {
		return Decimal{}, i18n.NewError(ctx, i18n.MsgUserAmountTooPrecise, input, fractionalDigits)
	}
	return fromBigInt(ctx, input, shifted.BigInt(), fractionalDigits)
}

// Zero returns a zero amount with the given fractional digits
func Zero(fractionalDigits uint) Decimal {
	return Decimal{atomics: sdkmath.ZeroInt(), fractionalDigits: fractionalDigits}
}

func fromBigInt(ctx context.Context, input string, i *big.Int, fractionalDigits uint) (Decimal, error) {
	if i.BitLen() > sdkmath.MaxBitLen {
		return Decimal{}, i18n.NewError(ctx, i18n.MsgAtomicsTooLarge, input)
	}
	return Decimal{
		atomics:          sdkmath.NewIntFromBigInt(i),
		fractionalDigits: fractionalDigits,
	}, nil
}

func verifyFractionalDigits(ctx context.Context, fractionalDigits uint) error {
	if fractionalDigits > MaxFractionalDigits {
		return i18n.NewError(ctx, i18n.MsgTooManyFractionalDigits, fractionalDigits, MaxFractionalDigits)
	}
	return nil
}

func (d Decimal) verifySameDigits(other Decimal) error {
	if d.atomics.IsNil() || other.atomics.IsNil() {
		return i18n.NewError(context.Background(), i18n.MsgUninitializedDecimal)
	}
	if d.fractionalDigits != other.fractionalDigits {
		return i18n.NewError(context.Background(), i18n.MsgFractionalDigitsMismatch, d.fractionalDigits, other.fractionalDigits)
	}
	return nil
}

// Atomics returns the canonical atomic integer string, with no leading zeros
func (d Decimal) Atomics() string {
	return d.atomics.String()
}

// Int returns the atomic count
func (d Decimal) Int() sdkmath.Int {
	return d.atomics
}

// FractionalDigits returns the number of fractional digits of the amount
func (d Decimal) FractionalDigits() uint {
	return d.fractionalDigits
}

// String renders the human readable amount, with trailing zeros removed. For example
// atomics "1500000" with 6 digits renders as "1.5".
func (d Decimal) String() string {
	return decimal.NewFromBigInt(d.atomics.BigInt(), -int32(d.fractionalDigits)).String()
}

// IsZero is true for a zero amount
func (d Decimal) IsZero() bool {
	return d.atomics.IsZero()
}

// Cmp returns -1, 0 or +1 as d is less than, equal to or greater than other
func (d Decimal) Cmp(other Decimal) (int, error) {
	if err := d.verifySameDigits(other); err != nil {
		return 0, err
	}
	return d.atomics.BigInt().Cmp(other.atomics.BigInt()), nil
}

// IsGreaterThan compares two amounts of the same fractional digits
func (d Decimal) IsGreaterThan(other Decimal) (bool, error) {
	c, err := d.Cmp(other)
	return c > 0, err
}

// Equals compares two amounts of the same fractional digits
func (d Decimal) Equals(other Decimal) (bool, error) {
	c, err := d.Cmp(other)
	return c == 0, err
}

// Plus adds two amounts of the same fractional digits
func (d Decimal) Plus(other Decimal) (Decimal, error) {
	if err := d.verifySameDigits(other); err != nil {
		return Decimal{}, err
	}
	sum := new(big.Int).Add(d.atomics.BigInt(), other.atomics.BigInt())
	return fromBigInt(context.Background(), sum.String(), sum, d.fractionalDigits)
}

// Minus subtracts other from d. The result must not be negative.
func (d Decimal) Minus(other Decimal) (Decimal, error) {
	if err := d.verifySameDigits(other); err != nil {
		return Decimal{}, err
	}
	diff := new(big.Int).Sub(d.atomics.BigInt(), other.atomics.BigInt())
	if diff.Sign() < 0 {
		return Decimal{}, i18n.NewError(context.Background(), i18n.MsgNegativeDecimal)
	}
	return fromBigInt(context.Background(), diff.String(), diff, d.fractionalDigits)
}
