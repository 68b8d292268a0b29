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

package decimal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustAtomics(t *testing.T, atomics string, digits uint) Decimal {
	d, err := FromAtomics(atomics, digits)
	assert.NoError(t, err)
	return d
}

func TestFromAtomicsRender(t *testing.T) {
	cases := []struct {
		atomics  string
		digits   uint
		rendered string
	}{
		{"1000000", 6, "1"},
		{"2500000", 6, "2.5"},
		{"1500000", 6, "1.5"},
		{"0", 6, "0"},
		{"5", 6, "0.000005"},
		{"123456789", 0, "123456789"},
		{"123456789", 3, "123456.789"},
		{"340282366920938463463374607431768211455", 18, "340282366920938463463.374607431768211455"},
	}
	for _, c := range cases {
		d := mustAtomics(t, c.atomics, c.digits)
		assert.Equal(t, c.rendered, d.String(), c.atomics)
		assert.Equal(t, c.atomics, d.Atomics())
		assert.Equal(t, c.digits, d.FractionalDigits())
	}
}

func TestFromAtomicsCanonicalizesLeadingZeros(t *testing.T) {
	d := mustAtomics(t, "010", 0)
	assert.Equal(t, "10", d.Atomics())
}

func TestFromAtomicsInvalid(t *testing.T) {
	for _, bad := range []string{"", "-1", "1.5", "0x10", "1e3", " 1", "abc", "1_000"} {
		_, err := FromAtomics(bad, 6)
		assert.Regexp(t, "FF10200", err, bad)
	}
}

func TestFromAtomicsTooLarge(t *testing.T) {
	_, err := FromAtomics("1"+strings.Repeat("0", 80), 6)
	assert.Regexp(t, "FF10201", err)
}

func TestFromAtomicsTooManyDigits(t *testing.T) {
	_, err := FromAtomics("1", 101)
	assert.Regexp(t, "FF10202", err)
	_, err = FromUserInput("1", 101)
	assert.Regexp(t, "FF10202", err)
}

func TestFromUserInput(t *testing.T) {
	cases := []struct {
		input   string
		digits  uint
		atomics string
	}{
		{"2.5", 6, "2500000"},
		{"1", 6, "1000000"},
		{"0", 6, "0"},
		{"0.000001", 6, "1"},
		{" 3.25 ", 2, "325"},
		{"1e3", 0, "1000"},
		{"2.50", 1, "25"},
	}
	for _, c := range cases {
		d, err := FromUserInput(c.input, c.digits)
		assert.NoError(t, err, c.input)
		assert.Equal(t, c.atomics, d.Atomics(), c.input)
	}
}

func TestFromUserInputErrors(t *testing.T) {
	_, err := FromUserInput("lots", 6)
	assert.Regexp(t, "FF10203", err)

	_, err = FromUserInput("-1", 6)
	assert.Regexp(t, "FF10203.*must not be negative", err)

	_, err = FromUserInput("0.0000001", 6)
	assert.Regexp(t, "FF10206", err)
}

func TestRoundTrip(t *testing.T) {
	for _, atomics := range []string{"0", "1", "999999", "1000000", "2500000", "18446744073709551616"} {
		d := mustAtomics(t, atomics, 6)
		again, err := FromUserInput(d.String(), 6)
		assert.NoError(t, err)
		equal, err := again.Equals(d)
		assert.NoError(t, err)
		assert.True(t, equal, atomics)
		assert.Equal(t, atomics, again.Atomics())
	}
}

func TestCompare(t *testing.T) {
	one := mustAtomics(t, "1000000", 6)
	twoHalf := mustAtomics(t, "2500000", 6)

	gt, err := twoHalf.IsGreaterThan(one)
	assert.NoError(t, err)
	assert.True(t, gt)

	gt, err = one.IsGreaterThan(twoHalf)
	assert.NoError(t, err)
	assert.False(t, gt)

	gt, err = one.IsGreaterThan(one)
	assert.NoError(t, err)
	assert.False(t, gt)

	c, err := one.Cmp(twoHalf)
	assert.NoError(t, err)
	assert.Equal(t, -1, c)
}

func TestCompareDigitsMismatch(t *testing.T) {
	a := mustAtomics(t, "1", 6)
	b := mustAtomics(t, "1", 18)
	_, err := a.IsGreaterThan(b)
	assert.Regexp(t, "FF10204", err)
	_, err = a.Equals(b)
	assert.Regexp(t, "FF10204", err)
	_, err = a.Minus(b)
	assert.Regexp(t, "FF10204", err)
	_, err = a.Plus(b)
	assert.Regexp(t, "FF10204", err)
}

func TestMinusPlus(t *testing.T) {
	one := mustAtomics(t, "1000000", 6)
	twoHalf := mustAtomics(t, "2500000", 6)

	diff, err := twoHalf.Minus(one)
	assert.NoError(t, err)
	assert.Equal(t, "1500000", diff.Atomics())
	assert.Equal(t, "1.5", diff.String())

	zero, err := one.Minus(one)
	assert.NoError(t, err)
	assert.True(t, zero.IsZero())
	assert.Equal(t, "0", zero.Atomics())

	_, err = one.Minus(twoHalf)
	assert.Regexp(t, "FF10205", err)

	sum, err := one.Plus(diff)
	assert.NoError(t, err)
	equal, err := sum.Equals(twoHalf)
	assert.NoError(t, err)
	assert.True(t, equal)
}

func TestPlusOverflow(t *testing.T) {
	max := mustAtomics(t, "115792089237316195423570985008687907853269984665640564039457584007913129639935", 0)
	_, err := max.Plus(mustAtomics(t, "1", 0))
	assert.Regexp(t, "FF10201", err)
}

func TestZero(t *testing.T) {
	z := Zero(6)
	assert.True(t, z.IsZero())
	assert.Equal(t, "0", z.String())
	assert.Equal(t, uint(6), z.FractionalDigits())
	assert.True(t, z.Int().IsZero())
}

func TestUninitializedDecimal(t *testing.T) {
	one, err := FromAtomics("1", 6)
	assert.NoError(t, err)
	_, err = one.Cmp(Decimal{})
	assert.Regexp(t, "FF10207", err)
	_, err = Decimal{}.IsGreaterThan(one)
	assert.Regexp(t, "FF10207", err)
	_, err = Decimal{}.Minus(Decimal{})
	assert.Regexp(t, "FF10207", err)
	_, err = one.Plus(Decimal{})
	assert.Regexp(t, "FF10207", err)
}
