package integer

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// requireNormalized checks the representation invariants of x.
func requireNormalized(t *testing.T, x *Int, msgAndArgs ...interface{}) {
	t.Helper()

	s := x.sig()

	require.GreaterOrEqual(t, x.size, 1, msgAndArgs...)
	require.GreaterOrEqual(t, len(x.buf), x.size, msgAndArgs...)
	require.Equal(t, s[0]&signMask != 0, x.neg, msgAndArgs...)

	if len(s) > 1 {
		redundant := s[0] == x.filler() && s[1]&signMask == x.filler()&signMask
		require.False(t, redundant, "leading byte is redundant: %s", spew.Sdump(x))
	}
}

func TestNew(t *testing.T) {
	type TC struct {
		name  string
		value int64
		sig   []byte
		neg   bool
	}

	tcs := []TC{
		{name: "0", value: 0, sig: []byte{0b0000_0000}},
		{name: "+1", value: 1, sig: []byte{0b0000_0001}},
		{name: "-1", value: -1, sig: []byte{0b1111_1111}, neg: true},
		{name: "+127", value: 127, sig: []byte{0b0111_1111}},
		{name: "+128", value: 128, sig: []byte{0b0000_0000, 0b1000_0000}},
		{name: "-128", value: -128, sig: []byte{0b1000_0000}, neg: true},
		{name: "-129", value: -129, sig: []byte{0b1111_1111, 0b0111_1111}, neg: true},
		{name: "+32767", value: 32767, sig: []byte{0b0111_1111, 0b1111_1111}},
		{
			name:  "max",
			value: math.MaxInt64,
			sig:   []byte{0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		},
		{
			name:  "min",
			value: math.MinInt64,
			sig:   []byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			neg:   true,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			x := New(tc.value)

			require.Equal(t, tc.sig, x.sig())
			require.Equal(t, tc.neg, x.IsNeg())
			require.Equal(t, bytesInWord, x.Cap())
			requireNormalized(t, x)
		})
	}
}

func TestZeroValue(t *testing.T) {
	var x Int

	require.True(t, x.IsZero())
	require.Equal(t, 0, x.Sign())
	require.Equal(t, "0", x.String())
	require.Equal(t, 1, x.Len())
	require.Equal(t, 0, Compare(&x, Zero()))

	x.Add(New(5))
	require.Equal(t, "5", x.String())

	var y Int
	y.Sub(New(5))
	require.Equal(t, "-5", y.String())

	var z Int
	require.Equal(t, "0", z.Mul(New(7)).String())

	var w Int
	require.Equal(t, "0", w.Lsh(9).String())
}

func TestConstants(t *testing.T) {
	require.True(t, Zero().IsZero())
	require.Equal(t, "1", One().String())

	// Fresh values, mutating one does not leak into the next.
	one := One()
	one.Add(One())
	require.Equal(t, "2", one.String())
	require.Equal(t, "1", One().String())
}

func TestGrow(t *testing.T) {
	t.Run("positive", func(t *testing.T) {
		x := New(1)
		x.Lsh(63)

		require.Equal(t, "9223372036854775808", x.String())
		require.Equal(t, 9, x.Len())
		require.Equal(t, 16, x.Cap())
		requireNormalized(t, x)

		for _, b := range x.buf[:len(x.buf)-x.size] {
			require.Equal(t, byte(minByte), b, spew.Sdump(x))
		}
	})

	t.Run("negative", func(t *testing.T) {
		x := New(-1)
		x.Lsh(64)

		require.Equal(t, "-18446744073709551616", x.String())
		require.Equal(t, 9, x.Len())
		require.Equal(t, 16, x.Cap())
		requireNormalized(t, x)

		for _, b := range x.buf[:len(x.buf)-x.size] {
			require.Equal(t, byte(maxByte), b, spew.Sdump(x))
		}
	})

	t.Run("repeated", func(t *testing.T) {
		x := One()

		for i := 1; i <= 200; i++ {
			x.Lsh(1)
			requireNormalized(t, x, oops.New("unexpected"))
			require.GreaterOrEqual(t, x.Cap()*bitsInByte, i+2)
		}

		require.Equal(t, Pow(New(2), 200).String(), x.String())
	})
}

func TestNegFillsSlack(t *testing.T) {
	x := MustParse("129")
	x.Neg()

	require.Equal(t, "-129", x.String())
	require.Equal(t, "negative (_11111111_11111111)11111111_01111111_", x.Bits())

	x.Neg()

	require.Equal(t, "129", x.String())
	for _, b := range x.buf[:len(x.buf)-x.size] {
		require.Equal(t, byte(minByte), b, spew.Sdump(x))
	}
}

func TestPushFront(t *testing.T) {
	x := New(-1)

	x.pushFront(0b0000_0000)
	require.Equal(t, []byte{0b0000_0000, 0b1111_1111}, x.sig())

	// Capacity 1 doubles on overflow and the slack is sign filled.
	y := One()
	y.neg = true
	y.pushFront(0b1000_0000)
	require.Equal(t, 2, y.Cap())
	require.Equal(t, []byte{0b1000_0000, 0b0000_0001}, y.sig())
}

func TestNormalize(t *testing.T) {
	type TC struct {
		name string
		in   []byte
		out  []byte
		neg  bool
	}

	tcs := []TC{
		{name: "zero", in: []byte{0x00, 0x00, 0x00}, out: []byte{0x00}},
		{name: "minus one", in: []byte{0xff, 0xff, 0xff}, out: []byte{0xff}, neg: true},
		{name: "keep sign byte", in: []byte{0x00, 0x00, 0x80}, out: []byte{0x00, 0x80}},
		{name: "keep negative sign byte", in: []byte{0xff, 0xff, 0x7f}, out: []byte{0xff, 0x7f}, neg: true},
		{name: "trim negative", in: []byte{0xff, 0x80, 0x00}, out: []byte{0x80, 0x00}, neg: true},
		{name: "minimal", in: []byte{0x12, 0x34}, out: []byte{0x12, 0x34}},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			x := &Int{
				size: len(tc.in),
				buf:  append([]byte(nil), tc.in...),
			}
			x.normalize()

			require.Equal(t, tc.out, x.sig())
			require.Equal(t, tc.neg, x.neg)
			require.Equal(t, len(tc.in), x.Cap())
		})
	}
}

func TestClone(t *testing.T) {
	x := MustParse("-123456789012345678901234567890")
	y := x.Clone()

	require.True(t, x.Equal(y))
	require.Equal(t, x.Cap(), y.Cap())

	y.Inc()
	require.Equal(t, "-123456789012345678901234567890", x.String())
	require.Equal(t, "-123456789012345678901234567889", y.String())

	var z Int
	z.Set(x)
	x.Neg()
	require.Equal(t, "-123456789012345678901234567890", z.String())
}

func TestBits(t *testing.T) {
	type TC struct {
		name string
		x    *Int
		bits string
	}

	tcs := []TC{
		{
			name: "+1",
			x:    New(1),
			bits: "positive (" + strings.Repeat("_00000000", 7) + ")00000001_",
		},
		{
			name: "-2",
			x:    New(-2),
			bits: "negative (" + strings.Repeat("_11111111", 7) + ")11111110_",
		},
		{
			name: "+128",
			x:    New(128),
			bits: "positive (" + strings.Repeat("_00000000", 6) + ")00000000_10000000_",
		},
		{
			name: "zero value",
			x:    &Int{},
			bits: "positive ()00000000_",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.bits, tc.x.Bits())
		})
	}
}
