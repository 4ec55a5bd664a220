package integer

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	type TC struct {
		input string
		want  string
	}

	tcs := []TC{
		{"0", "0"},
		{"-0", "0"},
		{"-", "0"},
		{"000", "0"},
		{"1", "1"},
		{"-1", "-1"},
		{"007", "7"},
		{"-007", "-7"},
		{"127", "127"},
		{"128", "128"},
		{"-128", "-128"},
		{"-129", "-129"},
		{"255", "255"},
		{"256", "256"},
		{"-256", "-256"},
		{"65535", "65535"},
		{"9223372036854775807", "9223372036854775807"},
		{"-9223372036854775808", "-9223372036854775808"},
		{"18446744073709551616", "18446744073709551616"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
		{"-987654321098765432109876543210", "-987654321098765432109876543210"},
		{
			"822526259147102579504761143661535547764137892295514168093701699676416207799736601",
			"822526259147102579504761143661535547764137892295514168093701699676416207799736601",
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			x, err := Parse(tc.input)
			require.NoError(t, err)
			requireNormalized(t, x)

			require.Equal(t, tc.want, x.String())

			y := MustParse(tc.want)
			require.True(t, x.Equal(y))
		})
	}
}

func TestParseMatchesNew(t *testing.T) {
	for v := int64(-1100); v <= 1100; v++ {
		x, err := Parse(strconv.FormatInt(v, 10))
		require.NoError(t, err)

		require.Equal(t, New(v).sig(), x.sig(), "value %d", v)
		require.Equal(t, v < 0, x.IsNeg(), "value %d", v)
	}
}

func TestParseErrors(t *testing.T) {
	type TC struct {
		input string
		err   error
	}

	tcs := []TC{
		{"", ErrEmptyInput},
		{"3j", ErrInvalidCharacter},
		{"+3", ErrInvalidCharacter},
		{"--3", ErrInvalidCharacter},
		{"3-", ErrInvalidCharacter},
		{" 3", ErrInvalidCharacter},
		{"3 ", ErrInvalidCharacter},
		{"1.5", ErrInvalidCharacter},
		{"0x10", ErrInvalidCharacter},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.input), func(t *testing.T) {
			x, err := Parse(tc.input)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, x)
		})
	}

	require.Panics(t, func() {
		MustParse("3j")
	})
}

func TestInt64(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 255, -256, 1 << 40, math.MaxInt64, math.MinInt64} {
		got, err := New(v).Int64()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	_, err := MustParse("9223372036854775808").Int64()
	require.ErrorIs(t, err, ErrOverflow)

	_, err = MustParse("-9223372036854775809").Int64()
	require.ErrorIs(t, err, ErrOverflow)
}

func TestFormat(t *testing.T) {
	x := New(-42)

	require.Equal(t, "-42|-42|-42|\"-42\"", fmt.Sprintf("%d|%s|%v|%q", x, x, x, x))
	require.Equal(t, "[   -42][-42   ]", fmt.Sprintf("[%6d][%-6d]", x, x))
	require.Equal(t, "%!x(*integer.Int=-42)", fmt.Sprintf("%x", x))
}

func TestText(t *testing.T) {
	type doc struct {
		Value *Int `json:"value"`
	}

	in := doc{Value: MustParse("-123456789012345678901234567890")}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"value":"-123456789012345678901234567890"}`, string(data))

	var out doc
	require.NoError(t, json.Unmarshal(data, &out))
	require.True(t, in.Value.Equal(out.Value))

	require.Error(t, json.Unmarshal([]byte(`{"value":"12a"}`), &out))
}
