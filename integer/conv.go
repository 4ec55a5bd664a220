package integer

import (
	"fmt"
	"strings"
)

// Parse converts a decimal string into an Int.
//
//	sign    ::= '-'
//	digits  ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	integer ::= [sign] digits
//
// Leading zeros are accepted. A lone "-" reads as negative zero, which is
// zero.
func Parse(s string) (*Int, error) {
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}

	digits := []byte(s)

	negative := false
	if digits[0] == '-' {
		digits[0] = '0'
		negative = true
	}

	for pos, c := range digits {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%q at position %d: %w", s[pos], pos, ErrInvalidCharacter)
		}
	}

	// Bits come out least significant first, so the slice is used as a
	// stack and popped from the end.
	var bits []byte
	for {
		bits = append(bits, (digits[len(digits)-1]-'0')&1)
		if !halve(digits) {
			break
		}
	}

	size := (len(bits)-1)/bitsInByte + 1
	buf := make([]byte, size)

	width := (len(bits)-1)%bitsInByte + 1
	for i := range buf {
		var b byte
		for k := 0; k < width; k++ {
			b = b<<1 | bits[len(bits)-1]
			bits = bits[:len(bits)-1]
		}
		buf[i] = b
		width = bitsInByte
	}

	// The packed bits are a magnitude. Keep the top bit clear so it reads
	// as a non-negative two's complement value.
	if buf[0]&signMask != 0 {
		buf = append([]byte{minByte}, buf...)
	}

	x := &Int{
		size: len(buf),
		buf:  buf,
	}
	x.normalize()

	if negative {
		x.Neg()
	}

	return x, nil
}

// halve divides the decimal digits by two in place and reports whether the
// quotient is non-zero.
func halve(digits []byte) (nonzero bool) {
	var carry byte

	for i, c := range digits {
		d := c - '0'
		digits[i] = '0' + d/2 + carry
		if digits[i] != '0' {
			nonzero = true
		}
		carry = (d & 1) * 5
	}

	return nonzero
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
func MustParse(s string) *Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// String implements [fmt.Stringer]. The result is the canonical decimal
// form: no leading zeros and a '-' only for negative non-zero values.
func (x *Int) String() string {
	m := x.Clone()
	if m.neg {
		m.Neg()
	}

	s := m.sig()

	var out []byte
	for {
		zero := true
		remainder := 0

		for i := range s {
			remainder = remainder<<bitsInByte + int(s[i])
			s[i] = byte(remainder / 10)
			if s[i] != minByte {
				zero = false
			}
			remainder %= 10
		}

		out = append(out, byte('0'+remainder))

		if zero {
			break
		}
	}

	if x.neg {
		out = append(out, '-')
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out)
}

// Format implements [fmt.Formatter]. The verbs %s, %v and %d print the
// decimal form, %q prints it quoted. Width and the '-' flag are honored.
func (x *Int) Format(state fmt.State, verb rune) {
	var text string

	switch verb {
	case 's', 'v', 'd':
		text = x.String()
	case 'q':
		text = `"` + x.String() + `"`
	default:
		fmt.Fprintf(state, "%%!%c(*integer.Int=%s)", verb, x.String())
		return
	}

	if width, ok := state.Width(); ok && width > len(text) {
		pad := strings.Repeat(" ", width-len(text))
		if state.Flag('-') {
			text += pad
		} else {
			text = pad + text
		}
	}

	fmt.Fprint(state, text)
}

// Int64 returns x as an int64. If x does not fit, it returns ErrOverflow.
func (x *Int) Int64() (int64, error) {
	s := x.sig()
	if len(s) > bytesInWord {
		return 0, fmt.Errorf("%d bytes do not fit in int64: %w", len(s), ErrOverflow)
	}

	var u uint64
	if x.neg {
		u = ^u
	}

	for _, b := range s {
		u = u<<bitsInByte | uint64(b)
	}

	return int64(u), nil
}

// Bits returns a binary dump of x for debugging. Slack bytes are shown in
// parentheses ahead of the significant bytes.
//
//	positive (_00000000)00000001_
func (x *Int) Bits() string {
	var sb strings.Builder

	if x.neg {
		sb.WriteString("negative ")
	} else {
		sb.WriteString("positive ")
	}

	sb.WriteString("(")
	if x.size != 0 {
		for _, b := range x.buf[:len(x.buf)-x.size] {
			fmt.Fprintf(&sb, "_%08b", b)
		}
	}
	sb.WriteString(")")

	for _, b := range x.sig() {
		fmt.Fprintf(&sb, "%08b_", b)
	}

	return sb.String()
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// Also see [Parse].
func (x *Int) UnmarshalText(text []byte) error {
	y, err := Parse(string(text))
	if err != nil {
		return err
	}

	*x = *y

	return nil
}

// MarshalText implements [encoding.TextMarshaler].
// Also see [Int.String].
func (x *Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}
