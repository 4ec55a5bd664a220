package integer

import (
	"fmt"

	"fortio.org/safecast"
)

// Rsh shifts x right by n bits in place and returns x. The shift is
// arithmetic: vacated high bits take the sign, so the result is x divided by
// 2^n rounded toward negative infinity.
func (x *Int) Rsh(n uint) *Int {
	x.ensure()

	s := x.sig()
	f := x.filler()

	if n/bitsInByte >= uint(len(s)) {
		for i := range s {
			s[i] = f
		}
		x.normalize()

		return x
	}

	full := int(n / bitsInByte)
	bits := n % bitsInByte

	for i := len(s) - 1; i >= 0; i-- {
		if i-full < 0 {
			s[i] = f
		} else {
			s[i] = s[i-full]
		}
	}

	if bits != 0 {
		carry := f
		for i := range s {
			next := s[i]
			s[i] = s[i]>>bits | carry<<(bitsInByte-bits)
			carry = next
		}
	}

	x.normalize()

	return x
}

// Lsh shifts x left by n bits in place and returns x. The result is x
// multiplied by 2^n for either sign; x grows as needed. Lsh panics with
// ErrOverflow if x is non-zero and n does not fit in an int.
func (x *Int) Lsh(n uint) *Int {
	x.ensure()

	if x.IsZero() {
		return x
	}

	shift, err := safecast.Conv[int](n)
	if err != nil {
		panic(fmt.Errorf("shift by %d bits: %w", n, ErrOverflow))
	}

	if room := x.headroom(); shift > room {
		x.extend(x.size + (shift-room-1)/bitsInByte + 1)
	}

	s := x.sig()

	full := int(n / bitsInByte)
	bits := n % bitsInByte

	for i := range s {
		if i+full >= len(s) {
			s[i] = minByte
		} else {
			s[i] = s[i+full]
		}
	}

	if bits != 0 {
		var carry byte
		for i := len(s) - 1; i >= 0; i-- {
			next := s[i] >> (bitsInByte - bits)
			s[i] = s[i]<<bits | carry
			carry = next
		}
	}

	x.normalize()

	return x
}

// ShiftLeft returns x << n. The operand is not modified.
func ShiftLeft(x *Int, n uint) *Int {
	return x.Clone().Lsh(n)
}

// ShiftRight returns x >> n. The operand is not modified.
func ShiftRight(x *Int, n uint) *Int {
	return x.Clone().Rsh(n)
}
