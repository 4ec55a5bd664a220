package integer

import "bytes"

// Compare returns -1 if x < y, 0 if x == y and +1 if x > y.
//
// Both operands are normalized, so for equal signs the longer encoding has
// the larger magnitude. Encodings of equal sign and length order the same
// way as their bytes read as unsigned numbers.
func Compare(x, y *Int) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	}

	xs, ys := x.sig(), y.sig()

	if len(xs) != len(ys) {
		longer := 1
		if len(xs) < len(ys) {
			longer = -1
		}

		if x.neg {
			return -longer
		}

		return longer
	}

	return bytes.Compare(xs, ys)
}

// Cmp compares x and y. See [Compare].
func (x *Int) Cmp(y *Int) int {
	return Compare(x, y)
}

// Equal reports whether x == y.
func (x *Int) Equal(y *Int) bool {
	return Compare(x, y) == 0
}

// Less reports whether x < y.
func (x *Int) Less(y *Int) bool {
	return Compare(x, y) < 0
}

// LessOrEqual reports whether x <= y.
func (x *Int) LessOrEqual(y *Int) bool {
	return Compare(x, y) <= 0
}

// Greater reports whether x > y.
func (x *Int) Greater(y *Int) bool {
	return Compare(x, y) > 0
}

// GreaterOrEqual reports whether x >= y.
func (x *Int) GreaterOrEqual(y *Int) bool {
	return Compare(x, y) >= 0
}

// Pow returns base raised to exp. The operand is not modified.
func Pow(base *Int, exp uint) *Int {
	if base.Equal(New(2)) {
		return One().Lsh(exp)
	}

	factor := base.Clone()
	result := One()

	for exp > 0 {
		if exp%2 == 1 {
			result.Mul(factor)
			exp--
		} else {
			factor.Mul(factor)
			exp /= 2
		}
	}

	return result
}
