package integer

// Neg negates x in place and returns x.
func (x *Int) Neg() *Int {
	x.ensure()

	if x.IsZero() {
		return x
	}

	// The most negative value of a width needs one more byte once negated.
	x.extend(x.size + 1)

	s := x.sig()
	carry := 1
	for i := len(s) - 1; i >= 0; i-- {
		v := int(^s[i]) + carry
		s[i] = byte(v)
		carry = v >> bitsInByte
	}

	x.normalize()
	x.fillSlack()

	return x
}

// Abs sets x to its absolute value and returns x.
func (x *Int) Abs() *Int {
	if x.neg {
		return x.Neg()
	}

	x.ensure()

	return x
}

// Add sets x to x+y and returns x.
func (x *Int) Add(y *Int) *Int {
	x.ensure()

	if x == y {
		y = y.Clone()
	}

	xf, yf := x.filler(), y.filler()
	ys := y.sig()

	x.extend(len(ys))
	s := x.sig()

	carry := 0
	for i := 1; i <= len(s); i++ {
		v := int(s[len(s)-i]) + carry
		if i <= len(ys) {
			v += int(ys[len(ys)-i])
		} else {
			v += int(yf)
		}

		s[len(s)-i] = byte(v)
		carry = v >> bitsInByte
	}

	// One more byte of the infinite sign extension of both operands always
	// holds the true sign of the sum. Normalization drops it when redundant.
	x.pushFront(byte(int(xf) + int(yf) + carry))
	x.normalize()

	return x
}

// Sub sets x to x-y and returns x.
func (x *Int) Sub(y *Int) *Int {
	return x.Add(y.Clone().Neg())
}

// Inc adds one to x and returns x.
func (x *Int) Inc() *Int {
	return x.Add(One())
}

// Dec subtracts one from x and returns x.
func (x *Int) Dec() *Int {
	return x.Sub(One())
}

// Mul sets x to x*y and returns x.
func (x *Int) Mul(y *Int) *Int {
	x.ensure()

	if x == y {
		return x.Mul(y.Clone())
	}

	if y.neg {
		return x.Mul(Negation(y)).Neg()
	}

	negative := x.neg
	if negative {
		x.Neg()
	}

	shifted := x.Clone()
	x.setZero()

	ys := y.sig()
	for i := len(ys) - 1; i >= 0; i-- {
		for k := 0; k < bitsInByte; k++ {
			if ys[i]&(1<<k) != 0 {
				x.Add(shifted)
			}
			shifted.Lsh(1)
		}
	}

	if negative {
		x.Neg()
	}

	return x
}

// Quo sets x to the quotient x/y rounded toward negative infinity and
// returns x. If y is zero it returns ErrDivisionByZero and x is unchanged.
func (x *Int) Quo(y *Int) (*Int, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}

	x.ensure()

	if x == y {
		return x.Quo(y.Clone())
	}

	a := x.Clone().Abs()
	b := y.Clone().Abs()

	q := quoPositive(a, b)

	if x.neg != y.neg {
		// Rounding the magnitude up before negating floors the result.
		if Compare(Product(q, b), a) != 0 {
			q.Inc()
		}
		q.Neg()
	}

	*x = *q

	return x, nil
}

// quoPositive returns a/b for a >= 0 and b > 0. Each level doubles the
// divisor so the recursion depth is the bit length of the quotient.
func quoPositive(a, b *Int) *Int {
	if Compare(a, b) < 0 {
		return Zero()
	}

	q := quoPositive(a, ShiftLeft(b, 1))
	q.Lsh(1)

	if Compare(Difference(a, Product(q, b)), b) >= 0 {
		q.Inc()
	}

	return q
}

// Rem returns x - y*floor(x/y). The result has the sign of y. If y is zero
// it returns ErrDivisionByZero.
func Rem(x, y *Int) (*Int, error) {
	q, err := Quotient(x, y)
	if err != nil {
		return nil, err
	}

	return Difference(x, q.Mul(y)), nil
}

// Sum returns x+y. The operands are not modified.
func Sum(x, y *Int) *Int {
	return x.Clone().Add(y)
}

// Difference returns x-y. The operands are not modified.
func Difference(x, y *Int) *Int {
	return x.Clone().Sub(y)
}

// Product returns x*y. The operands are not modified.
func Product(x, y *Int) *Int {
	return x.Clone().Mul(y)
}

// Quotient returns floor(x/y). The operands are not modified.
func Quotient(x, y *Int) (*Int, error) {
	return x.Clone().Quo(y)
}

// Negation returns -x. The operand is not modified.
func Negation(x *Int) *Int {
	return x.Clone().Neg()
}
