package integer

const (
	bitsInByte  = 8
	bytesInWord = 8
	minByte     = 0b0000_0000
	maxByte     = 0b1111_1111
	signMask    = 0b1000_0000
)

// Int is an arbitrary precision signed integer.
//
// The value is held big-endian in two's complement form in the last size
// bytes of buf. The leading len(buf)-size bytes are slack kept for growth.
// The zero value is ready to use and holds zero.
//
// An Int must not be mutated concurrently. Use Clone to share a value.
type Int struct {
	neg  bool
	size int
	buf  []byte
}

var zeroBytes = [1]byte{minByte}

// New returns an Int holding v.
func New(v int64) *Int {
	x := &Int{
		neg:  v < 0,
		size: bytesInWord,
		buf:  make([]byte, bytesInWord),
	}

	u := uint64(v)
	for i := len(x.buf) - 1; i >= 0; i-- {
		x.buf[i] = byte(u & maxByte)
		u >>= bitsInByte
	}

	x.normalize()

	return x
}

// Zero returns a new Int holding 0.
func Zero() *Int {
	return &Int{
		size: 1,
		buf:  []byte{minByte},
	}
}

// One returns a new Int holding 1.
func One() *Int {
	return &Int{
		size: 1,
		buf:  []byte{0b0000_0001},
	}
}

// Clone returns a deep copy of x. Slack capacity is preserved.
func (x *Int) Clone() *Int {
	if x.size == 0 {
		return Zero()
	}

	buf := make([]byte, len(x.buf))
	copy(buf, x.buf)

	return &Int{
		neg:  x.neg,
		size: x.size,
		buf:  buf,
	}
}

// Set sets x to a copy of y and returns x.
func (x *Int) Set(y *Int) *Int {
	if x == y {
		return x
	}

	*x = *y.Clone()

	return x
}

// IsNeg reports whether x is less than zero.
func (x *Int) IsNeg() bool {
	return x.neg
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool {
	s := x.sig()

	return len(s) == 1 && s[0] == minByte
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x *Int) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.IsZero():
		return 0
	}

	return 1
}

// Len returns the number of significant bytes in x.
func (x *Int) Len() int {
	return len(x.sig())
}

// Cap returns the number of allocated bytes in x.
func (x *Int) Cap() int {
	if x.buf == nil {
		return len(zeroBytes)
	}

	return len(x.buf)
}

// ensure materializes the zero value so it can be mutated in place.
func (x *Int) ensure() {
	if x.size == 0 {
		x.neg = false
		x.size = 1
		x.buf = []byte{minByte}
	}
}

// setZero resets x to zero while keeping its buffer.
func (x *Int) setZero() {
	x.ensure()
	x.neg = false
	x.size = 1
	x.buf[len(x.buf)-1] = minByte
}

// sig returns the significant bytes of x.
func (x *Int) sig() []byte {
	if x.size == 0 {
		return zeroBytes[:]
	}

	return x.buf[len(x.buf)-x.size:]
}

// filler is the byte that sign extends x indefinitely to the left.
func (x *Int) filler() byte {
	if x.neg {
		return maxByte
	}

	return minByte
}

// grow doubles the capacity of x. The new leading half is filled with the
// sign extension of the current value.
func (x *Int) grow() {
	n := len(x.buf)
	buf := make([]byte, 2*n)

	f := x.filler()
	for i := 0; i < n; i++ {
		buf[i] = f
	}
	copy(buf[n:], x.buf)

	x.buf = buf
}

// pushFront adds b as the new most significant byte of x.
func (x *Int) pushFront(b byte) {
	x.size++
	if x.size > len(x.buf) {
		x.grow()
	}

	x.buf[len(x.buf)-x.size] = b
}

// extend raises the logical length of x to size bytes without changing its
// value. Slack is not trusted to hold the current filler (negation flips the
// sign without touching it) so the exposed bytes are rewritten.
func (x *Int) extend(size int) {
	if size <= x.size {
		return
	}

	for size > len(x.buf) {
		x.grow()
	}

	f := x.filler()
	for i := len(x.buf) - size; i < len(x.buf)-x.size; i++ {
		x.buf[i] = f
	}

	x.size = size
}

// fillSlack writes the sign filler into every byte in front of the
// significant bytes.
func (x *Int) fillSlack() {
	f := x.filler()
	for i := 0; i < len(x.buf)-x.size; i++ {
		x.buf[i] = f
	}
}

// normalize trims redundant sign extension bytes from the front of x so the
// significant bytes are the shortest two's complement encoding of the value.
// The sign is taken from the leading bit.
func (x *Int) normalize() {
	s := x.sig()

	x.neg = s[0]&signMask != 0
	f := x.filler()

	i := 0
	for i < len(s)-1 && s[i] == f && s[i+1]&signMask == f&signMask {
		i++
	}

	x.size -= i
}

// headroom returns how many bits x can be shifted left before its sign bit
// is lost.
func (x *Int) headroom() int {
	f := x.filler()

	count := 0
	for _, b := range x.sig() {
		if b == f {
			count += bitsInByte
			continue
		}

		for mask := byte(signMask); mask != 0 && b&mask == f&mask; mask >>= 1 {
			count++
		}

		break
	}

	return count - 1
}
