// Package integer implements arbitrary precision signed integers.
//
// An [Int] stores its value as a big-endian two's complement byte sequence
// inside a growable buffer. Only the trailing significant bytes hold the
// value; the bytes ahead of them are slack that lets the value grow without
// reallocating. Growth doubles the buffer and fills the new space with the
// sign extension of the value (0x00 for non-negative, 0xFF for negative).
//
// After every shift, addition and subtraction the value is normalized: the
// significant bytes are trimmed to the shortest two's complement encoding.
// Zero is a single 0x00 byte.
//
// Methods named after an operation (Add, Sub, Mul, Quo, Lsh, Rsh, Neg, Inc,
// Dec) update the receiver in place and return it so calls can be chained.
// The package level functions (Sum, Difference, Product, Quotient,
// Negation, ShiftLeft, ShiftRight, Pow) leave their operands untouched.
//
//	x := integer.MustParse("-101")
//	q, err := integer.Quotient(x, integer.New(10)) // -11, division floors
//
// Multiplication is shift-and-add over the bits of the multiplier. Division
// is recursive binary long division that doubles the divisor at each level,
// so the recursion depth is the bit length of the quotient.
//
// Values may be written as decimal text, as a compact binary payload
// (magnitude shifted left one bit with the sign in bit 0), as msgpack, or as
// control data blocks through [Encoder] and [Decoder].
package integer
