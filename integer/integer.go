package integer

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/calebcase/bigint/control"
)

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The payload is the magnitude shifted left one bit with the sign in bit 0,
// big-endian with no leading zero bytes. Zero is a single zero byte.
func (x *Int) MarshalBinary() (data []byte, err error) {
	m := x.Clone().Abs().Lsh(1)
	if x.neg {
		m.Inc()
	}

	data = append([]byte(nil), m.sig()...)

	// Note: the two's complement form of a positive value may carry a
	// leading zero byte for its sign, but the payload is unsigned.
	for len(data) > 1 && data[0] == minByte {
		data = data[1:]
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. An empty payload
// decodes as zero.
func (x *Int) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		x.setZero()
		return nil
	}

	buf := make([]byte, len(data)+1)
	copy(buf[1:], data)

	m := &Int{
		size: len(buf),
		buf:  buf,
	}
	m.normalize()

	negative := data[len(data)-1]&1 == 1
	m.Rsh(1)

	if negative {
		m.Neg()
	}

	*x = *m

	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder. The value is written as
// bin holding the binary payload.
func (x *Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	data, err := x.MarshalBinary()
	if err != nil {
		return err
	}

	return enc.EncodeBytes(data)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (x *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	data, err := dec.DecodeBytes()
	if err != nil {
		return Error.Wrap(err)
	}

	return x.UnmarshalBinary(data)
}

// Encoder writes integers as control data blocks.
type Encoder struct {
	ce control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(ce control.Encoder) *Encoder {
	return &Encoder{
		ce: ce,
	}
}

// Encode writes x to the stream. A nil x is written as a null block.
func (e *Encoder) Encode(x *Int) (err error) {
	defer Error.WrapP(&err)

	if x == nil {
		return e.ce.Null()
	}

	data, err := x.MarshalBinary()
	if err != nil {
		return err
	}

	return e.ce.Data(data)
}

// Decoder reads integers from control data blocks.
type Decoder struct {
	cd control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(cd control.Decoder) *Decoder {
	return &Decoder{
		cd: cd,
	}
}

// Decode reads the next integer from the stream. A null block decodes as
// nil. At the end of the stream it returns io.EOF.
func (d *Decoder) Decode() (x *Int, err error) {
	if !d.cd.Next() {
		if err = d.cd.Err(); err != nil {
			return nil, Error.Wrap(err)
		}

		return nil, io.EOF
	}

	switch t := d.cd.Type(); {
	case t == control.Null:
		return nil, nil
	case t.IsData():
		data, err := d.cd.Data()
		if err != nil {
			return nil, Error.Wrap(err)
		}

		x = new(Int)

		err = x.UnmarshalBinary(data)
		if err != nil {
			return nil, err
		}

		return x, nil
	default:
		return nil, Error.New("unexpected block %q", t.Abbr)
	}
}
