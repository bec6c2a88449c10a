// Package leb128 implements the unsigned LEB128 integer encoding used for
// every length and identifier field in the WebAssembly binary format.
package leb128

import (
	"errors"
	"io"
)

// ErrOverflow is returned when a LEB128 value exceeds the maximum bit width.
var ErrOverflow = errors.New("leb128: overflow")

// Put writes v to w using the minimal unsigned LEB128 encoding: seven value
// bits per byte, low bits first, high bit set on every byte but the last.
func Put(w io.Writer, v uint32) error {
	var buf [5]byte
	n := 0
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		buf[n] = b
		n++
		if v == 0 {
			break
		}
	}
	_, err := w.Write(buf[:n])
	return err
}

// Append appends the encoding of v to dst and returns the extended slice.
func Append(dst []byte, v uint32) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		dst = append(dst, b)
		if v == 0 {
			return dst
		}
	}
}

// Get7 reads exactly one byte from r and masks it to the low seven bits.
// It is meant for fields that occupy a single byte on the wire. When r is
// exhausted before any byte is read, the io.EOF is returned untouched;
// callers rely on it to detect a clean end of input.
func Get7(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0] & 0x7f, nil
}

// Get32 reads an unsigned LEB128 encoded uint32 from r. Running out of
// input at any point inside the field, including before the first byte, is
// io.ErrUnexpectedEOF: an integer field is never optional, so there is no
// clean-EOF case here. Encodings that do not terminate within five bytes or
// carry bits past bit 31 fail with ErrOverflow.
func Get32(r io.Reader) (uint32, error) {
	var result uint32
	var shift uint
	var buf [1]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		b := buf[0]
		// The fifth byte may contribute at most four value bits.
		if shift == 28 && b&0xf0 != 0 {
			return 0, ErrOverflow
		}
		result |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
}

// Decode reads an unsigned LEB128 encoded uint32 from the start of data,
// returning the value and the number of bytes consumed. Errors match Get32.
func Decode(data []byte) (uint32, int, error) {
	var result uint32
	var shift uint
	for n := 0; n < len(data); n++ {
		b := data[n]
		if shift == 28 && b&0xf0 != 0 {
			return 0, 0, ErrOverflow
		}
		result |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, n + 1, nil
		}
		shift += 7
	}
	return 0, 0, io.ErrUnexpectedEOF
}
