package binary

import (
	"bytes"
	"errors"
	"io"

	"github.com/wippyai/wasi-compat/wasm/leb128"
)

// Reader wraps an io.Reader with byte-offset tracking and the integer reads
// the section framing needs. It buffers nothing beyond a single byte, so it
// can sit directly on a network-style source.
type Reader struct {
	r   io.Reader
	pos int64
	one [1]byte
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Position returns the number of bytes consumed so far.
func (r *Reader) Position() int64 {
	return r.pos
}

// ReadByte reads a single byte. io.EOF is returned only when the source was
// exhausted before the read, so callers can treat it as a clean boundary.
func (r *Reader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(r.r, r.one[:]); err != nil {
		return 0, err
	}
	r.pos++
	return r.one[0], nil
}

// ReadU32 reads an unsigned LEB128 encoded uint32. Exhaustion anywhere in
// the field is io.ErrUnexpectedEOF; an integer field is never optional.
func (r *Reader) ReadU32() (uint32, error) {
	var result uint32
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		// The fifth byte may contribute at most four value bits.
		if shift == 28 && b&0xf0 != 0 {
			return 0, leb128.ErrOverflow
		}
		result |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
}

// ReadPayload reads exactly n bytes. The count comes from untrusted input,
// so the buffer grows from what the source actually delivers instead of
// being preallocated at the declared size. A short source yields
// io.ErrUnexpectedEOF.
func (r *Reader) ReadPayload(n uint32) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(min(int(n), 64*1024))
	copied, err := io.CopyN(&buf, r.r, int64(n))
	r.pos += copied
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf.Bytes(), nil
}
