package wasm

import (
	"errors"
	"io"

	"github.com/wippyai/wasi-compat/wasm/internal/binary"
	"github.com/wippyai/wasi-compat/wasm/leb128"
)

// SectionReader streams section records from a byte source, one at a time,
// without buffering the rest of the module. It reads forward only; the
// source must not be touched by anything else while the reader is live, and
// a source can be traversed once.
type SectionReader struct {
	r   *binary.Reader
	err error
}

// NewSectionReader returns a reader over the section records in r. The
// module header must already have been consumed, for example by ReadHeader.
func NewSectionReader(r io.Reader) *SectionReader {
	return &SectionReader{r: binary.NewReader(r)}
}

// Next decodes and returns the next section. io.EOF means the source ended
// cleanly at a section boundary: no more sections. Any error, io.EOF
// included, is sticky; later calls return it again without touching the
// source.
func (sr *SectionReader) Next() (Section, error) {
	if sr.err != nil {
		return nil, sr.err
	}
	s, err := sr.read()
	if err != nil {
		sr.err = err
		return nil, err
	}
	return s, nil
}

// Offset returns the number of bytes consumed from the source so far.
func (sr *SectionReader) Offset() int64 {
	return sr.r.Position()
}

func (sr *SectionReader) read() (Section, error) {
	r := sr.r
	id, err := readSectionID(r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			// Clean end of the section list.
			return nil, io.EOF
		}
		return nil, &ParseError{Section: "section id", Offset: r.Position(), Err: err}
	}
	size, err := r.ReadU32()
	if err != nil {
		return nil, &ParseError{Section: id.String(), Offset: r.Position(), Err: err}
	}
	payload, err := r.ReadPayload(size)
	if err != nil {
		return nil, &ParseError{Section: id.String(), Offset: r.Position(), Err: err}
	}
	s, err := NewSection(id, payload)
	if err != nil {
		return nil, &ParseError{Section: id.String(), Offset: r.Position(), Err: err}
	}
	return s, nil
}

// readSectionID decodes a section id. Ids travel as unsigned LEB128 like
// every other integer field, so values above 0x7f occupy two bytes; the
// decoded value must still fit in one byte. io.EOF before the first byte
// means the section list has ended.
func readSectionID(r *binary.Reader) (SectionID, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	if b&0x80 == 0 {
		return SectionID(b), nil
	}
	next, err := r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}
	if next&0x80 != 0 || next > 0x01 {
		return 0, ErrSectionIDRange
	}
	return SectionID(uint32(b&0x7f) | uint32(next)<<7), nil
}

// ReadSection decodes a single section record from r. A source exhausted
// before the id byte returns io.EOF.
func ReadSection(r io.Reader) (Section, error) {
	return NewSectionReader(r).Next()
}

// WriteSection writes one section record: LEB128 id, LEB128 payload size,
// payload. Custom sections rebuild their name framing on each call.
func WriteSection(w io.Writer, s Section) error {
	payload := s.wirePayload()
	if err := leb128.Put(w, uint32(s.SectionID())); err != nil {
		return err
	}
	if err := leb128.Put(w, uint32(len(payload))); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}
