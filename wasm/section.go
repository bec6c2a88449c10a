package wasm

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/wippyai/wasi-compat/wasm/internal/binary"
	"github.com/wippyai/wasi-compat/wasm/leb128"
)

// Section is one tagged, length-prefixed chunk of a module. The union is
// closed: StandardSection covers every spec-defined and unknown id, and
// CustomSection covers id 0 with its name framing decoded. Payload contents
// are opaque to this package.
type Section interface {
	// SectionID returns the id the section is framed with.
	SectionID() SectionID

	// Payload returns the section's inner payload. For custom sections
	// this excludes the name framing.
	Payload() []byte

	// Display returns a human-readable description of the section. The
	// verbose form adds per-kind detail where the payload layout is known.
	Display(verbose bool) string

	// wirePayload returns the bytes framed after id and size on the wire.
	wirePayload() []byte
}

var (
	_ Section = (*StandardSection)(nil)
	_ Section = (*CustomSection)(nil)
)

// StandardSection is any non-custom section: an id and an opaque payload,
// reproduced bit-exact on encode.
type StandardSection struct {
	ID   SectionID
	Data []byte
}

// SectionID returns the section's id.
func (s *StandardSection) SectionID() SectionID {
	return s.ID
}

// Payload returns the raw payload.
func (s *StandardSection) Payload() []byte {
	return s.Data
}

// Display returns the id's label, with the payload size in verbose form.
func (s *StandardSection) Display(verbose bool) string {
	if verbose {
		return fmt.Sprintf("%s (%d bytes)", s.ID, len(s.Data))
	}
	return s.ID.String()
}

func (s *StandardSection) String() string {
	return s.Display(false)
}

func (s *StandardSection) wirePayload() []byte {
	return s.Data
}

// CustomSection is a section with id 0: a UTF-8 name followed by an opaque
// payload. Data holds only the payload; the name framing is recomputed from
// Name on every encode, so both fields may be mutated freely between decode
// and encode.
type CustomSection struct {
	Name string
	Data []byte
}

// SectionID returns SectionCustom.
func (s *CustomSection) SectionID() SectionID {
	return SectionCustom
}

// Payload returns the inner payload, without the name framing.
func (s *CustomSection) Payload() []byte {
	return s.Data
}

// OuterPayload returns the section's on-wire payload: the LEB128 length of
// the name, the name bytes, then the inner payload. It is rebuilt on every
// call and never cached.
func (s *CustomSection) OuterPayload() []byte {
	w := binary.NewWriter()
	w.WriteName(s.Name)
	w.Write(s.Data)
	return w.Bytes()
}

// Display names the section. In verbose form a section carrying the
// standard "name" payload is decoded and summarized; anything else falls
// back to the plain form.
func (s *CustomSection) Display(verbose bool) string {
	if verbose && s.Name == NameSectionName {
		if ns, err := DecodeNameSection(s.Data); err == nil {
			return fmt.Sprintf("custom section: [%s] %s", s.Name, ns.Summary())
		}
	}
	return fmt.Sprintf("custom section: [%s]", s.Name)
}

func (s *CustomSection) String() string {
	return s.Display(false)
}

func (s *CustomSection) wirePayload() []byte {
	return s.OuterPayload()
}

// NewSection builds a Section from an id and its on-wire payload. For id 0
// the name framing inside payload is decoded; every other id wraps the
// payload verbatim. The returned section retains payload.
func NewSection(id SectionID, payload []byte) (Section, error) {
	if id != SectionCustom {
		return &StandardSection{ID: id, Data: payload}, nil
	}
	nameLen, n, err := leb128.Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("custom section name length: %w", err)
	}
	if uint64(nameLen) > uint64(len(payload)-n) {
		return nil, fmt.Errorf("custom section name: %w", io.ErrUnexpectedEOF)
	}
	name := payload[n : n+int(nameLen)]
	if !utf8.Valid(name) {
		return nil, ErrInvalidName
	}
	return &CustomSection{Name: string(name), Data: payload[n+int(nameLen):]}, nil
}
