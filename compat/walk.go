package compat

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasi-compat/wasm"
	"github.com/wippyai/wasi-compat/wasm/leb128"
)

// ErrUnknownKind is returned when an import or export carries a kind byte
// outside the four defined extern types.
var ErrUnknownKind = errors.New("compat: unknown extern kind")

// cursor walks an untrusted section payload by offset, so spans of the
// original bytes stay addressable for verbatim copying.
type cursor struct {
	data []byte
	off  int
}

func (c *cursor) remaining() int {
	return len(c.data) - c.off
}

func (c *cursor) byte() (byte, error) {
	if c.off >= len(c.data) {
		return 0, io.ErrUnexpectedEOF
	}
	b := c.data[c.off]
	c.off++
	return b, nil
}

func (c *cursor) u32() (uint32, error) {
	v, n, err := leb128.Decode(c.data[c.off:])
	if err != nil {
		return 0, err
	}
	c.off += n
	return v, nil
}

func (c *cursor) name() (string, error) {
	size, err := c.u32()
	if err != nil {
		return "", err
	}
	if uint64(size) > uint64(c.remaining()) {
		return "", io.ErrUnexpectedEOF
	}
	b := c.data[c.off : c.off+int(size)]
	c.off += int(size)
	if !utf8.Valid(b) {
		return "", wasm.ErrInvalidName
	}
	return string(b), nil
}

// skipUint skips one LEB128 integer of any width; limits in a memory64
// module carry 64-bit minima and maxima.
func (c *cursor) skipUint() error {
	for i := 0; i < 10; i++ {
		b, err := c.byte()
		if err != nil {
			return err
		}
		if b&0x80 == 0 {
			return nil
		}
	}
	return leb128.ErrOverflow
}

// skipLimits skips a limits record: a flags byte, a minimum, and a maximum
// when flag bit 0 is set.
func (c *cursor) skipLimits() error {
	flags, err := c.byte()
	if err != nil {
		return err
	}
	if err := c.skipUint(); err != nil {
		return err
	}
	if flags&0x01 != 0 {
		return c.skipUint()
	}
	return nil
}

// skipImportDesc skips the descriptor that follows an import's kind byte.
func (c *cursor) skipImportDesc(kind api.ExternType) error {
	switch kind {
	case api.ExternTypeFunc:
		return c.skipUint()
	case api.ExternTypeTable:
		if _, err := c.byte(); err != nil {
			return err
		}
		return c.skipLimits()
	case api.ExternTypeMemory:
		return c.skipLimits()
	case api.ExternTypeGlobal:
		if _, err := c.byte(); err != nil {
			return err
		}
		_, err := c.byte()
		return err
	default:
		return fmt.Errorf("kind 0x%02x: %w", kind, ErrUnknownKind)
	}
}

func findSection(m *wasm.Module, id wasm.SectionID) wasm.Section {
	for _, s := range m.Sections {
		if s.SectionID() == id {
			return s
		}
	}
	return nil
}
