package wasm

import (
	"errors"
	"io"
)

// Header is the 8-byte module preamble: the "\0asm" magic followed by
// version bytes. It is stored verbatim and re-emitted unchanged.
type Header [8]byte

// The two preambles this package accepts.
var (
	// HeaderCore begins a core WebAssembly module (version 1).
	HeaderCore = Header{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}

	// HeaderComponent begins a component model binary (version 13, layer 1).
	HeaderComponent = Header{0x00, 0x61, 0x73, 0x6D, 0x0D, 0x00, 0x01, 0x00}
)

// IsCore reports whether h is the core module preamble.
func (h Header) IsCore() bool {
	return h == HeaderCore
}

// IsComponent reports whether h is the component model preamble.
func (h Header) IsComponent() bool {
	return h == HeaderComponent
}

// Valid reports whether h is one of the two recognized preambles.
func (h Header) Valid() bool {
	return h.IsCore() || h.IsComponent()
}

// ReadHeader reads and validates the 8-byte preamble. It must be called
// exactly once per source, before any section is read from it. An input
// shorter than 8 bytes is a truncation error; 8 bytes that match neither
// preamble fail with ErrUnsupportedModule.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	if _, err := io.ReadFull(r, h[:]); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Header{}, &ParseError{Section: "header", Err: err}
	}
	if !h.Valid() {
		return Header{}, ErrUnsupportedModule
	}
	if h.IsComponent() {
		Logger().Debug("found a component header")
	}
	return h, nil
}
