package wasm

import (
	"errors"
	"fmt"
)

// Errors reported while decoding a module container. Truncation inside a
// field or payload surfaces as io.ErrUnexpectedEOF and malformed varints as
// leb128.ErrOverflow; both arrive wrapped in a ParseError.
var (
	// ErrUnsupportedModule is returned when the leading 8 bytes match
	// neither the core module header nor the component header.
	ErrUnsupportedModule = errors.New("wasm: unsupported module type")

	// ErrInvalidName is returned when a decoded name is not valid UTF-8.
	ErrInvalidName = errors.New("wasm: invalid UTF-8 in name")

	// ErrSectionIDRange is returned when an encoded section id does not fit
	// in a single byte.
	ErrSectionIDRange = errors.New("wasm: section id exceeds one byte")
)

// ParseError carries the byte offset a decode failure occurred at and the
// section being decoded when known. Match the cause with errors.Is.
type ParseError struct {
	Err     error
	Section string
	Offset  int64
}

func (e *ParseError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("wasm: %s at offset %d: %v", e.Section, e.Offset, e.Err)
	}
	return fmt.Sprintf("wasm: at offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
