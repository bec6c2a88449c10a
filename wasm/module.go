package wasm

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Module is a parsed container: the 8-byte header plus the sections in the
// order they appeared. Section payloads are opaque, and no relationship
// between sections is checked or enforced, so an untouched module encodes
// back to the exact bytes it was decoded from.
type Module struct {
	Header   Header
	Sections []Section
}

// DecodeModule reads a whole module from r: header first, then every
// section eagerly. The first malformed section aborts the decode; a
// partially populated Module is never returned.
func DecodeModule(r io.Reader) (*Module, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	m := &Module{Header: h}
	sr := NewSectionReader(r)
	for {
		s, err := sr.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		m.Sections = append(m.Sections, s)
	}
	Logger().Debug("decoded module",
		zap.Int("sections", len(m.Sections)),
		zap.Bool("component", h.IsComponent()))
	return m, nil
}

// Encode returns the module in binary form.
func (m *Module) Encode() []byte {
	var buf bytes.Buffer
	m.WriteTo(&buf) // a bytes.Buffer write cannot fail
	return buf.Bytes()
}

// WriteTo writes the header verbatim and then each section in order,
// implementing io.WriterTo.
func (m *Module) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if _, err := cw.Write(m.Header[:]); err != nil {
		return cw.n, err
	}
	for _, s := range m.Sections {
		if err := WriteSection(cw, s); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

// AddSection appends s to the module.
func (m *Module) AddSection(s Section) {
	m.Sections = append(m.Sections, s)
}

// CustomSection returns the first custom section with the given name, or
// nil when the module has none.
func (m *Module) CustomSection(name string) *CustomSection {
	for _, s := range m.Sections {
		if c, ok := s.(*CustomSection); ok && c.Name == name {
			return c
		}
	}
	return nil
}

// ReadFile decodes the module stored at path.
func ReadFile(path string) (*Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := DecodeModule(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// WriteFile encodes the module to path, creating or truncating the file.
// The handle is closed on every path, and close errors are reported.
func (m *Module) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if _, err := m.WriteTo(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
