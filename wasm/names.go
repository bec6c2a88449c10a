package wasm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/wippyai/wasi-compat/wasm/internal/binary"
	"github.com/wippyai/wasi-compat/wasm/leb128"
)

// NameSectionName is the name of the custom section carrying debug names.
const NameSectionName = "name"

// Name subsection ids assigned by the specification.
const (
	nameSubsectionModule   byte = 0
	nameSubsectionFunction byte = 1
)

// NameAssoc pairs an index with its name.
type NameAssoc struct {
	Index uint32
	Name  string
}

// NameMap is a list of name assignments in stored order.
type NameMap []NameAssoc

// NameSubsection is a subsection this package does not decode, kept
// verbatim so the section re-encodes losslessly.
type NameSubsection struct {
	ID   byte
	Data []byte
}

// NameSection is the decoded payload of the "name" custom section. The
// module and function name subsections are decoded; any others are carried
// in Extra unchanged.
type NameSection struct {
	Module    string
	HasModule bool
	Functions NameMap
	Extra     []NameSubsection
}

// DecodeNameSection decodes the inner payload of a "name" custom section.
func DecodeNameSection(data []byte) (*NameSection, error) {
	ns := &NameSection{}
	r := bytes.NewReader(data)
	for {
		id, err := leb128.Get7(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Clean end of the subsection list.
				return ns, nil
			}
			return nil, err
		}
		size, err := leb128.Get32(r)
		if err != nil {
			return nil, fmt.Errorf("subsection %d size: %w", id, err)
		}
		if int64(size) > int64(r.Len()) {
			return nil, fmt.Errorf("subsection %d: %w", id, io.ErrUnexpectedEOF)
		}
		body := make([]byte, size)
		if _, err := io.ReadFull(r, body); err != nil {
			return nil, err
		}

		switch id {
		case nameSubsectionModule:
			name, n, err := decodeNameString(body)
			if err != nil {
				return nil, fmt.Errorf("module name: %w", err)
			}
			if n != len(body) {
				return nil, fmt.Errorf("module name: %d trailing bytes", len(body)-n)
			}
			ns.Module = name
			ns.HasModule = true
		case nameSubsectionFunction:
			m, err := decodeNameMap(body)
			if err != nil {
				return nil, fmt.Errorf("function names: %w", err)
			}
			ns.Functions = m
		default:
			ns.Extra = append(ns.Extra, NameSubsection{ID: id, Data: body})
		}
	}
}

// Encode returns the section's inner payload: decoded subsections rebuilt,
// undecoded ones verbatim, in the canonical id order.
func (ns *NameSection) Encode() []byte {
	w := binary.NewWriter()
	if ns.HasModule {
		body := binary.NewWriter()
		body.WriteName(ns.Module)
		w.Byte(nameSubsectionModule)
		w.WriteU32(uint32(body.Len()))
		w.Write(body.Bytes())
	}
	if len(ns.Functions) > 0 {
		body := binary.NewWriter()
		body.WriteU32(uint32(len(ns.Functions)))
		for _, a := range ns.Functions {
			body.WriteU32(a.Index)
			body.WriteName(a.Name)
		}
		w.Byte(nameSubsectionFunction)
		w.WriteU32(uint32(body.Len()))
		w.Write(body.Bytes())
	}
	for _, sub := range ns.Extra {
		w.Byte(sub.ID)
		w.WriteU32(uint32(len(sub.Data)))
		w.Write(sub.Data)
	}
	return w.Bytes()
}

// Summary describes what the section names, for display.
func (ns *NameSection) Summary() string {
	parts := make([]string, 0, 3)
	if ns.HasModule {
		parts = append(parts, fmt.Sprintf("module %q", ns.Module))
	}
	if n := len(ns.Functions); n > 0 {
		parts = append(parts, fmt.Sprintf("%d function names", n))
	}
	if n := len(ns.Extra); n > 0 {
		parts = append(parts, fmt.Sprintf("%d other subsections", n))
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func decodeNameString(data []byte) (string, int, error) {
	size, n, err := leb128.Decode(data)
	if err != nil {
		return "", 0, err
	}
	if uint64(size) > uint64(len(data)-n) {
		return "", 0, io.ErrUnexpectedEOF
	}
	b := data[n : n+int(size)]
	if !utf8.Valid(b) {
		return "", 0, ErrInvalidName
	}
	return string(b), n + int(size), nil
}

func decodeNameMap(data []byte) (NameMap, error) {
	count, off, err := leb128.Decode(data)
	if err != nil {
		return nil, err
	}
	names := make(NameMap, 0, min(int(count), 1024))
	for i := uint32(0); i < count; i++ {
		idx, n, err := leb128.Decode(data[off:])
		if err != nil {
			return nil, err
		}
		off += n
		name, n, err := decodeNameString(data[off:])
		if err != nil {
			return nil, err
		}
		off += n
		names = append(names, NameAssoc{Index: idx, Name: name})
	}
	if off != len(data) {
		return nil, fmt.Errorf("%d trailing bytes", len(data)-off)
	}
	return names, nil
}
