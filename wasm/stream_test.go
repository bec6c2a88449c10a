package wasm_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/wippyai/wasi-compat/wasm"
)

func sectionStream() []byte {
	return []byte{
		0x01, 0x04, 0x01, 0x60, 0x00, 0x00, // types section
		0x00, 0x08, 0x04, 'n', 'a', 'm', 'e', 0x01, 0x02, 0x03, // custom section "name"
		0xC8, 0x01, 0x01, 0xAA, // extension section id 200
		0x0B, 0x00, // empty data section
	}
}

func TestSectionReader(t *testing.T) {
	sr := wasm.NewSectionReader(bytes.NewReader(sectionStream()))

	s, err := sr.Next()
	if err != nil {
		t.Fatalf("Next 1: %v", err)
	}
	if s.SectionID() != wasm.SectionType {
		t.Errorf("section 1 id = %v, want SectionType", s.SectionID())
	}
	if !bytes.Equal(s.Payload(), []byte{0x01, 0x60, 0x00, 0x00}) {
		t.Errorf("section 1 payload = % x", s.Payload())
	}

	s, err = sr.Next()
	if err != nil {
		t.Fatalf("Next 2: %v", err)
	}
	c, ok := s.(*wasm.CustomSection)
	if !ok {
		t.Fatalf("section 2 is %T, want *CustomSection", s)
	}
	if c.Name != "name" || !bytes.Equal(c.Data, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("section 2 = (%q, % x)", c.Name, c.Data)
	}

	s, err = sr.Next()
	if err != nil {
		t.Fatalf("Next 3: %v", err)
	}
	if s.SectionID() != wasm.SectionID(200) {
		t.Errorf("section 3 id = %v, want id 200", s.SectionID())
	}
	if !bytes.Equal(s.Payload(), []byte{0xAA}) {
		t.Errorf("section 3 payload = % x", s.Payload())
	}

	s, err = sr.Next()
	if err != nil {
		t.Fatalf("Next 4: %v", err)
	}
	if s.SectionID() != wasm.SectionData || len(s.Payload()) != 0 {
		t.Errorf("section 4 = (%v, % x)", s.SectionID(), s.Payload())
	}

	// The stream ends cleanly on a section boundary.
	if _, err := sr.Next(); err != io.EOF {
		t.Fatalf("Next 5: %v, want io.EOF", err)
	}
	if _, err := sr.Next(); err != io.EOF {
		t.Fatalf("Next 6: %v, want io.EOF", err)
	}
}

func TestSectionReaderOneBytePerRead(t *testing.T) {
	sr := wasm.NewSectionReader(iotest.OneByteReader(bytes.NewReader(sectionStream())))

	var ids []wasm.SectionID
	for {
		s, err := sr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		ids = append(ids, s.SectionID())
	}

	want := []wasm.SectionID{wasm.SectionType, wasm.SectionCustom, wasm.SectionID(200), wasm.SectionData}
	if len(ids) != len(want) {
		t.Fatalf("got %d sections, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("section %d id = %v, want %v", i, ids[i], want[i])
		}
	}
}

func TestSectionReaderErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    error
		section string
	}{
		{"id only", []byte{0x01}, io.ErrUnexpectedEOF, "types section"},
		{"size cut short", []byte{0x01, 0x84}, io.ErrUnexpectedEOF, "types section"},
		{"payload shorter than size", []byte{0x01, 0x64, 0xAA, 0xBB, 0xCC}, io.ErrUnexpectedEOF, "types section"},
		{"id second byte keeps continuation bit", []byte{0x80, 0x80, 0x00}, wasm.ErrSectionIDRange, "section id"},
		{"id beyond one byte", []byte{0xFF, 0x02, 0x00}, wasm.ErrSectionIDRange, "section id"},
		{"id truncated mid varint", []byte{0xC8}, io.ErrUnexpectedEOF, "section id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := wasm.NewSectionReader(bytes.NewReader(tt.input))
			_, err := sr.Next()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Next error = %v, want %v", err, tt.want)
			}

			var perr *wasm.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Next error = %T, want *ParseError", err)
			}
			if perr.Section != tt.section {
				t.Errorf("ParseError.Section = %q, want %q", perr.Section, tt.section)
			}

			// The reader stays failed once an error surfaces.
			if _, again := sr.Next(); !errors.Is(again, tt.want) {
				t.Errorf("Next after error = %v, want %v", again, tt.want)
			}
		})
	}
}

func TestSectionReaderOffset(t *testing.T) {
	sr := wasm.NewSectionReader(bytes.NewReader(sectionStream()))

	if got := sr.Offset(); got != 0 {
		t.Errorf("Offset before reading = %d, want 0", got)
	}
	if _, err := sr.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got := sr.Offset(); got != 6 {
		t.Errorf("Offset after first section = %d, want 6", got)
	}
	if _, err := sr.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got := sr.Offset(); got != 16 {
		t.Errorf("Offset after second section = %d, want 16", got)
	}
}
