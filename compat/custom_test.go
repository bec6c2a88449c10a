package compat_test

import (
	"bytes"
	"testing"

	"github.com/wippyai/wasi-compat/compat"
	"github.com/wippyai/wasi-compat/wasm"
)

func customModule() *wasm.Module {
	return &wasm.Module{
		Header: wasm.HeaderCore,
		Sections: []wasm.Section{
			&wasm.CustomSection{Name: "name", Data: []byte{0x01}},
			&wasm.StandardSection{ID: wasm.SectionType, Data: []byte{0x00}},
			&wasm.CustomSection{Name: "producers", Data: []byte{0x02}},
			&wasm.CustomSection{Name: "name", Data: []byte{0x03}},
		},
	}
}

func TestStripCustomSectionsAll(t *testing.T) {
	m := customModule()
	if n := compat.StripCustomSections(m); n != 3 {
		t.Errorf("stripped %d sections, want 3", n)
	}
	if len(m.Sections) != 1 || m.Sections[0].SectionID() != wasm.SectionType {
		t.Errorf("remaining sections = %v", m.Sections)
	}
}

func TestStripCustomSectionsByName(t *testing.T) {
	m := customModule()
	if n := compat.StripCustomSections(m, "name"); n != 2 {
		t.Errorf("stripped %d sections, want 2", n)
	}
	if m.CustomSection("name") != nil {
		t.Error(`"name" sections survived the strip`)
	}
	if m.CustomSection("producers") == nil {
		t.Error(`"producers" section removed by a strip of "name"`)
	}
	if len(m.Sections) != 2 {
		t.Errorf("got %d sections, want 2", len(m.Sections))
	}
}

func TestStripCustomSectionsNoMatch(t *testing.T) {
	m := customModule()
	if n := compat.StripCustomSections(m, "absent"); n != 0 {
		t.Errorf("stripped %d sections, want 0", n)
	}
	if len(m.Sections) != 4 {
		t.Errorf("got %d sections, want 4", len(m.Sections))
	}
}

func TestSetCustomSectionReplaces(t *testing.T) {
	m := customModule()
	compat.SetCustomSection(m, "producers", []byte{0xAA, 0xBB})

	if len(m.Sections) != 4 {
		t.Fatalf("got %d sections, want 4", len(m.Sections))
	}
	c := m.CustomSection("producers")
	if c == nil || !bytes.Equal(c.Data, []byte{0xAA, 0xBB}) {
		t.Errorf("producers section = %+v", c)
	}
}

func TestSetCustomSectionAppends(t *testing.T) {
	m := customModule()
	compat.SetCustomSection(m, "build.id", []byte{0x01})

	if len(m.Sections) != 5 {
		t.Fatalf("got %d sections, want 5", len(m.Sections))
	}
	last, ok := m.Sections[4].(*wasm.CustomSection)
	if !ok || last.Name != "build.id" {
		t.Errorf("last section = %+v", m.Sections[4])
	}
}
