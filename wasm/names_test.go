package wasm_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/wippyai/wasi-compat/wasm"
)

func namePayload() []byte {
	return []byte{
		0x00, 0x04, 0x03, 'm', 'o', 'd', // module name "mod"
		0x01, 0x07, 0x02, 0x00, 0x01, 'a', 0x02, 0x01, 'b', // function names 0:"a" 2:"b"
		0x07, 0x02, 0xDE, 0xAD, // unknown subsection id 7
	}
}

func TestDecodeNameSection(t *testing.T) {
	ns, err := wasm.DecodeNameSection(namePayload())
	if err != nil {
		t.Fatalf("DecodeNameSection: %v", err)
	}
	if !ns.HasModule || ns.Module != "mod" {
		t.Errorf("module name = (%v, %q), want (true, mod)", ns.HasModule, ns.Module)
	}
	want := wasm.NameMap{{Index: 0, Name: "a"}, {Index: 2, Name: "b"}}
	if len(ns.Functions) != len(want) {
		t.Fatalf("got %d function names, want %d", len(ns.Functions), len(want))
	}
	for i, a := range want {
		if ns.Functions[i] != a {
			t.Errorf("function name %d = %+v, want %+v", i, ns.Functions[i], a)
		}
	}
	if len(ns.Extra) != 1 || ns.Extra[0].ID != 7 || !bytes.Equal(ns.Extra[0].Data, []byte{0xDE, 0xAD}) {
		t.Errorf("extra subsections = %+v", ns.Extra)
	}
}

func TestNameSectionRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
	}{
		{"full", namePayload()},
		{"empty", nil},
		{"module only", []byte{0x00, 0x02, 0x01, 'm'}},
		{"functions only", []byte{0x01, 0x04, 0x01, 0x05, 0x01, 'f'}},
		{"unknown subsection only", []byte{0x04, 0x03, 0x01, 0x02, 0x03}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns, err := wasm.DecodeNameSection(tt.payload)
			if err != nil {
				t.Fatalf("DecodeNameSection: %v", err)
			}
			got := ns.Encode()
			if len(tt.payload) == 0 {
				if len(got) != 0 {
					t.Fatalf("Encode = % x, want empty", got)
				}
				return
			}
			if !bytes.Equal(got, tt.payload) {
				t.Fatalf("Encode = % x, want % x", got, tt.payload)
			}
		})
	}
}

func TestDecodeNameSectionErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    error
	}{
		{"size without body", []byte{0x00, 0x05}, io.ErrUnexpectedEOF},
		{"size cut short", []byte{0x00, 0x85}, io.ErrUnexpectedEOF},
		{"module name truncated", []byte{0x00, 0x02, 0x05, 'm'}, io.ErrUnexpectedEOF},
		{"module name bad utf-8", []byte{0x00, 0x03, 0x02, 0xff, 0xfe}, wasm.ErrInvalidName},
		{"function name bad utf-8", []byte{0x01, 0x05, 0x01, 0x00, 0x02, 0xff, 0xfe}, wasm.ErrInvalidName},
		{"function count overruns body", []byte{0x01, 0x01, 0x02}, io.ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := wasm.DecodeNameSection(tt.payload); !errors.Is(err, tt.want) {
				t.Errorf("DecodeNameSection error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodeNameSectionTrailingBytes(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
	}{
		{"after module name", []byte{0x00, 0x03, 0x01, 'm', 0xFF}},
		{"after function names", []byte{0x01, 0x05, 0x01, 0x00, 0x01, 'f', 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := wasm.DecodeNameSection(tt.payload); err == nil {
				t.Error("DecodeNameSection accepted trailing bytes")
			}
		})
	}
}

func TestNameSectionSummary(t *testing.T) {
	tests := []struct {
		name string
		ns   *wasm.NameSection
		want string
	}{
		{
			"empty",
			&wasm.NameSection{},
			"(empty)",
		},
		{
			"module only",
			&wasm.NameSection{Module: "app", HasModule: true},
			`(module "app")`,
		},
		{
			"full",
			&wasm.NameSection{
				Module:    "app",
				HasModule: true,
				Functions: wasm.NameMap{{Index: 0, Name: "f"}, {Index: 1, Name: "g"}},
				Extra:     []wasm.NameSubsection{{ID: 7}},
			},
			`(module "app", 2 function names, 1 other subsections)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ns.Summary(); got != tt.want {
				t.Errorf("Summary = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCustomSectionDisplayNames(t *testing.T) {
	named := &wasm.CustomSection{Name: wasm.NameSectionName, Data: namePayload()}
	want := `custom section: [name] (module "mod", 2 function names, 1 other subsections)`
	if got := named.Display(true); got != want {
		t.Errorf("Display(true) = %q, want %q", got, want)
	}
	if got := named.Display(false); got != "custom section: [name]" {
		t.Errorf("Display(false) = %q", got)
	}

	// A malformed payload falls back to the plain form.
	broken := &wasm.CustomSection{Name: wasm.NameSectionName, Data: []byte{0x00, 0x05}}
	if got := broken.Display(true); got != "custom section: [name]" {
		t.Errorf("Display(true) on malformed payload = %q", got)
	}

	other := &wasm.CustomSection{Name: "producers", Data: []byte{0x01}}
	if got := other.Display(true); got != "custom section: [producers]" {
		t.Errorf("Display(true) = %q", got)
	}
}
