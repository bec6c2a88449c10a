package inspect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wippyai/wasi-compat/wasm"
)

func TestDumpStats(t *testing.T) {
	m := &wasm.Module{
		Header: wasm.HeaderCore,
		Sections: []wasm.Section{
			&wasm.StandardSection{ID: wasm.SectionType, Data: []byte{0x01, 0x60, 0x00, 0x00}},
			&wasm.CustomSection{Name: "producers", Data: []byte{0x00}},
			&wasm.StandardSection{ID: wasm.SectionID(200), Data: nil},
		},
	}

	var buf bytes.Buffer
	if err := dumpStats(&buf, m); err != nil {
		t.Fatalf("dumpStats: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"index,id,kind,name,size",
		"0,1,types section,,4",
		"1,0,custom section,producers,1",
		"2,200,section id#200,,0",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestDumpStatsEmptyModule(t *testing.T) {
	var buf bytes.Buffer
	if err := dumpStats(&buf, &wasm.Module{Header: wasm.HeaderCore}); err != nil {
		t.Fatalf("dumpStats: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "" {
		t.Errorf("dumpStats on empty module wrote %q", got)
	}
}
