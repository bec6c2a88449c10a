package compat

import (
	"go.uber.org/zap"

	"github.com/wippyai/wasi-compat/wasm"
)

// StripCustomSections removes custom sections from m and returns how many
// were dropped. With no names given every custom section goes; otherwise
// only those whose name matches one of names.
func StripCustomSections(m *wasm.Module, names ...string) int {
	var set map[string]struct{}
	if len(names) > 0 {
		set = make(map[string]struct{}, len(names))
		for _, n := range names {
			set[n] = struct{}{}
		}
	}

	kept := m.Sections[:0]
	removed := 0
	for _, s := range m.Sections {
		if c, ok := s.(*wasm.CustomSection); ok {
			_, match := set[c.Name]
			if set == nil || match {
				removed++
				continue
			}
		}
		kept = append(kept, s)
	}
	m.Sections = kept
	if removed > 0 {
		Logger().Debug("stripped custom sections", zap.Int("sections", removed))
	}
	return removed
}

// SetCustomSection replaces the payload of the first custom section named
// name, or appends a new section when the module has none.
func SetCustomSection(m *wasm.Module, name string, data []byte) {
	if c := m.CustomSection(name); c != nil {
		c.Data = data
		return
	}
	m.AddSection(&wasm.CustomSection{Name: name, Data: data})
}
