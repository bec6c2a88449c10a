package compat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/wasi-compat/wasm"
	"github.com/wippyai/wasi-compat/wasm/leb128"
)

// RenameImportModules rewrites import module names according to renames and
// returns the number of imports changed. Only the renamed name fields are
// re-encoded; every other byte of the imports section is carried over
// verbatim. The module is untouched when nothing matches or when it has no
// imports section.
func RenameImportModules(m *wasm.Module, renames map[string]string) (int, error) {
	if len(renames) == 0 {
		return 0, nil
	}
	sec := findSection(m, wasm.SectionImport)
	if sec == nil {
		return 0, nil
	}
	std := sec.(*wasm.StandardSection)
	out, renamed, err := renameInSection(std.Data, renames)
	if err != nil {
		return 0, fmt.Errorf("imports section: %w", err)
	}
	if renamed > 0 {
		std.Data = out
		Logger().Debug("renamed import modules", zap.Int("imports", renamed))
	}
	return renamed, nil
}

func renameInSection(section []byte, renames map[string]string) ([]byte, int, error) {
	c := &cursor{data: section}
	count, err := c.u32()
	if err != nil {
		return nil, 0, fmt.Errorf("import count: %w", err)
	}

	var out []byte
	renamed := 0
	spanStart := 0
	for i := uint32(0); i < count; i++ {
		nameOff := c.off
		module, err := c.name()
		if err != nil {
			return nil, 0, fmt.Errorf("import %d module: %w", i, err)
		}

		if to, ok := renames[module]; ok {
			out = append(out, section[spanStart:nameOff]...)
			out = leb128.Append(out, uint32(len(to)))
			out = append(out, to...)
			spanStart = c.off
			renamed++
		}

		if _, err := c.name(); err != nil {
			return nil, 0, fmt.Errorf("import %d name: %w", i, err)
		}
		kind, err := c.byte()
		if err != nil {
			return nil, 0, fmt.Errorf("import %d kind: %w", i, err)
		}
		if err := c.skipImportDesc(kind); err != nil {
			return nil, 0, fmt.Errorf("import %d: %w", i, err)
		}
	}
	if renamed == 0 {
		return section, 0, nil
	}
	out = append(out, section[spanStart:]...)
	return out, renamed, nil
}
