package compat

import (
	"fmt"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasi-compat/wasm"
)

// Import is one entry of a module's imports section.
type Import struct {
	Module string
	Name   string
	Kind   api.ExternType
}

func (i Import) String() string {
	return fmt.Sprintf("%s.%s (%s)", i.Module, i.Name, api.ExternTypeName(i.Kind))
}

// Export is one entry of a module's exports section.
type Export struct {
	Name  string
	Kind  api.ExternType
	Index uint32
}

func (e Export) String() string {
	return fmt.Sprintf("%s (%s %d)", e.Name, api.ExternTypeName(e.Kind), e.Index)
}

// Imports lists the entries of the imports section in stored order. A
// module without an imports section yields nil.
func Imports(m *wasm.Module) ([]Import, error) {
	sec := findSection(m, wasm.SectionImport)
	if sec == nil {
		return nil, nil
	}
	c := &cursor{data: sec.Payload()}
	count, err := c.u32()
	if err != nil {
		return nil, fmt.Errorf("import count: %w", err)
	}
	imports := make([]Import, 0, min(int(count), 1024))
	for i := uint32(0); i < count; i++ {
		module, err := c.name()
		if err != nil {
			return nil, fmt.Errorf("import %d module: %w", i, err)
		}
		name, err := c.name()
		if err != nil {
			return nil, fmt.Errorf("import %d name: %w", i, err)
		}
		kind, err := c.byte()
		if err != nil {
			return nil, fmt.Errorf("import %d kind: %w", i, err)
		}
		if err := c.skipImportDesc(kind); err != nil {
			return nil, fmt.Errorf("import %d: %w", i, err)
		}
		imports = append(imports, Import{Module: module, Name: name, Kind: kind})
	}
	return imports, nil
}

// Exports lists the entries of the exports section in stored order. A
// module without an exports section yields nil.
func Exports(m *wasm.Module) ([]Export, error) {
	sec := findSection(m, wasm.SectionExport)
	if sec == nil {
		return nil, nil
	}
	c := &cursor{data: sec.Payload()}
	count, err := c.u32()
	if err != nil {
		return nil, fmt.Errorf("export count: %w", err)
	}
	exports := make([]Export, 0, min(int(count), 1024))
	for i := uint32(0); i < count; i++ {
		name, err := c.name()
		if err != nil {
			return nil, fmt.Errorf("export %d name: %w", i, err)
		}
		kind, err := c.byte()
		if err != nil {
			return nil, fmt.Errorf("export %d kind: %w", i, err)
		}
		if kind > api.ExternTypeGlobal {
			return nil, fmt.Errorf("export %d kind 0x%02x: %w", i, kind, ErrUnknownKind)
		}
		index, err := c.u32()
		if err != nil {
			return nil, fmt.Errorf("export %d index: %w", i, err)
		}
		exports = append(exports, Export{Name: name, Kind: kind, Index: index})
	}
	return exports, nil
}
