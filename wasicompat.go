package wasicompat

import (
	"bytes"

	"github.com/wippyai/wasi-compat/compat"
	"github.com/wippyai/wasi-compat/wasm"
)

// IsModule reports whether data begins with a recognized WebAssembly
// preamble, core or component.
func IsModule(data []byte) bool {
	if len(data) < len(wasm.HeaderCore) {
		return false
	}
	var h wasm.Header
	copy(h[:], data)
	return h.Valid()
}

// RenameImports decodes data, renames import modules per renames, and
// re-encodes. It returns the rewritten bytes and the number of imports
// renamed. When nothing matches, data is returned unchanged.
func RenameImports(data []byte, renames map[string]string) ([]byte, int, error) {
	m, err := wasm.DecodeModule(bytes.NewReader(data))
	if err != nil {
		return nil, 0, err
	}
	n, err := compat.RenameImportModules(m, renames)
	if err != nil {
		return nil, 0, err
	}
	if n == 0 {
		return data, 0, nil
	}
	return m.Encode(), n, nil
}

// ModernizeWASI moves imports from the retired wasi_unstable namespace to
// wasi_snapshot_preview1. See RenameImports for the return values.
func ModernizeWASI(data []byte) ([]byte, int, error) {
	return RenameImports(data, compat.PreviewRenames())
}

// StripCustomSections decodes data, removes custom sections (all of them,
// or only those named), and re-encodes. When nothing is removed, data is
// returned unchanged.
func StripCustomSections(data []byte, names ...string) ([]byte, int, error) {
	m, err := wasm.DecodeModule(bytes.NewReader(data))
	if err != nil {
		return nil, 0, err
	}
	n := compat.StripCustomSections(m, names...)
	if n == 0 {
		return data, 0, nil
	}
	return m.Encode(), n, nil
}
