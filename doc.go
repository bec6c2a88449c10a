// Package wasicompat retargets WebAssembly binaries at old WASI interfaces
// onto current hosts, without touching anything it does not understand.
//
// The root package offers byte-level one-shot wrappers; the real work lives
// in the subpackages:
//
//	wasicompat/          Root package with byte-level convenience wrappers
//	├── wasm/            Binary container codec: header, sections, streaming
//	│   └── leb128/      Unsigned LEB128 integer encoding
//	├── compat/          Import and export walking, section-level rewrites
//	└── cmd/wasicompat/  CLI: inspect, imports, exports, rewrite
//
// # Quick Start
//
// Move a binary off the retired wasi_unstable namespace:
//
//	out, n, err := wasicompat.ModernizeWASI(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if n > 0 {
//	    os.WriteFile("module.wasm", out, 0o644)
//	}
//
// For anything beyond a one-shot rewrite, decode once and work on the
// module:
//
//	m, err := wasm.ReadFile("module.wasm")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	imports, err := compat.Imports(m)
//	...
//
// Everything outside the rewritten fields is carried through byte-exact,
// including unknown sections and custom section payloads.
package wasicompat
