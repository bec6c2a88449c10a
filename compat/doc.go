// Package compat inspects and rewrites the WASI-facing surface of a module
// decoded by the wasm package.
//
// Everything here works at the section level. Imports and Exports walk
// their sections read-only and list the entries with wazero's extern type
// labels; RenameImportModules rewrites import module names in place while
// copying all surrounding bytes verbatim, so a rename touches nothing but
// the name fields it changes.
//
// The motivating case is retargeting old binaries:
//
//	m, err := wasm.ReadFile("old.wasm")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n, err := compat.RenameImportModules(m, compat.PreviewRenames())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if n > 0 {
//	    err = m.WriteFile("new.wasm")
//	}
//
// StripCustomSections and SetCustomSection cover the other common rewrite,
// dropping or replacing debug metadata before shipping a module.
package compat
