package compat

// Module names the WASI preview1 interface has been published under.
const (
	// ModuleWASIPreview1 is the finalized snapshot name that current
	// hosts implement.
	ModuleWASIPreview1 = "wasi_snapshot_preview1"

	// ModuleWASIUnstable is the retired pre-snapshot name still found in
	// binaries built with old toolchains.
	ModuleWASIUnstable = "wasi_unstable"
)

// PreviewRenames returns the rename map that moves imports from the retired
// wasi_unstable namespace onto wasi_snapshot_preview1, which is what
// RenameImportModules applies for the common modernization case. The two
// interfaces share function names; callers are on their own for the few
// struct layout differences between the snapshots.
func PreviewRenames() map[string]string {
	return map[string]string{ModuleWASIUnstable: ModuleWASIPreview1}
}
