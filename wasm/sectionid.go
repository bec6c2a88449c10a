package wasm

import "fmt"

// SectionID identifies a module section. Values 0 through 11 are the kinds
// assigned by the WebAssembly specification; every other byte value is a
// legal id with no assigned meaning and is carried verbatim, so the mapping
// between bytes and ids is total in both directions.
type SectionID byte

// Section ids defined by the WebAssembly binary format.
const (
	SectionCustom   SectionID = 0  // custom section (can appear anywhere)
	SectionType     SectionID = 1  // type section (function signatures)
	SectionImport   SectionID = 2  // import section
	SectionFunction SectionID = 3  // function section (type indices)
	SectionTable    SectionID = 4  // table section
	SectionMemory   SectionID = 5  // memory section
	SectionGlobal   SectionID = 6  // global section
	SectionExport   SectionID = 7  // export section
	SectionStart    SectionID = 8  // start section
	SectionElement  SectionID = 9  // element section
	SectionCode     SectionID = 10 // code section (function bodies)
	SectionData     SectionID = 11 // data section
)

// String returns a human-readable label for the id.
func (id SectionID) String() string {
	switch id {
	case SectionCustom:
		return "custom section"
	case SectionType:
		return "types section"
	case SectionImport:
		return "imports section"
	case SectionFunction:
		return "functions section"
	case SectionTable:
		return "table section"
	case SectionMemory:
		return "memory section"
	case SectionGlobal:
		return "global section"
	case SectionExport:
		return "exports section"
	case SectionStart:
		return "start section"
	case SectionElement:
		return "elements section"
	case SectionCode:
		return "code section"
	case SectionData:
		return "data section"
	default:
		return fmt.Sprintf("section id#%d", byte(id))
	}
}

// Known reports whether the id is one of the kinds assigned by the
// specification.
func (id SectionID) Known() bool {
	return id <= SectionData
}
