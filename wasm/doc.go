// Package wasm parses and re-emits the WebAssembly binary container format
// at the section level.
//
// The package reads the 8-byte preamble of a core module or a component
// model binary and then treats the rest of the input as a flat sequence of
// section records: an id, a size, and that many payload bytes. Payload
// contents are never interpreted (the one exception is the name framing
// inside custom sections), which makes the codec a safe substrate for
// tooling that rewrites a few sections and must reproduce everything else
// bit-exact.
//
// # Decoding
//
// Decode a whole module:
//
//	f, _ := os.Open("module.wasm")
//	defer f.Close()
//	m, err := wasm.DecodeModule(bufio.NewReader(f))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range m.Sections {
//	    fmt.Println(s.Display(false))
//	}
//
// Or stream sections without holding the module in memory:
//
//	h, err := wasm.ReadHeader(r)
//	sr := wasm.NewSectionReader(r)
//	for {
//	    s, err := sr.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
//
// # Encoding
//
// Encoding reverses decoding exactly. A module that was decoded and not
// modified encodes to the original bytes:
//
//	out := m.Encode()
//
// Custom sections rebuild their name framing on every encode, so mutating
// CustomSection.Name or .Data between decode and encode is always
// reflected in the output.
//
// # Errors
//
// The end of the section list is io.EOF; it is a boundary signal, not a
// failure. Truncation inside a field or payload is io.ErrUnexpectedEOF,
// malformed varints are leb128.ErrOverflow, and a bad preamble is
// ErrUnsupportedModule. Decode failures arrive wrapped in *ParseError,
// which carries the byte offset; use errors.Is to match the cause.
//
// Structural validity is all this package checks. It does not validate
// WebAssembly semantics: type indices, instruction bytecode, and every
// other payload detail pass through untouched.
package wasm
