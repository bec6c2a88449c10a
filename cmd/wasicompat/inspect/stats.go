package inspect

import (
	"encoding/csv"
	"io"

	"github.com/jszwec/csvutil"

	"github.com/wippyai/wasi-compat/wasm"
)

// rows:
// - section
//     - position, wire id, kind label, custom name, payload size

func dumpStats(w io.Writer, m *wasm.Module) error {
	type row struct {
		Index int    `csv:"index"`
		ID    int    `csv:"id"`
		Kind  string `csv:"kind"`
		Name  string `csv:"name"`
		Size  int    `csv:"size"`
	}

	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	encoder := csvutil.NewEncoder(csvWriter)

	for i, s := range m.Sections {
		r := row{
			Index: i,
			ID:    int(s.SectionID()),
			Kind:  s.SectionID().String(),
			Size:  len(s.Payload()),
		}
		if c, ok := s.(*wasm.CustomSection); ok {
			r.Name = c.Name
		}
		if err := encoder.Encode(&r); err != nil {
			return err
		}
	}
	return nil
}
