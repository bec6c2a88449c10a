package rewrite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wippyai/wasi-compat/compat"
	"github.com/wippyai/wasi-compat/wasm"
)

// Command returns the module rewriting command.
func Command() *cobra.Command {
	var output string
	var renames []string
	var stripAll bool
	var strip []string

	command := &cobra.Command{
		Use:   "rewrite [path to module]",
		Short: "Rewrite a WebAssembly binary for current WASI hosts",
		Long: "Rewrite a WebAssembly binary at the section level: rename import\n" +
			"modules and drop custom sections, leaving everything else byte-exact.\n" +
			"Without flags the wasi_unstable imports are moved to wasi_snapshot_preview1.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one argument")
			}
			if output == "" {
				return errors.New("expected an output path (-o)")
			}

			m, err := wasm.ReadFile(args[0])
			if err != nil {
				return err
			}

			renameMap := compat.PreviewRenames()
			if len(renames) > 0 || stripAll || len(strip) > 0 {
				renameMap, err = parseRenames(renames)
				if err != nil {
					return err
				}
			}

			renamed, err := compat.RenameImportModules(m, renameMap)
			if err != nil {
				return err
			}

			stripped := 0
			switch {
			case stripAll:
				stripped = compat.StripCustomSections(m)
			case len(strip) > 0:
				stripped = compat.StripCustomSections(m, strip...)
			}

			if err := m.WriteFile(output); err != nil {
				return err
			}
			fmt.Printf("%s: renamed %d imports, stripped %d custom sections\n", output, renamed, stripped)
			return nil
		},
	}

	command.PersistentFlags().StringVarP(&output, "output", "o", "", "path to write the rewritten module")
	command.PersistentFlags().StringArrayVar(&renames, "rename", nil, "rename an import module (OLD=NEW, repeatable)")
	command.PersistentFlags().BoolVar(&stripAll, "strip-custom", false, "drop every custom section")
	command.PersistentFlags().StringArrayVar(&strip, "strip", nil, "drop custom sections with this name (repeatable)")

	return command
}

func parseRenames(pairs []string) (map[string]string, error) {
	renames := make(map[string]string, len(pairs))
	for _, p := range pairs {
		from, to, ok := strings.Cut(p, "=")
		if !ok || from == "" {
			return nil, fmt.Errorf("malformed rename %q, want OLD=NEW", p)
		}
		renames[from] = to
	}
	return renames, nil
}
