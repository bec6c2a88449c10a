package inspect

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/wasi-compat/compat"
	"github.com/wippyai/wasi-compat/wasm"
)

// Command returns the section listing command.
func Command() *cobra.Command {
	var verbose bool
	var stats bool
	var interactive bool

	command := &cobra.Command{
		Use:   "inspect [path to module]",
		Short: "List the sections of a WebAssembly binary",
		Long:  "List the sections of a WebAssembly binary in stored order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one argument")
			}
			m, err := wasm.ReadFile(args[0])
			if err != nil {
				return err
			}

			switch {
			case stats:
				return dumpStats(os.Stdout, m)
			case interactive:
				if !term.IsTerminal(int(os.Stdout.Fd())) {
					return errors.New("interactive mode needs a terminal")
				}
				return runInteractive(args[0], m)
			}

			kind := "core module"
			if m.Header.IsComponent() {
				kind = "component"
			}
			fmt.Printf("%s: %s, %d sections\n", args[0], kind, len(m.Sections))
			for i, s := range m.Sections {
				fmt.Printf("%3d  %-10d %s\n", i, len(s.Payload()), s.Display(verbose))
			}
			return nil
		},
	}

	command.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "decode known custom section payloads")
	command.PersistentFlags().BoolVarP(&stats, "stats", "s", false, "dump section statistics in CSV format")
	command.PersistentFlags().BoolVarP(&interactive, "interactive", "i", false, "browse sections in a TUI")

	return command
}

// ImportsCommand returns the import listing command.
func ImportsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "imports [path to module]",
		Short: "List the imports of a WebAssembly binary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one argument")
			}
			m, err := wasm.ReadFile(args[0])
			if err != nil {
				return err
			}
			imports, err := compat.Imports(m)
			if err != nil {
				return err
			}
			for _, imp := range imports {
				fmt.Println(imp)
			}
			return nil
		},
	}
}

// ExportsCommand returns the export listing command.
func ExportsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exports [path to module]",
		Short: "List the exports of a WebAssembly binary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one argument")
			}
			m, err := wasm.ReadFile(args[0])
			if err != nil {
				return err
			}
			exports, err := compat.Exports(m)
			if err != nil {
				return err
			}
			for _, exp := range exports {
				fmt.Println(exp)
			}
			return nil
		},
	}
}
