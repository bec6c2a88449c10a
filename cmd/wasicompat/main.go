package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/wasi-compat/cmd/wasicompat/inspect"
	"github.com/wippyai/wasi-compat/cmd/wasicompat/rewrite"
	"github.com/wippyai/wasi-compat/compat"
	"github.com/wippyai/wasi-compat/wasm"
)

var version = "<unknown>"

func configureCLI() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "wasicompat",
		Short:         "wasicompat WebAssembly module tooling",
		Long:          "wasicompat - inspect and rewrite WebAssembly binaries at the section level",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
	}

	rootCommand.AddCommand(inspect.Command())
	rootCommand.AddCommand(inspect.ImportsCommand())
	rootCommand.AddCommand(inspect.ExportsCommand())
	rootCommand.AddCommand(rewrite.Command())

	rootCommand.PersistentFlags().String("log-level", "", "enable logging at this level (debug, info, warn, error)")

	viper.SetEnvPrefix("WASICOMPAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.BindPFlag("log-level", rootCommand.PersistentFlags().Lookup("log-level"))

	return rootCommand
}

// setupLogging installs a development logger in every package that accepts
// one. Without --log-level (or WASICOMPAT_LOG_LEVEL) the packages keep
// their no-op default.
func setupLogging() error {
	level := viper.GetString("log-level")
	if level == "" {
		return nil
	}
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	wasm.SetLogger(logger.Named("wasm"))
	compat.SetLogger(logger.Named("compat"))
	return nil
}

func main() {
	rootCommand := configureCLI()

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
