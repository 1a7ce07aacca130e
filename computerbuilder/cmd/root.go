// Package cmd provides the command-line interface for computerbuilder.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/sarchlab/computerbuilder/preset"
	"github.com/spf13/cobra"
)

// presetsEnvVar names the preset file used when --presets is not given.
const presetsEnvVar = "COMPUTERBUILDER_PRESETS"

type rootOptions struct {
	envFile     string
	presetsPath string
	logLevel    string
	logFormat   string
	noColor     bool

	logger *slog.Logger
}

// NewRootCommand creates the computerbuilder command with all its
// subcommands.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "computerbuilder",
		Short: "Assemble computer configurations step by step.",
		Long: `computerbuilder assembles computer configurations from ` +
			`presets, flags, or the hardware of the current machine, and ` +
			`prints them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", ".env",
		"File of environment variables to load, if it exists")
	flags.StringVar(&opts.presetsPath, "presets", "",
		"HCL preset file (defaults to $"+presetsEnvVar+
			", then the built-in presets)")
	flags.StringVar(&opts.logLevel, "log-level", "info",
		"Log level: debug, info, warn, or error")
	flags.StringVar(&opts.logFormat, "log-format", "text",
		"Log format: text or json")
	flags.BoolVar(&opts.noColor, "no-color", false,
		"Disable colored output")

	rootCmd.AddCommand(
		newDemoCommand(opts),
		newBuildCommand(opts),
		newPresetsCommand(opts),
		newHostCommand(opts),
	)

	return rootCmd
}

// Execute runs the root command and exits with a non-zero status on failure.
func Execute() {
	err := NewRootCommand().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	o.logger = newLogger(o.logLevel, o.logFormat, cmd.ErrOrStderr())

	if o.envFile != "" {
		err := godotenv.Load(o.envFile)
		switch {
		case err == nil:
			o.logger.Debug("Loaded environment file", "path", o.envFile)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("failed to load %s: %w", o.envFile, err)
		}
	}

	return nil
}

// paint renders s in c unless colors are disabled for this invocation.
func (o *rootOptions) paint(c color.Color, s string) string {
	if o.noColor {
		return s
	}

	return c.Sprint(s)
}

func (o *rootOptions) loadPresets() (preset.Set, error) {
	path := o.presetsPath
	if path == "" {
		path = os.Getenv(presetsEnvVar)
	}

	if path == "" {
		return preset.Default(), nil
	}

	o.logger.Debug("Loading presets", "path", path)

	return preset.Load(path)
}
