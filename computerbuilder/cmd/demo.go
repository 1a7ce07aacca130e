package cmd

import (
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

func newDemoCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build and print a basic and a gaming computer.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			presets, err := opts.loadPresets()
			if err != nil {
				return err
			}

			basic, err := presets.Lookup("basic")
			if err != nil {
				return err
			}

			gaming, err := presets.Lookup("gaming")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			err = printComputer(out, "Basic Computer:",
				opts.paint(color.Blue, basic.Build().Configuration()))
			if err != nil {
				return err
			}

			return printComputer(out, "Gaming Computer:",
				opts.paint(color.Green, gaming.Build().Configuration()))
		},
	}
}

func printComputer(w io.Writer, title, configuration string) error {
	_, err := fmt.Fprintln(w, title)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, configuration)

	return err
}
