package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPresetsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the available presets.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			presets, err := opts.loadPresets()
			if err != nil {
				return err
			}

			for _, name := range presets.Names() {
				p, _ := presets.Get(name)

				_, err := fmt.Fprintf(cmd.OutOrStdout(),
					"%s: %s\n", name, p.Build())
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}
