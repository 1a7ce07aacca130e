package cmd

import (
	"github.com/sarchlab/computerbuilder/hardware"
	"github.com/spf13/cobra"
)

func newBuildCommand(opts *rootOptions) *cobra.Command {
	var presetName string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a computer from a preset and flags.",
		Long: `Build a computer and print its configuration. The preset, if ` +
			`any, is applied first. Only the component flags that are given ` +
			`are applied afterwards; everything else keeps its default.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b := hardware.NewComputerBuilder()

			if presetName != "" {
				presets, err := opts.loadPresets()
				if err != nil {
					return err
				}

				p, err := presets.Lookup(presetName)
				if err != nil {
					return err
				}

				p.Apply(b)
			}

			setters := []struct {
				flag string
				set  func(string) *hardware.ComputerBuilder
			}{
				{"cpu", b.SetCPU},
				{"ram", b.SetRAM},
				{"storage", b.SetStorage},
				{"gpu", b.SetGPU},
			}

			for _, s := range setters {
				if !cmd.Flags().Changed(s.flag) {
					continue
				}

				value, _ := cmd.Flags().GetString(s.flag)
				s.set(value)
			}

			computer := b.Build()
			opts.logger.Debug("Built computer", "computer", computer.String())

			return computer.WriteConfiguration(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&presetName, "preset", "",
		"Preset to start from")
	cmd.Flags().String("cpu", "", "Processor")
	cmd.Flags().String("ram", "", "Memory")
	cmd.Flags().String("storage", "", "Storage")
	cmd.Flags().String("gpu", "", "Graphics card")

	return cmd
}
