package cmd

import (
	"context"
	"time"

	"github.com/sarchlab/computerbuilder/hostinfo"
	"github.com/spf13/cobra"
)

// newProber is replaced in tests.
var newProber = hostinfo.NewProber

func newHostCommand(opts *rootOptions) *cobra.Command {
	var (
		storagePath string
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "host",
		Short: "Describe the computer this command runs on.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			computer := hostinfo.DescribeHost(ctx, newProber(storagePath), opts.logger)

			return computer.WriteConfiguration(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&storagePath, "storage-path", "/",
		"Mount point whose disk is reported as storage")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second,
		"Time limit for probing the hardware")

	return cmd
}
