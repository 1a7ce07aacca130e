package hostinfo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/sarchlab/computerbuilder/hardware"
)

// DescribeHost builds a Computer out of everything the prober can detect. A
// component that cannot be probed is left at its default.
func DescribeHost(
	ctx context.Context,
	p Prober,
	logger *slog.Logger,
) *hardware.Computer {
	if logger == nil {
		logger = slog.Default()
	}

	b := hardware.NewComputerBuilder()

	probes := []struct {
		component string
		probe     func(context.Context) (string, error)
		set       func(string) *hardware.ComputerBuilder
	}{
		{"cpu", p.CPU, b.SetCPU},
		{"ram", p.RAM, b.SetRAM},
		{"storage", p.Storage, b.SetStorage},
		{"gpu", p.GPU, b.SetGPU},
	}

	for _, pr := range probes {
		value, err := pr.probe(ctx)
		if err != nil {
			level := slog.LevelWarn
			if errors.Is(err, ErrNotDetected) {
				level = slog.LevelDebug
			}

			logger.Log(ctx, level, "Probe failed, using default",
				"component", pr.component, "error", err)

			continue
		}

		logger.Debug("Probed component",
			"component", pr.component, "value", value)
		pr.set(value)
	}

	return b.Build()
}

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// FormatBytes renders a byte count with binary units, rounded to the nearest
// whole unit, such as "16GB" or "2TB".
func FormatBytes(n uint64) string {
	value := float64(n)
	unit := 0

	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}

	rounded := math.Round(value)
	if rounded >= 1024 && unit < len(byteUnits)-1 {
		rounded = 1
		unit++
	}

	return fmt.Sprintf("%d%s", uint64(rounded), byteUnits[unit])
}
