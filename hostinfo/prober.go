// Package hostinfo describes the machine the program runs on as a
// hardware.Computer.
package hostinfo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/disk"
	"github.com/shirou/gopsutil/mem"
)

// ErrNotDetected is returned by a Prober that cannot detect a component.
var ErrNotDetected = errors.New("not detected")

// A Prober reports the hardware of a machine.
type Prober interface {
	CPU(ctx context.Context) (string, error)
	RAM(ctx context.Context) (string, error)
	Storage(ctx context.Context) (string, error)
	GPU(ctx context.Context) (string, error)
}

// NewProber returns a Prober for the local machine. Storage is reported for
// the file system mounted at storagePath.
func NewProber(storagePath string) Prober {
	if storagePath == "" {
		storagePath = "/"
	}

	return &localProber{storagePath: storagePath}
}

type localProber struct {
	storagePath string
}

func (p *localProber) CPU(ctx context.Context) (string, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read cpu info: %w", err)
	}

	for _, info := range infos {
		name := strings.TrimSpace(info.ModelName)
		if name != "" {
			return name, nil
		}
	}

	return "", fmt.Errorf("cpu model: %w", ErrNotDetected)
}

func (p *localProber) RAM(ctx context.Context) (string, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read memory info: %w", err)
	}

	return FormatBytes(vm.Total), nil
}

func (p *localProber) Storage(ctx context.Context) (string, error) {
	usage, err := disk.UsageWithContext(ctx, p.storagePath)
	if err != nil {
		return "", fmt.Errorf(
			"failed to read disk usage of %s: %w", p.storagePath, err)
	}

	return FormatBytes(usage.Total), nil
}

func (p *localProber) GPU(_ context.Context) (string, error) {
	return "", fmt.Errorf("gpu: %w", ErrNotDetected)
}
