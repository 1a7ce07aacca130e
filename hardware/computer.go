// Package hardware describes computers and how to assemble them.
package hardware

import (
	"fmt"
	"io"
	"os"
)

// Values held by a Computer whose fields were never configured.
const (
	DefaultCPU     = "cpu - not defined"
	DefaultRAM     = "ram - not defined"
	DefaultStorage = "storage - not defined"
)

// NoGPU is rendered in place of the GPU when the computer does not have one.
const NoGPU = "no tiene GPU"

// Computer is the configuration of a single machine. It is created and
// mutated by a ComputerBuilder. A Computer declared directly, rather than
// obtained from a builder, has empty fields instead of the defaults.
type Computer struct {
	cpu     string
	ram     string
	storage string

	gpu    string
	hasGPU bool
}

func newComputer() *Computer {
	return &Computer{
		cpu:     DefaultCPU,
		ram:     DefaultRAM,
		storage: DefaultStorage,
	}
}

// CPU returns the processor of the computer.
func (c *Computer) CPU() string {
	return c.cpu
}

// RAM returns the memory of the computer.
func (c *Computer) RAM() string {
	return c.ram
}

// Storage returns the storage of the computer.
func (c *Computer) Storage() string {
	return c.storage
}

// GPU returns the graphics card of the computer. The second return value is
// false if the computer has no GPU.
func (c *Computer) GPU() (string, bool) {
	return c.gpu, c.hasGPU
}

// displayedGPU is the GPU as shown to users. An empty GPU is shown as NoGPU.
func (c *Computer) displayedGPU() string {
	if c.gpu == "" {
		return NoGPU
	}

	return c.gpu
}

// Configuration returns the text block printed by DisplayConfiguration.
func (c *Computer) Configuration() string {
	return fmt.Sprintf(`
      CPU: %s
      RAM: %s
      Storage: %s
      GPU: %s
    `, c.cpu, c.ram, c.storage, c.displayedGPU())
}

// WriteConfiguration writes the configuration block, followed by a newline,
// to w.
func (c *Computer) WriteConfiguration(w io.Writer) error {
	_, err := fmt.Fprintln(w, c.Configuration())
	return err
}

// DisplayConfiguration prints the configuration to the standard output.
func (c *Computer) DisplayConfiguration() {
	_ = c.WriteConfiguration(os.Stdout)
}

func (c *Computer) String() string {
	return fmt.Sprintf("CPU=%q RAM=%q Storage=%q GPU=%q",
		c.cpu, c.ram, c.storage, c.displayedGPU())
}
