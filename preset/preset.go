// Package preset provides named computer configurations that can be replayed
// onto a hardware.ComputerBuilder.
//
// Presets are declared in HCL:
//
//	computer "gaming" {
//	  cpu     = "Intel Core i7"
//	  ram     = "16GB"
//	  storage = "2TB"
//	  gpu     = env.GAMING_GPU
//	}
//
// Every attribute is optional. Attributes that are left out are not applied,
// so the builder keeps whatever it already has for those fields. Environment
// variables are available through the env object.
package preset

import (
	"errors"
	"fmt"

	"github.com/sarchlab/computerbuilder/hardware"
)

var (
	// ErrDuplicatePreset is returned when two presets share a name.
	ErrDuplicatePreset = errors.New("duplicate preset")

	// ErrUnknownPreset is returned when a requested preset does not exist.
	ErrUnknownPreset = errors.New("unknown preset")
)

// Preset is a named, possibly partial, computer configuration. A nil field
// means the preset does not configure it.
type Preset struct {
	Name    string
	CPU     *string
	RAM     *string
	Storage *string
	GPU     *string
}

// Apply calls the builder setter of every field the preset configures and
// returns the builder.
func (p Preset) Apply(b *hardware.ComputerBuilder) *hardware.ComputerBuilder {
	if p.CPU != nil {
		b.SetCPU(*p.CPU)
	}

	if p.RAM != nil {
		b.SetRAM(*p.RAM)
	}

	if p.Storage != nil {
		b.SetStorage(*p.Storage)
	}

	if p.GPU != nil {
		b.SetGPU(*p.GPU)
	}

	return b
}

// Build creates a new computer from the preset alone.
func (p Preset) Build() *hardware.Computer {
	return p.Apply(hardware.NewComputerBuilder()).Build()
}

// Set is an ordered collection of presets with unique names.
type Set struct {
	presets []Preset
	index   map[string]int
}

func newSet() Set {
	return Set{index: make(map[string]int)}
}

func (s *Set) add(p Preset) error {
	if _, found := s.index[p.Name]; found {
		return fmt.Errorf("%w: %q", ErrDuplicatePreset, p.Name)
	}

	s.index[p.Name] = len(s.presets)
	s.presets = append(s.presets, p)

	return nil
}

// Get returns the preset with the given name.
func (s Set) Get(name string) (Preset, bool) {
	i, found := s.index[name]
	if !found {
		return Preset{}, false
	}

	return s.presets[i], true
}

// Lookup returns the preset with the given name, or an error wrapping
// ErrUnknownPreset.
func (s Set) Lookup(name string) (Preset, error) {
	p, found := s.Get(name)
	if !found {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	return p, nil
}

// Names returns the preset names in declaration order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s.presets))
	for _, p := range s.presets {
		names = append(names, p.Name)
	}

	return names
}

// Len returns the number of presets.
func (s Set) Len() int {
	return len(s.presets)
}
