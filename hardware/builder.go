package hardware

// ComputerBuilder assembles a Computer one field at a time. Setters can be
// called in any order, any number of times, and can be chained. Fields that
// are never set keep their default values.
//
// A builder owns a single Computer for its whole life. Build hands that
// Computer out without detaching it, so setters called after Build still
// modify the Computer that was returned. Use one builder per computer if the
// results must not share state.
//
// The zero value is ready to use; its Computer is created with defaults on
// first use.
type ComputerBuilder struct {
	computer *Computer
}

// NewComputerBuilder creates a builder holding a Computer with all fields set
// to their defaults.
func NewComputerBuilder() *ComputerBuilder {
	return &ComputerBuilder{
		computer: newComputer(),
	}
}

func (b *ComputerBuilder) owned() *Computer {
	if b.computer == nil {
		b.computer = newComputer()
	}

	return b.computer
}

// SetCPU sets the processor.
func (b *ComputerBuilder) SetCPU(cpu string) *ComputerBuilder {
	b.owned().cpu = cpu
	return b
}

// SetRAM sets the memory.
func (b *ComputerBuilder) SetRAM(ram string) *ComputerBuilder {
	b.owned().ram = ram
	return b
}

// SetStorage sets the storage.
func (b *ComputerBuilder) SetStorage(storage string) *ComputerBuilder {
	b.owned().storage = storage
	return b
}

// SetGPU sets the graphics card.
func (b *ComputerBuilder) SetGPU(gpu string) *ComputerBuilder {
	c := b.owned()
	c.gpu = gpu
	c.hasGPU = true

	return b
}

// Build returns the Computer. Calling Build again returns the same Computer.
func (b *ComputerBuilder) Build() *Computer {
	return b.owned()
}
