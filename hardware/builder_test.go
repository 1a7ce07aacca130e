package hardware

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ComputerBuilder", func() {
	var b *ComputerBuilder

	BeforeEach(func() {
		b = NewComputerBuilder()
	})

	It("should build a computer with defaults", func() {
		c := b.Build()

		Expect(c.CPU()).To(Equal(DefaultCPU))
		Expect(c.RAM()).To(Equal(DefaultRAM))
		Expect(c.Storage()).To(Equal(DefaultStorage))

		_, hasGPU := c.GPU()
		Expect(hasGPU).To(BeFalse())
	})

	It("should build a basic computer", func() {
		c := b.
			SetCPU("Intel Core i3").
			SetRAM("8GB").
			SetStorage("256GB").
			Build()

		Expect(c.CPU()).To(Equal("Intel Core i3"))
		Expect(c.RAM()).To(Equal("8GB"))
		Expect(c.Storage()).To(Equal("256GB"))

		_, hasGPU := c.GPU()
		Expect(hasGPU).To(BeFalse())
	})

	It("should build a gaming computer", func() {
		c := b.
			SetCPU("Intel Core i7").
			SetRAM("16GB").
			SetStorage("2TB").
			SetGPU("NVIDIA GeForce RTX 3060").
			Build()

		Expect(c.CPU()).To(Equal("Intel Core i7"))
		Expect(c.RAM()).To(Equal("16GB"))
		Expect(c.Storage()).To(Equal("2TB"))

		gpu, hasGPU := c.GPU()
		Expect(hasGPU).To(BeTrue())
		Expect(gpu).To(Equal("NVIDIA GeForce RTX 3060"))
	})

	It("should keep the last value set for a field", func() {
		c := b.
			SetRAM("8GB").
			SetCPU("Intel Core i3").
			SetRAM("32GB").
			SetCPU("AMD Ryzen 5").
			Build()

		Expect(c.CPU()).To(Equal("AMD Ryzen 5"))
		Expect(c.RAM()).To(Equal("32GB"))
		Expect(c.Storage()).To(Equal(DefaultStorage))
	})

	It("should not depend on the order of independent setters", func() {
		chained := NewComputerBuilder().SetCPU("a").SetRAM("b").Build()

		other := NewComputerBuilder()
		other.SetRAM("b")
		other.SetCPU("a")
		separate := other.Build()

		Expect(*separate).To(Equal(*chained))
	})

	It("should accept empty values", func() {
		c := b.SetCPU("").SetGPU("").Build()

		Expect(c.CPU()).To(BeEmpty())

		gpu, hasGPU := c.GPU()
		Expect(hasGPU).To(BeTrue())
		Expect(gpu).To(BeEmpty())
	})

	It("should return the same computer on every build", func() {
		b.SetCPU("Intel Core i5")

		first := b.Build()
		second := b.Build()

		Expect(second).To(BeIdenticalTo(first))
		Expect(second.CPU()).To(Equal("Intel Core i5"))
	})

	It("should keep modifying the computer after build", func() {
		c := b.SetCPU("Intel Core i5").Build()

		b.SetGPU("AMD Radeon RX 6600")

		gpu, hasGPU := c.GPU()
		Expect(hasGPU).To(BeTrue())
		Expect(gpu).To(Equal("AMD Radeon RX 6600"))
	})

	It("should give every builder its own computer", func() {
		first := NewComputerBuilder().SetCPU("x").Build()
		second := NewComputerBuilder().Build()

		Expect(second).NotTo(BeIdenticalTo(first))
		Expect(second.CPU()).To(Equal(DefaultCPU))
	})

	It("should be usable as a zero value", func() {
		var zero ComputerBuilder

		c := zero.SetCPU("Intel Core i3").Build()

		Expect(c.CPU()).To(Equal("Intel Core i3"))
		Expect(c.RAM()).To(Equal(DefaultRAM))
		Expect(c.Storage()).To(Equal(DefaultStorage))
		Expect(zero.Build()).To(BeIdenticalTo(c))
	})

	It("should build defaults from a zero value", func() {
		var zero ComputerBuilder

		c := zero.Build()

		Expect(c.CPU()).To(Equal(DefaultCPU))
		_, hasGPU := c.GPU()
		Expect(hasGPU).To(BeFalse())
	})
})
