// Package device implements the memory hierarchy: the narrow Device
// interface and its four implementations (flat Memory, BankedMemory,
// MemoryMapper, Screen). u16 access is always big-endian and never
// straddles two devices — each multi-byte access is delegated whole to a
// single device.
package device

// Device is the interface every addressable component of the machine
// implements: flat RAM, banked RAM, the address decoder itself, and the
// screen.
type Device interface {
	GetU8(addr int) uint8
	GetU16(addr int) uint16
	SetU8(addr int, v uint8)
	SetU16(addr int, v uint16)
	Len() int
	// SetMB notifies the device that the CPU's MB register changed. Only
	// BankedMemory and MemoryMapper (which broadcasts) react to this; flat
	// Memory and Screen ignore it.
	SetMB(mb uint16)
}
