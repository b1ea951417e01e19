package device

// BankedMemory multiplexes count independent same-sized flat memories
// behind a single address window; the active one is chosen by mb, set via
// SetMB (the CPU does this whenever the MB register is written).
type BankedMemory struct {
	mb    uint16
	banks []*Memory
	size  int
}

// NewBankedMemory allocates count banks of size bytes each, bank 0 active.
func NewBankedMemory(count int, size int) *BankedMemory {
	banks := make([]*Memory, count)
	for i := range banks {
		banks[i] = NewMemory(size)
	}
	return &BankedMemory{banks: banks, size: size}
}

func (b *BankedMemory) active() *Memory {
	return b.banks[b.mb]
}

func (b *BankedMemory) GetU8(addr int) uint8      { return b.active().GetU8(addr) }
func (b *BankedMemory) SetU8(addr int, v uint8)   { b.active().SetU8(addr, v) }
func (b *BankedMemory) GetU16(addr int) uint16    { return b.active().GetU16(addr) }
func (b *BankedMemory) SetU16(addr int, v uint16) { b.active().SetU16(addr, v) }
func (b *BankedMemory) Len() int                  { return b.size }
func (b *BankedMemory) SetMB(mb uint16)           { b.mb = mb }
