// Package memory defines the basic interfaces for working with a 6502
// family memory map. Since each implementation that is emulated has
// specific mappings (including shadowed regions and MMIO) this is defined
// as an interface; the CPU core never depends on a concrete layout.
package memory

import (
	"fmt"
	"math/rand"
	"time"
)

// Bank is a byte-addressable memory region that can be chained under a
// parent (for mirrored/aliased address spaces) and that remembers the last
// value that crossed its data bus, since some peripherals depend on that
// transient state for side effects.
type Bank interface {
	// Load returns the data byte stored at addr.
	Load(addr uint16) uint8
	// Store updates addr with the new value. For ROM addresses this is simply a no-op without
	// any error.
	Store(addr uint16, val uint8)
	// PowerOn performs power on reset of the memory. This is implementation specific as to
	// whether it's randomized or preset to all zeros.
	PowerOn()
	// Parent holds a reference (if non-nil) to the next level memory controller. A chain
	// of these can be created in order to find the top one and be able to query items
	// such as the databus state (from the last value to go over it).
	Parent() Bank
	// DatabusVal returns the last value seen to go across on the data bus.
	DatabusVal() uint8
}

// LatestDatabusVal hunts up a chain of Banks until it finds the outermost one and
// returns the DatabusVal from it.
func LatestDatabusVal(b Bank) uint8 {
	if b.Parent() != nil {
		return LatestDatabusVal(b.Parent())
	}
	return b.DatabusVal()
}

// flatBank implements a standard Load/Store interface to an address space for 8 bit systems.
// If this is mapped into a larger memory map it's up to a parent Bank to properly mask addr
// before calling Load/Store.
type flatBank struct {
	mem        []uint8
	parent     Bank
	databusVal uint8
}

// NewFlatBank creates a R/W RAM bank of the given size. Size must be a power of 2 and no
// larger than 64k, since addresses are 16 bits wide.
func NewFlatBank(size int, parent Bank) (Bank, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("invalid size: %d must be a power of 2", size)
	}
	if size > 1<<16 {
		return nil, fmt.Errorf("invalid size: %d is bigger than 64k", size)
	}
	b := &flatBank{
		parent: parent,
		mem:    make([]uint8, size),
	}
	return b, nil
}

// Load implements the interface for Bank. Address is masked to fit the backing buffer.
func (r *flatBank) Load(addr uint16) uint8 {
	addr &= uint16(len(r.mem) - 1)
	val := r.mem[addr]
	r.databusVal = val
	return val
}

// Store implements the interface for Bank. Address is masked to fit the backing buffer.
func (r *flatBank) Store(addr uint16, val uint8) {
	addr &= uint16(len(r.mem) - 1)
	r.databusVal = val
	r.mem[addr] = val
}

// PowerOn implements the interface for Bank and randomizes the RAM, matching real hardware
// where RAM contents are undefined until written.
func (r *flatBank) PowerOn() {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range r.mem {
		r.mem[i] = uint8(rnd.Intn(256))
	}
}

// Parent implements the interface for returning a possible parent Bank.
func (r *flatBank) Parent() Bank {
	return r.parent
}

// DatabusVal returns the most recent value seen on the data bus.
func (r *flatBank) DatabusVal() uint8 {
	return r.databusVal
}
