package cpu

// fetchPC reads the byte at PC and advances PC. Every operand byte pulled
// from the instruction stream goes through this so PC always advances
// exactly once per byte fetched.
func (c *CPU) fetchPC(mem Memory) uint8 {
	v := mem.Load(c.PC)
	c.PC++
	return v
}

// readFunc is the semantic handler for a load-family instruction: it
// receives the operand byte once the addressing mode has fetched it.
type readFunc func(c *CPU, value uint8)

// writeFunc is the semantic handler for a store-family instruction: it
// supplies the byte to commit to the effective address.
type writeFunc func(c *CPU) uint8

// --- Immediate ---------------------------------------------------------
//
// 2 cycles total. Invalid for stores (there is no memory destination).

func (c *CPU) addrImmediate(mem Memory, f readFunc) (bool, error) {
	switch c.currentCycle {
	case 1:
		f(c, c.fetchPC(mem))
		return true, nil
	default:
		return true, InvalidCycleError{c.currentOpcode, "immediate", c.currentCycle}
	}
}

// --- Zero page -----------------------------------------------------------
//
// 3 cycles total for both load and store (no conditional fixup possible).

func (c *CPU) addrZeroPageLoad(mem Memory, f readFunc) (bool, error) {
	switch c.currentCycle {
	case 1:
		c.effectiveAddress = uint16(c.fetchPC(mem))
		return false, nil
	case 2:
		f(c, mem.Load(c.effectiveAddress))
		return true, nil
	default:
		return true, InvalidCycleError{c.currentOpcode, "zeropage", c.currentCycle}
	}
}

func (c *CPU) addrZeroPageStore(mem Memory, f writeFunc) (bool, error) {
	switch c.currentCycle {
	case 1:
		c.effectiveAddress = uint16(c.fetchPC(mem))
		return false, nil
	case 2:
		mem.Store(c.effectiveAddress, f(c))
		return true, nil
	default:
		return true, InvalidCycleError{c.currentOpcode, "zeropage store", c.currentCycle}
	}
}

// --- Zero page,X / Zero page,Y -------------------------------------------
//
// 4 cycles total for both load and store. The dummy load on cycle 2 is
// observable on the bus and must occur.

func (c *CPU) addrZeroPageIndexedLoad(mem Memory, index uint8, f readFunc) (bool, error) {
	switch c.currentCycle {
	case 1:
		c.effectiveAddress = uint16(c.fetchPC(mem))
		return false, nil
	case 2:
		_ = mem.Load(c.effectiveAddress)
		c.effectiveAddress = uint16(uint8(c.effectiveAddress) + index)
		return false, nil
	case 3:
		f(c, mem.Load(c.effectiveAddress))
		return true, nil
	default:
		return true, InvalidCycleError{c.currentOpcode, "zeropage indexed", c.currentCycle}
	}
}

func (c *CPU) addrZeroPageIndexedStore(mem Memory, index uint8, f writeFunc) (bool, error) {
	switch c.currentCycle {
	case 1:
		c.effectiveAddress = uint16(c.fetchPC(mem))
		return false, nil
	case 2:
		_ = mem.Load(c.effectiveAddress)
		c.effectiveAddress = uint16(uint8(c.effectiveAddress) + index)
		return false, nil
	case 3:
		mem.Store(c.effectiveAddress, f(c))
		return true, nil
	default:
		return true, InvalidCycleError{c.currentOpcode, "zeropage indexed store", c.currentCycle}
	}
}

// --- Absolute --------------------------------------------------------------
//
// 4 cycles total for both load and store.

func (c *CPU) addrAbsoluteLoad(mem Memory, f readFunc) (bool, error) {
	switch c.currentCycle {
	case 1:
		c.effectiveAddress = uint16(c.fetchPC(mem))
		return false, nil
	case 2:
		c.effectiveAddress |= uint16(c.fetchPC(mem)) << 8
		return false, nil
	case 3:
		f(c, mem.Load(c.effectiveAddress))
		return true, nil
	default:
		return true, InvalidCycleError{c.currentOpcode, "absolute", c.currentCycle}
	}
}

func (c *CPU) addrAbsoluteStore(mem Memory, f writeFunc) (bool, error) {
	switch c.currentCycle {
	case 1:
		c.effectiveAddress = uint16(c.fetchPC(mem))
		return false, nil
	case 2:
		c.effectiveAddress |= uint16(c.fetchPC(mem)) << 8
		return false, nil
	case 3:
		mem.Store(c.effectiveAddress, f(c))
		return true, nil
	default:
		return true, InvalidCycleError{c.currentOpcode, "absolute store", c.currentCycle}
	}
}

// --- Absolute,X / Absolute,Y -----------------------------------------------
//
// Loads take 4 cycles, or 5 if the index addition crosses a page. Stores
// always take 5 cycles: the chip cannot know before the fixup whether the
// store is safe to commit, so it always performs the speculative dummy
// read at the uncorrected address and then writes on the following cycle.

func (c *CPU) addrAbsoluteIndexedLoad(mem Memory, index uint8, f readFunc) (bool, error) {
	switch c.currentCycle {
	case 1:
		c.effectiveAddress = uint16(c.fetchPC(mem))
		return false, nil
	case 2:
		high := c.fetchPC(mem)
		low, carry := addCarry8(uint8(c.effectiveAddress), index)
		c.effectiveAddress = uint16(high)<<8 | uint16(low)
		c.setInternalFlag(internalFlagEffectiveAddrCarry, carry)
		return false, nil
	case 3:
		val := mem.Load(c.effectiveAddress)
		if c.internalFlag(internalFlagEffectiveAddrCarry) {
			// Dummy read landed on the wrong page; fix up and read again.
			c.effectiveAddress += 0x100
			return false, nil
		}
		f(c, val)
		return true, nil
	case 4:
		f(c, mem.Load(c.effectiveAddress))
		return true, nil
	default:
		return true, InvalidCycleError{c.currentOpcode, "absolute indexed", c.currentCycle}
	}
}

func (c *CPU) addrAbsoluteIndexedStore(mem Memory, index uint8, f writeFunc) (bool, error) {
	switch c.currentCycle {
	case 1:
		c.effectiveAddress = uint16(c.fetchPC(mem))
		return false, nil
	case 2:
		high := c.fetchPC(mem)
		low, carry := addCarry8(uint8(c.effectiveAddress), index)
		c.effectiveAddress = uint16(high)<<8 | uint16(low)
		c.setInternalFlag(internalFlagEffectiveAddrCarry, carry)
		return false, nil
	case 3:
		_ = mem.Load(c.effectiveAddress)
		if c.internalFlag(internalFlagEffectiveAddrCarry) {
			c.effectiveAddress += 0x100
		}
		return false, nil
	case 4:
		mem.Store(c.effectiveAddress, f(c))
		return true, nil
	default:
		return true, InvalidCycleError{c.currentOpcode, "absolute indexed store", c.currentCycle}
	}
}

// --- (Indirect,X) ------------------------------------------------------------
//
// 6 cycles total for both load and store: the pointer lives entirely in the
// zero page so there is never a page-cross fixup to speculate about.

func (c *CPU) addrIndirectXLoad(mem Memory, f readFunc) (bool, error) {
	switch c.currentCycle {
	case 1:
		c.pointerAddress = c.fetchPC(mem)
		return false, nil
	case 2:
		_ = mem.Load(uint16(c.pointerAddress))
		c.pointerAddress += c.X
		return false, nil
	case 3:
		c.effectiveAddress = uint16(mem.Load(uint16(c.pointerAddress)))
		return false, nil
	case 4:
		high := mem.Load(uint16(c.pointerAddress + 1))
		c.effectiveAddress |= uint16(high) << 8
		return false, nil
	case 5:
		f(c, mem.Load(c.effectiveAddress))
		return true, nil
	default:
		return true, InvalidCycleError{c.currentOpcode, "indirect,x", c.currentCycle}
	}
}

func (c *CPU) addrIndirectXStore(mem Memory, f writeFunc) (bool, error) {
	switch c.currentCycle {
	case 1:
		c.pointerAddress = c.fetchPC(mem)
		return false, nil
	case 2:
		_ = mem.Load(uint16(c.pointerAddress))
		c.pointerAddress += c.X
		return false, nil
	case 3:
		c.effectiveAddress = uint16(mem.Load(uint16(c.pointerAddress)))
		return false, nil
	case 4:
		high := mem.Load(uint16(c.pointerAddress + 1))
		c.effectiveAddress |= uint16(high) << 8
		return false, nil
	case 5:
		mem.Store(c.effectiveAddress, f(c))
		return true, nil
	default:
		return true, InvalidCycleError{c.currentOpcode, "indirect,x store", c.currentCycle}
	}
}

// --- (Indirect),Y --------------------------------------------------------------
//
// Loads take 5 cycles, or 6 if adding Y crosses a page. Stores always take
// 6 cycles, for the same reason absolute-indexed stores do.

func (c *CPU) addrIndirectYLoad(mem Memory, f readFunc) (bool, error) {
	switch c.currentCycle {
	case 1:
		c.pointerAddress = c.fetchPC(mem)
		return false, nil
	case 2:
		c.effectiveAddress = uint16(mem.Load(uint16(c.pointerAddress)))
		return false, nil
	case 3:
		high := mem.Load(uint16(c.pointerAddress + 1))
		low, carry := addCarry8(uint8(c.effectiveAddress), c.Y)
		c.effectiveAddress = uint16(high)<<8 | uint16(low)
		c.setInternalFlag(internalFlagEffectiveAddrCarry, carry)
		return false, nil
	case 4:
		val := mem.Load(c.effectiveAddress)
		if c.internalFlag(internalFlagEffectiveAddrCarry) {
			c.effectiveAddress += 0x100
			return false, nil
		}
		f(c, val)
		return true, nil
	case 5:
		f(c, mem.Load(c.effectiveAddress))
		return true, nil
	default:
		return true, InvalidCycleError{c.currentOpcode, "indirect,y", c.currentCycle}
	}
}

func (c *CPU) addrIndirectYStore(mem Memory, f writeFunc) (bool, error) {
	switch c.currentCycle {
	case 1:
		c.pointerAddress = c.fetchPC(mem)
		return false, nil
	case 2:
		c.effectiveAddress = uint16(mem.Load(uint16(c.pointerAddress)))
		return false, nil
	case 3:
		high := mem.Load(uint16(c.pointerAddress + 1))
		low, carry := addCarry8(uint8(c.effectiveAddress), c.Y)
		c.effectiveAddress = uint16(high)<<8 | uint16(low)
		c.setInternalFlag(internalFlagEffectiveAddrCarry, carry)
		return false, nil
	case 4:
		_ = mem.Load(c.effectiveAddress)
		if c.internalFlag(internalFlagEffectiveAddrCarry) {
			c.effectiveAddress += 0x100
		}
		return false, nil
	case 5:
		mem.Store(c.effectiveAddress, f(c))
		return true, nil
	default:
		return true, InvalidCycleError{c.currentOpcode, "indirect,y store", c.currentCycle}
	}
}

// addCarry8 adds b to a as unsigned 8 bit values wrapping modulo 256, and
// reports whether the add carried out of the low byte. Used by indexed
// addressing modes to detect page crossings without touching the
// architectural CARRY flag.
func addCarry8(a, b uint8) (sum uint8, carry bool) {
	wide := uint16(a) + uint16(b)
	return uint8(wide), wide >= 0x100
}

// setInternalFlag/internalFlag manage the private per-instruction scratch
// bit-set. This is distinct from Flags (the architectural status register)
// precisely so that page-cross bookkeeping never leaks into a caller's view
// of CARRY or any other visible bit.
func (c *CPU) setInternalFlag(bit uint8, cond bool) {
	if cond {
		c.internalFlags |= bit
	} else {
		c.internalFlags &^= bit
	}
}

func (c *CPU) internalFlag(bit uint8) bool {
	return c.internalFlags&bit != 0
}
