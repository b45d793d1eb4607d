package cpu

// This file holds the per-mnemonic semantic handlers: small operation
// bodies that take the CPU and one operand byte (read family) or produce
// one (store family). Each is composed with an addressing-mode template in
// dispatch.go; none of them know which addressing mode supplied their
// operand.

// --- ADC / SBC --------------------------------------------------------------

// adc implements A ← A + M + C in binary mode, setting N, Z, C, V.
func adc(c *CPU, value uint8) {
	carry := uint16(0)
	if c.Flags&FlagCarry != 0 {
		carry = 1
	}
	sum := uint16(c.A) + uint16(value) + carry
	result := uint8(sum)
	c.overflowCheck(c.A, value, result)
	c.carryCheck(sum)
	c.loadRegister(&c.A, result)
}

// sbc implements A ← A − M − (1−C), identical to adc with the operand's
// bits inverted (so that "not borrow" falls naturally out of the same
// carry arithmetic as addition).
func sbc(c *CPU, value uint8) {
	adc(c, ^value)
}

// --- Logical ------------------------------------------------------------

func and(c *CPU, value uint8) { c.loadRegister(&c.A, c.A&value) }
func ora(c *CPU, value uint8) { c.loadRegister(&c.A, c.A|value) }
func eor(c *CPU, value uint8) { c.loadRegister(&c.A, c.A^value) }

// bit tests A & M without modifying A: N ← M bit 7, V ← M bit 6,
// Z ← (A & M) == 0.
func bit(c *CPU, value uint8) {
	c.zeroCheck(c.A & value)
	c.negativeCheck(value)
	c.setFlag(FlagOverflow, value&FlagOverflow != 0)
}

// --- Compare --------------------------------------------------------------

// compare computes reg − value with borrow = 0 (C set if reg >= value) and
// discards the result; only flags are affected.
func compare(c *CPU, reg, value uint8) {
	diff := uint16(reg) + uint16(^value) + 1
	c.carryCheck(diff)
	c.zeroCheck(uint8(diff))
	c.negativeCheck(uint8(diff))
}

func cmp(c *CPU, value uint8) { compare(c, c.A, value) }
func cpx(c *CPU, value uint8) { compare(c, c.X, value) }
func cpy(c *CPU, value uint8) { compare(c, c.Y, value) }

// --- Loads / stores ---------------------------------------------------------

func lda(c *CPU, value uint8) { c.loadRegister(&c.A, value) }
func ldx(c *CPU, value uint8) { c.loadRegister(&c.X, value) }
func ldy(c *CPU, value uint8) { c.loadRegister(&c.Y, value) }

func sta(c *CPU) uint8 { return c.A }
func stx(c *CPU) uint8 { return c.X }
func sty(c *CPU) uint8 { return c.Y }

// --- Transfers, increments, flag ops (implied addressing, 2 cycles) --------
//
// These take no operand: the opcode fetch is cycle 0 and the single
// following cycle both performs the effect and ends the instruction, same
// as this lineage's iCLC/iTAX-style handlers. The handlers themselves never
// touch memory; dispatch performs that cycle's dummy read at PC.

func (c *CPU) iTAX() (bool, error) { c.loadRegister(&c.X, c.A); return true, nil }
func (c *CPU) iTAY() (bool, error) { c.loadRegister(&c.Y, c.A); return true, nil }
func (c *CPU) iTXA() (bool, error) { c.loadRegister(&c.A, c.X); return true, nil }
func (c *CPU) iTYA() (bool, error) { c.loadRegister(&c.A, c.Y); return true, nil }
func (c *CPU) iTSX() (bool, error) { c.loadRegister(&c.X, c.S); return true, nil }

// iTXS copies X into S. Unlike the other transfers this does not touch
// N/Z: the stack pointer has no architectural flag relationship.
func (c *CPU) iTXS() (bool, error) { c.S = c.X; return true, nil }

func (c *CPU) iINX() (bool, error) { c.loadRegister(&c.X, c.X+1); return true, nil }
func (c *CPU) iINY() (bool, error) { c.loadRegister(&c.Y, c.Y+1); return true, nil }
func (c *CPU) iDEX() (bool, error) { c.loadRegister(&c.X, c.X-1); return true, nil }
func (c *CPU) iDEY() (bool, error) { c.loadRegister(&c.Y, c.Y-1); return true, nil }

func (c *CPU) iCLC() (bool, error) { c.setFlag(FlagCarry, false); return true, nil }
func (c *CPU) iSEC() (bool, error) { c.setFlag(FlagCarry, true); return true, nil }
func (c *CPU) iCLI() (bool, error) { c.setFlag(FlagInterruptDisable, false); return true, nil }
func (c *CPU) iSEI() (bool, error) { c.setFlag(FlagInterruptDisable, true); return true, nil }
func (c *CPU) iCLD() (bool, error) { c.setFlag(FlagDecimal, false); return true, nil }
func (c *CPU) iSED() (bool, error) { c.setFlag(FlagDecimal, true); return true, nil }
func (c *CPU) iCLV() (bool, error) { c.setFlag(FlagOverflow, false); return true, nil }

// iNOP does nothing beyond consuming the opcode's 2 cycles.
func (c *CPU) iNOP() (bool, error) { return true, nil }
