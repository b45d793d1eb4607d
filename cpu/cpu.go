// Package cpu implements the dispatch and execution engine for a subset of
// the MOS 6502 instruction set: the arithmetic/logic/transfer/load/store
// and flag instructions, stepped one bus cycle at a time. Branches, jumps,
// stack operations, read-modify-write instructions, BRK/RTI/RTS/JSR,
// interrupt sequencing, and the memory map itself are deliberately out of
// scope here; they are named as interfaces the core consumes (Memory) or
// exposes (irq.Sender) without this package implementing their behavior.
package cpu

import (
	"fmt"

	"github.com/student6502/core/irq"
)

// Status register bit positions. These are architecturally fixed.
const (
	FlagCarry            = uint8(0x01)
	FlagZero             = uint8(0x02)
	FlagInterruptDisable = uint8(0x04)
	FlagDecimal          = uint8(0x08)
	FlagBreak            = uint8(0x10)
	FlagIgnored          = uint8(0x20) // Always set on real hardware; never repurposed as scratch here.
	FlagOverflow         = uint8(0x40)
	FlagNegative         = uint8(0x80)
)

// Memory is the bus the dispatch engine reads and writes through. Every
// cycle performs exactly one Load or Store (or a "dummy" Load whose result
// is discarded but whose occurrence is part of the contract). All dummy
// reads go through Load, since MMIO observers depend on it.
type Memory interface {
	Load(addr uint16) uint8
	Store(addr uint16, value uint8)
}

// CPU holds the 6502 register file plus the per-instruction scratch state
// needed to resume a partially-executed instruction across calls to
// StepCycle.
type CPU struct {
	A     uint8  // Accumulator
	X     uint8  // X index register
	Y     uint8  // Y index register
	S     uint8  // Stack pointer. TXS writes it; pushes/pops are out of scope of this core.
	Flags uint8  // Status register
	PC    uint16 // Program counter

	// Per-instruction execution state.
	currentOpcode    uint8
	currentCycle     int
	effectiveAddress uint16
	pointerAddress   uint8
	internalFlags    uint8 // private scratch; never exposed via Flags. See internalFlagEffectiveAddrCarry.
	opcodePC         uint16 // PC at which currentOpcode was fetched, for diagnostics.

	// Interrupt is an optional hook a caller can install so that external
	// interrupt-sequencing logic built around this core has a standard
	// place to hang an IRQ/NMI source. StepCycle never reads it;
	// InterruptPending exists purely so a caller's own dispatch loop can
	// poll it between instructions without inventing its own seam.
	Interrupt irq.Sender
}

// internalFlagEffectiveAddrCarry records whether the low-byte add during an
// indexed/indirect-Y addressing mode crossed a page. It cannot reuse the
// architectural CARRY bit because the affected instructions are specified
// to leave CARRY unchanged; see DESIGN.md for why this core also avoids
// repurposing the always-one IGNORED bit for the same purpose, unlike one
// reference implementation of this system.
const internalFlagEffectiveAddrCarry = uint8(0x01)

// New returns a CPU powered on in a deterministic state: all registers
// zero, status register holding only the architectural always-one bit.
func New() *CPU {
	return &CPU{
		Flags: FlagIgnored,
	}
}

// CurrentCycle returns the zero-based cycle count since the opcode fetch of
// the instruction presently executing. It is 0 only between instructions.
func (c *CPU) CurrentCycle() int {
	return c.currentCycle
}

// CurrentOpcode returns the opcode byte of the instruction presently
// executing (valid once CurrentCycle() > 0).
func (c *CPU) CurrentOpcode() uint8 {
	return c.currentOpcode
}

// InterruptPending reports whether an installed Interrupt sender is
// currently held high. It does not affect dispatch; it exists only as a
// convenience for callers composing interrupt sequencing around this core.
func (c *CPU) InterruptPending() bool {
	return c.Interrupt != nil && c.Interrupt.Raised()
}

// String renders the register file for diagnostics, mirroring how this
// lineage dumps CPU state on a fatal dispatch error.
func (c *CPU) String() string {
	return fmt.Sprintf("A=%02X X=%02X Y=%02X S=%02X P=%02X PC=%04X op=%02X cycle=%d addr=%04X ptr=%02X",
		c.A, c.X, c.Y, c.S, c.Flags, c.PC, c.currentOpcode, c.currentCycle, c.effectiveAddress, c.pointerAddress)
}

// StepCycle advances the CPU by exactly one bus cycle, dispatching to
// whichever (opcode, addressing-mode) handler is presently executing.
//
// On cycle 0 of an instruction it fetches the opcode byte at PC, advances
// PC, and returns. On every subsequent cycle it routes to the opcode's
// handler; when the handler reports completion, currentCycle resets to 0
// so the following call starts a new instruction.
func (c *CPU) StepCycle(mem Memory) error {
	if c.currentCycle == 0 {
		c.opcodePC = c.PC
		c.currentOpcode = mem.Load(c.PC)
		c.PC++
		c.currentCycle = 1
		return nil
	}

	done, err := c.dispatch(mem)
	if err != nil {
		return err
	}
	if done {
		c.currentCycle = 0
		c.effectiveAddress = 0
		c.pointerAddress = 0
		c.internalFlags = 0
		return nil
	}
	c.currentCycle++
	return nil
}
