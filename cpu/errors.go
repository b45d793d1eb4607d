package cpu

import "fmt"

// UnimplementedOpcodeError is returned by StepCycle when current_opcode has
// no entry in the opcode table. It is fatal; the core never recovers from
// this on its own.
type UnimplementedOpcodeError struct {
	Opcode uint8
	PC     uint16
}

// Error implements the error interface.
func (e UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode 0x%02X fetched at PC 0x%04X", e.Opcode, e.PC)
}

// InvalidCycleError is returned when a template or handler is invoked with a
// currentCycle value outside its documented contract. This indicates a
// programmer error (a malformed opcode table entry, or a caller stepping a
// halted CPU) rather than anything recoverable at runtime.
type InvalidCycleError struct {
	Opcode   uint8
	Mnemonic string
	Cycle    int
}

// Error implements the error interface.
func (e InvalidCycleError) Error() string {
	return fmt.Sprintf("%s (opcode 0x%02X): invalid cycle %d", e.Mnemonic, e.Opcode, e.Cycle)
}
