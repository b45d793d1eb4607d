package cpu

// Opcode byte values are architecturally fixed. Naming follows mnemonic +
// addressing mode, matching how this lineage's dispatch tables annotate
// each case with the assembly form (e.g. "ORA d,x").
const (
	opADCImmediate = 0x69
	opADCZeroPage  = 0x65
	opADCZeroPageX = 0x75
	opADCAbsolute  = 0x6D
	opADCAbsoluteX = 0x7D
	opADCAbsoluteY = 0x79
	opADCIndirectX = 0x61
	opADCIndirectY = 0x71

	opANDImmediate = 0x29
	opANDZeroPage  = 0x25
	opANDZeroPageX = 0x35
	opANDAbsolute  = 0x2D
	opANDAbsoluteX = 0x3D
	opANDAbsoluteY = 0x39
	opANDIndirectX = 0x21
	opANDIndirectY = 0x31

	opORAImmediate = 0x09
	opORAZeroPage  = 0x05
	opORAZeroPageX = 0x15
	opORAAbsolute  = 0x0D
	opORAAbsoluteX = 0x1D
	opORAAbsoluteY = 0x19
	opORAIndirectX = 0x01
	opORAIndirectY = 0x11

	opEORImmediate = 0x49
	opEORZeroPage  = 0x45
	opEORZeroPageX = 0x55
	opEORAbsolute  = 0x4D
	opEORAbsoluteX = 0x5D
	opEORAbsoluteY = 0x59
	opEORIndirectX = 0x41
	opEORIndirectY = 0x51

	opSBCImmediate = 0xE9
	opSBCZeroPage  = 0xE5
	opSBCZeroPageX = 0xF5
	opSBCAbsolute  = 0xED
	opSBCAbsoluteX = 0xFD
	opSBCAbsoluteY = 0xF9
	opSBCIndirectX = 0xE1
	opSBCIndirectY = 0xF1

	opCMPImmediate = 0xC9
	opCMPZeroPage  = 0xC5
	opCMPZeroPageX = 0xD5
	opCMPAbsolute  = 0xCD
	opCMPAbsoluteX = 0xDD
	opCMPAbsoluteY = 0xD9
	opCMPIndirectX = 0xC1
	opCMPIndirectY = 0xD1

	opCPXImmediate = 0xE0
	opCPXZeroPage  = 0xE4
	opCPXAbsolute  = 0xEC

	opCPYImmediate = 0xC0
	opCPYZeroPage  = 0xC4
	opCPYAbsolute  = 0xCC

	opBITZeroPage = 0x24
	opBITAbsolute = 0x2C

	opLDAImmediate = 0xA9
	opLDAZeroPage  = 0xA5
	opLDAZeroPageX = 0xB5
	opLDAAbsolute  = 0xAD
	opLDAAbsoluteX = 0xBD
	opLDAAbsoluteY = 0xB9
	opLDAIndirectX = 0xA1
	opLDAIndirectY = 0xB1

	opLDXImmediate = 0xA2
	opLDXZeroPage  = 0xA6
	opLDXZeroPageY = 0xB6
	opLDXAbsolute  = 0xAE
	opLDXAbsoluteY = 0xBE

	opLDYImmediate = 0xA0
	opLDYZeroPage  = 0xA4
	opLDYZeroPageX = 0xB4
	opLDYAbsolute  = 0xAC
	opLDYAbsoluteX = 0xBC

	opSTAZeroPage  = 0x85
	opSTAZeroPageX = 0x95
	opSTAAbsolute  = 0x8D
	opSTAAbsoluteX = 0x9D
	opSTAAbsoluteY = 0x99
	opSTAIndirectX = 0x81
	opSTAIndirectY = 0x91

	opSTXZeroPage  = 0x86
	opSTXZeroPageY = 0x96
	opSTXAbsolute  = 0x8E

	opSTYZeroPage  = 0x84
	opSTYZeroPageX = 0x94
	opSTYAbsolute  = 0x8C

	opTAX = 0xAA
	opTAY = 0xA8
	opTXA = 0x8A
	opTYA = 0x98
	opTSX = 0xBA
	opTXS = 0x9A

	opINX = 0xE8
	opINY = 0xC8
	opDEX = 0xCA
	opDEY = 0x88

	opCLC = 0x18
	opSEC = 0x38
	opCLI = 0x58
	opSEI = 0x78
	opCLD = 0xD8
	opSED = 0xF8
	opCLV = 0xB8

	opNOP = 0xEA
)
