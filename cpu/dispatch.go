package cpu

// dispatch routes the currently-fetched opcode to its (mnemonic,
// addressing-mode) handler. It is only called once currentCycle > 0; the
// opcode-fetch cycle itself is handled directly by StepCycle.
//
// A 256-entry table indexed by opcode byte would serve equally well (see
// SPEC_FULL.md); this core uses a switch over the opcode, matching how this
// lineage's own dispatch tables are expressed.
func (c *CPU) dispatch(mem Memory) (bool, error) {
	switch c.currentOpcode {
	case opTAX, opTAY, opTXA, opTYA, opTSX, opTXS, opINX, opINY, opDEX, opDEY,
		opCLC, opSEC, opCLI, opSEI, opCLD, opSED, opCLV, opNOP:
		// Implied-mode instructions still drive the bus on their second
		// cycle: a dummy read of the byte at PC, which is not advanced.
		_ = mem.Load(c.PC)
	}

	switch c.currentOpcode {
	// ADC
	case opADCImmediate:
		return c.addrImmediate(mem, adc)
	case opADCZeroPage:
		return c.addrZeroPageLoad(mem, adc)
	case opADCZeroPageX:
		return c.addrZeroPageIndexedLoad(mem, c.X, adc)
	case opADCAbsolute:
		return c.addrAbsoluteLoad(mem, adc)
	case opADCAbsoluteX:
		return c.addrAbsoluteIndexedLoad(mem, c.X, adc)
	case opADCAbsoluteY:
		return c.addrAbsoluteIndexedLoad(mem, c.Y, adc)
	case opADCIndirectX:
		return c.addrIndirectXLoad(mem, adc)
	case opADCIndirectY:
		return c.addrIndirectYLoad(mem, adc)

	// AND
	case opANDImmediate:
		return c.addrImmediate(mem, and)
	case opANDZeroPage:
		return c.addrZeroPageLoad(mem, and)
	case opANDZeroPageX:
		return c.addrZeroPageIndexedLoad(mem, c.X, and)
	case opANDAbsolute:
		return c.addrAbsoluteLoad(mem, and)
	case opANDAbsoluteX:
		return c.addrAbsoluteIndexedLoad(mem, c.X, and)
	case opANDAbsoluteY:
		return c.addrAbsoluteIndexedLoad(mem, c.Y, and)
	case opANDIndirectX:
		return c.addrIndirectXLoad(mem, and)
	case opANDIndirectY:
		return c.addrIndirectYLoad(mem, and)

	// ORA
	case opORAImmediate:
		return c.addrImmediate(mem, ora)
	case opORAZeroPage:
		return c.addrZeroPageLoad(mem, ora)
	case opORAZeroPageX:
		return c.addrZeroPageIndexedLoad(mem, c.X, ora)
	case opORAAbsolute:
		return c.addrAbsoluteLoad(mem, ora)
	case opORAAbsoluteX:
		return c.addrAbsoluteIndexedLoad(mem, c.X, ora)
	case opORAAbsoluteY:
		return c.addrAbsoluteIndexedLoad(mem, c.Y, ora)
	case opORAIndirectX:
		return c.addrIndirectXLoad(mem, ora)
	case opORAIndirectY:
		return c.addrIndirectYLoad(mem, ora)

	// EOR
	case opEORImmediate:
		return c.addrImmediate(mem, eor)
	case opEORZeroPage:
		return c.addrZeroPageLoad(mem, eor)
	case opEORZeroPageX:
		return c.addrZeroPageIndexedLoad(mem, c.X, eor)
	case opEORAbsolute:
		return c.addrAbsoluteLoad(mem, eor)
	case opEORAbsoluteX:
		return c.addrAbsoluteIndexedLoad(mem, c.X, eor)
	case opEORAbsoluteY:
		return c.addrAbsoluteIndexedLoad(mem, c.Y, eor)
	case opEORIndirectX:
		return c.addrIndirectXLoad(mem, eor)
	case opEORIndirectY:
		return c.addrIndirectYLoad(mem, eor)

	// SBC
	case opSBCImmediate:
		return c.addrImmediate(mem, sbc)
	case opSBCZeroPage:
		return c.addrZeroPageLoad(mem, sbc)
	case opSBCZeroPageX:
		return c.addrZeroPageIndexedLoad(mem, c.X, sbc)
	case opSBCAbsolute:
		return c.addrAbsoluteLoad(mem, sbc)
	case opSBCAbsoluteX:
		return c.addrAbsoluteIndexedLoad(mem, c.X, sbc)
	case opSBCAbsoluteY:
		return c.addrAbsoluteIndexedLoad(mem, c.Y, sbc)
	case opSBCIndirectX:
		return c.addrIndirectXLoad(mem, sbc)
	case opSBCIndirectY:
		return c.addrIndirectYLoad(mem, sbc)

	// CMP
	case opCMPImmediate:
		return c.addrImmediate(mem, cmp)
	case opCMPZeroPage:
		return c.addrZeroPageLoad(mem, cmp)
	case opCMPZeroPageX:
		return c.addrZeroPageIndexedLoad(mem, c.X, cmp)
	case opCMPAbsolute:
		return c.addrAbsoluteLoad(mem, cmp)
	case opCMPAbsoluteX:
		return c.addrAbsoluteIndexedLoad(mem, c.X, cmp)
	case opCMPAbsoluteY:
		return c.addrAbsoluteIndexedLoad(mem, c.Y, cmp)
	case opCMPIndirectX:
		return c.addrIndirectXLoad(mem, cmp)
	case opCMPIndirectY:
		return c.addrIndirectYLoad(mem, cmp)

	// CPX / CPY
	case opCPXImmediate:
		return c.addrImmediate(mem, cpx)
	case opCPXZeroPage:
		return c.addrZeroPageLoad(mem, cpx)
	case opCPXAbsolute:
		return c.addrAbsoluteLoad(mem, cpx)
	case opCPYImmediate:
		return c.addrImmediate(mem, cpy)
	case opCPYZeroPage:
		return c.addrZeroPageLoad(mem, cpy)
	case opCPYAbsolute:
		return c.addrAbsoluteLoad(mem, cpy)

	// BIT
	case opBITZeroPage:
		return c.addrZeroPageLoad(mem, bit)
	case opBITAbsolute:
		return c.addrAbsoluteLoad(mem, bit)

	// LDA
	case opLDAImmediate:
		return c.addrImmediate(mem, lda)
	case opLDAZeroPage:
		return c.addrZeroPageLoad(mem, lda)
	case opLDAZeroPageX:
		return c.addrZeroPageIndexedLoad(mem, c.X, lda)
	case opLDAAbsolute:
		return c.addrAbsoluteLoad(mem, lda)
	case opLDAAbsoluteX:
		return c.addrAbsoluteIndexedLoad(mem, c.X, lda)
	case opLDAAbsoluteY:
		return c.addrAbsoluteIndexedLoad(mem, c.Y, lda)
	case opLDAIndirectX:
		return c.addrIndirectXLoad(mem, lda)
	case opLDAIndirectY:
		return c.addrIndirectYLoad(mem, lda)

	// LDX
	case opLDXImmediate:
		return c.addrImmediate(mem, ldx)
	case opLDXZeroPage:
		return c.addrZeroPageLoad(mem, ldx)
	case opLDXZeroPageY:
		return c.addrZeroPageIndexedLoad(mem, c.Y, ldx)
	case opLDXAbsolute:
		return c.addrAbsoluteLoad(mem, ldx)
	case opLDXAbsoluteY:
		return c.addrAbsoluteIndexedLoad(mem, c.Y, ldx)

	// LDY
	case opLDYImmediate:
		return c.addrImmediate(mem, ldy)
	case opLDYZeroPage:
		return c.addrZeroPageLoad(mem, ldy)
	case opLDYZeroPageX:
		return c.addrZeroPageIndexedLoad(mem, c.X, ldy)
	case opLDYAbsolute:
		return c.addrAbsoluteLoad(mem, ldy)
	case opLDYAbsoluteX:
		return c.addrAbsoluteIndexedLoad(mem, c.X, ldy)

	// STA
	case opSTAZeroPage:
		return c.addrZeroPageStore(mem, sta)
	case opSTAZeroPageX:
		return c.addrZeroPageIndexedStore(mem, c.X, sta)
	case opSTAAbsolute:
		return c.addrAbsoluteStore(mem, sta)
	case opSTAAbsoluteX:
		return c.addrAbsoluteIndexedStore(mem, c.X, sta)
	case opSTAAbsoluteY:
		return c.addrAbsoluteIndexedStore(mem, c.Y, sta)
	case opSTAIndirectX:
		return c.addrIndirectXStore(mem, sta)
	case opSTAIndirectY:
		return c.addrIndirectYStore(mem, sta)

	// STX
	case opSTXZeroPage:
		return c.addrZeroPageStore(mem, stx)
	case opSTXZeroPageY:
		return c.addrZeroPageIndexedStore(mem, c.Y, stx)
	case opSTXAbsolute:
		return c.addrAbsoluteStore(mem, stx)

	// STY
	case opSTYZeroPage:
		return c.addrZeroPageStore(mem, sty)
	case opSTYZeroPageX:
		return c.addrZeroPageIndexedStore(mem, c.X, sty)
	case opSTYAbsolute:
		return c.addrAbsoluteStore(mem, sty)

	// Transfers
	case opTAX:
		return c.iTAX()
	case opTAY:
		return c.iTAY()
	case opTXA:
		return c.iTXA()
	case opTYA:
		return c.iTYA()
	case opTSX:
		return c.iTSX()
	case opTXS:
		return c.iTXS()

	// Increment / decrement
	case opINX:
		return c.iINX()
	case opINY:
		return c.iINY()
	case opDEX:
		return c.iDEX()
	case opDEY:
		return c.iDEY()

	// Flag instructions
	case opCLC:
		return c.iCLC()
	case opSEC:
		return c.iSEC()
	case opCLI:
		return c.iCLI()
	case opSEI:
		return c.iSEI()
	case opCLD:
		return c.iCLD()
	case opSED:
		return c.iSED()
	case opCLV:
		return c.iCLV()

	case opNOP:
		return c.iNOP()
	}

	return true, UnimplementedOpcodeError{Opcode: c.currentOpcode, PC: c.opcodePC}
}
