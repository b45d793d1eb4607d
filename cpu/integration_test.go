package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/student6502/core/memory"
)

// TestStepCycleAgainstFlatBank drives StepCycle against a real memory.Bank
// rather than the minimal flatMemory double used in cpu_test.go,
// confirming a memory.Bank satisfies the Memory interface this core
// actually consumes, and that the bank's last databus value after STA is
// the stored byte.
func TestStepCycleAgainstFlatBank(t *testing.T) {
	bank, err := memory.NewFlatBank(1<<16, nil)
	assert.NoError(t, err)

	bank.Store(0x0000, opLDAImmediate)
	bank.Store(0x0001, 0x37)
	bank.Store(0x0002, opSTAAbsolute)
	bank.Store(0x0003, 0x00)
	bank.Store(0x0004, 0x02)

	c := New()
	cycles := runInstruction(t, c, bank)
	assert.Equal(t, 2, cycles)
	assert.Equal(t, uint8(0x37), c.A)

	cycles = runInstruction(t, c, bank)
	assert.Equal(t, 4, cycles)
	assert.Equal(t, uint8(0x37), bank.Load(0x0200))
	assert.Equal(t, uint8(0x37), memory.LatestDatabusVal(bank))
}
