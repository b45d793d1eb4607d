package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFlatBankRejectsNonPowerOfTwo(t *testing.T) {
	_, err := NewFlatBank(6, nil)
	assert.Error(t, err)

	b, err := NewFlatBank(1024, nil)
	assert.NoError(t, err)
	assert.NotNil(t, b)
}

func TestNewFlatBankRejectsOversize(t *testing.T) {
	_, err := NewFlatBank(1<<17, nil)
	assert.Error(t, err)
}

func TestFlatBankLoadStoreMasksAddress(t *testing.T) {
	b, err := NewFlatBank(256, nil)
	assert.NoError(t, err)

	b.Store(0x0042, 0xAB)
	assert.Equal(t, uint8(0xAB), b.Load(0x0042))
	// Size 256 masks any address to its low byte.
	assert.Equal(t, uint8(0xAB), b.Load(0x1342))
	assert.Equal(t, uint8(0xAB), b.DatabusVal())
}

func TestLatestDatabusValWalksToOutermostParent(t *testing.T) {
	parent, err := NewFlatBank(256, nil)
	assert.NoError(t, err)
	child, err := NewFlatBank(256, parent)
	assert.NoError(t, err)

	parent.Store(0x01, 0x11)
	child.Store(0x02, 0x22)

	// LatestDatabusVal walks to the outermost (parent-less) bank, so a
	// write through child is invisible to it; only the parent's own last
	// databus value is reported.
	assert.Equal(t, uint8(0x11), LatestDatabusVal(child))
}
