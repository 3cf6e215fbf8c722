package nations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDesc(t *testing.T) {
	nation := Desc(7)
	assert.Equal(t, "Ulm", nation.Name)
	assert.Equal(t, EraEarly, nation.Era)

	nation = Desc(49)
	assert.Equal(t, "Ulm", nation.Name)
	assert.Equal(t, EraMiddle, nation.Era)
}

func TestName(t *testing.T) {
	assert.Equal(t, "Sauromatia", Name(9))
	assert.Equal(t, "Bogarus", Name(97))
}

func TestDescPanicsOnUnknownID(t *testing.T) {
	assert.Panics(t, func() {
		Desc(9999)
	})
}

func TestExists(t *testing.T) {
	assert.True(t, Exists(5))
	assert.True(t, Exists(108))

	// Gaps in the id numbering are not valid nations
	assert.False(t, Exists(0))
	assert.False(t, Exists(23))
	assert.False(t, Exists(9999))
}
