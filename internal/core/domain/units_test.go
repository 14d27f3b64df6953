package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnit_IsValid(t *testing.T) {
	assert.True(t, UnitMillimetres.IsValid())
	assert.True(t, UnitInches.IsValid())
	assert.False(t, Unit("cm").IsValid())
	assert.False(t, Unit("").IsValid())
}

func TestUnit_Conversions(t *testing.T) {
	assert.InDelta(t, 1.0, UnitInches.FromMillimetres(25.4), 1e-12)
	assert.InDelta(t, 3.937007874, UnitInches.FromMillimetres(100), 1e-9)
	assert.InDelta(t, 100.0, UnitMillimetres.FromMillimetres(100), 1e-12)
	assert.InDelta(t, 254.0, UnitInches.ToMillimetres(10), 1e-12)
	assert.InDelta(t, 10.0, UnitMillimetres.ToMillimetres(10), 1e-12)
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input    string
		expected Unit
	}{
		{"mm", UnitMillimetres},
		{"MM", UnitMillimetres},
		{"millimetres", UnitMillimetres},
		{"in", UnitInches},
		{" inches ", UnitInches},
		{"inch", UnitInches},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			u, err := ParseUnit(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, u)
		})
	}

	_, err := ParseUnit("furlongs")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAllUnits(t *testing.T) {
	for _, u := range AllUnits() {
		assert.True(t, u.IsValid())
	}
}
