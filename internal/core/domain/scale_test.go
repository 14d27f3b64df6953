package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleFactor_IsSet(t *testing.T) {
	assert.False(t, ScaleFactor(0).IsSet())
	assert.False(t, ScaleFactor(-1).IsSet())
	assert.False(t, ScaleFactor(math.Inf(1)).IsSet())
	assert.True(t, ScaleFactor(2.5).IsSet())
}

func TestScaleFactor_Validate(t *testing.T) {
	assert.ErrorIs(t, ScaleFactor(0).Validate(), ErrScaleNotSet)
	assert.ErrorIs(t, ScaleFactor(-0.5).Validate(), ErrInvalidInput)
	assert.ErrorIs(t, ScaleFactor(math.NaN()).Validate(), ErrInvalidInput)
	assert.ErrorIs(t, ScaleFactor(math.Inf(1)).Validate(), ErrInvalidInput)
	assert.NoError(t, ScaleFactor(0.1).Validate())
}

func TestScaleFactor_PixelConversions(t *testing.T) {
	s := ScaleFactor(0.1)

	assert.InDelta(t, 2100.0, s.PixelsFor(210), 1e-9)
	assert.InDelta(t, 2970.0, s.PixelsFor(297), 1e-9)
	assert.InDelta(t, 21.0, s.Millimetres(210), 1e-9)
}

func TestScaleFactor_Ratio(t *testing.T) {
	tests := []struct {
		name     string
		scale    ScaleFactor
		expected string
	}{
		{"reduction", 0.01, "1:100.0"},
		{"enlargement", 2.5, "2.50:1"},
		{"unity", 1, "1.00:1"},
		{"unset", 0, "not set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.scale.Ratio())
		})
	}
}

func TestScaleFactor_String(t *testing.T) {
	assert.Equal(t, "not set", ScaleFactor(0).String())
	assert.Equal(t, "2.5 mm/px", ScaleFactor(2.5).String())
}

func TestMeasurement_In(t *testing.T) {
	m := Measurement{Pixels: 40, Millimetres: 100, Inches: 100 / 25.4}

	assert.Equal(t, 100.0, m.In(UnitMillimetres))
	assert.InDelta(t, 3.937, m.In(UnitInches), 1e-3)
}

func TestReference_PixelDistance(t *testing.T) {
	r := Reference{P1: Point{100, 100}, P2: Point{200, 100}, KnownMM: 10}
	assert.Equal(t, 100.0, r.PixelDistance())
}
