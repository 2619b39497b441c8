package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/ledgegrab/internal/infrastructure/config"
)

func createTestPhysicsSettings() *config.PhysicsSettings {
	return &config.PhysicsSettings{
		FixedStep: 0.01,
		MaxSteps:  4,
	}
}

func TestNewPhysicsSystem(t *testing.T) {
	t.Run("uses configured cap", func(t *testing.T) {
		sys := NewPhysicsSystem(createTestPhysicsSettings())
		assert.Equal(t, 0.01, sys.FixedStep())
		assert.Equal(t, 4, sys.maxSteps)
	})

	t.Run("falls back to default cap", func(t *testing.T) {
		sys := NewPhysicsSystem(&config.PhysicsSettings{FixedStep: 0.01})
		assert.Equal(t, defaultMaxSteps, sys.maxSteps)
	})
}

func TestPhysicsSystem_Advance(t *testing.T) {
	tests := []struct {
		name     string
		frames   []float64
		expected int
	}{
		{"exact multiple", []float64{0.03}, 3},
		{"remainder carried", []float64{0.015, 0.015}, 3},
		{"short frame runs nothing", []float64{0.005}, 0},
		{"capped", []float64{1.0}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := NewPhysicsSystem(createTestPhysicsSettings())
			calls := 0
			total := 0
			for _, dt := range tt.frames {
				total += sys.Advance(dt+1e-9, func() { calls++ })
			}
			assert.Equal(t, tt.expected, calls)
			assert.Equal(t, tt.expected, total)
		})
	}
}

func TestPhysicsSystem_AdvanceDropsExcess(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsSettings())

	sys.Advance(1.0, func() {})
	assert.Equal(t, 0.0, sys.accumulator)

	// The next short frame starts from an empty accumulator
	steps := sys.Advance(0.005, func() {})
	assert.Equal(t, 0, steps)
	assert.InDelta(t, 0.005, sys.accumulator, 1e-9)
}

func TestPhysicsSystem_ZeroStep(t *testing.T) {
	sys := NewPhysicsSystem(&config.PhysicsSettings{})
	calls := 0

	assert.Equal(t, 0, sys.Advance(1.0, func() { calls++ }))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0.0, sys.accumulator)
}

func TestPhysicsSystem_Reset(t *testing.T) {
	sys := NewPhysicsSystem(createTestPhysicsSettings())
	sys.Advance(0.005, func() {})
	assert.Greater(t, sys.accumulator, 0.0)

	sys.Reset()
	assert.Equal(t, 0.0, sys.accumulator)
}
