package system

import (
	"github.com/younwookim/ledgegrab/internal/infrastructure/config"
)

// defaultMaxSteps bounds catch-up work after a long frame
const defaultMaxSteps = 8

// PhysicsSystem runs fixed-rate physics steps against a variable frame clock
type PhysicsSystem struct {
	fixedStep   float64
	maxSteps    int
	accumulator float64
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsSettings) *PhysicsSystem {
	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = defaultMaxSteps
	}
	return &PhysicsSystem{
		fixedStep: cfg.FixedStep,
		maxSteps:  maxSteps,
	}
}

// FixedStep returns the duration of one physics step in seconds
func (s *PhysicsSystem) FixedStep() float64 {
	return s.fixedStep
}

// Advance adds frameDT to the accumulator and calls step once per whole fixed
// step it now holds, up to the catch-up cap. Time beyond the cap is dropped.
// It returns the number of steps run.
func (s *PhysicsSystem) Advance(frameDT float64, step func()) int {
	if s.fixedStep <= 0 {
		return 0
	}

	s.accumulator += frameDT

	steps := 0
	for s.accumulator >= s.fixedStep && steps < s.maxSteps {
		step()
		s.accumulator -= s.fixedStep
		steps++
	}

	if steps == s.maxSteps && s.accumulator >= s.fixedStep {
		s.accumulator = 0
	}
	return steps
}

// Reset drops any accumulated time
func (s *PhysicsSystem) Reset() {
	s.accumulator = 0
}
