package playing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ledgegrab/internal/application/replay"
	"github.com/younwookim/ledgegrab/internal/application/scene"
	"github.com/younwookim/ledgegrab/internal/application/state"
	"github.com/younwookim/ledgegrab/internal/application/system"
	"github.com/younwookim/ledgegrab/internal/infrastructure/config"
)

const testDT = 1.0 / 60

// createTestConfig creates a minimal config for testing
func createTestConfig() *config.GameConfig {
	clip := func(row, frames int) config.AnimationConfig {
		return config.AnimationConfig{Row: row, Frames: frames, FrameDuration: 0.08}
	}
	return &config.GameConfig{
		Physics: &config.PhysicsConfig{
			Display: config.DisplayConfig{
				ScreenWidth:  200,
				ScreenHeight: 100,
				Scale:        1,
				Framerate:    60,
			},
			Physics: config.PhysicsSettings{
				FixedStep: 1.0 / 120,
				MaxSteps:  8,
			},
			Projectile: config.ProjectileConfig{
				Width:    16,
				Height:   8,
				Speed:    420,
				MaxRange: 300,
			},
			Pickup: config.PickupConfig{
				Width:      10,
				Height:     10,
				GoldAmount: 10,
			},
		},
		Player: &config.PlayerConfig{
			Box:    config.BoxConfig{Width: 20, Height: 40},
			Sprite: config.SpriteConfig{FrameWidth: 50, FrameHeight: 37, Scale: 1, OriginY: 1},
			Movement: config.MovementConfig{
				Gravity:      2500,
				MoveSpeed:    400,
				JumpVelocity: -1000,
				Damping:      0.85,
				HitDamping:   0.925,
				Deadband:     8,
			},
			Hit: config.HitConfig{
				KnockbackX:     1200,
				KnockbackY:     -950,
				BlinkInterval:  0.175,
				BlinkToggles:   10,
				BlinkAlphaLow:  60,
				BlinkAlphaHigh: 255,
			},
			Health: config.HealthConfig{Max: 3},
			Animations: map[string]config.AnimationConfig{
				"idle":       clip(1, 7),
				"move":       clip(3, 8),
				"jump":       clip(4, 2),
				"fall":       clip(6, 1),
				"takedamage": clip(17, 7),
			},
		},
	}
}

// createTestStageConfig creates a 200x100 stage with a floor at y=80
func createTestStageConfig() *config.StageConfig {
	return &config.StageConfig{
		ID:   "test",
		Name: "test",
		Size: config.StageSizeConfig{
			Width:    200,
			Height:   100,
			TileSize: 20,
		},
		PlayerSpawn: config.PositionConfig{X: 20, Y: 40},
		Layers: config.LayersConfig{
			Collision: []string{
				"..........",
				"..........",
				"..........",
				"..........",
				"##########",
			},
		},
		TileMapping: map[string]config.TileMappingConfig{
			"#": {Type: "wall", Solid: true},
		},
	}
}

func createTestPlaying(t *testing.T, recordPath string) *Playing {
	t.Helper()
	p, err := New(createTestConfig(), createTestStageConfig(), nil, recordPath)
	require.NoError(t, err)
	return p
}

// runFrames simulates n frames with the same input, bypassing the keyboard
func runFrames(p *Playing, n int, input system.InputState) {
	for i := 0; i < n; i++ {
		p.simulate(input)
	}
}

func TestPlaying_ImplementsScene(t *testing.T) {
	// Compile-time check that Playing implements scene.Scene
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p := createTestPlaying(t, "")

	assert.Equal(t, state.StatePlaying, p.state)
	assert.Equal(t, 20.0, p.player.Box().Pos.X)
	assert.Equal(t, 40.0, p.player.Box().Pos.Y)
	assert.Len(t, p.level.Platforms, 1)
	assert.Equal(t, 200.0, p.level.MaxX)
	assert.Equal(t, 3, p.health.Value())
}

func TestNewPlaying_Errors(t *testing.T) {
	t.Run("missing clip", func(t *testing.T) {
		cfg := createTestConfig()
		delete(cfg.Player.Animations, "jump")

		_, err := New(cfg, createTestStageConfig(), nil, "")
		assert.Error(t, err)
	})

	t.Run("bad turret", func(t *testing.T) {
		stageCfg := createTestStageConfig()
		stageCfg.Turrets = []config.TurretSpawnConfig{{Direction: "down", Interval: 1}}

		_, err := New(createTestConfig(), stageCfg, nil, "")
		assert.Error(t, err)
	})

	t.Run("zero tile size", func(t *testing.T) {
		stageCfg := createTestStageConfig()
		stageCfg.Size.TileSize = 0

		_, err := New(createTestConfig(), stageCfg, nil, "")
		assert.ErrorContains(t, err, "tileSize")
	})

	t.Run("zero framerate", func(t *testing.T) {
		cfg := createTestConfig()
		cfg.Physics.Display.Framerate = 0

		_, err := New(cfg, createTestStageConfig(), nil, "")
		assert.Error(t, err)
	})
}

func TestPlaying_Update_ReturnsNilWhenPlaying(t *testing.T) {
	p := createTestPlaying(t, "")

	// Normal update should return nil (stay on same scene)
	next, err := p.Update(testDT)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
}

func TestPlaying_FallsAndLands(t *testing.T) {
	p := createTestPlaying(t, "")

	runFrames(p, 60, system.InputState{})

	assert.True(t, p.player.Grounded())
	assert.Equal(t, 0.0, p.player.Velocity().Y)
	assert.InDelta(t, 80.0, p.player.Box().Bottom(), 1e-6)
}

func TestPlaying_WalksAndStaysInBounds(t *testing.T) {
	p := createTestPlaying(t, "")
	runFrames(p, 30, system.InputState{})

	runFrames(p, 120, system.InputState{Right: true})

	assert.Equal(t, 180.0, p.player.Box().Pos.X)
	assert.True(t, p.player.Grounded())
}

func TestPlaying_ProjectileHit(t *testing.T) {
	p := createTestPlaying(t, "")
	runFrames(p, 30, system.InputState{})

	shaken := false
	box := p.player.Box()
	p.combatSystem.SpawnProjectile(box.Right()+5, box.Top()+10, 1)
	p.combatSystem.OnPlayerHit = func() { shaken = true }

	runFrames(p, 10, system.InputState{})

	assert.True(t, shaken)
	assert.Equal(t, 2, p.health.Value())
	assert.True(t, p.player.Hit())
	assert.Empty(t, p.combatSystem.GetProjectiles())
}

func TestPlaying_GameOver(t *testing.T) {
	p := createTestPlaying(t, "")

	for i := 0; i < 3; i++ {
		p.health.Change(true)
	}
	_, err := p.Update(testDT)
	require.NoError(t, err)

	assert.Equal(t, state.StateGameOver, p.state)
}

func TestPlaying_Restart(t *testing.T) {
	p := createTestPlaying(t, "")
	runFrames(p, 30, system.InputState{Right: true})
	p.health.Change(true)
	p.state = state.StateGameOver

	p.restart()

	assert.Equal(t, state.StatePlaying, p.state)
	assert.Equal(t, 3, p.health.Value())
	assert.Equal(t, 20.0, p.player.Box().Pos.X)
	assert.True(t, p.player.IsAlive())
}

func TestPlaying_WithRecorder(t *testing.T) {
	p := createTestPlaying(t, filepath.Join(t.TempDir(), "replay.json"))

	assert.NotNil(t, p.recorder)

	// Update should record frames
	_, err := p.Update(testDT)
	require.NoError(t, err)

	assert.Equal(t, 1, p.recorder.Len())
}

func TestPlaying_ReplayDrivesInput(t *testing.T) {
	data := replay.CreateTestReplayData(40)
	for i := range data.Frames {
		data.Frames[i].R = true
	}

	p := createTestPlaying(t, "")
	p.SetReplay(replay.NewReplayer(data))
	for i := 0; i < 40; i++ {
		_, err := p.Update(testDT)
		require.NoError(t, err)
	}

	assert.Greater(t, p.player.Box().Pos.X, 20.0)
	assert.Equal(t, 1.0, p.player.Facing())
	assert.Equal(t, int64(12345), p.seed)
}

func TestPlaying_Deterministic(t *testing.T) {
	script := func(frame int) system.InputState {
		switch {
		case frame < 40:
			return system.InputState{Right: true}
		case frame == 40:
			return system.InputState{Jump: true, JumpPressed: true}
		case frame < 60:
			return system.InputState{Jump: true, Left: true}
		default:
			return system.InputState{}
		}
	}

	run := func() *Playing {
		p := createTestPlaying(t, "")
		for i := 0; i < 120; i++ {
			p.simulate(script(i))
		}
		return p
	}

	a, b := run(), run()
	assert.Equal(t, a.player.Box(), b.player.Box())
	assert.Equal(t, a.player.Velocity(), b.player.Velocity())
	assert.Equal(t, a.player.ActiveAnimation(), b.player.ActiveAnimation())
}

func TestPlaying_OnEnter(t *testing.T) {
	p := createTestPlaying(t, "")

	// OnEnter should not panic
	assert.NotPanics(t, func() {
		p.OnEnter()
	})
}

func TestPlaying_OnExitWithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onexit.json")
	p := createTestPlaying(t, path)

	// Record some frames
	_, _ = p.Update(testDT)
	_, _ = p.Update(testDT)

	// OnExit should save without panic
	assert.NotPanics(t, func() {
		p.OnExit()
	})

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 2)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-5, 0, 10))
	assert.Equal(t, 10.0, clamp(15, 0, 10))
	assert.Equal(t, 5.0, clamp(5, 0, 10))
	assert.Equal(t, 0.0, clamp(5, 0, -10))
}
