// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/ledgegrab/internal/application/player"
	"github.com/younwookim/ledgegrab/internal/application/replay"
	"github.com/younwookim/ledgegrab/internal/application/scene"
	"github.com/younwookim/ledgegrab/internal/application/state"
	"github.com/younwookim/ledgegrab/internal/application/system"
	"github.com/younwookim/ledgegrab/internal/domain/entity"
	"github.com/younwookim/ledgegrab/internal/infrastructure/config"
	"github.com/younwookim/ledgegrab/internal/infrastructure/render"
)

// Colors for rendering
var (
	colorWall       = color.RGBA{80, 80, 100, 255}
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorBox        = color.RGBA{100, 200, 100, 128}
	colorTurret     = color.RGBA{120, 120, 140, 255}
	colorProjectile = color.RGBA{255, 100, 100, 255}
	colorHeart      = color.RGBA{220, 50, 70, 255}
	colorGold       = color.RGBA{255, 215, 0, 255}
)

const (
	shakeIntensity = 6.0
	shakeDecay     = 0.85
	turretSize     = 16.0
)

// Playing is the main gameplay scene
type Playing struct {
	config        *config.GameConfig
	stageCfg      *config.StageConfig
	stage         *entity.Stage
	level         *entity.Level
	state         state.GameState
	player        *player.Controller
	health        *render.HealthBar
	physicsSystem *system.PhysicsSystem
	inputSystem   *system.InputSystem
	combatSystem  *system.CombatSystem
	screenW       int
	screenH       int
	dt            float64

	// Feedback
	screenShake float64

	// Deterministic RNG
	rng  *rand.Rand
	seed int64

	// Input recording and playback
	recorder       *replay.Recorder
	recordFilename string
	replayer       *replay.Replayer

	// Tuning hot reload
	watcher *config.Watcher
	loader  *config.Loader
}

// New creates a new Playing scene. sheet is the player sprite sheet and may
// be nil. If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, stageCfg *config.StageConfig, sheet *ebiten.Image, recordPath string) (*Playing, error) {
	if cfg.Physics.Display.Framerate <= 0 {
		return nil, fmt.Errorf("display framerate must be positive, got %d", cfg.Physics.Display.Framerate)
	}
	if err := stageCfg.Validate(); err != nil {
		return nil, fmt.Errorf("stage %s: %w", stageCfg.ID, err)
	}

	stage := system.LoadStage(stageCfg)
	level := system.BuildLevel(stage, cfg.Physics.Level)
	dt := 1.0 / float64(cfg.Physics.Display.Framerate)
	fixedDT := cfg.Physics.Physics.FixedStep

	health := render.NewHealthBar(cfg.Player.Health.Max, nil)
	bounds := player.Bounds{MinX: level.MinX, MaxX: level.MaxX}
	pc, err := player.New(render.NewSprite(sheet), health, cfg.Player, bounds, dt, fixedDT)
	if err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	p := &Playing{
		config:         cfg,
		stageCfg:       stageCfg,
		stage:          stage,
		level:          level,
		state:          state.StatePlaying,
		player:         pc,
		health:         health,
		physicsSystem:  system.NewPhysicsSystem(&cfg.Physics.Physics),
		inputSystem:    system.NewInputSystem(system.DefaultKeyBindings()),
		screenW:        cfg.Physics.Display.ScreenWidth,
		screenH:        cfg.Physics.Display.ScreenHeight,
		dt:             dt,
		rng:            rand.New(rand.NewSource(seed)),
		seed:           seed,
		recordFilename: recordPath,
	}

	if err := p.reset(); err != nil {
		return nil, err
	}

	// Initialize recorder if recording is enabled
	if recordPath != "" {
		p.recorder = replay.NewRecorder(seed, stageCfg.ID)
		log.Printf("Recording enabled: %s (seed: %d)", recordPath, seed)
	}

	return p, nil
}

// SetReplay drives the scene from recorded input instead of the keyboard.
// The keyboard takes over once the recording runs out.
func (p *Playing) SetReplay(r *replay.Replayer) {
	p.replayer = r
	p.seed = r.Seed()
	p.rng = rand.New(rand.NewSource(p.seed))
}

// WatchTuning reloads the player tuning through loader whenever w reports a
// changed file
func (p *Playing) WatchTuning(w *config.Watcher, loader *config.Loader) {
	p.watcher = w
	p.loader = loader
}

// reset puts the player at the stage spawn and rebuilds the combat partners
func (p *Playing) reset() error {
	combat := system.NewCombatSystem(p.config.Physics, p.dt, p.physicsSystem.FixedStep())
	if err := combat.LoadSpawns(p.stageCfg); err != nil {
		return fmt.Errorf("stage %s: %w", p.stageCfg.ID, err)
	}
	combat.OnPlayerHit = func() {
		p.screenShake = shakeIntensity
	}
	p.combatSystem = combat

	p.health.Reset()
	p.player.Respawn(p.level.SpawnX, p.level.SpawnY)
	p.physicsSystem.Reset()
	p.screenShake = 0
	p.state = state.StatePlaying
	return nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.pollTuning()

	switch p.state {
	case state.StatePlaying:
		p.updatePlaying()
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return nil, scene.ErrQuit
		}
	case state.StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
			p.restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying() {
	// Check for pause
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	input := p.nextInput()

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.Record(input)
	}

	p.simulate(input)

	// Decay screen shake
	p.screenShake *= shakeDecay

	// Check game over
	if !p.player.IsAlive() {
		p.state = state.StateGameOver
		// Auto-save recording on game over
		if p.recorder != nil {
			p.saveRecording()
		}
	}
}

func (p *Playing) nextInput() system.InputState {
	if p.replayer != nil {
		if input, ok := p.replayer.GetInput(); ok {
			return input
		}
		log.Printf("Replay finished after %d frames", p.replayer.TotalFrames())
		p.replayer = nil
	}
	return p.inputSystem.GetInput()
}

// simulate advances the world by one rendered frame
func (p *Playing) simulate(input system.InputState) {
	p.player.SetInput(input)
	p.physicsSystem.Advance(p.dt, p.fixedStep)
	p.combatSystem.Resolve(p.player)
	p.player.Update()
	p.combatSystem.Update()
}

func (p *Playing) fixedStep() {
	p.player.FixedUpdate()
	p.combatSystem.FixedUpdate()
	p.player.ResolvePlatforms(p.level.Platforms)
}

// pollTuning applies pending tuning reloads without blocking
func (p *Playing) pollTuning() {
	if p.watcher == nil {
		return
	}

	for {
		select {
		case path, ok := <-p.watcher.Events:
			if !ok {
				p.watcher = nil
				return
			}
			cfg, err := p.loader.LoadPlayer()
			if err != nil {
				log.Printf("Tuning reload of %s failed: %v", path, err)
				continue
			}
			p.config.Player = cfg
			p.player.SetTuning(cfg)
			log.Printf("Tuning reloaded: %s", path)
		case err, ok := <-p.watcher.Errors:
			if !ok {
				p.watcher = nil
				return
			}
			log.Printf("Tuning watcher error: %v", err)
		default:
			return
		}
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.DefaultFilename(time.Now())
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.Len())
	}
}

func (p *Playing) restart() {
	// Reset RNG with new seed
	p.seed = time.Now().UnixNano()
	p.rng = rand.New(rand.NewSource(p.seed))

	if err := p.reset(); err != nil {
		log.Printf("Restart failed: %v", err)
		return
	}

	// Reset recorder if recording
	if p.recordFilename != "" {
		p.recorder = replay.NewRecorder(p.seed, p.stageCfg.ID)
		log.Printf("Recording restarted (seed: %d)", p.seed)
	}
}

// camera returns the top-left world position of the view, clamped to the stage
func (p *Playing) camera() (float64, float64) {
	box := p.player.Box()
	c := box.Center()
	camX := c.X - float64(p.screenW)/2
	camY := c.Y - float64(p.screenH)/2

	// Apply screen shake
	if p.screenShake > 0.5 {
		camX += p.screenShake * (2*p.rng.Float64() - 1)
		camY += p.screenShake * (2*p.rng.Float64() - 1)
	}

	maxCamX := float64(p.stage.PixelWidth() - p.screenW)
	maxCamY := float64(p.stage.Height*p.stage.TileSize - p.screenH)
	camX = clamp(camX, 0, maxCamX)
	camY = clamp(camY, 0, maxCamY)
	return camX, camY
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	// Fill background
	screen.Fill(colorBG)

	camX, camY := p.camera()

	// Draw world
	p.drawPlatforms(screen, camX, camY)
	p.drawPickups(screen, camX, camY)
	p.drawTurrets(screen, camX, camY)
	p.drawProjectiles(screen, camX, camY)
	p.player.Sprite().Draw(screen, camX, camY)

	// Collision box debug
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		drawBox(screen, p.player.Box(), camX, camY, colorBox)
	}

	p.drawUI(screen)

	// Draw state overlays
	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

func (p *Playing) drawPlatforms(screen *ebiten.Image, camX, camY float64) {
	for _, pl := range p.level.Platforms {
		drawBox(screen, pl.Box(), camX, camY, colorWall)
	}
}

func (p *Playing) drawPickups(screen *ebiten.Image, camX, camY float64) {
	for _, pickup := range p.combatSystem.GetPickups() {
		if !pickup.Exists {
			continue
		}

		c := colorGold
		if pickup.Kind == entity.PickupHeart {
			c = colorHeart
		}

		// Hover is visual only
		box := pickup.Box()
		box.Pos.Y += pickup.HoverOffset()
		drawBox(screen, box, camX, camY, c)
	}
}

func (p *Playing) drawTurrets(screen *ebiten.Image, camX, camY float64) {
	for _, t := range p.combatSystem.GetTurrets() {
		x := t.X - camX
		if t.Dir == entity.DirLeft {
			x -= turretSize / 2
		}
		ebitenutil.DrawRect(screen, x, t.Y-camY-turretSize/4, turretSize/2, turretSize, colorTurret)
	}
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, camX, camY float64) {
	for _, proj := range p.combatSystem.GetProjectiles() {
		if !proj.Active {
			continue
		}
		drawBox(screen, proj.Box(), camX, camY, colorProjectile)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	p.health.Draw(screen)

	// Gold
	goldText := fmt.Sprintf("Gold: %d", p.player.Gold())
	ebitenutil.DebugPrintAt(screen, goldText, 10, 30)

	// Controls
	debugText := "A/D: Move | W/Space: Jump (hold near a ledge to grab) | Tab: Hitbox | ESC: Pause"
	if p.replayer != nil {
		debugText = fmt.Sprintf("REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	ebitenutil.DebugPrintAt(screen, debugText, 10, p.screenH-20)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	// Semi-transparent overlay
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume\nPress Q to quit"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{100, 0, 0, 180}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := fmt.Sprintf("GAME OVER\n\nGold collected: %d\n\nPress Z to restart", p.player.Gold())
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.watcher != nil {
		_ = p.watcher.Close()
	}
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

func drawBox(screen *ebiten.Image, b entity.CollisionBox, camX, camY float64, c color.Color) {
	ebitenutil.DrawRect(screen, b.Pos.X-camX, b.Pos.Y-camY, b.Size.X, b.Size.Y, c)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
