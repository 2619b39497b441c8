package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display    DisplayConfig    `json:"display"`
	Physics    PhysicsSettings  `json:"physics"`
	Level      LevelConfig      `json:"level"`
	Projectile ProjectileConfig `json:"projectile"`
	Pickup     PickupConfig     `json:"pickup"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// PhysicsSettings configures the fixed-step driver
type PhysicsSettings struct {
	FixedStep float64 `json:"fixedStep"` // seconds per physics step
	MaxSteps  int     `json:"maxSteps"`  // catch-up cap per rendered frame
}

// LevelConfig holds the horizontal clamp range of the player.
// MaxX of 0 means "use the stage pixel width".
type LevelConfig struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
}

type ProjectileConfig struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Speed    float64 `json:"speed"`
	MaxRange float64 `json:"maxRange"`
}

type PickupConfig struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	GoldAmount int     `json:"goldAmount"`
}
