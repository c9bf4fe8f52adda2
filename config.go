package sprig

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// CollisionResponse selects how the collision pass treats velocity.
type CollisionResponse uint8

const (
	// ResponseNone resolves penetration only; velocity is left to
	// object-level logic (e.g. bounce code in Update).
	ResponseNone CollisionResponse = iota
	// ResponseStop removes the approaching component of velocity along the
	// contact normal.
	ResponseStop
	// ResponseBounce reflects the approaching component, scaled by the larger
	// Elasticity of the pair.
	ResponseBounce
)

var responseNames = map[string]CollisionResponse{
	"none":   ResponseNone,
	"stop":   ResponseStop,
	"bounce": ResponseBounce,
}

// String returns the config name of the response.
func (r CollisionResponse) String() string {
	for name, v := range responseNames {
		if v == r {
			return name
		}
	}
	return fmt.Sprintf("CollisionResponse(%d)", uint8(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r CollisionResponse) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *CollisionResponse) UnmarshalText(b []byte) error {
	v, ok := responseNames[string(b)]
	if !ok {
		return fmt.Errorf("unknown collision response %q", b)
	}
	*r = v
	return nil
}

// Config holds the process-wide simulation settings for a World.
type Config struct {
	// Gravity is added to every dynamic object's velocity each tick.
	Gravity Vec2 `json:"gravity"`
	// CanvasSize is the viewport size in pixels used by the camera.
	CanvasSize Vec2 `json:"canvas_size"`
	// CameraScale is the initial pixels-per-world-unit zoom.
	CameraScale float64 `json:"camera_scale"`
	// CameraScaleMin and CameraScaleMax bound every camera scale change.
	CameraScaleMin float64 `json:"camera_scale_min"`
	CameraScaleMax float64 `json:"camera_scale_max"`
	// TickRate is the number of ticks per second; used only for
	// time-based tweens and debug primitive lifetimes.
	TickRate int `json:"tick_rate"`
	// Response is the collision velocity policy.
	Response CollisionResponse `json:"response"`
}

// DefaultConfig returns the default settings: no gravity, a 1280x720 canvas,
// camera scale 32 clamped to [1, 1000], 60 ticks per second, position-only
// collision response.
func DefaultConfig() Config {
	return Config{
		CanvasSize:     Vec2{1280, 720},
		CameraScale:    32,
		CameraScaleMin: 1,
		CameraScaleMax: 1000,
		TickRate:       60,
		Response:       ResponseNone,
	}
}

// Validate reports the first invalid setting. NaN and infinite values are
// rejected everywhere a bound or size is expected.
func (c Config) Validate() error {
	if !finite(c.CameraScaleMin) || c.CameraScaleMin <= 0 {
		return fmt.Errorf("camera_scale_min must be positive and finite, got %v", c.CameraScaleMin)
	}
	if !finite(c.CameraScaleMax) || c.CameraScaleMax < c.CameraScaleMin {
		return fmt.Errorf("camera_scale_max %v must be finite and not below camera_scale_min %v", c.CameraScaleMax, c.CameraScaleMin)
	}
	if !finite(c.CameraScale) {
		return fmt.Errorf("camera_scale must be finite, got %v", c.CameraScale)
	}
	if !finite(c.CanvasSize.X) || !finite(c.CanvasSize.Y) || c.CanvasSize.X <= 0 || c.CanvasSize.Y <= 0 {
		return fmt.Errorf("canvas_size must be positive, got %v", c.CanvasSize)
	}
	if !finite(c.Gravity.X) || !finite(c.Gravity.Y) {
		return fmt.Errorf("gravity must be finite, got %v", c.Gravity)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", c.TickRate)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// LoadConfig parses JSON settings on top of DefaultConfig and validates them.
// Fields missing from the JSON keep their defaults.
func LoadConfig(jsonData []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a JSON config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return LoadConfig(data)
}
