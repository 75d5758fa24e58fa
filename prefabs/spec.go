package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSpec is the tuning file the game loads unless told otherwise.
const DefaultSpec = "runner.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// RunnerSpec holds every tunable of a runner session.
type RunnerSpec struct {
	Name       string         `yaml:"name"`
	Game       GameSpec       `yaml:"game"`
	Input      InputSpec      `yaml:"input"`
	Player     PlayerSpec     `yaml:"player"`
	Enemy      EnemySpec      `yaml:"enemy"`
	Background BackgroundSpec `yaml:"background"`
	Spawn      SpawnSpec      `yaml:"spawn"`
	HUD        HUDSpec        `yaml:"hud"`
}

// LoadRunnerSpec loads and validates a runner spec. An empty name loads
// DefaultSpec.
func LoadRunnerSpec(name string) (*RunnerSpec, error) {
	if name == "" {
		name = DefaultSpec
	}
	spec, err := LoadSpec[RunnerSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: validate %s: %w", name, err)
	}
	return &spec, nil
}

type GameSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type InputSpec struct {
	TouchThreshold float64 `yaml:"touch_threshold"`
}

type PlayerSpec struct {
	Sprite      string        `yaml:"sprite"`
	FrameWidth  int           `yaml:"frame_width"`
	FrameHeight int           `yaml:"frame_height"`
	Scale       float64       `yaml:"scale"`
	StartX      float64       `yaml:"start_x"`
	FPS         float64       `yaml:"fps"`
	MoveSpeed   float64       `yaml:"move_speed"`
	JumpImpulse float64       `yaml:"jump_impulse"`
	Weight      float64       `yaml:"weight"`
	Run         AnimationSpec `yaml:"run"`
	Jump        AnimationSpec `yaml:"jump"`
	Hitbox      HitboxSpec    `yaml:"hitbox"`
}

type EnemySpec struct {
	Sprite      string     `yaml:"sprite"`
	FrameWidth  int        `yaml:"frame_width"`
	FrameHeight int        `yaml:"frame_height"`
	MaxFrame    int        `yaml:"max_frame"`
	FPS         float64    `yaml:"fps"`
	Speed       float64    `yaml:"speed"`
	Hitbox      HitboxSpec `yaml:"hitbox"`
}

type BackgroundSpec struct {
	Sprite string  `yaml:"sprite"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// SpawnSpec times enemy spawns, in milliseconds. Script names an optional
// tengo script under scripts/ that replaces the Extra range.
type SpawnSpec struct {
	Interval     float64   `yaml:"interval"`
	InitialExtra RangeSpec `yaml:"initial_extra"`
	Extra        RangeSpec `yaml:"extra"`
	Script       string    `yaml:"script"`
}

// RangeSpec is the uniform range [Min, Min+Span).
type RangeSpec struct {
	Min  float64 `yaml:"min"`
	Span float64 `yaml:"span"`
}

// AnimationSpec picks a sheet row. Frames run 0..MaxFrame inclusive.
type AnimationSpec struct {
	Row      int `yaml:"row"`
	MaxFrame int `yaml:"max_frame"`
}

// HitboxSpec places a circle of radius width/RadiusDivisor, offset from the
// sprite center.
type HitboxSpec struct {
	OffsetX       float64 `yaml:"offset_x"`
	OffsetY       float64 `yaml:"offset_y"`
	RadiusDivisor float64 `yaml:"radius_divisor"`
}

type HUDSpec struct {
	FontSize    float64    `yaml:"font_size"`
	Shadow      *YAMLColor `yaml:"shadow"`
	Foreground  *YAMLColor `yaml:"foreground"`
	HitboxColor *YAMLColor `yaml:"hitbox_color"`
}

// Validate reports the first field that would break the simulation.
func (s *RunnerSpec) Validate() error {
	switch {
	case s.Game.Width <= 0 || s.Game.Height <= 0:
		return fmt.Errorf("%w: game size must be positive", ErrInvalidSpec)
	case s.Input.TouchThreshold < 0:
		return fmt.Errorf("%w: touch threshold must not be negative", ErrInvalidSpec)
	case s.Player.FrameWidth <= 0 || s.Player.FrameHeight <= 0 || s.Player.Scale <= 0:
		return fmt.Errorf("%w: player frame size and scale must be positive", ErrInvalidSpec)
	case !landsExactly(s.Player.JumpImpulse, s.Player.Weight):
		return fmt.Errorf("%w: jump_impulse and weight must be positive integers with 2*jump_impulse a multiple of weight", ErrInvalidSpec)
	case s.Player.FPS <= 0 || s.Enemy.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive", ErrInvalidSpec)
	case s.Player.Run.MaxFrame < 0 || s.Player.Jump.MaxFrame < 0 || s.Enemy.MaxFrame < 0:
		return fmt.Errorf("%w: max_frame must not be negative", ErrInvalidSpec)
	case s.Player.Hitbox.RadiusDivisor <= 0 || s.Enemy.Hitbox.RadiusDivisor <= 0:
		return fmt.Errorf("%w: hitbox radius_divisor must be positive", ErrInvalidSpec)
	case s.Enemy.FrameWidth <= 0 || s.Enemy.FrameHeight <= 0:
		return fmt.Errorf("%w: enemy frame size must be positive", ErrInvalidSpec)
	case s.Background.Width <= 0 || s.Background.Height <= 0:
		return fmt.Errorf("%w: background size must be positive", ErrInvalidSpec)
	case s.Spawn.Interval < 0 || s.Spawn.InitialExtra.Span < 0 || s.Spawn.Extra.Span < 0:
		return fmt.Errorf("%w: spawn timings must not be negative", ErrInvalidSpec)
	}
	return nil
}

// landsExactly reports whether a jump with these values comes back down to
// exactly the height it left from. The player only counts as grounded at
// that exact height, so an arc that overshoots never lands.
func landsExactly(impulse, weight float64) bool {
	if impulse <= 0 || weight <= 0 {
		return false
	}
	if impulse != math.Trunc(impulse) || weight != math.Trunc(weight) {
		return false
	}
	return math.Mod(2*impulse, weight) == 0
}

type YAMLColor struct {
	color.Color
}

// Or returns the wrapped color, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
