package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"

	"github.com/younwookim/springjump/internal/domain/jump"
)

// ChargeConfig is the root config for charge.yaml
type ChargeConfig struct {
	HoldTime     float64        `yaml:"hold_time"`
	Min          ForceXY        `yaml:"min"`
	Max          ForceXY        `yaml:"max"`
	ShortHop     ShortHopConfig `yaml:"short_hop"`
	Mode         string         `yaml:"mode"`
	RestartDelay float64        `yaml:"restart_delay"`
	Easing       string         `yaml:"easing"`
	Tint         TintConfig     `yaml:"tint"`
}

// ForceXY is a force on each axis in engine units
type ForceXY struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ShortHopConfig is the fixed vertical force used when aiming below Threshold
type ShortHopConfig struct {
	Force     float64 `yaml:"force"`
	Threshold float64 `yaml:"threshold"`
}

// TintConfig holds the sprite tints at zero and full charge
type TintConfig struct {
	Base    YAMLColor `yaml:"base"`
	Charged YAMLColor `yaml:"charged"`
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa"
type YAMLColor color.RGBA

// UnmarshalYAML implements yaml.Unmarshaler
func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	rgba, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	*c = YAMLColor(rgba)
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa"; the leading # is optional
func ParseHexColor(text string) (color.RGBA, error) {
	s := strings.TrimPrefix(text, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %s", text)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %s: %w", text, err)
	}
	g, err := parse(2)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %s: %w", text, err)
	}
	b, err := parse(4)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %s: %w", text, err)
	}
	a := uint8(255)
	if len(s) == 8 {
		if a, err = parse(6); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %s: %w", text, err)
		}
	}
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

var easings = map[string]ease.TweenFunc{
	"linear":    ease.Linear,
	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
	"inCubic":   ease.InCubic,
	"outCubic":  ease.OutCubic,
	"inOutSine": ease.InOutSine,
	"outBack":   ease.OutBack,
}

// Easing returns the named easing curve
func Easing(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown easing %q", ErrInvalidConfig, name)
	}
	return fn, nil
}

// ParseMode converts a mode name to a jump.Mode. Empty means oscillate.
func ParseMode(name string) (jump.Mode, error) {
	switch name {
	case "", "oscillate":
		return jump.ModeOscillate, nil
	case "restart":
		return jump.ModeRestart, nil
	default:
		return 0, fmt.Errorf("%w: unknown charge mode %q", ErrInvalidConfig, name)
	}
}

// JumpConfig validates the tuning and converts it for the controller.
// Omitted min, max, short_hop and tint blocks take the stock values.
func (c *ChargeConfig) JumpConfig() (jump.Config, error) {
	defaults := jump.DefaultConfig()

	if c.HoldTime <= 0 {
		return jump.Config{}, fmt.Errorf("%w: hold_time must be positive", ErrInvalidConfig)
	}
	minF, maxF, hop := c.Min, c.Max, c.ShortHop
	if minF == (ForceXY{}) {
		minF = ForceXY{X: defaults.MinX, Y: defaults.MinY}
	}
	if maxF == (ForceXY{}) {
		maxF = ForceXY{X: defaults.MaxX, Y: defaults.MaxY}
	}
	if minF.X < 0 || minF.Y < 0 {
		return jump.Config{}, fmt.Errorf("%w: min force must not be negative", ErrInvalidConfig)
	}
	if minF.X > maxF.X || minF.Y > maxF.Y {
		return jump.Config{}, fmt.Errorf("%w: min force exceeds max force", ErrInvalidConfig)
	}
	if hop == (ShortHopConfig{}) {
		hop = ShortHopConfig{Force: defaults.ShortHopY, Threshold: defaults.ShortHopThreshold}
	}
	if hop.Force <= 0 || hop.Threshold <= 0 {
		return jump.Config{}, fmt.Errorf("%w: short_hop force and threshold must be positive", ErrInvalidConfig)
	}
	if c.RestartDelay < 0 {
		return jump.Config{}, fmt.Errorf("%w: restart_delay must not be negative", ErrInvalidConfig)
	}
	mode, err := ParseMode(c.Mode)
	if err != nil {
		return jump.Config{}, err
	}
	easing, err := Easing(c.Easing)
	if err != nil {
		return jump.Config{}, err
	}

	base, charged := color.RGBA(c.Tint.Base), color.RGBA(c.Tint.Charged)
	if base == (color.RGBA{}) {
		base = defaults.BaseTint
	}
	if charged == (color.RGBA{}) {
		charged = defaults.ChargeTint
	}

	return jump.Config{
		HoldTime:          c.HoldTime,
		MinX:              minF.X,
		MaxX:              maxF.X,
		MinY:              minF.Y,
		MaxY:              maxF.Y,
		ShortHopY:         hop.Force,
		ShortHopThreshold: hop.Threshold,
		Mode:              mode,
		RestartDelay:      c.RestartDelay,
		Easing:            easing,
		BaseTint:          base,
		ChargeTint:        charged,
	}, nil
}
