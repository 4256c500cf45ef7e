package config

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// ControlsConfig is the root config for controls.yaml
type ControlsConfig struct {
	Jump       []KeyName `yaml:"jump"`
	Pause      KeyName   `yaml:"pause"`
	SaveReplay KeyName   `yaml:"save_replay"`
	// Gamepad enables the bottom face button as a jump button
	Gamepad bool `yaml:"gamepad"`
}

// KeyName decodes an ebiten key name such as "Space" or "ArrowUp"
type KeyName ebiten.Key

func (k *KeyName) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("key must be a string")
	}
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(value.Value)); err != nil {
		return fmt.Errorf("unknown key %q: %w", value.Value, err)
	}
	*k = KeyName(key)
	return nil
}

// Key returns the ebiten key
func (k KeyName) Key() ebiten.Key {
	return ebiten.Key(k)
}

// JumpKeys returns the keys bound to jump
func (c *ControlsConfig) JumpKeys() []ebiten.Key {
	keys := make([]ebiten.Key, len(c.Jump))
	for i, k := range c.Jump {
		keys[i] = k.Key()
	}
	return keys
}

// Validate checks that jumping is possible
func (c *ControlsConfig) Validate() error {
	if len(c.Jump) == 0 && !c.Gamepad {
		return fmt.Errorf("%w: no jump binding", ErrInvalidConfig)
	}
	return nil
}

// DefaultControls binds jump to Space, matching the prototype
func DefaultControls() *ControlsConfig {
	return &ControlsConfig{
		Jump:       []KeyName{KeyName(ebiten.KeySpace)},
		Pause:      KeyName(ebiten.KeyEscape),
		SaveReplay: KeyName(ebiten.KeyF5),
		Gamepad:    true,
	}
}
