package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display   DisplayConfig   `json:"display"`
	Physics   PhysicsSettings `json:"physics"`
	Character CharacterConfig `json:"character"`
	Feedback  FeedbackConfig  `json:"feedback"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type PhysicsSettings struct {
	Gravity    float64 `json:"gravity"`
	Iterations int     `json:"iterations"`
	// ImpulseScale converts charge forces into Chipmunk impulses (mass * pixels/second)
	ImpulseScale float64 `json:"impulseScale"`
	// GroundGraceFrames is how long contact state may disagree with the
	// controller before the scene reconciles them.
	GroundGraceFrames int `json:"groundGraceFrames"`
}

// CharacterConfig describes the character's physics body in pixels
type CharacterConfig struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Mass       float64 `json:"mass"`
	Friction   float64 `json:"friction"`
	Elasticity float64 `json:"elasticity"`
}

type FeedbackConfig struct {
	AimRay        AimRayConfig        `json:"aimRay"`
	SquashStretch SquashStretchConfig `json:"squashStretch"`
}

// AimRayConfig configures the debug ray drawn from the character toward the cursor
type AimRayConfig struct {
	Enabled bool    `json:"enabled"`
	Length  float64 `json:"length"`
}

// SquashStretchConfig squashes the sprite vertically as the charge builds
type SquashStretchConfig struct {
	Enabled   bool    `json:"enabled"`
	MaxSquash float64 `json:"maxSquash"`
}

// Validate checks values that would break the simulation
func (c *PhysicsConfig) Validate() error {
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("%w: display.framerate must be positive", ErrInvalidConfig)
	}
	if c.Character.Width <= 0 || c.Character.Height <= 0 {
		return fmt.Errorf("%w: character size must be positive", ErrInvalidConfig)
	}
	if c.Character.Mass <= 0 {
		return fmt.Errorf("%w: character.mass must be positive", ErrInvalidConfig)
	}
	return nil
}
