package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/springjump/internal/domain/jump"
)

// Config file names inside the config directory
const (
	PhysicsFile  = "physics.json"
	ChargeFile   = "charge.yaml"
	ControlsFile = "controls.yaml"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Charge   *ChargeConfig
	Controls *ControlsConfig
	// Jump is Charge converted and validated for the controller
	Jump jump.Config
}

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, PhysicsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", PhysicsFile, err)
	}

	var cfg PhysicsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", PhysicsFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate %s: %w", PhysicsFile, err)
	}

	return &cfg, nil
}

// LoadCharge loads charge.yaml
func (l *Loader) LoadCharge() (*ChargeConfig, error) {
	data, err := l.ReadCharge()
	if err != nil {
		return nil, err
	}
	return ParseCharge(data)
}

// ReadCharge returns the raw bytes of charge.yaml
func (l *Loader) ReadCharge() ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, ChargeFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ChargeFile, err)
	}
	return data, nil
}

// ParseCharge parses and validates charge.yaml content
func ParseCharge(data []byte) (*ChargeConfig, error) {
	var cfg ChargeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ChargeFile, err)
	}
	if _, err := cfg.JumpConfig(); err != nil {
		return nil, fmt.Errorf("failed to validate %s: %w", ChargeFile, err)
	}
	return &cfg, nil
}

// LoadControls loads controls.yaml. A missing file yields the default bindings.
func (l *Loader) LoadControls() (*ControlsConfig, error) {
	if _, err := fs.Stat(l.fsys, ControlsFile); err != nil {
		return DefaultControls(), nil
	}
	cfg, err := loadYAML[ControlsConfig](l.fsys, ControlsFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate %s: %w", ControlsFile, err)
	}
	return cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}
	if cfg.Size.TileSize <= 0 {
		return nil, fmt.Errorf("failed to validate stage %s: %w: tileSize must be positive", name, ErrInvalidConfig)
	}

	return &cfg, nil
}

// LoadAll loads all base configurations (physics, charge, controls)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	charge, err := l.LoadCharge()
	if err != nil {
		return nil, err
	}

	controls, err := l.LoadControls()
	if err != nil {
		return nil, err
	}

	jumpCfg, err := charge.JumpConfig()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Charge:   charge,
		Controls: controls,
		Jump:     jumpCfg,
	}, nil
}

func loadYAML[T any](fsys fs.FS, name string) (*T, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var cfg T
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return &cfg, nil
}
