package flock

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config is the startup configuration of a simulation instance.
type Config struct {
	// World volume
	Bounds Bounds `json:"bounds"`

	// Population
	NumAgents int `json:"numAgents"`

	// Physics
	MaxSpeed float64 `json:"maxSpeed"`
	MaxForce float64 `json:"maxForce"`

	// Initial steering weights (adjustable at runtime through the UI)
	Factors Factors `json:"factors"`

	// Viewport
	ScreenWidth  float64 `json:"screenWidth"`
	ScreenHeight float64 `json:"screenHeight"`
}

func DefaultConfig() *Config {
	return &Config{
		Bounds:    Bounds{Width: 1000, Height: 600, Depth: 800},
		NumAgents: 200,
		MaxSpeed:  DefaultMaxSpeed,
		MaxForce:  DefaultMaxForce,
		Factors: Factors{
			PerceptionRadius: 75,
			Separation:       1.5,
			Alignment:        1.0,
			Cohesion:         1.0,
			WindStrength:     0.3,
		},
		ScreenWidth:  1000,
		ScreenHeight: 700,
	}
}

// Validate rejects configurations the simulation cannot run with. Invalid
// values are a caller contract violation; they are reported here at the
// boundary instead of blowing up mid-tick.
func (c *Config) Validate() error {
	if c.NumAgents < 0 {
		return fmt.Errorf("invalid config: numAgents must be >= 0, got %d", c.NumAgents)
	}
	if c.MaxSpeed <= 0 {
		return fmt.Errorf("invalid config: maxSpeed must be > 0, got %g", c.MaxSpeed)
	}
	if c.MaxForce <= 0 {
		return fmt.Errorf("invalid config: maxForce must be > 0, got %g", c.MaxForce)
	}
	if c.Factors.PerceptionRadius <= 0 {
		return fmt.Errorf("invalid config: factors.perceptionRadius must be > 0, got %g", c.Factors.PerceptionRadius)
	}
	if c.Bounds.Width <= 0 || c.Bounds.Height <= 0 || c.Bounds.Depth <= 0 {
		return fmt.Errorf("invalid config: bounds must be positive, got %+v", c.Bounds)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file and validates it against the schema.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	f, err := os.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	// 3. Validate
	var v interface{}
	if err := json.NewDecoder(f).Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}

	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
