package flock

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"default is valid", func(c *Config) {}, false},
		{"zero agents is valid", func(c *Config) { c.NumAgents = 0 }, false},
		{"negative agents", func(c *Config) { c.NumAgents = -1 }, true},
		{"zero maxSpeed", func(c *Config) { c.MaxSpeed = 0 }, true},
		{"negative maxForce", func(c *Config) { c.MaxForce = -0.1 }, true},
		{"zero perception", func(c *Config) { c.Factors.PerceptionRadius = 0 }, true},
		{"flat volume", func(c *Config) { c.Bounds.Depth = 0 }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tc.wantErr)
			}
		})
	}
}

const testSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "numAgents": {"type": "integer", "minimum": 0},
    "maxSpeed": {"type": "number", "exclusiveMinimum": 0}
  }
}`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeTestFile(t, dir, "schema.json", testSchema)

	t.Run("valid file", func(t *testing.T) {
		configPath := writeTestFile(t, dir, "ok.json", `{
			"bounds": {"width": 800, "height": 500, "depth": 600},
			"numAgents": 120,
			"maxSpeed": 4.0,
			"maxForce": 0.2,
			"factors": {
				"perceptionRadius": 60,
				"separation": 1.5,
				"alignment": 1.0,
				"cohesion": 1.0,
				"windStrength": 0.3
			},
			"screenWidth": 1024,
			"screenHeight": 768
		}`)

		cfg, err := LoadConfig(configPath, schemaPath)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.NumAgents != 120 {
			t.Errorf("numAgents: got %d, want 120", cfg.NumAgents)
		}
		if cfg.Bounds.Depth != 600 {
			t.Errorf("bounds.depth: got %g, want 600", cfg.Bounds.Depth)
		}
		if cfg.Factors.PerceptionRadius != 60 {
			t.Errorf("factors.perceptionRadius: got %g, want 60", cfg.Factors.PerceptionRadius)
		}
	})

	t.Run("schema violation", func(t *testing.T) {
		configPath := writeTestFile(t, dir, "bad_schema.json", `{"numAgents": -5}`)

		if _, err := LoadConfig(configPath, schemaPath); err == nil {
			t.Error("expected a schema validation error for negative numAgents")
		}
	})

	t.Run("semantic violation", func(t *testing.T) {
		// Passes the schema but fails Validate: missing bounds.
		configPath := writeTestFile(t, dir, "bad_semantic.json", `{
			"numAgents": 10, "maxSpeed": 4.0, "maxForce": 0.2,
			"factors": {"perceptionRadius": 60}
		}`)

		if _, err := LoadConfig(configPath, schemaPath); err == nil {
			t.Error("expected a validation error for missing bounds")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(dir, "nope.json"), schemaPath); err == nil {
			t.Error("expected an error for a missing config file")
		}
	})
}
