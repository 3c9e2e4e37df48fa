// internal/config/validate_test.go
package config

import (
	"strings"
	"testing"
)

// helper to build a minimal valid config quickly
func signCfg(lines ...LineConfig) *Config {
	return &Config{
		Sign: SignConfig{
			ID:       1,
			Endpoint: "192.168.1.50",
			Lines:    lines,
		},
	}
}

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

// ---- tests ----

func TestValidate_Minimal(t *testing.T) {
	if err := Validate(signCfg()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_FullLine(t *testing.T) {
	cfg := signCfg(LineConfig{
		Line:     2,
		Enabled:  boolPtr(true),
		Color:    "amber",
		TextSize: intPtr(11),
		Scroll:   "scroll_up",
		Speed:    "fast",
		Blink:    "slow",
		Text:     "TEMP <DEC 1 2 0 N>",
	})

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingEndpoint(t *testing.T) {
	cfg := signCfg()
	cfg.Sign.Endpoint = ""

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected endpoint error, got nil")
	}
}

func TestValidate_IDOutOfRange(t *testing.T) {
	cfg := signCfg()
	cfg.Sign.ID = 1000

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected id error, got nil")
	}
}

func TestValidate_LineOutOfRange(t *testing.T) {
	for _, n := range []int{0, 5} {
		if err := Validate(signCfg(LineConfig{Line: n})); err == nil {
			t.Fatalf("line %d: expected error, got nil", n)
		}
	}
}

func TestValidate_BadEnums(t *testing.T) {
	bad := []LineConfig{
		{Line: 1, Color: "blue"},
		{Line: 1, Scroll: "sideways"},
		{Line: 1, Speed: "warp"},
		{Line: 1, Blink: "always"},
		{Line: 1, TextSize: intPtr(12)},
		{Line: 1, Text: "tab\there"},
	}

	for i, l := range bad {
		if err := Validate(signCfg(l)); err == nil {
			t.Fatalf("case %d: expected error, got nil", i)
		}
	}

	cfg := signCfg()
	cfg.Sign.TestPattern = "blue"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected test pattern error, got nil")
	}
}

func TestValidate_DuplicateLine(t *testing.T) {
	cfg := signCfg(
		LineConfig{Line: 2, Text: "a"},
		LineConfig{Line: 2, Text: "b"},
	)

	err := Validate(cfg)
	if err == nil {
		t.Fatalf("expected duplicate error, got nil")
	}
	if !strings.Contains(err.Error(), "declared twice") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_TooManyLines(t *testing.T) {
	cfg := signCfg(
		LineConfig{Line: 1}, LineConfig{Line: 2}, LineConfig{Line: 3},
		LineConfig{Line: 4}, LineConfig{Line: 4},
	)

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
