// internal/config/config.go
package config

type Config struct {
	Sign SignConfig `yaml:"sign"`
	Log  LogConfig  `yaml:"log"`
}

// ---- SIGN ----

type SignConfig struct {
	ID        int    `yaml:"id"         validate:"min=0,max=999"`
	Endpoint  string `yaml:"endpoint"   validate:"required"`
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms" validate:"min=0"`
	RetryMs   int    `yaml:"retry_ms"   validate:"min=0"`

	// Maintenance test pattern; "none" (or empty) shows the lines.
	TestPattern string `yaml:"test_pattern" validate:"omitempty,oneof=none green red amber advanced"`

	Lines []LineConfig `yaml:"lines" validate:"max=4,dive"`
}

// ---- LINES ----

// LineConfig declares one sign line. Empty attributes keep the line default.
type LineConfig struct {
	Line     int    `yaml:"line"      validate:"min=1,max=4"`
	Enabled  *bool  `yaml:"enabled"`
	Color    string `yaml:"color"     validate:"omitempty,oneof=green red amber"`
	TextSize *int   `yaml:"text_size" validate:"omitempty,min=0,max=11"`
	Scroll   string `yaml:"scroll"    validate:"omitempty,oneof=scroll_left scroll_right scroll_up scroll_down left_justified center_justified right_justified"`
	Speed    string `yaml:"speed"     validate:"omitempty,oneof=slow medium fast"`
	Blink    string `yaml:"blink"     validate:"omitempty,oneof=slow medium fast none"`
	Text     string `yaml:"text"      validate:"max=255,printascii"`
}

// ---- LOG ----

type LogConfig struct {
	Level      string `yaml:"level"       validate:"omitempty,oneof=trace debug info warn error"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"min=0"`
	MaxBackups int    `yaml:"max_backups" validate:"min=0"`
}
