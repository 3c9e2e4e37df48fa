// internal/sign/builder.go
package sign

import (
	"time"

	cfg "github.com/tamzrod/viewmarq/internal/config"
	"github.com/tamzrod/viewmarq/internal/display"
	vmodbus "github.com/tamzrod/viewmarq/internal/transport/modbus"
)

// Build constructs a Sign over Modbus TCP from one sign config.
// Assumes config has already passed Validate and Normalize.
// No connection is made here; the first send connects.
func Build(c cfg.SignConfig) (*Sign, func() error, error) {
	client := vmodbus.New(vmodbus.Config{
		UnitID:  c.UnitID,
		Timeout: time.Duration(c.TimeoutMs) * time.Millisecond,
	})

	s, err := New(Config{
		ID:      c.ID,
		Address: c.Endpoint,
		Backoff: time.Duration(c.RetryMs) * time.Millisecond,
	}, client)
	if err != nil {
		return nil, nil, err
	}

	if err := Apply(s, c); err != nil {
		return nil, nil, err
	}

	return s, s.Close, nil
}

// Apply copies declared line attributes and the test pattern onto s.
// Attributes left empty in config keep their current value.
func Apply(s *Sign, c cfg.SignConfig) error {
	if c.TestPattern != "" {
		p, err := display.ParseTestPattern(c.TestPattern)
		if err != nil {
			return err
		}
		if err := s.SetTestCondition(p); err != nil {
			return err
		}
	}

	for _, l := range c.Lines {
		if err := applyLine(s, l); err != nil {
			return err
		}
	}
	return nil
}

func applyLine(s *Sign, l cfg.LineConfig) error {
	n := l.Line

	if l.Enabled != nil {
		if err := s.SetLine(n, *l.Enabled); err != nil {
			return err
		}
	}
	if l.Color != "" {
		c, err := display.ParseColor(l.Color)
		if err != nil {
			return err
		}
		if err := s.SetColor(n, c); err != nil {
			return err
		}
	}
	if l.TextSize != nil {
		if err := s.SetTextSize(n, *l.TextSize); err != nil {
			return err
		}
	}
	if l.Scroll != "" {
		st, err := display.ParseScrollType(l.Scroll)
		if err != nil {
			return err
		}
		if err := s.SetScrollType(n, st); err != nil {
			return err
		}
	}
	if l.Speed != "" {
		sp, err := display.ParseSpeed(l.Speed)
		if err != nil {
			return err
		}
		if err := s.SetScrollSpeed(n, sp); err != nil {
			return err
		}
	}
	if l.Blink != "" {
		b, err := display.ParseBlink(l.Blink)
		if err != nil {
			return err
		}
		if err := s.SetBlink(n, b); err != nil {
			return err
		}
	}
	if l.Text != "" {
		if err := s.SetText(n, l.Text); err != nil {
			return err
		}
	}
	return nil
}
