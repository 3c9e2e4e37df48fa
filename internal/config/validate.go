// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil config")
	}

	// ------------------------------------------------------------
	// FIELD VALIDATION (struct tags)
	// ------------------------------------------------------------

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("config: %s", strings.Join(msgs, " | "))
		}
		return fmt.Errorf("config: %w", err)
	}

	// ------------------------------------------------------------
	// LINE UNIQUENESS
	// ------------------------------------------------------------

	seen := make(map[int]int)
	for i, l := range cfg.Sign.Lines {
		if prev, exists := seen[l.Line]; exists {
			return fmt.Errorf(
				"config: line %d declared twice (entries %d and %d)",
				l.Line,
				prev,
				i,
			)
		}
		seen[l.Line] = i
	}

	return nil
}
