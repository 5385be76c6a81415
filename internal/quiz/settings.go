// Package quiz drives a single quiz attempt from setup through scoring. The
// session is the single source of truth for the attempt; presentation layers
// render from it and never the reverse.
package quiz

import (
	"errors"
	"fmt"
	"sync"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/prepdeck/prepdeck/internal/config"
)

// ErrInvalidSettings is returned when settings cannot start a session.
var ErrInvalidSettings = errors.New("invalid quiz settings")

// Settings configures one quiz attempt. Validated before a session is created.
type Settings struct {
	Subject         string `mapstructure:"subject" validate:"required"`
	DurationMinutes int    `mapstructure:"duration_minutes" validate:"gt=0"`
	QuestionCount   int    `mapstructure:"question_count" validate:"gt=0"`
	Randomize       bool   `mapstructure:"randomize"`
}

var (
	settingsValidatorOnce sync.Once
	settingsValidator     *validator.Validate
	settingsTranslator    ut.Translator
	settingsValidatorErr  error
)

// Validate reports whether the settings can start a session.
func (s Settings) Validate() error {
	settingsValidatorOnce.Do(func() {
		settingsValidator, settingsTranslator, settingsValidatorErr = config.NewValidator()
	})
	if settingsValidatorErr != nil {
		return fmt.Errorf("config.NewValidator() > %w", settingsValidatorErr)
	}

	if err := settingsValidator.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, config.TranslateError(err, settingsTranslator))
	}
	return nil
}
