package service

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/limbo/moodboard/internal/error_values"
	"github.com/limbo/moodboard/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("entry_date", func(fl validator.FieldLevel) bool {
			return entity.Date(fl.Field().String()).Valid()
		})
		validate.RegisterValidation("morning_mood", func(fl validator.FieldLevel) bool {
			return entity.IsMorningMood(fl.Field().String())
		})
		validate.RegisterValidation("evening_feeling", func(fl validator.FieldLevel) bool {
			return entity.IsEveningFeeling(fl.Field().String())
		})
		validate.RegisterValidation("palette_color", func(fl validator.FieldLevel) bool {
			return entity.IsPaletteColor(fl.Field().String())
		})
	})
}

// ValidateEntry checks shared identity fields and the variant specific fields of e.
func ValidateEntry(e *entity.MoodEntry) error {
	InitValidator()
	if e == nil {
		return errors.Join(errorvalues.ErrValidation, errors.New("entry is nil"))
	}
	if err := validationError(validate.Struct(*e)); err != nil {
		return err
	}
	switch d := e.Details.(type) {
	case entity.MorningDetails:
		return validationError(validate.Struct(d))
	case entity.EveningDetails:
		return validationError(validate.Struct(d))
	default:
		return errors.Join(errorvalues.ErrValidation, errors.New("entry details are missing"))
	}
}

func validateRequest(req any) error {
	InitValidator()
	return validationError(validate.Struct(req))
}

func validationError(err error) error {
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		joined := errorvalues.ErrValidation
		for _, fieldErr := range validationErrors {
			joined = errors.Join(joined, fieldErr)
		}
		return joined
	}
	return errors.Join(errorvalues.ErrValidation, errors.New("validation unexpected error: "+err.Error()))
}
