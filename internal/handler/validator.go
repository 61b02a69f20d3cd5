package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("class", validateClass)
	_ = v.RegisterValidation("rarity", validateRarity)
	_ = v.RegisterValidation("gacha_tier", validateGachaTier)
	_ = v.RegisterValidation("player_id", validatePlayerID)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(InitValidator)
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by lowercased field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "class":
			errs[field] = "Unknown class"
		case "rarity":
			errs[field] = "Unknown rarity"
		case "gacha_tier":
			errs[field] = "Unknown gacha tier"
		case "player_id":
			errs[field] = "Must be letters, digits, '-' or '_'"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateClass(fl validator.FieldLevel) bool {
	switch domain.Class(strings.ToLower(fl.Field().String())) {
	case domain.ClassWarrior, domain.ClassMage, domain.ClassAssassin, domain.ClassPaladin:
		return true
	}
	return false
}

func validateRarity(fl validator.FieldLevel) bool {
	return domain.Rarity(strings.ToLower(fl.Field().String())).Valid()
}

func validateGachaTier(fl validator.FieldLevel) bool {
	switch domain.GachaTier(strings.ToLower(fl.Field().String())) {
	case domain.GachaStandard, domain.GachaPremium:
		return true
	}
	return false
}

func validatePlayerID(fl validator.FieldLevel) bool {
	return isPlayerID(fl.Field().String())
}

// isPlayerID accepts ids made of ASCII letters, digits, '-' and '_'.
func isPlayerID(id string) bool {
	if id == "" || len(id) > MaxPlayerIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
