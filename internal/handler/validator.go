package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validations for game enums
	_ = v.RegisterValidation("difficulty", validateDifficulty)
	_ = v.RegisterValidation("archetype", validateArchetype)
	_ = v.RegisterValidation("itemcategory", validateItemCategory)
	_ = v.RegisterValidation("equipslot", validateEquipSlot)
	_ = v.RegisterValidation("buildingtype", validateBuildingType)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	// Check if it's a validator.ValidationErrors
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
		case "difficulty":
			errs[field] = "Invalid difficulty"
		case "archetype":
			errs[field] = "Invalid gladiator type"
		case "itemcategory":
			errs[field] = "Invalid item category"
		case "equipslot":
			errs[field] = "Invalid equipment slot"
		case "buildingtype":
			errs[field] = "Invalid building"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s characters", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// ValidDifficulties defines the encounter tiers accepted from clients
var ValidDifficulties = map[string]bool{
	"easy":   true,
	"medium": true,
	"hard":   true,
}

// ValidArchetypes defines the recruitable gladiator types
var ValidArchetypes = map[string]bool{
	"murmillo":    true,
	"thraex":      true,
	"retiarius":   true,
	"secutor":     true,
	"dimachaerus": true,
	"essedarius":  true,
	"provocator":  true,
}

// ValidItemCategories defines the shop/inventory collections
var ValidItemCategories = map[string]bool{
	"weapons": true,
	"armors":  true,
	"potions": true,
}

// ValidEquipSlots defines the equipment slots
var ValidEquipSlots = map[string]bool{
	"weapon": true,
	"armor":  true,
}

// ValidBuildingTypes defines the upgradable buildings
var ValidBuildingTypes = map[string]bool{
	"barracks":        true,
	"training_ground": true,
	"infirmary":       true,
	"arena":           true,
}

// Empty values pass; pair with a 'required' tag when the field is mandatory.

func validateDifficulty(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if v == "" {
		return true
	}
	return ValidDifficulties[strings.ToLower(v)]
}

func validateArchetype(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if v == "" {
		return true
	}
	return ValidArchetypes[strings.ToLower(v)]
}

func validateItemCategory(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if v == "" {
		return true
	}
	return ValidItemCategories[strings.ToLower(v)]
}

func validateEquipSlot(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if v == "" {
		return true
	}
	return ValidEquipSlots[strings.ToLower(v)]
}

func validateBuildingType(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if v == "" {
		return true
	}
	return ValidBuildingTypes[strings.ToLower(v)]
}
