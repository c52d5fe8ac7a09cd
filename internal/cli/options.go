// Package cli implements the command runners behind the cconfig binary.
// Each command has an options struct validated up front and a Run function
// that prints progress and exits non-zero on failure.
package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Package-level validator used by all command runners.
var validate *validator.Validate

// goPackageRe matches a plain Go package identifier, the only form the
// generated file header accepts.
var goPackageRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("go_package", validateGoPackage); err != nil {
		panic(fmt.Errorf("register validator go_package: %w", err))
	}
}

// validateGoPackage implements the "go_package" tag.
func validateGoPackage(fl validator.FieldLevel) bool {
	name, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return goPackageRe.MatchString(name)
}

// checkOptions validates a command's options struct and turns field errors
// into a single user-facing message.
func checkOptions(opts any) error {
	err := validate.Struct(opts)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("option validation failed: %w", err)
	}

	var messages []string
	for _, fieldError := range validationErrors {
		messages = append(messages, formatFieldError(fieldError))
	}

	return fmt.Errorf("invalid options:\n  - %s", strings.Join(messages, "\n  - "))
}

// formatFieldError creates user-friendly error messages for field validation failures
func formatFieldError(fieldError validator.FieldError) string {
	fieldName := fieldError.Field()
	tag := fieldError.Tag()
	param := fieldError.Param()
	value := fieldError.Value()

	switch tag {
	case "required":
		return fmt.Sprintf("'%s' is required", fieldName)
	case "min":
		return fmt.Sprintf("'%s' must be at least %s, got '%v'", fieldName, param, value)
	case "max":
		return fmt.Sprintf("'%s' must be at most %s, got '%v'", fieldName, param, value)
	case "filepath":
		return fmt.Sprintf("'%s' must be a valid file path, got '%v'", fieldName, value)
	case "go_package":
		return fmt.Sprintf("'%s' must be a valid Go package name (e.g. 'appconfig'), got '%v'", fieldName, value)
	default:
		return fmt.Sprintf("'%s' failed validation '%s'", fieldName, tag)
	}
}
