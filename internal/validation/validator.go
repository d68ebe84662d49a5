// package validation provides helper functions for request data validation.
// It uses the go-playground/validator library and includes custom validation rules.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// repoPathPattern accepts GitLab project paths, web URLs and clone URLs.
var repoPathPattern = regexp.MustCompile(`^[a-zA-Z0-9_.:/@~+-]+$`)

// shaPattern accepts full and abbreviated commit hashes.
var shaPattern = regexp.MustCompile(`^[0-9a-fA-F]{7,64}$`)

func init() {
	// "repo_path" keeps free-form repository input free of whitespace and
	// query syntax before it reaches GitLab.
	err := validate.RegisterValidation("repo_path", func(fl validator.FieldLevel) bool {
		v := strings.TrimSpace(fl.Field().String())
		if v == "" {
			// Allow empty strings to be handled by the 'required' tag.
			return true
		}

		return repoPathPattern.MatchString(v)
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register custom validation: %v", err))
	}

	err = validate.RegisterValidation("sha", func(fl validator.FieldLevel) bool {
		return shaPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register custom validation: %v", err))
	}
}

// ValidationError is a custom error type that holds a slice of validation error messages.
type ValidationError struct {
	Errors []string
}

// Error returns a single string concatenating all validation error messages.
func (v *ValidationError) Error() string {
	return strings.Join(v.Errors, ", ")
}

// ValidateStruct performs validation on a given struct based on its validation tags.
// If validation fails, it returns a *ValidationError with user-friendly messages.
func ValidateStruct(s any) error {
	return toValidationError(validate.Struct(s))
}

// ValidateVar validates a single value, such as a path parameter, against tag.
// field names the value in messages.
func ValidateVar(field string, v any, tag string) error {
	err := validate.Var(v, tag)
	if err == nil {
		return nil
	}

	verr := toValidationError(err)

	// Var errors carry no field name.
	if ve, ok := verr.(*ValidationError); ok {
		for i, msg := range ve.Errors {
			ve.Errors[i] = strings.Replace(msg, "field ''", fmt.Sprintf("field '%s'", field), 1)
		}
	}

	return verr
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var validationErrors []string

	for _, fe := range fieldErrors {
		var message string

		switch fe.Tag() {
		case "repo_path":
			message = fmt.Sprintf(
				"field '%s' must be a repository path such as 'group/name' or a repository URL",
				fe.Field(),
			)
		case "sha":
			message = fmt.Sprintf("field '%s' must be a commit hash", fe.Field())
		case "min", "max":
			message = fmt.Sprintf(
				"field '%s' must satisfy %s=%s",
				fe.Field(), fe.Tag(), fe.Param(),
			)
		default:
			message = fmt.Sprintf(
				"field '%s' failed on the '%s' tag",
				fe.Field(),
				fe.Tag(),
			)
		}

		validationErrors = append(validationErrors, message)
	}

	return &ValidationError{Errors: validationErrors}
}
