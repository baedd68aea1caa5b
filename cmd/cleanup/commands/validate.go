package commands

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report flag names rather than struct field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("flag"); name != "" {
			return name
		}
		return f.Name
	})
	v.RegisterStructValidation(validateCleanOptions, cleanOptions{})
	return v
}

// validateCleanOptions rejects --write when the input is stdin ("-"),
// which would otherwise create a file named "-".
func validateCleanOptions(sl validator.StructLevel) {
	opts := sl.Current().Interface().(cleanOptions)
	if opts.Write && opts.File == "-" {
		sl.ReportError(opts.File, "file", "File", "stdin_write", "")
	}
}

// validateOptions checks a command's option struct.
func validateOptions(opts any) error {
	err := validate.Struct(opts)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatValidationError(e))
	}
	return fmt.Errorf("invalid options: %s", strings.Join(msgs, "; "))
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "oneof":
		return fmt.Sprintf("--%s must be one of: %s", e.Field(), strings.ReplaceAll(e.Param(), " ", ", "))
	case "required_with":
		if e.Field() == "file" {
			return fmt.Sprintf("a file argument is required with --%s", strings.ToLower(e.Param()))
		}
		return fmt.Sprintf("--%s is required with --%s", e.Field(), strings.ToLower(e.Param()))
	case "stdin_write":
		return "--write needs a file argument, not stdin (-)"
	case "excluded_with":
		return fmt.Sprintf("--%s cannot be combined with --%s", e.Field(), strings.ToLower(e.Param()))
	default:
		return fmt.Sprintf("--%s failed validation '%s'", e.Field(), e.Tag())
	}
}
