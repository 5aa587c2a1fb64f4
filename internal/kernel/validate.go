package kernel

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danieljhkim/metaforge/internal/spec"
)

// validate is the shared validator instance. Field names in errors come from
// yaml tags so violations name fields the way spec authors wrote them.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a domain spec against the constitutional kernel's minimal
// structure requirements, in order: presence of pattern, context, and
// constraints, then presence of constraints.hardware. It short-circuits on
// the first missing field with a *ConstitutionalViolation naming it.
//
// Hardware and technical_capacity are closed enumerations; unknown values
// are rejected here (*UnknownHardwareError / *InvalidValueError) rather than
// silently degraded during planning.
//
// Validate never mutates the spec or the rule set.
func (s *Store) Validate(ds *spec.DomainSpec) error {
	if ds == nil {
		return &ConstitutionalViolation{Field: "pattern"}
	}

	err := validate.Struct(ds)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return fmt.Errorf("failed to validate domain spec: %w", err)
	}

	// Struct fields are validated in declaration order, so the first error
	// is the first missing field.
	fe := verrs[0]
	field := fieldPath(fe.Namespace())

	switch fe.Tag() {
	case "required":
		return &ConstitutionalViolation{Field: field}
	case "oneof":
		value := fmt.Sprintf("%v", fe.Value())
		if field == "constraints.hardware" {
			return &UnknownHardwareError{Value: value}
		}
		return &InvalidValueError{Field: field, Value: value}
	default:
		return &InvalidValueError{Field: field, Value: fmt.Sprintf("%v", fe.Value())}
	}
}

// fieldPath strips the root struct name from a validator namespace,
// e.g. "DomainSpec.constraints.hardware" -> "constraints.hardware".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
