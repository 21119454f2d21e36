package schema

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce     sync.Once
	validatorInstance *validator.Validate
)

var (
	hexColorPattern  = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	spacingPxPattern = regexp.MustCompile(`^\d+(\.\d+)?px$`)
)

// Problem is one advisory validation finding. Problems are reported, never
// fatal: a schema that fails validation is still emitted.
type Problem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Field, p.Message)
}

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			tag := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if tag == "" || tag == "-" {
				return field.Name
			}
			return tag
		})
		_ = v.RegisterValidation("hexcolor6", validateHexColor)
		_ = v.RegisterValidation("cssspacing", validateSpacingPx)
		validatorInstance = v
	})
	return validatorInstance
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorPattern.MatchString(fl.Field().String())
}

func validateSpacingPx(fl validator.FieldLevel) bool {
	return spacingPxPattern.MatchString(fl.Field().String())
}

// Validate checks the assembled document against the canonical shape and
// returns every problem found. An empty result means the schema is valid.
func Validate(s *Schema) []Problem {
	if s == nil {
		return []Problem{{Field: "schema", Message: "document is missing"}}
	}

	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Problem{{Field: "schema", Message: err.Error()}}
	}

	problems := make([]Problem, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, Problem{
			Field:   fieldPath(fe.Namespace()),
			Message: constraintMessage(fe),
		})
	}
	return problems
}

// fieldPath strips the root struct name from a validator namespace, leaving
// the JSON path ("colors.primary_color").
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required value is missing"
	case "hexcolor6":
		return fmt.Sprintf("%q is not a canonical #rrggbb color", fe.Value())
	case "cssspacing":
		return fmt.Sprintf("%q is not a pixel spacing value", fe.Value())
	case "max":
		return fmt.Sprintf("exceeds maximum of %s entries", fe.Param())
	case "url":
		return fmt.Sprintf("%q is not a valid URL", fe.Value())
	case "datetime":
		return fmt.Sprintf("%q is not a valid timestamp", fe.Value())
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}
