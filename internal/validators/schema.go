package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SchemaValidator validates records and request payloads against the rules
// declared in their `validate` struct tags. Offending fields are reported by
// their JSON name.
type SchemaValidator struct {
	validate *validator.Validate
}

// NewSchemaValidator constructs a SchemaValidator and returns it as the
// Validator interface.
func NewSchemaValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	return &SchemaValidator{validate: v}
}

// Validate checks obj, a struct or a pointer to one. When fields are given
// (by JSON name) only those fields are checked.
//
// Returns a *ValidationError listing every violation, ErrUnsupportedType for
// non-struct input and ErrUnknownField for a field the struct does not have.
func (v *SchemaValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	val := reflect.ValueOf(obj)
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return ErrUnsupportedType
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}
	typ := val.Type()

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		goNames, lookupErr := goFieldNames(typ, fields)
		if lookupErr != nil {
			return lookupErr
		}
		err = v.validate.StructPartialCtx(ctx, obj, goNames...)
	}

	return translate(err)
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return err
	}

	fields := make([]FieldError, 0, len(violations))
	for _, fe := range violations {
		fields = append(fields, FieldError{Field: fe.Field(), Reason: reason(fe)})
	}

	return NewValidationError(fields...)
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "oneof":
		return "input should be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max":
		return "input should have at most " + fe.Param() + " characters"
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

// fieldName is the name a struct field is reported under: its JSON name,
// or its BSON name for fields hidden from JSON, or the Go name.
func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"json", "bson"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}

func goFieldNames(typ reflect.Type, names []string) ([]string, error) {
	byName := make(map[string]string, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		fld := typ.Field(i)
		if fld.IsExported() {
			byName[fieldName(fld)] = fld.Name
		}
	}

	goNames := make([]string, 0, len(names))
	for _, n := range names {
		goName, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, n)
		}
		goNames = append(goNames, goName)
	}

	return goNames, nil
}
