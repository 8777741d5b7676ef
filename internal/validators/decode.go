package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
)

// FieldBody is the field name reported when the input as a whole is not a
// JSON object.
const FieldBody = "body"

// Defaulter is implemented by records that fill unset fields with defaults
// before validation.
type Defaulter interface {
	ApplyDefaults()
}

// DecodeJSON reads a JSON object from r into dst, a pointer to a struct,
// then applies defaults and validates the result with v.
//
// Each field is decoded on its own so that a type mismatch in one field does
// not hide problems in the others. Type mismatches and rule violations are
// returned together as a single *ValidationError. Unknown fields are ignored.
func DecodeJSON(ctx context.Context, r io.Reader, dst any, v Validator) error {
	val := reflect.ValueOf(dst)
	if val.Kind() != reflect.Pointer || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading request body: %w", err)
	}

	var raw map[string]json.RawMessage
	if err = json.Unmarshal(body, &raw); err != nil || raw == nil {
		return NewValidationError(FieldError{Field: FieldBody, Reason: "input should be a valid JSON object"})
	}

	var typeErrors []FieldError
	elem := val.Elem()
	typ := elem.Type()
	for i := 0; i < typ.NumField(); i++ {
		fld := typ.Field(i)
		if !fld.IsExported() {
			continue
		}
		name := fieldName(fld)
		msg, ok := raw[name]
		if !ok || bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
			continue
		}
		if err = json.Unmarshal(msg, elem.Field(i).Addr().Interface()); err != nil {
			typeErrors = append(typeErrors, FieldError{Field: name, Reason: typeReason(fld.Type)})
		}
	}

	if d, ok := dst.(Defaulter); ok {
		d.ApplyDefaults()
	}

	fields := typeErrors
	if err = v.Validate(ctx, dst); err != nil {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		fields = append(fields, verr.Fields...)
	}

	if len(fields) > 0 {
		return NewValidationError(fields...)
	}

	return nil
}

func typeReason(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "input should be a valid string"
	case reflect.Bool:
		return "input should be a valid boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "input should be a valid integer"
	case reflect.Float32, reflect.Float64:
		return "input should be a valid number"
	case reflect.Slice, reflect.Array:
		return "input should be a valid list"
	default:
		return "input should be a valid " + t.String()
	}
}
