package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-saas-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidator_Validate(t *testing.T) {
	v := NewSchemaValidator()
	ctx := context.Background()

	tests := []struct {
		name       string
		obj        any
		fields     []string
		wantFields []FieldError
	}{
		{
			name: "valid register request",
			obj:  models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "s3cret!"},
		},
		{
			name: "pointer is accepted",
			obj:  &models.LoginRequest{Email: "ana@example.com", Password: "s3cret!"},
		},
		{
			name: "every offending field is listed",
			obj:  models.RegisterRequest{Email: "not-an-email"},
			wantFields: []FieldError{
				{Field: "email", Reason: "value is not a valid email address"},
				{Field: "name", Reason: "field required"},
				{Field: "password", Reason: "field required"},
			},
		},
		{
			name: "empty string is missing",
			obj:  models.ContactRequest{Name: "", Email: "bo@example.com", Subject: "Hi", Message: "Hello"},
			wantFields: []FieldError{
				{Field: "name", Reason: "field required"},
			},
		},
		{
			name: "hidden field reported by storage name",
			obj:  models.User{Name: "Ana", Email: "ana@example.com"},
			wantFields: []FieldError{
				{Field: "password_hash", Reason: "field required"},
			},
		},
		{
			name: "plan must be known",
			obj:  models.User{Name: "Ana", Email: "ana@example.com", PasswordHash: "x", Plan: "gold"},
			wantFields: []FieldError{
				{Field: "plan", Reason: "input should be one of: free, pro, business"},
			},
		},
		{
			name:   "field scoping ignores other fields",
			obj:    models.RegisterRequest{Email: "ana@example.com"},
			fields: []string{"email"},
		},
		{
			name:   "field scoping reports the scoped field",
			obj:    models.RegisterRequest{Name: "Ana", Email: "nope"},
			fields: []string{"email", "name"},
			wantFields: []FieldError{
				{Field: "email", Reason: "value is not a valid email address"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)

			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrValidation)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantFields, verr.Fields)
		})
	}
}

func TestSchemaValidator_Unsupported(t *testing.T) {
	v := NewSchemaValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, nil), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, (*models.User)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{}, "nickname"), ErrUnknownField)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(
		FieldError{Field: "name", Reason: "first"},
		FieldError{Field: "email", Reason: "bad"},
		FieldError{Field: "name", Reason: "second"},
	)

	assert.Equal(t, []FieldError{{Field: "email", Reason: "bad"}, {Field: "name", Reason: "first"}}, err.Fields)
	assert.True(t, err.Has("email"))
	assert.False(t, err.Has("password"))
	assert.Equal(t, "validation failed: email: bad; name: first", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
}
