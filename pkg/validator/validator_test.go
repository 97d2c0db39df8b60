package validator

import (
	"strings"
	"testing"
)

type registerPayload struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Role     string `validate:"omitempty,oneof=Admin Doctor Patient Staff"`
}

func TestValidate(t *testing.T) {
	cv := NewValidator()

	valid := registerPayload{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     "Patient",
	}
	if err := cv.Validate(&valid); err != nil {
		t.Errorf("Validate() on valid payload error = %v", err)
	}

	tests := []struct {
		name      string
		payload   registerPayload
		wantField string
		wantHint  string
	}{
		{
			name:      "missing name",
			payload:   registerPayload{Email: "jane@example.com", Password: "secret123"},
			wantField: "Name",
			wantHint:  "required",
		},
		{
			name:      "bad email",
			payload:   registerPayload{Name: "Jane", Email: "not-an-email", Password: "secret123"},
			wantField: "Email",
			wantHint:  "valid email",
		},
		{
			name:      "short password",
			payload:   registerPayload{Name: "Jane", Email: "jane@example.com", Password: "abc"},
			wantField: "Password",
			wantHint:  "at least 6",
		},
		{
			name:      "unknown role",
			payload:   registerPayload{Name: "Jane", Email: "jane@example.com", Password: "secret123", Role: "Janitor"},
			wantField: "Role",
			wantHint:  "one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.payload)
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}

			formatted := cv.FormatValidationErrors(err)
			msg, ok := formatted[tt.wantField]
			if !ok {
				t.Fatalf("no formatted error for field %s, got %v", tt.wantField, formatted)
			}
			if !strings.Contains(msg, tt.wantHint) {
				t.Errorf("message %q does not mention %q", msg, tt.wantHint)
			}
		})
	}
}
