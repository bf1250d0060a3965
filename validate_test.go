package reqwire

import (
	"errors"
	"testing"
)

func TestValidateVarPasses(t *testing.T) {
	if err := ValidateVar("email", "ada@example.com", "email"); err != nil {
		t.Errorf("ValidateVar = %v", err)
	}
	if err := ValidateVar("age", 30, "gte=0,lte=150"); err != nil {
		t.Errorf("ValidateVar = %v", err)
	}
}

func TestValidateVarFails(t *testing.T) {
	tests := []struct {
		field   string
		value   any
		rules   string
		message string
	}{
		{"email", "nope", "email", "must be a valid email address"},
		{"name", "ab", "min=3", "must be at least 3"},
		{"name", "toolongname", "max=5", "must be at most 5"},
		{"count", 200, "lte=150", "must be at most 150"},
		{"kind", "blue", "oneof=red green", "must be one of: red green"},
	}
	for _, tt := range tests {
		err := ValidateVar(tt.field, tt.value, tt.rules)
		if err == nil {
			t.Errorf("ValidateVar(%q, %v, %q): expected error", tt.field, tt.value, tt.rules)
			continue
		}
		var re *RequestError
		if !errors.As(err, &re) {
			t.Errorf("error %v is not a *RequestError", err)
			continue
		}
		if re.Code != CodeValidation {
			t.Errorf("code = %q", re.Code)
		}
		if re.Field != tt.field {
			t.Errorf("field = %q, want %q", re.Field, tt.field)
		}
		if re.Message != tt.message {
			t.Errorf("message = %q, want %q", re.Message, tt.message)
		}
	}
}
