package provider

import (
	"testing"

	"github.com/tmstorey/reqwire/reqgen/ir"
)

func TestParseRestTag(t *testing.T) {
	tests := []struct {
		value string
		want  restTag
	}{
		{"path", restTag{Role: ir.RolePath}},
		{"query=page_size", restTag{Role: ir.RoleQuery, Rename: "page_size"}},
		{"body,default", restTag{Role: ir.RoleBody, Default: true}},
		{"path,into", restTag{Role: ir.RolePath, Into: true}},
		{"body,validate=ValidateName", restTag{Role: ir.RoleBody, Validate: "ValidateName"}},
		{"body,rules=email", restTag{Role: ir.RoleBody, Rules: "email"}},
		{"header=X-Custom-Auth", restTag{Role: ir.RoleHeader, Rename: "X-Custom-Auth"}},
		{"-", restTag{Skip: true}},
		{"query, into", restTag{Role: ir.RoleQuery, Into: true}},
	}
	for _, tt := range tests {
		got, err := parseRestTag(tt.value)
		if err != nil {
			t.Errorf("parseRestTag(%q): %v", tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseRestTag(%q) = %+v, want %+v", tt.value, got, tt.want)
		}
	}
}

func TestParseRestTagErrors(t *testing.T) {
	values := []string{
		"",
		"cookie",
		"query=",
		"-,into",
		"body,into=yes",
		"body,default=zero",
		"body,validate",
		"body,validate=",
		"body,rules",
		"body,unknown",
		"body,",
	}
	for _, v := range values {
		if _, err := parseRestTag(v); err == nil {
			t.Errorf("parseRestTag(%q): expected error", v)
		}
	}
}
