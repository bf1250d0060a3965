package ir

import (
	"strings"
	"testing"
)

func codes(errs []error) []string {
	var out []string
	for _, err := range errs {
		ve, ok := err.(*ValidationError)
		if !ok {
			out = append(out, err.Error())
			continue
		}
		out = append(out, ve.Code)
	}
	return out
}

func hasCode(t *testing.T, errs []error, code string) {
	t.Helper()
	for _, c := range codes(errs) {
		if c == code {
			return
		}
	}
	t.Errorf("missing %q in %v", code, codes(errs))
}

func TestValidateCleanPackage(t *testing.T) {
	p := &Package{
		Requests: []Request{{
			Name: "GetUser",
			Path: "/users/{id}",
			Fields: []Field{
				{Name: "ID", Role: RolePath, WireName: "id"},
				{Name: "PageSize", Role: RoleQuery, WireName: "page_size"},
			},
		}},
		Clients: []Client{{
			ConfigName: "APIConfig",
			ClientName: "APIClient",
			BaseURL:    "https://example.com",
			Requests:   []ClientRequest{{TypeName: "GetUser", MethodName: "GetUser"}},
		}},
	}
	if errs := p.Validate(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateRequestProblems(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		code string
	}{
		{
			name: "reserved field name",
			req: Request{Name: "R", Path: "/x", Fields: []Field{
				{Name: "Build", WireName: "build"},
			}},
			code: "reserved_field_name",
		},
		{
			name: "placeholder without field",
			req:  Request{Name: "R", Path: "/users/{id}"},
			code: "unmatched_path_parameter",
		},
		{
			name: "path field missing from template",
			req: Request{Name: "R", Path: "/users", Fields: []Field{
				{Name: "ID", Role: RolePath, WireName: "id"},
			}},
			code: "path_field_not_in_template",
		},
		{
			name: "role without a path",
			req: Request{Name: "R", Fields: []Field{
				{Name: "Q", Role: RoleQuery, WireName: "q"},
			}},
			code: "role_without_path",
		},
		{
			name: "query config without query fields",
			req:  Request{Name: "R", Path: "/x", QueryConfig: "CommaLists"},
			code: "query_config_without_query",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Package{Requests: []Request{tt.req}}
			hasCode(t, p.Validate(), tt.code)
		})
	}
}

func TestValidateClientProblems(t *testing.T) {
	p := &Package{
		Requests: []Request{
			{Name: "Ping", Path: "/ping"},
			{Name: "NoPath"},
		},
		Clients: []Client{{
			ConfigName: "Config",
			Requests: []ClientRequest{
				{TypeName: "Missing", MethodName: "Missing"},
				{TypeName: "NoPath", MethodName: "NoPath"},
				{TypeName: "Ping", MethodName: "Ping"},
				{TypeName: "Ping", MethodName: "Ping"},
			},
		}},
	}
	errs := p.Validate()
	for _, code := range []string{
		"missing_base_url",
		"unknown_request_type",
		"request_without_path",
		"duplicate_client_method",
	} {
		hasCode(t, errs, code)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Code: "missing_base_url", Message: "client X declares no base_url"}
	if !strings.Contains(err.Error(), "missing_base_url") {
		t.Errorf("Error() = %q", err.Error())
	}
}
