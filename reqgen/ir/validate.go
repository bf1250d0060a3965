package ir

import "fmt"

// ValidationError is a structural problem found in a Package. Generation
// aborts when any are present.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Code + ": " + e.Message
}

// reservedMethods are names the emitter claims on every builder; a field
// with one of these names would generate a duplicate method.
var reservedMethods = map[string]bool{
	"Build":           true,
	"Send":            true,
	"SendContext":     true,
	"HTTPClient":      true,
	"AsyncHTTPClient": true,
	"BaseURL":         true,
	"Header":          true,
	"Timeout":         true,
	"SetHeader":       true,
	"SetTimeout":      true,
}

// Validate checks the package's descriptors for structural issues.
// It returns all problems found, not just the first.
func (p *Package) Validate() []error {
	var errs []error

	add := func(code, format string, args ...any) {
		errs = append(errs, &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)})
	}

	for i := range p.Requests {
		req := &p.Requests[i]

		wireNames := make(map[string]*Field, len(req.Fields))
		for j := range req.Fields {
			f := &req.Fields[j]
			if reservedMethods[f.Name] {
				add("reserved_field_name", "%s: field %s.%s collides with a generated builder method",
					req.Pos, req.Name, f.Name)
			}
			wireNames[f.WireName] = f
		}

		// Every placeholder must name a field; every path-role field must
		// appear as a placeholder.
		params := make(map[string]bool)
		for _, param := range req.PathParams() {
			params[param] = true
			if _, ok := wireNames[param]; !ok {
				add("unmatched_path_parameter", "%s: path parameter {%s} in %q does not match any field of %s",
					req.Pos, param, req.Path, req.Name)
			}
		}
		for _, f := range req.FieldsByRole(RolePath) {
			if !params[f.WireName] {
				add("path_field_not_in_template", "%s: field %s.%s has role path but {%s} does not appear in %q",
					req.Pos, req.Name, f.Name, f.WireName, req.Path)
			}
		}

		// Roles other than none require a URL template to travel on.
		if req.Path == "" {
			for _, f := range req.Fields {
				if f.Role != RoleNone {
					add("role_without_path", "%s: field %s.%s has role %s but %s declares no path",
						req.Pos, req.Name, f.Name, f.Role, req.Name)
				}
			}
		}

		if req.QueryConfig != "" && len(req.FieldsByRole(RoleQuery)) == 0 {
			add("query_config_without_query", "%s: %s declares query_config but has no query fields",
				req.Pos, req.Name)
		}
	}

	for i := range p.Clients {
		c := &p.Clients[i]
		if c.BaseURL == "" {
			add("missing_base_url", "%s: client %s declares no base_url", c.Pos, c.ConfigName)
		}
		if len(c.Requests) == 0 {
			add("no_requests", "%s: client %s registers no request types", c.Pos, c.ConfigName)
		}
		seen := make(map[string]bool)
		for _, cr := range c.Requests {
			req := p.FindRequest(cr.TypeName)
			if req == nil {
				add("unknown_request_type", "%s: client %s registers unknown request type %s",
					c.Pos, c.ConfigName, cr.TypeName)
				continue
			}
			if req.Path == "" {
				add("request_without_path", "%s: client %s registers %s, which declares no path",
					c.Pos, c.ConfigName, cr.TypeName)
			}
			if seen[cr.MethodName] {
				add("duplicate_client_method", "%s: client %s has duplicate method name %s",
					c.Pos, c.ConfigName, cr.MethodName)
			}
			seen[cr.MethodName] = true
		}
	}

	return errs
}
