// Package ir defines the normalized descriptors produced by the provider
// and consumed by the emitter. Descriptors exist only during generation;
// they have no runtime representation in generated code.
package ir

// Role classifies where a field travels in the request.
type Role int

const (
	RoleNone   Role = iota // unclassified: participates in the builder only
	RolePath               // substituted into a {name} placeholder in the URL
	RoleQuery              // serialized into the query string
	RoleBody               // serialized into the JSON body
	RoleHeader             // emitted as an HTTP header
)

// String returns the string representation of the role.
func (r Role) String() string {
	switch r {
	case RolePath:
		return "path"
	case RoleQuery:
		return "query"
	case RoleBody:
		return "body"
	case RoleHeader:
		return "header"
	default:
		return "none"
	}
}

// Field describes one struct field of a request type.
type Field struct {
	// Name is the exported Go field name.
	Name string

	// Type is the declared field type rendered relative to the package
	// being generated (e.g. "*int64", "time.Duration", "UserID").
	Type string

	// Elem is the element type for pointer-typed fields; equal to Type
	// otherwise. Setters take Elem.
	Elem string

	// Underlying is the underlying basic type when it differs from Elem
	// and the field (or its request) carries the into flag; setters then
	// take Underlying and convert. Empty when into does not apply.
	Underlying string

	// Optional records that the declared type is a pointer. Optional
	// fields pass through Build unchecked and are omitted from query,
	// body, and header output when nil.
	Optional bool

	// Role is where the field travels in the request.
	Role Role

	// WireName is the key used for path matching and query/body keys: the
	// explicit rename if given, else the json tag name, else the
	// snake_cased field name. Header fields use HeaderName instead.
	WireName string

	// HeaderName is the header key for header-role fields: the explicit
	// rename if given, else the field name as hyphenated Title-Case.
	HeaderName string

	// Default substitutes the zero value for an unset required field.
	Default bool

	// Validate names a package-level func(T) error applied after
	// extraction.
	Validate string

	// Rules is a go-playground/validator tag expression applied through
	// the runtime after extraction.
	Rules string

	// Doc is the field's doc comment, copied onto the generated setter.
	Doc string
}

// Request describes one annotated request type.
type Request struct {
	// Name is the Go type name; the builder is named Name + "Builder".
	Name string

	// Method is the HTTP method; defaults to GET when unset.
	Method string

	// Path is the URL template with {name} placeholders. When empty, only
	// the builder is generated: no request surface, no send methods.
	Path string

	// Response is the declared response type expression; empty means Send
	// returns raw bytes.
	Response string

	// QueryConfig names a package-level func() *reqwire.QueryConfig used
	// in place of the default query encoder.
	QueryConfig string

	// Default applies default-value fallback to every field.
	Default bool

	// Fields lists the struct fields in declaration order. Build failures
	// are checked in this order and stop at the first.
	Fields []Field

	// Doc is the type's doc comment with directive lines stripped.
	Doc string

	// Pos is the source position (file:line) for diagnostics.
	Pos string
}

// HTTPMethod returns the declared method or the GET default.
func (r *Request) HTTPMethod() string {
	if r.Method == "" {
		return "GET"
	}
	return r.Method
}

// FieldsByRole returns the request's fields with the given role, in
// declaration order.
func (r *Request) FieldsByRole(role Role) []Field {
	var out []Field
	for _, f := range r.Fields {
		if f.Role == role {
			out = append(out, f)
		}
	}
	return out
}

// PathParams returns the placeholder names in Path, in template order.
func (r *Request) PathParams() []string {
	return ExtractPathParams(r.Path)
}

// ClientRequest maps a registered request type to a client method.
type ClientRequest struct {
	// TypeName is the request type's name.
	TypeName string

	// MethodName is the exported Go method name on the generated client.
	MethodName string
}

// Client describes one annotated client configuration type.
type Client struct {
	// ConfigName is the configuration type's name.
	ConfigName string

	// ClientName is the generated wrapper name: ConfigName with a trailing
	// "Config" stripped, plus "Client".
	ClientName string

	// BaseURL is the base URL literal baked into constructors.
	BaseURL string

	// Requests lists the registered request types in declaration order.
	Requests []ClientRequest

	// Pos is the source position (file:line) for diagnostics.
	Pos string
}

// Package is the unit of generation: every request and client found in one
// Go package, plus the imports its rendered field types require.
type Package struct {
	// Name is the Go package name; generated files share it.
	Name string

	// Path is the package import path.
	Path string

	// Dir is the directory containing the package sources.
	Dir string

	// Requests holds request descriptors in source order.
	Requests []Request

	// Clients holds client descriptors in source order.
	Clients []Client

	// Imports maps import paths to local names for packages referenced by
	// rendered field types (e.g. "time"). The emitter merges these with
	// the imports its own output needs.
	Imports map[string]string
}

// FindRequest looks up a request descriptor by type name.
func (p *Package) FindRequest(name string) *Request {
	for i := range p.Requests {
		if p.Requests[i].Name == name {
			return &p.Requests[i]
		}
	}
	return nil
}

// ExtractPathParams returns the {name} placeholders in a URL template, in
// order. Empty placeholders are ignored.
func ExtractPathParams(path string) []string {
	var params []string
	for i := 0; i < len(path); i++ {
		if path[i] != '{' {
			continue
		}
		end := i + 1
		for end < len(path) && path[end] != '}' {
			end++
		}
		if end >= len(path) {
			break
		}
		if end > i+1 {
			params = append(params, path[i+1:end])
		}
		i = end
	}
	return params
}
