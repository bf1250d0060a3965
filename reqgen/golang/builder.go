package golang

import "github.com/tmstorey/reqwire/reqgen/ir"

// emitRequest renders everything one request type generates: the builder,
// its setters, Build, and (when the request declares a path) the request
// surface and send methods.
func (e *Emitter) emitRequest(req *ir.Request) {
	e.emitBuilderType(req)
	e.emitConstructor(req)
	e.emitSetters(req)
	e.emitInfraSetters(req)
	e.emitBuild(req)

	if req.Path != "" {
		e.emitBuildURL(req)
		e.emitBuildBody(req)
		e.emitBuildHeaders(req)
		e.emitSendWithClient(req)
		e.emitPrepare(req)
		e.emitSend(req)
		e.emitSendContext(req)
	}
}

func (e *Emitter) emitBuilderType(req *ir.Request) {
	if req.Doc != "" {
		e.doc(req.Doc)
		e.printf("//\n")
	}
	e.printf("// %sBuilder accumulates the fields of a %s request. Every\n", req.Name, req.Name)
	e.printf("// setter returns the builder so calls chain; Build assembles the request\n")
	e.printf("// and reports the first missing or invalid field.\n")
	e.printf("type %sBuilder struct {\n", req.Name)
	for i := range req.Fields {
		f := &req.Fields[i]
		e.printf("\t%s *%s\n", slotName(f), f.Elem)
	}
	e.printf("\n")
	e.printf("\thttpClient   reqwire.HTTPClient\n")
	e.printf("\tasyncClient  reqwire.ContextHTTPClient\n")
	e.printf("\tbaseURL      string\n")
	e.printf("\textraHeaders map[string]string\n")
	e.printf("\ttimeout      time.Duration\n")
	e.printf("}\n\n")
	e.printf("var _ reqwire.RequestModifier = (*%sBuilder)(nil)\n\n", req.Name)
}

func (e *Emitter) emitConstructor(req *ir.Request) {
	e.printf("// New%sBuilder returns an empty builder for %s.\n", req.Name, req.Name)
	e.printf("func New%sBuilder() *%sBuilder {\n", req.Name, req.Name)
	e.printf("\treturn &%sBuilder{extraHeaders: make(map[string]string)}\n", req.Name)
	e.printf("}\n\n")
}

func (e *Emitter) emitSetters(req *ir.Request) {
	for i := range req.Fields {
		f := &req.Fields[i]
		if f.Doc != "" {
			e.doc(f.Doc)
		} else {
			e.printf("// %s sets the %s field.\n", f.Name, f.Name)
		}
		e.printf("func (b *%sBuilder) %s(v %s) *%sBuilder {\n", req.Name, f.Name, setterType(f), req.Name)
		if f.Underlying != "" {
			e.printf("\tval := %s(v)\n", f.Elem)
			e.printf("\tb.%s = &val\n", slotName(f))
		} else {
			e.printf("\tb.%s = &v\n", slotName(f))
		}
		e.printf("\treturn b\n")
		e.printf("}\n\n")
	}
}

func (e *Emitter) emitInfraSetters(req *ir.Request) {
	n := req.Name

	e.printf("// HTTPClient sets the blocking transport used by Send.\n")
	e.printf("func (b *%sBuilder) HTTPClient(c reqwire.HTTPClient) *%sBuilder {\n", n, n)
	e.printf("\tb.httpClient = c\n\treturn b\n}\n\n")

	e.printf("// AsyncHTTPClient sets the context-aware transport used by SendContext.\n")
	e.printf("func (b *%sBuilder) AsyncHTTPClient(c reqwire.ContextHTTPClient) *%sBuilder {\n", n, n)
	e.printf("\tb.asyncClient = c\n\treturn b\n}\n\n")

	e.printf("// BaseURL sets the base URL the request path is appended to.\n")
	e.printf("func (b *%sBuilder) BaseURL(u string) *%sBuilder {\n", n, n)
	e.printf("\tb.baseURL = u\n\treturn b\n}\n\n")

	e.printf("// Header adds a dynamic header. Dynamic headers override headers derived\n")
	e.printf("// from header fields.\n")
	e.printf("func (b *%sBuilder) Header(name, value string) *%sBuilder {\n", n, n)
	e.printf("\tb.extraHeaders[name] = value\n\treturn b\n}\n\n")

	e.printf("// Timeout sets the request timeout passed to the transport.\n")
	e.printf("func (b *%sBuilder) Timeout(d time.Duration) *%sBuilder {\n", n, n)
	e.printf("\tb.timeout = d\n\treturn b\n}\n\n")

	e.printf("// SetHeader implements reqwire.RequestModifier.\n")
	e.printf("func (b *%sBuilder) SetHeader(name, value string) {\n", n)
	e.printf("\tb.extraHeaders[name] = value\n}\n\n")

	e.printf("// SetTimeout implements reqwire.RequestModifier.\n")
	e.printf("func (b *%sBuilder) SetTimeout(d time.Duration) {\n", n)
	e.printf("\tb.timeout = d\n}\n\n")
}

// emitBuild renders Build: fields are extracted in declaration order and
// the first failure wins.
func (e *Emitter) emitBuild(req *ir.Request) {
	e.printf("// Build assembles a %s from the set fields. Required fields that were\n", req.Name)
	e.printf("// never set fail with a missing-field error; fields are checked in\n")
	e.printf("// declaration order and the first failure is returned.\n")
	e.printf("func (b *%sBuilder) Build() (*%s, error) {\n", req.Name, req.Name)
	e.printf("\tr := &%s{}\n", req.Name)
	for i := range req.Fields {
		f := &req.Fields[i]
		slot := slotName(f)
		switch {
		case f.Optional:
			e.printf("\tif b.%s != nil {\n", slot)
			e.printf("\t\tr.%s = b.%s\n", f.Name, slot)
			e.emitFieldValidation(f, "*b."+slot, "\t\t")
			e.printf("\t}\n")
		case f.Default:
			e.printf("\tif b.%s != nil {\n", slot)
			e.printf("\t\tr.%s = *b.%s\n", f.Name, slot)
			e.printf("\t}\n")
			e.emitFieldValidation(f, "r."+f.Name, "\t")
		default:
			e.printf("\tif b.%s == nil {\n", slot)
			e.printf("\t\treturn nil, reqwire.MissingField(%q)\n", f.WireName)
			e.printf("\t}\n")
			e.printf("\tr.%s = *b.%s\n", f.Name, slot)
			e.emitFieldValidation(f, "r."+f.Name, "\t")
		}
	}
	e.printf("\treturn r, nil\n")
	e.printf("}\n\n")
}

// emitFieldValidation renders the validate= and rules= checks for one field.
// Optional fields reach here only when set.
func (e *Emitter) emitFieldValidation(f *ir.Field, expr, indent string) {
	if f.Validate != "" {
		e.printf("%sif err := %s(%s); err != nil {\n", indent, f.Validate, expr)
		e.printf("%s\treturn nil, reqwire.ValidationFailed(%q, err.Error())\n", indent, f.WireName)
		e.printf("%s}\n", indent)
	}
	if f.Rules != "" {
		e.printf("%sif err := reqwire.ValidateVar(%q, %s, %q); err != nil {\n", indent, f.WireName, expr, f.Rules)
		e.printf("%s\treturn nil, err\n", indent)
		e.printf("%s}\n", indent)
	}
}
