package golang

import "github.com/tmstorey/reqwire/reqgen/ir"

// emitBuildURL renders BuildURL: path placeholders are substituted in
// template order, then query fields are appended as a sorted query string.
func (e *Emitter) emitBuildURL(req *ir.Request) {
	query := req.FieldsByRole(ir.RoleQuery)
	params := req.PathParams()

	e.printf("// BuildURL renders the request path relative to the base URL, with path\n")
	e.printf("// parameters substituted and query parameters appended.\n")
	e.printf("func (r *%s) BuildURL() (string, error) {\n", req.Name)
	e.printf("\tpath := %q\n", req.Path)

	if len(params) > 0 {
		e.need("strings")
	}
	for _, param := range params {
		f := fieldByWireName(req, param)
		if f == nil {
			continue
		}
		expr := "r." + f.Name
		if f.Optional {
			e.printf("\tif r.%s == nil {\n", f.Name)
			e.printf("\t\treturn \"\", reqwire.MissingPathParameter(%q)\n", param)
			e.printf("\t}\n")
			expr = "*" + expr
		}
		e.printf("\tpath = strings.ReplaceAll(path, %q, %s)\n", "{"+param+"}", e.formatValue(expr, f))
	}

	if len(query) > 0 {
		e.printf("\n\tqp := struct {\n")
		for _, f := range query {
			tag := f.WireName
			if f.Optional {
				tag += ",omitempty"
			}
			e.printf("\t\t%s %s `schema:\"%s\"`\n", f.Name, f.Type, tag)
		}
		e.printf("\t}{\n")
		for _, f := range query {
			e.printf("\t\t%s: r.%s,\n", f.Name, f.Name)
		}
		e.printf("\t}\n")
		cfg := "reqwire.DefaultQueryConfig()"
		if req.QueryConfig != "" {
			cfg = req.QueryConfig + "()"
		}
		e.printf("\tqs, err := %s.Serialize(&qp)\n", cfg)
		e.printf("\tif err != nil {\n")
		e.printf("\t\treturn \"\", reqwire.QueryError(err)\n")
		e.printf("\t}\n")
		e.printf("\tif qs != \"\" {\n")
		e.printf("\t\tpath += \"?\" + qs\n")
		e.printf("\t}\n")
	}

	e.printf("\treturn path, nil\n")
	e.printf("}\n\n")
}

// emitBuildBody renders BuildBody. Requests without body fields return a nil
// body; requests whose body fields are all unset still produce an empty JSON
// object.
func (e *Emitter) emitBuildBody(req *ir.Request) {
	body := req.FieldsByRole(ir.RoleBody)

	e.printf("// BuildBody serializes the body fields as JSON. A nil body with a nil\n")
	e.printf("// error means the request carries no body.\n")
	e.printf("func (r *%s) BuildBody() ([]byte, error) {\n", req.Name)
	if len(body) == 0 {
		e.printf("\treturn nil, nil\n")
		e.printf("}\n\n")
		return
	}

	e.need("encoding/json")
	e.printf("\tpayload := struct {\n")
	for _, f := range body {
		tag := f.WireName
		if f.Optional {
			tag += ",omitempty"
		}
		e.printf("\t\t%s %s `json:\"%s\"`\n", f.Name, f.Type, tag)
	}
	e.printf("\t}{\n")
	for _, f := range body {
		e.printf("\t\t%s: r.%s,\n", f.Name, f.Name)
	}
	e.printf("\t}\n")
	e.printf("\tdata, err := json.Marshal(payload)\n")
	e.printf("\tif err != nil {\n")
	e.printf("\t\treturn nil, reqwire.BodyError(err)\n")
	e.printf("\t}\n")
	e.printf("\treturn data, nil\n")
	e.printf("}\n\n")
}

// emitBuildHeaders renders BuildHeaders. Unset optional header fields are
// omitted.
func (e *Emitter) emitBuildHeaders(req *ir.Request) {
	headers := req.FieldsByRole(ir.RoleHeader)

	e.printf("// BuildHeaders collects the header fields as a header map.\n")
	e.printf("func (r *%s) BuildHeaders() map[string]string {\n", req.Name)
	e.printf("\theaders := make(map[string]string)\n")
	for _, f := range headers {
		if f.Optional {
			e.printf("\tif r.%s != nil {\n", f.Name)
			e.printf("\t\theaders[%q] = %s\n", f.HeaderName, e.formatValue("*r."+f.Name, &f))
			e.printf("\t}\n")
		} else {
			e.printf("\theaders[%q] = %s\n", f.HeaderName, e.formatValue("r."+f.Name, &f))
		}
	}
	e.printf("\treturn headers\n")
	e.printf("}\n\n")
}

// emitSendWithClient renders the one-shot send on the built request value,
// for callers that assembled the request themselves.
func (e *Emitter) emitSendWithClient(req *ir.Request) {
	e.printf("// SendWithClient performs the request over c against baseURL and returns\n")
	e.printf("// the raw response bytes.\n")
	e.printf("func (r *%s) SendWithClient(c reqwire.HTTPClient, baseURL string) ([]byte, error) {\n", req.Name)
	e.printf("\tif baseURL == \"\" {\n")
	e.printf("\t\treturn nil, reqwire.MissingBaseURL()\n")
	e.printf("\t}\n")
	e.printf("\tpath, err := r.BuildURL()\n")
	e.printf("\tif err != nil {\n")
	e.printf("\t\treturn nil, err\n")
	e.printf("\t}\n")
	e.printf("\tbody, err := r.BuildBody()\n")
	e.printf("\tif err != nil {\n")
	e.printf("\t\treturn nil, err\n")
	e.printf("\t}\n")
	e.printf("\traw, err := c.Send(%q, baseURL+path, r.BuildHeaders(), body, 0)\n", req.HTTPMethod())
	e.printf("\tif err != nil {\n")
	e.printf("\t\treturn nil, reqwire.TransportError(err)\n")
	e.printf("\t}\n")
	e.printf("\treturn raw, nil\n")
	e.printf("}\n\n")
}

// emitPrepare renders the shared assembly step of Send and SendContext.
func (e *Emitter) emitPrepare(req *ir.Request) {
	e.printf("func (b *%sBuilder) prepare() (string, map[string]string, []byte, error) {\n", req.Name)
	e.printf("\tif b.baseURL == \"\" {\n")
	e.printf("\t\treturn \"\", nil, nil, reqwire.MissingBaseURL()\n")
	e.printf("\t}\n")
	e.printf("\tr, err := b.Build()\n")
	e.printf("\tif err != nil {\n")
	e.printf("\t\treturn \"\", nil, nil, err\n")
	e.printf("\t}\n")
	e.printf("\tpath, err := r.BuildURL()\n")
	e.printf("\tif err != nil {\n")
	e.printf("\t\treturn \"\", nil, nil, err\n")
	e.printf("\t}\n")
	e.printf("\theaders := r.BuildHeaders()\n")
	e.printf("\tfor name, value := range b.extraHeaders {\n")
	e.printf("\t\theaders[name] = value\n")
	e.printf("\t}\n")
	e.printf("\tbody, err := r.BuildBody()\n")
	e.printf("\tif err != nil {\n")
	e.printf("\t\treturn \"\", nil, nil, err\n")
	e.printf("\t}\n")
	e.printf("\treturn b.baseURL + path, headers, body, nil\n")
	e.printf("}\n\n")
}

// sendResult is the success type of Send and SendContext: a decoded response
// when the request declares one, raw bytes otherwise.
func sendResult(req *ir.Request) string {
	if req.Response != "" {
		return "*" + req.Response
	}
	return "[]byte"
}

func (e *Emitter) emitSend(req *ir.Request) {
	e.printf("// Send assembles the request and performs it over the configured blocking\n")
	e.printf("// transport.\n")
	e.printf("func (b *%sBuilder) Send() (%s, error) {\n", req.Name, sendResult(req))
	e.printf("\tif b.httpClient == nil {\n")
	e.printf("\t\treturn nil, reqwire.MissingField(\"http_client\")\n")
	e.printf("\t}\n")
	e.printf("\turl, headers, body, err := b.prepare()\n")
	e.printf("\tif err != nil {\n")
	e.printf("\t\treturn nil, err\n")
	e.printf("\t}\n")
	e.printf("\traw, err := b.httpClient.Send(%q, url, headers, body, b.timeout)\n", req.HTTPMethod())
	e.printf("\tif err != nil {\n")
	e.printf("\t\treturn nil, reqwire.TransportError(err)\n")
	e.printf("\t}\n")
	e.emitResponse(req)
	e.printf("}\n\n")
}

func (e *Emitter) emitSendContext(req *ir.Request) {
	e.need("context")
	e.printf("// SendContext assembles the request and performs it over the configured\n")
	e.printf("// context-aware transport.\n")
	e.printf("func (b *%sBuilder) SendContext(ctx context.Context) (%s, error) {\n", req.Name, sendResult(req))
	e.printf("\tif b.asyncClient == nil {\n")
	e.printf("\t\treturn nil, reqwire.MissingField(\"async_http_client\")\n")
	e.printf("\t}\n")
	e.printf("\turl, headers, body, err := b.prepare()\n")
	e.printf("\tif err != nil {\n")
	e.printf("\t\treturn nil, err\n")
	e.printf("\t}\n")
	e.printf("\traw, err := b.asyncClient.SendContext(ctx, %q, url, headers, body, b.timeout)\n", req.HTTPMethod())
	e.printf("\tif err != nil {\n")
	e.printf("\t\treturn nil, reqwire.TransportError(err)\n")
	e.printf("\t}\n")
	e.emitResponse(req)
	e.printf("}\n\n")
}

// emitResponse renders the tail of a send method: raw bytes when the request
// declares no response type, a JSON decode otherwise.
func (e *Emitter) emitResponse(req *ir.Request) {
	if req.Response == "" {
		e.printf("\treturn raw, nil\n")
		return
	}
	e.need("encoding/json")
	e.printf("\tvar resp %s\n", req.Response)
	e.printf("\tif err := json.Unmarshal(raw, &resp); err != nil {\n")
	e.printf("\t\treturn nil, reqwire.ResponseError(err)\n")
	e.printf("\t}\n")
	e.printf("\treturn &resp, nil\n")
}

// fieldByWireName finds the request field whose wire name matches a path
// placeholder.
func fieldByWireName(req *ir.Request, name string) *ir.Field {
	for i := range req.Fields {
		if req.Fields[i].WireName == name {
			return &req.Fields[i]
		}
	}
	return nil
}
