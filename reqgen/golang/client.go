package golang

import (
	"strings"

	"github.com/tmstorey/reqwire/reqgen/ir"
)

// emitClient renders the blocking and context-aware client wrappers for one
// client configuration type.
func (e *Emitter) emitClient(c *ir.Client) {
	e.emitClientVariant(c, false)
	e.emitClientVariant(c, true)
}

func asyncClientName(c *ir.Client) string {
	return strings.TrimSuffix(c.ClientName, "Client") + "AsyncClient"
}

func (e *Emitter) emitClientVariant(c *ir.Client, async bool) {
	name := c.ClientName
	transport := "reqwire.HTTPClient"
	defaultCtor := "reqwire.DefaultClient()"
	wireSetter := "HTTPClient"
	flavor := "blocking"
	if async {
		name = asyncClientName(c)
		transport = "reqwire.ContextHTTPClient"
		defaultCtor = "reqwire.DefaultContextClient()"
		wireSetter = "AsyncHTTPClient"
		flavor = "context-aware"
	}

	e.printf("// %s issues the requests registered on %s over a\n", name, c.ConfigName)
	e.printf("// %s transport.\n", flavor)
	e.printf("type %s struct {\n", name)
	e.printf("\tconfig  *%s\n", c.ConfigName)
	e.printf("\tbaseURL string\n")
	e.printf("\tclient  %s\n", transport)
	e.printf("}\n\n")

	e.printf("// New%s returns a client wired to the declared base URL and the\n", name)
	e.printf("// default transport.\n")
	e.printf("func New%s() *%s {\n", name, name)
	e.printf("\treturn &%s{\n", name)
	e.printf("\t\tbaseURL: %q,\n", c.BaseURL)
	e.printf("\t\tclient:  %s,\n", defaultCtor)
	e.printf("\t}\n")
	e.printf("}\n\n")

	e.printf("// WithConfig attaches a configuration value. A configuration that\n")
	e.printf("// implements reqwire.RequestConfigurer is applied to every builder the\n")
	e.printf("// client produces.\n")
	e.printf("func (c *%s) WithConfig(cfg *%s) *%s {\n", name, c.ConfigName, name)
	e.printf("\tc.config = cfg\n\treturn c\n}\n\n")

	e.printf("// WithBaseURL overrides the declared base URL.\n")
	e.printf("func (c *%s) WithBaseURL(u string) *%s {\n", name, name)
	e.printf("\tc.baseURL = u\n\treturn c\n}\n\n")

	e.printf("// WithHTTPClient overrides the transport.\n")
	e.printf("func (c *%s) WithHTTPClient(hc %s) *%s {\n", name, transport, name)
	e.printf("\tc.client = hc\n\treturn c\n}\n\n")

	e.printf("// Config returns the attached configuration, if any.\n")
	e.printf("func (c *%s) Config() *%s {\n", name, c.ConfigName)
	e.printf("\treturn c.config\n}\n\n")

	for _, cr := range c.Requests {
		e.printf("// %s returns a builder for %s wired to the client's transport,\n", cr.MethodName, cr.TypeName)
		e.printf("// base URL, and configuration.\n")
		e.printf("func (c *%s) %s() *%sBuilder {\n", name, cr.MethodName, cr.TypeName)
		e.printf("\tb := New%sBuilder().%s(c.client).BaseURL(c.baseURL)\n", cr.TypeName, wireSetter)
		e.printf("\tc.configure(b)\n")
		e.printf("\treturn b\n")
		e.printf("}\n\n")
	}

	e.printf("func (c *%s) configure(m reqwire.RequestModifier) {\n", name)
	e.printf("\tif c.config == nil {\n\t\treturn\n\t}\n")
	e.printf("\tif cfg, ok := any(c.config).(reqwire.RequestConfigurer); ok {\n")
	e.printf("\t\tcfg.ConfigureRequest(m)\n")
	e.printf("\t}\n")
	e.printf("}\n\n")
}
