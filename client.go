// Package reqwire is the runtime support library for code generated by the
// reqwire tool. Generated builders depend on the types in this package: the
// transport interfaces, the error taxonomy, the query-string encoder, and
// the validation helpers.
//
// The generator itself lives in the reqgen subpackages and is usually driven
// through the reqwire command:
//
//	//go:generate reqwire gen ./api
//
// A request type is annotated with a //reqwire:request directive and rest:
// struct tags:
//
//	//reqwire:request method=GET path=/api/users/{id} response=User
//	type GetUser struct {
//		ID           int64 `rest:"path" json:"id"`
//		IncludePosts *bool `rest:"query=include_posts"`
//	}
//
// which generates GetUserBuilder with one setter per field, Build, BuildURL,
// BuildBody, BuildHeaders, SendWithClient, Send and SendContext.
package reqwire

import (
	"context"
	"time"

	"github.com/tmstorey/reqwire/clients"
)

// HTTPClient is the blocking transport capability consumed by generated
// code. Implementations perform the actual network request; generated code
// never manages connections, retries, or timeouts beyond passing the
// configured timeout through. A zero timeout means the client's default.
type HTTPClient interface {
	Send(method, url string, headers map[string]string, body []byte, timeout time.Duration) ([]byte, error)
}

// ContextHTTPClient is the context-aware counterpart of HTTPClient, used by
// the generated SendContext path. Cancellation is entirely the client's
// responsibility.
type ContextHTTPClient interface {
	SendContext(ctx context.Context, method, url string, headers map[string]string, body []byte, timeout time.Duration) ([]byte, error)
}

// RequestModifier is the narrow mutation surface every generated builder
// exposes, so cross-cutting configuration can adjust any builder without
// knowing its concrete type.
type RequestModifier interface {
	// SetHeader adds a dynamic header. Dynamic headers override headers
	// derived from header-role fields at send time.
	SetHeader(name, value string)

	// SetTimeout sets the request timeout threaded through to the transport.
	SetTimeout(d time.Duration)
}

// RequestConfigurer is the optional hook a client config type can implement
// to pre-configure every builder produced by its generated client,
// typically to inject authentication headers.
type RequestConfigurer interface {
	ConfigureRequest(m RequestModifier)
}

// DefaultClient returns the net/http-backed blocking transport used by
// generated clients unless one is supplied explicitly.
func DefaultClient() HTTPClient {
	return clients.New()
}

// DefaultContextClient returns the net/http-backed context-aware transport
// used by generated async clients unless one is supplied explicitly.
func DefaultContextClient() ContextHTTPClient {
	return clients.New()
}
