package reqwire

import (
	"net/url"

	"github.com/gorilla/schema"
)

// QueryConfig serializes query-role fields into a query string. Generated
// BuildURL code constructs a synthetic struct tagged with schema: keys and
// hands it here; optional fields carry omitempty so unset values never
// appear in the output.
//
// The default configuration is shared via DefaultQueryConfig. A request type
// annotated with query_config=Fn calls the package-level Fn() instead, so
// callers can register custom encoders for exotic field types.
type QueryConfig struct {
	enc *schema.Encoder
}

var defaultQueryConfig = NewQueryConfig()

// NewQueryConfig returns a QueryConfig with a fresh encoder.
func NewQueryConfig() *QueryConfig {
	enc := schema.NewEncoder()
	enc.SetAliasTag("schema")
	return &QueryConfig{enc: enc}
}

// DefaultQueryConfig returns the shared default configuration.
func DefaultQueryConfig() *QueryConfig {
	return defaultQueryConfig
}

// Encoder exposes the underlying gorilla/schema encoder so custom
// configurations can register per-type encoder functions.
func (c *QueryConfig) Encoder() *schema.Encoder {
	return c.enc
}

// Serialize encodes v into a sorted, URL-escaped query string without the
// leading "?". An empty result means no parameters were present.
func (c *QueryConfig) Serialize(v any) (string, error) {
	values := url.Values{}
	if err := c.enc.Encode(v, values); err != nil {
		return "", err
	}
	return values.Encode(), nil
}
