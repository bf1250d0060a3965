// Package testfixtures declares annotated request types together with a
// hand-maintained copy of the generator's output for them, so the runtime
// package is exercised end to end the way generated code uses it.
package testfixtures

import (
	"errors"
	"strings"

	"github.com/tmstorey/reqwire"
)

// UserID identifies a user record.
type UserID int64

// User is the response payload for user lookups.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GetUser fetches a single user by id.
//
//reqwire:request method=GET path=/api/users/{id} response=User
type GetUser struct {
	// ID selects the user to fetch.
	ID UserID `rest:"path,into"`

	IncludePosts *bool `rest:"query"`
	PageSize     *int  `rest:"query=page_size"`

	APIKey string  `rest:"header"`
	Auth   *string `rest:"header=X-Custom-Auth"`
}

// CreateUser registers a new user.
//
//reqwire:request method=POST path=/api/users response=User
type CreateUser struct {
	Name  string `rest:"body,validate=ValidateName"`
	Email string `rest:"body,rules=email"`
	Age   *int   `rest:"body"`
	Role  string `rest:"body,default"`
}

// ListUsers enumerates users. Its query string goes through a custom
// encoder configuration instead of the shared default.
//
//reqwire:request method=GET path=/api/users query_config=ListQueryConfig
type ListUsers struct {
	Page *int    `rest:"query"`
	Tags *string `rest:"query"`
}

// ListQueryConfig supplies the encoder used by ListUsers queries.
func ListQueryConfig() *reqwire.QueryConfig {
	return listQueryConfig
}

var listQueryConfig = reqwire.NewQueryConfig()

// UpdateNote patches a note. It declares no response type, so sends return
// the raw response bytes.
//
//reqwire:request method=PUT path=/api/notes/{id}
type UpdateNote struct {
	ID   int64   `rest:"path"`
	Text *string `rest:"body"`
	Tags *string `rest:"body"`
}

// ValidateName rejects blank user names.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("must not be blank")
	}
	return nil
}

// BackendConfig carries credentials for the user service.
//
//reqwire:client base_url=https://api.example.com requests=GetUser,CreateUser=new_user
type BackendConfig struct {
	Token string
}

// ConfigureRequest injects the bearer token on every builder the generated
// clients produce.
func (c *BackendConfig) ConfigureRequest(m reqwire.RequestModifier) {
	m.SetHeader("Authorization", "Bearer "+c.Token)
}
