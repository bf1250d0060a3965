package valid

import "time"

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

	APIKey string `rest:"header"`
	Auth   string `rest:"header=X-Custom-Auth"`

	TraceID   *string `rest:"-"`
	StartedAt time.Time
}

// CreateUser registers a new user.
//
//reqwire:request method=POST path=/api/users response=User
type CreateUser struct {
	Name  string  `rest:"body,validate=ValidateName"`
	Email string  `rest:"body,rules=email"`
	Age   *int    `rest:"body"`
	Notes *string `rest:"body" json:"notes_field"`
	Role  string  `rest:"body,default"`
}

// ValidateName rejects blank user names.
func ValidateName(name string) error {
	return nil
}

// BackendConfig carries credentials for the user service.
//
//reqwire:client base_url=https://api.example.com requests=GetUser,CreateUser=new_user
type BackendConfig struct {
	Token string
}
