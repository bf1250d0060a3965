package gen

// Ping checks service liveness.
//
//reqwire:request method=GET path=/ping/{id}
type Ping struct {
	ID      int64 `rest:"path"`
	Verbose *bool `rest:"query"`
}
