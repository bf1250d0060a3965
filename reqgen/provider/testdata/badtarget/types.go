package badtarget

// Alias is not a struct, so the directive cannot apply.
//
//reqwire:request method=GET path=/things
type Alias = map[string]string
