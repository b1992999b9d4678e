package domain

// User as exposed by the API: the stored password column never leaves the
// storage adapter.
type User struct {
	ID       int64
	Username string
}
