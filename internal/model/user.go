package model

// StatusActive is the status given to a user at registration.
const StatusActive = "active"

// A User represents a database record.
// Password holds the Argon2id encoded verifier, salt included.
type User struct {
	Base `msgpack:",inline" storm:"inline"`

	FirstName string `json:"first_name" msgpack:"first_name"`
	LastName  string `json:"last_name"  msgpack:"last_name"`
	Email     string `json:"email"      msgpack:"email"    storm:"unique"`
	Password  string `json:"-"          msgpack:"password"`
	Status    string `json:"status"     msgpack:"status"`
}

// NewUser returns a new user with default params.
func NewUser() *User {
	return &User{
		Status: StatusActive,
	}
}
