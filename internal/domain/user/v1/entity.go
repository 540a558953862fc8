package userv1

// User is a registered account. Password holds the bcrypt hash, never the
// plain text.
type User struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"-"`
}

// Service authenticates users against the configured accounts.
type Service interface {
	Login(username, password string) (*User, error)
}
