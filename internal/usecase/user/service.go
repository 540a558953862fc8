package user

import (
	"github.com/milanbojovic/OrderOook/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	userv1 "github.com/milanbojovic/OrderOook/internal/domain/user/v1"
)

// ErrInvalidCredentials is returned when the username or password is wrong.
var ErrInvalidCredentials = errors.NewTracer("invalid username or password").
	WithCode(errors.ErrInvalidCredentials)

// Service authenticates against an in-memory user list.
type Service struct {
	users []userv1.User
}

// NewService creates a service with the given users. Passwords must
// already be bcrypt hashes.
func NewService(users ...userv1.User) *Service {
	return &Service{users: users}
}

// NewAdminUser builds the system administrator account from configured
// credentials, hashing the password.
func NewAdminUser(username, password string) (userv1.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return userv1.User{}, errors.NewTracer("hash admin password").Wrap(err)
	}

	return userv1.User{
		FirstName: "Administrator",
		LastName:  "Administrator",
		Email:     "admin@orderoook.local",
		Username:  username,
		Password:  string(hash),
	}, nil
}

// Login returns the matching user when the password verifies.
func (s *Service) Login(username, password string) (*userv1.User, error) {
	for i := range s.users {
		u := &s.users[i]
		if u.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil {
			return u, nil
		}
	}
	return nil, ErrInvalidCredentials
}
