package user

import (
	"testing"

	"github.com/milanbojovic/OrderOook/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Login(t *testing.T) {
	admin, err := NewAdminUser("admin", "s3cret")
	require.NoError(t, err)
	s := NewService(admin)

	u, err := s.Login("admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
}

func TestService_LoginWrongPassword(t *testing.T) {
	admin, err := NewAdminUser("admin", "s3cret")
	require.NoError(t, err)
	s := NewService(admin)

	_, err = s.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_LoginUnknownUser(t *testing.T) {
	s := NewService()

	_, err := s.Login("nobody", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_LoginErrorCarriesCode(t *testing.T) {
	s := NewService()

	_, err := s.Login("nobody", "anything")
	assert.Equal(t, errors.ErrInvalidCredentials, errors.CodeOf(err))
}

func TestNewAdminUser_HashesPassword(t *testing.T) {
	admin, err := NewAdminUser("admin", "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", admin.Password)
	assert.NotEmpty(t, admin.Password)
}
