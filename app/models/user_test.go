package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPasswordAndCheck(t *testing.T) {
	u := &User{}
	err := u.SetPassword("Secret123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123!", u.Password)

	assert.True(t, u.CheckPassword("Secret123!"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestUserIsActive(t *testing.T) {
	u := &User{Status: StatusActive}
	assert.True(t, u.IsActive())

	u.Status = StatusSuspended
	assert.False(t, u.IsActive())
}

func TestUserValidate(t *testing.T) {
	u := &User{
		Phone:     "+2348100000001",
		Email:     "someone@example.com",
		Password:  "hashed-value",
		FirstName: "Ada",
		LastName:  "Obi",
		Role:      RoleUser,
		Status:    StatusActive,
	}
	assert.NoError(t, u.Validate())

	u.Email = "not-an-email"
	assert.Error(t, u.Validate())
}
