package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	password := "secret1"
	hashedPassword, err := HashPassword(password)

	assert.NoError(t, err)
	assert.NotEmpty(t, hashedPassword)
	assert.NotEqual(t, password, hashedPassword)
}

func TestCheckPasswordHash(t *testing.T) {
	password := "secret1"
	hashedPassword, _ := HashPassword(password)

	assert.True(t, CheckPasswordHash(password, hashedPassword))
	assert.False(t, CheckPasswordHash("wrong-password", hashedPassword))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("secret1", "not-a-bcrypt-hash"))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("secret1")
	assert.NoError(t, err)
	second, err := HashPassword("secret1")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}
