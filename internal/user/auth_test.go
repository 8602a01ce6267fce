package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	password := "secret"
	hash, err := HashPassword(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
}

func TestCheckPasswordHash(t *testing.T) {
	password := "secret"
	hash, _ := HashPassword(password)

	assert.True(t, CheckPasswordHash(password, hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestGenerateJWT(t *testing.T) {
	token, err := GenerateJWT("testsecret", "Ravi", "ravi@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestGenerateJWT_NoSecret(t *testing.T) {
	_, err := GenerateJWT("", "Ravi", "ravi@example.com")
	assert.Error(t, err)
	assert.Equal(t, "jwt secret is not set", err.Error())
}

func TestParseJWT(t *testing.T) {
	tokenStr, _ := GenerateJWT("testsecret", "Ravi", "ravi@example.com")

	t.Run("Success", func(t *testing.T) {
		claims, err := ParseJWT("testsecret", tokenStr)
		assert.NoError(t, err)
		assert.NotNil(t, claims)
		assert.Equal(t, "Ravi", claims.Name)
		assert.Equal(t, "ravi@example.com", claims.Email)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		_, err := ParseJWT("testsecret", "invalid-token-string")
		assert.Error(t, err)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		_, err := ParseJWT("othersecret", tokenStr)
		assert.Error(t, err)
	})

	t.Run("NoSecret", func(t *testing.T) {
		_, err := ParseJWT("", tokenStr)
		assert.Error(t, err)
		assert.Equal(t, "jwt secret is not set", err.Error())
	})
}
