package util

import (
	"testing"
	"time"

	"github.com/Sitalakshmib/AceIt-sub001/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressReportCacheKey(t *testing.T) {
	assert.Equal(t, "aceit:progress:report:42:2024-06-30", ProgressReportCacheKey(42, "2024-06-30"))
}

func TestMustParseUint(t *testing.T) {
	assert.Equal(t, uint(123), MustParseUint("123"))
	assert.Equal(t, uint(0), MustParseUint("abc"))
	assert.Equal(t, uint(0), MustParseUint("-5"))
	assert.Equal(t, uint(0), MustParseUint(""))
}

func TestJWTRoundTrip(t *testing.T) {
	secret := "0123456789abcdef0123456789abcdef"
	user := &model.User{
		Email: "student@example.com",
		Role:  model.Student,
	}
	user.ID = 7

	token, err := GenerateJWT(user, secret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, model.Student, claims.Role)
	assert.Equal(t, "student@example.com", claims.Email)

	_, err = ParseJWT(token, "wrong-secret-wrong-secret-wrong!")
	assert.Error(t, err)
}
