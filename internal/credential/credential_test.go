package credential

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hashed)

	assert.True(t, CheckPassword(hashed, "admin123"))
	assert.False(t, CheckPassword(hashed, "admin124"))
	assert.False(t, CheckPassword(hashed, ""))
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, otp, 6)
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}

func TestResetTokenRoundTrip(t *testing.T) {
	key := []byte("test-signing-key")

	token, expiry, err := GenerateResetToken(key, "user@example.com", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, 5*time.Second)

	subject, err := VerifyResetToken(key, token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}

func TestVerifyResetTokenRejectsWrongKey(t *testing.T) {
	token, _, err := GenerateResetToken([]byte("key-one"), "user@example.com", time.Hour)
	require.NoError(t, err)

	_, err = VerifyResetToken([]byte("key-two"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyResetTokenRejectsExpired(t *testing.T) {
	key := []byte("test-signing-key")
	token, _, err := GenerateResetToken(key, "user@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = VerifyResetToken(key, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyResetTokenRejectsGarbage(t *testing.T) {
	_, err := VerifyResetToken([]byte("key"), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetTokensAreUnique(t *testing.T) {
	key := []byte("test-signing-key")
	a, _, err := GenerateResetToken(key, "user@example.com", time.Hour)
	require.NoError(t, err)
	b, _, err := GenerateResetToken(key, "user@example.com", time.Hour)
	require.NoError(t, err)

	// The random JTI keeps tokens distinct even for the same subject.
	assert.NotEqual(t, a, b)
}
