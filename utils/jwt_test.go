package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("guest_abc")
	require.NoError(t, err)

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "guest_abc", claims.UserID)
	assert.Equal(t, "splendor-access", claims.Issuer)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	refresh, err := GenerateRefreshToken("guest_abc")
	require.NoError(t, err)

	_, err = ParseAccessToken(refresh)
	assert.Error(t, err)

	claims, err := ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "guest_abc", claims.UserID)
}

func TestParseGarbage(t *testing.T) {
	_, err := ParseAccessToken("not.a.token")
	assert.Error(t, err)
}
