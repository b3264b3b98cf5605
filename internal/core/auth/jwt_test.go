package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTer() *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "issuer-a", TTL: time.Hour}
}

func TestIssueParseRoundTrip(t *testing.T) {
	j := testJWTer()

	token, err := j.Issue("user-1", "Admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UID)
	assert.Equal(t, "Admin", claims.Role)
	assert.Equal(t, "issuer-a", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	j := testJWTer()
	token, err := j.Issue("user-1", "User")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("another-secret"), Issuer: "issuer-a", TTL: time.Hour}
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	j := testJWTer()
	token, err := j.Issue("user-1", "User")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("test-secret"), Issuer: "issuer-b", TTL: time.Hour}
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "issuer-a", TTL: -2 * time.Minute}
	token, err := j.Issue("user-1", "User")
	require.NoError(t, err)

	_, err = j.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := testJWTer().Parse("not-a-token")
	assert.Error(t, err)
}
