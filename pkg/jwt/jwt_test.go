package jwt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/asmendustri/asm-endustri-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "asm-endustri-test"
)

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, "a@b.com", "admin", testIssuer, 24)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestParse_ExpiredToken(t *testing.T) {
	// expiry of -1 hours: already expired at mint time
	tok, err := pkgjwt.Generate(testSecret, 1, "a@b.com", "admin", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenExpired)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, "a@b.com", "admin", testIssuer, 24)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("a-completely-different-secret", tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenMalformed)
}

func TestParse_TamperedToken(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, "a@b.com", "user", testIssuer, 24)
	require.NoError(t, err)

	// Flip a character inside the payload segment.
	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	parts[1] = string(payload)

	_, err = pkgjwt.Parse(testSecret, strings.Join(parts, "."))
	assert.ErrorIs(t, err, pkgjwt.ErrTokenMalformed)
}

func TestParse_Garbage(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "not.a.token")
	assert.ErrorIs(t, err, pkgjwt.ErrTokenMalformed)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", 1, "a@b.com", "admin", testIssuer, 24)
	assert.Error(t, err)
}
