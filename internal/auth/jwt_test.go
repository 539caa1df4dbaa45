package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *TokenManager {
	return NewTokenManager("access-secret", "refresh-secret", 1200*time.Second, 1209600*time.Second, "qa-test")
}

func TestIssueAndVerify(t *testing.T) {
	tm := newTestManager()

	for _, d := range []Domain{Access, Refresh} {
		t.Run(d.String(), func(t *testing.T) {
			tok, err := tm.Issue(d, 42)
			require.NoError(t, err)

			id, err := tm.Verify(tok, d)
			require.NoError(t, err)
			assert.Equal(t, int64(42), id)
		})
	}
}

func TestTokenLifetimes(t *testing.T) {
	tm := newTestManager()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tm.now = func() time.Time { return now }

	pair, err := tm.IssuePair(7)
	require.NoError(t, err)

	parse := func(tok string) *Claims {
		c := &Claims{}
		_, _, err := jwt.NewParser().ParseUnverified(tok, c)
		require.NoError(t, err)
		return c
	}
	access := parse(pair.AccessToken)
	refresh := parse(pair.RefreshToken)

	assert.Equal(t, "7", access.Subject)
	assert.Equal(t, now.Add(1200*time.Second).Unix(), access.ExpiresAt.Unix())
	assert.Equal(t, now.Add(1209600*time.Second).Unix(), refresh.ExpiresAt.Unix())
	assert.Equal(t, "access", access.Type)
	assert.Equal(t, "refresh", refresh.Type)
}

func TestVerifyRejectsOtherDomain(t *testing.T) {
	tm := newTestManager()
	pair, err := tm.IssuePair(1)
	require.NoError(t, err)

	_, err = tm.Verify(pair.AccessToken, Refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.Verify(pair.RefreshToken, Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsTypeMismatchWithSharedSecret(t *testing.T) {
	tm := NewTokenManager("same-secret", "same-secret", time.Minute, time.Hour, "qa-test")
	tok, err := tm.Issue(Refresh, 1)
	require.NoError(t, err)

	_, err = tm.Verify(tok, Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	tm := newTestManager()
	issued := time.Now().Add(-time.Hour)
	tm.now = func() time.Time { return issued }
	tok, err := tm.Issue(Access, 1)
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.Verify(tok, Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tm := newTestManager()
	tok, err := tm.Issue(Access, 1)
	require.NoError(t, err)

	tampered := tok[:strings.LastIndex(tok, ".")+1] + "AAAA"
	cases := []string{"", "not-a-jwt", "a.b.c", tampered}
	for _, c := range cases {
		_, err := tm.Verify(c, Access)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", c)
	}
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	tm := newTestManager()
	claims := Claims{
		Type: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = tm.Verify(tok, Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMissingExpiry(t *testing.T) {
	tm := newTestManager()
	claims := Claims{Type: "access", RegisteredClaims: jwt.RegisteredClaims{Subject: "1"}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = tm.Verify(tok, Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsNonNumericSubject(t *testing.T) {
	tm := newTestManager()
	claims := Claims{
		Type: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			Issuer:    "qa-test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = tm.Verify(tok, Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsOtherIssuer(t *testing.T) {
	other := NewTokenManager("access-secret", "refresh-secret", time.Minute, time.Hour, "some-other-service")
	tok, err := other.Issue(Access, 5)
	require.NoError(t, err)

	_, err = newTestManager().Verify(tok, Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
