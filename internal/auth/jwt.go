package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Domain selects the secret and lifetime a token is signed with.
type Domain int

const (
	Access Domain = iota
	Refresh
)

func (d Domain) String() string {
	if d == Refresh {
		return "refresh"
	}
	return "access"
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
	now           func() time.Time
}

func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration, issuer string) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		issuer:        issuer,
		now:           time.Now,
	}
}

type Claims struct {
	Type string `json:"typ"` // "access" | "refresh"
	jwt.RegisteredClaims
}

func (tm *TokenManager) keys(d Domain) ([]byte, time.Duration) {
	if d == Refresh {
		return tm.refreshSecret, tm.refreshTTL
	}
	return tm.accessSecret, tm.accessTTL
}

// Issue signs a token for userID in the given domain.
func (tm *TokenManager) Issue(d Domain, userID int64) (string, error) {
	secret, ttl := tm.keys(d)
	now := tm.now()
	claims := Claims{
		Type: d.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    tm.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", d, err)
	}
	return s, nil
}

func (tm *TokenManager) IssuePair(userID int64) (TokenPair, error) {
	access, err := tm.Issue(Access, userID)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := tm.Issue(Refresh, userID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Verify checks signature, expiry, issuer and token type against domain d and
// returns the user id carried in the subject.
func (tm *TokenManager) Verify(token string, d Domain) (int64, error) {
	secret, _ := tm.keys(d)
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(tm.issuer),
		jwt.WithTimeFunc(tm.now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Type != d.String() {
		return 0, fmt.Errorf("%w: expected %s token, got %q", ErrInvalidToken, d, claims.Type)
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	return id, nil
}
