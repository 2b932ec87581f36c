package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/velora/storefront-admin/internal/core/domain"
)

// TokenIssuer mints HS256 session tokens. Secret and TTL come from process
// configuration; tokens stay valid until expiry by signature check alone, no
// revocation list exists.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token carrying the account identity and name claims
// plus an explicit expiry.
func (t *TokenIssuer) Issue(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"id":         account.ID,
		"first_name": account.FirstName,
		"last_name":  account.LastName,
		"exp":        time.Now().Add(t.ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}
