package storage

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// URLSigner issues and verifies time-limited download tokens for blobs. A
// token wraps the blob key and content type in an HS256 JWT so the file route
// can stream the blob without consulting the database.
type URLSigner struct {
	secret []byte
	ttl    time.Duration
}

// SignedClaims are the claims carried by a download token.
type SignedClaims struct {
	ContentType string `json:"ct"`
	FileName    string `json:"fn"`
	jwt.RegisteredClaims
}

// NewURLSigner creates a signer with the given shared secret and token TTL.
func NewURLSigner(secret string, ttl time.Duration) *URLSigner {
	return &URLSigner{secret: []byte(secret), ttl: ttl}
}

// Sign returns a token granting access to the blob key until the TTL expires.
func (s *URLSigner) Sign(key, contentType, fileName string) (string, error) {
	now := time.Now()
	claims := SignedClaims{
		ContentType: contentType,
		FileName:    fileName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   key,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign download token: %w", err)
	}
	return signed, nil
}

// Verify validates a token and returns its claims.
func (s *URLSigner) Verify(tokenString string) (*SignedClaims, error) {
	claims := &SignedClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("invalid download token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid download token")
	}
	return claims, nil
}
