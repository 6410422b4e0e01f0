package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var _ Verifier = (*GolangJWTVerifier)(nil)

// GolangJWTVerifier verifies HS256 tokens using the golang-jwt library.
type GolangJWTVerifier struct {
	method jwt.SigningMethod
	key    []byte
	issuer string
}

func NewGolangJWTVerifier(key, issuer string) *GolangJWTVerifier {
	return &GolangJWTVerifier{
		method: jwt.SigningMethodHS256,
		key:    []byte(key),
		issuer: issuer,
	}
}

func (v *GolangJWTVerifier) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{v.method.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var rc jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &rc, func(_ *jwt.Token) (any, error) {
		return v.key, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse with claims: %w", err)
	}

	return &Claims{Subject: rc.Subject, Issuer: rc.Issuer}, nil
}
