package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the structure of the JWT payload. An issued token
// authorises actions scoped to the embedded organization only.
type Claims struct {
	AdminId string `json:"adminId"`
	Email   string `json:"email"`
	OrgId   string `json:"orgId"`
	OrgName string `json:"orgName"`
	jwt.RegisteredClaims
}

type GenerateJwtOpts struct {
	AdminId string
	Email   string
	Id      string
	Issuer  string
	OrgId   string
	OrgName string
	Secret  string
	Ttl     time.Duration
}

// GenerateJwt creates a signed JWT for an organization admin.
func GenerateJwt(opts GenerateJwtOpts) (string, error) {
	now := time.Now()
	claims := Claims{
		AdminId: opts.AdminId,
		Email:   opts.Email,
		OrgId:   opts.OrgId,
		OrgName: opts.OrgName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        opts.Id,
			Issuer:    opts.Issuer,
			Subject:   opts.AdminId,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(opts.Ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(opts.Secret))
}

// ValidateJwt verifies the token's signature and expiry.
// Returns the Claims if valid, otherwise an error.
func ValidateJwt(jwtSecret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure the signing method is HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("failed to validate token signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("failed to validate token: %w", ErrorJwtTokenExpired)
		}
		return nil, fmt.Errorf("failed to parse token claims: %w", ErrorJwtTokenSignature)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("failed to validate token claims structure: %w", ErrorJwtClaimsInvalid)
	}

	if claims.ExpiresAt == nil || time.Now().After(claims.ExpiresAt.Time) {
		return nil, fmt.Errorf("failed to validate token expiry: %w", ErrorJwtTokenExpired)
	}

	return claims, nil
}
