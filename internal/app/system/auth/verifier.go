package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"lifelink/internal/app/system/apierr"
	"lifelink/internal/app/system/normalize"
)

// providerClaims is the claim set the identity provider signs into its
// tokens. Only email is required; name feeds donor attribution on claims.
type providerClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier verifies provider-issued HS256 tokens against a shared
// secret. Signature, expiry, and (when configured) issuer are all checked
// by the jwt library; this type only owns key material and claim mapping.
type JWTVerifier struct {
	secret []byte
	opts   []jwt.ParserOption
}

// NewJWTVerifier constructs a verifier for the given shared secret.
// If issuer is non-empty, tokens must carry a matching iss claim.
func NewJWTVerifier(secret, issuer string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("auth: jwt secret is empty")
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &JWTVerifier{secret: []byte(secret), opts: opts}, nil
}

// Verify implements Verifier.
func (v *JWTVerifier) Verify(_ context.Context, token string) (Identity, error) {
	var claims providerClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, v.keyFunc, v.opts...)
	if err != nil {
		return Identity{}, apierr.Wrap(apierr.Unauthenticated, "invalid or expired credential", err)
	}
	if !parsed.Valid {
		return Identity{}, apierr.New(apierr.Unauthenticated, "invalid or expired credential")
	}

	email := normalize.Email(claims.Email)
	if email == "" {
		return Identity{}, apierr.New(apierr.Unauthenticated, "credential carries no email claim")
	}

	return Identity{Email: email, Name: normalize.Name(claims.Name)}, nil
}

func (v *JWTVerifier) keyFunc(_ *jwt.Token) (any, error) {
	return v.secret, nil
}
