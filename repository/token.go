package repository

import (
	"context"
	"encoding/base64"
	"strings"

	"backoffice-service/domain"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/json"
)

const (
	mockTokenPrefix = "mock-token"
	defaultRole     = "user"
)

type tokenClaims struct {
	Sub        string   `json:"sub"`
	Oid        string   `json:"oid"`
	Name       string   `json:"name"`
	GivenName  string   `json:"given_name"`
	FamilyName string   `json:"family_name"`
	Email      string   `json:"email"`
	Emails     []string `json:"emails"`
	Roles      []string `json:"roles"`
	Tfp        string   `json:"tfp"`
	Acr        string   `json:"acr"`
}

// TokenVerifier extracts a principal from a bearer token. Signature
// verification against the identity provider is intentionally not
// performed, tokens are only parsed. Mock tokens are accepted for
// development.
type TokenVerifier struct{}

func NewTokenVerifier() TokenVerifier {
	return TokenVerifier{}
}

func (r TokenVerifier) Verify(ctx context.Context, token string) (*domain.AuthenticateResponse, error) {
	if token == "" {
		return &domain.AuthenticateResponse{
			Authenticated: false,
			ErrorReason:   "token is required",
		}, nil
	}

	if strings.HasPrefix(token, mockTokenPrefix) {
		return &domain.AuthenticateResponse{
			Authenticated: true,
			Principal: &domain.Principal{
				Id:     "mock-user-123",
				Name:   "Demo User",
				Email:  "demo@example.com",
				Roles:  []string{defaultRole},
				Tenant: "demo",
			},
		}, nil
	}

	claims, err := decodeClaims(token)
	if err != nil {
		return &domain.AuthenticateResponse{
			Authenticated: false,
			ErrorReason:   "invalid token format",
		}, nil
	}

	principal := principalFromClaims(claims)
	if principal.Id == "" {
		return &domain.AuthenticateResponse{
			Authenticated: false,
			ErrorReason:   "token has no subject",
		}, nil
	}

	return &domain.AuthenticateResponse{
		Authenticated: true,
		Principal:     &principal,
	}, nil
}

func decodeClaims(token string) (tokenClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return tokenClaims{}, errors.New("token must have three segments")
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return tokenClaims{}, errors.WithMessage(err, "decode token payload")
	}

	claims := tokenClaims{}
	err = json.Unmarshal(payload, &claims)
	if err != nil {
		return tokenClaims{}, errors.WithMessage(err, "unmarshal token claims")
	}

	return claims, nil
}

func principalFromClaims(claims tokenClaims) domain.Principal {
	id := claims.Sub
	if id == "" {
		id = claims.Oid
	}

	name := claims.Name
	if name == "" {
		name = strings.TrimSpace(claims.GivenName + " " + claims.FamilyName)
	}

	email := claims.Email
	if len(claims.Emails) > 0 {
		email = claims.Emails[0]
	}

	roles := claims.Roles
	if len(roles) == 0 {
		roles = []string{defaultRole}
	}

	tenant := claims.Tfp
	if tenant == "" {
		tenant = claims.Acr
	}

	return domain.Principal{
		Id:     id,
		Name:   name,
		Email:  email,
		Roles:  roles,
		Tenant: tenant,
	}
}
