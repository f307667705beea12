package controller

import (
	"net/http"
	"strings"
	"time"

	"backoffice-service/domain"
	"backoffice-service/request"
	"backoffice-service/service"
)

type Auth struct {
	service service.Authentication
}

func NewAuth(service service.Authentication) Auth {
	return Auth{
		service: service,
	}
}

func (c Auth) Validate(ctx *request.Context) error {
	principal, err := ctx.Principal()
	if err != nil {
		return err
	}
	return respondJson(ctx, http.StatusOK, domain.ValidateTokenResponse{
		Status:      "valid",
		User:        &principal,
		ValidatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (c Auth) User(ctx *request.Context) error {
	principal, err := ctx.Principal()
	if err != nil {
		return err
	}
	return respondJson(ctx, http.StatusOK, domain.UserResponse{
		User:      principal,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (c Auth) Logout(ctx *request.Context) error {
	c.service.Logout(ctx.Context(), bearerToken(ctx.Request()))
	return respondJson(ctx, http.StatusOK, domain.LogoutResponse{
		Message:   "logged out successfully",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
