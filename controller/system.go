package controller

import (
	"net/http"
	"time"

	"backoffice-service/request"
)

type System struct {
	serviceName string
	version     string
}

func NewSystem(serviceName string, version string) System {
	return System{
		serviceName: serviceName,
		version:     version,
	}
}

func (c System) Home(ctx *request.Context) error {
	return respondJson(ctx, http.StatusOK, map[string]any{
		"service": c.serviceName,
		"version": c.version,
		"status":  "running",
		"endpoints": map[string]string{
			"health":          "/health",
			"auth":            "/api/auth",
			"purchase_orders": "/api/purchase-orders",
			"transactions":    "/api/transactions",
			"system_logs":     "/api/logs",
		},
	})
}

func (c System) Health(ctx *request.Context) error {
	return respondJson(ctx, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   c.serviceName,
		"version":   c.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
