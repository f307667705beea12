package routes

import (
	"net/http"

	"backoffice-service/conf"
	"backoffice-service/controller"
	"backoffice-service/middleware"

	"github.com/gorilla/mux"
	"github.com/txix-open/isp-kit/log"
)

const (
	RoleAdmin = "admin"
)

type Controllers struct {
	System         controller.System
	Auth           controller.Auth
	PurchaseOrders controller.PurchaseOrders
	Transactions   controller.Transactions
	SystemLogs     controller.SystemLogs
}

type Config struct {
	MaxRequestBodySize int64
	Logging            conf.Logging
	Debug              bool
}

type endpointDescriptor struct {
	method        string
	path          string
	handler       middleware.HandlerFunc
	requireAuth   bool
	requiredRoles []string
}

// Handler assembles the router. Every endpoint runs through the same
// middleware chain, access control is the only per route difference.
func Handler(
	logger log.Logger,
	c Controllers,
	authenticator middleware.Authenticator,
	limiter middleware.RateLimiter,
	journal middleware.Journal,
	cfg Config,
) http.Handler {
	router := mux.NewRouter()
	for _, descriptor := range endpointDescriptors(c) {
		middlewares := []middleware.Middleware{
			middleware.RequestId(),
			middleware.Logger(logger, cfg.Logging, journal),
			middleware.ErrorHandler(logger, cfg.Debug),
			middleware.Authenticate(authenticator),
			middleware.RateLimit(limiter, logger),
		}
		if descriptor.requireAuth {
			middlewares = append(middlewares, middleware.RequireAuth())
		}
		if len(descriptor.requiredRoles) > 0 {
			middlewares = append(middlewares, middleware.Authorize(descriptor.requiredRoles))
		}

		handler := middleware.Chain(descriptor.handler, middlewares...)
		endpoint := descriptor.method + " " + descriptor.path
		router.Handle(
			descriptor.path,
			middleware.Entrypoint(cfg.MaxRequestBodySize, endpoint, handler, logger),
		).Methods(descriptor.method)
	}
	return router
}

func endpointDescriptors(c Controllers) []endpointDescriptor {
	adminOnly := []string{RoleAdmin}
	return []endpointDescriptor{
		{method: http.MethodGet, path: "/", handler: c.System.Home},
		{method: http.MethodGet, path: "/health", handler: c.System.Health},

		{method: http.MethodGet, path: "/api/auth/validate", handler: c.Auth.Validate, requireAuth: true},
		{method: http.MethodGet, path: "/api/auth/user", handler: c.Auth.User, requireAuth: true},
		{method: http.MethodPost, path: "/api/auth/logout", handler: c.Auth.Logout, requireAuth: true},

		{method: http.MethodGet, path: "/api/purchase-orders", handler: c.PurchaseOrders.List},
		{method: http.MethodPost, path: "/api/purchase-orders", handler: c.PurchaseOrders.Create, requireAuth: true},
		{method: http.MethodPost, path: "/api/purchase-orders/scan", handler: c.PurchaseOrders.ScanReceipt, requireAuth: true},
		{method: http.MethodGet, path: "/api/purchase-orders/{id}", handler: c.PurchaseOrders.Get},
		{method: http.MethodPut, path: "/api/purchase-orders/{id}/status", handler: c.PurchaseOrders.UpdateStatus, requireAuth: true},

		{method: http.MethodGet, path: "/api/transactions", handler: c.Transactions.List},
		{method: http.MethodPost, path: "/api/transactions", handler: c.Transactions.Create, requireAuth: true},
		{method: http.MethodGet, path: "/api/transactions/summary", handler: c.Transactions.Summary},
		{method: http.MethodPost, path: "/api/transactions/analyze", handler: c.Transactions.Analyze, requireAuth: true},
		{method: http.MethodGet, path: "/api/transactions/{id}", handler: c.Transactions.Get},

		{method: http.MethodGet, path: "/api/logs", handler: c.SystemLogs.List, requireAuth: true, requiredRoles: adminOnly},
		{method: http.MethodPost, path: "/api/logs", handler: c.SystemLogs.Create, requireAuth: true, requiredRoles: adminOnly},
		{method: http.MethodGet, path: "/api/logs/{id}", handler: c.SystemLogs.Get, requireAuth: true, requiredRoles: adminOnly},
	}
}
