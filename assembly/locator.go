package assembly

import (
	"net/http"
	"time"

	"backoffice-service/conf"
	"backoffice-service/controller"
	"backoffice-service/repository"
	"backoffice-service/routes"
	"backoffice-service/service"

	"github.com/redis/go-redis/v9"
	"github.com/txix-open/isp-kit/http/httpcli"
	"github.com/txix-open/isp-kit/log"
)

const (
	serviceName = "backoffice-service"
	version     = "1.0.0"

	bytesInMb = 1024 * 1024
)

type Locator struct {
	logger         log.Logger
	limiterStore   *repository.RateLimitMemory
	purchaseOrders *repository.PurchaseOrderStore
	transactions   *repository.TransactionStore
	systemLogs     *repository.SystemLogStore
}

func NewLocator(
	logger log.Logger,
	limiterStore *repository.RateLimitMemory,
	purchaseOrders *repository.PurchaseOrderStore,
	transactions *repository.TransactionStore,
	systemLogs *repository.SystemLogStore,
) Locator {
	return Locator{
		logger:         logger,
		limiterStore:   limiterStore,
		purchaseOrders: purchaseOrders,
		transactions:   transactions,
		systemLogs:     systemLogs,
	}
}

func (l Locator) Handler(config conf.Remote, redisCli redis.UniversalClient) http.Handler {
	authenticationCache := repository.NewAuthenticationCache(
		time.Duration(config.Caching.AuthenticationDataInSec) * time.Second,
	)
	verifier := repository.NewTokenVerifier()
	authentication := service.NewAuthentication(authenticationCache, verifier, l.logger)

	var limiterStore service.RateLimitStore = l.limiterStore
	if redisCli != nil {
		limiterStore = repository.NewRateLimitRedis(redisCli)
	}
	limiter := service.NewRateLimit(limiterStore, config.RateLimiting)

	insights := repository.NewInsightsClient(httpcli.New(), config.Integrations)
	purchaseOrders := service.NewPurchaseOrder(l.purchaseOrders, insights)
	transactions := service.NewTransaction(l.transactions, insights, config.Pagination)
	systemLogs := service.NewSystemLog(l.systemLogs, config.Pagination, l.logger)

	controllers := routes.Controllers{
		System:         controller.NewSystem(serviceName, version),
		Auth:           controller.NewAuth(authentication),
		PurchaseOrders: controller.NewPurchaseOrders(purchaseOrders),
		Transactions:   controller.NewTransactions(transactions),
		SystemLogs:     controller.NewSystemLogs(systemLogs),
	}

	return routes.Handler(l.logger, controllers, authentication, limiter, systemLogs, routes.Config{
		MaxRequestBodySize: config.Http.MaxRequestBodySizeInMb * bytesInMb,
		Logging:            config.Logging,
		Debug:              config.Debug,
	})
}
