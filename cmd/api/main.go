package main

import (
	"context"
	"log"
	"time"

	"taxcloud-connector/internal/core/cache"
	"taxcloud-connector/internal/core/config"
	"taxcloud-connector/internal/core/logger"
	"taxcloud-connector/internal/core/server"
	taxadapter "taxcloud-connector/internal/features/tax/adapters"
	"taxcloud-connector/internal/features/tax/domain"
	taxhandler "taxcloud-connector/internal/features/tax/handler"
	taxservice "taxcloud-connector/internal/features/tax/service"

	"go.uber.org/zap"
)

// @title TaxCloud Connector API
// @version 1.0
// @description Sales tax lifecycle service connecting WooCommerce stores to TaxCloud.
// @contact.name API Support
// @contact.email support@taxcloudconnector.com
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	redisCache, err := cache.NewRedisAdapter(cfg.RedisURL)
	if err != nil {
		l.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer redisCache.Close()

	// Initialize WooCommerce Adapter and run Health Check
	wcAdapter := taxadapter.NewWooCommerceAdapter(cfg.WooCommerce)
	if err := wcAdapter.HealthCheck(context.Background()); err != nil {
		l.Fatal("WooCommerce Health Check Failed", zap.Error(err))
	}
	l.Info("WooCommerce connection verified")

	taxCloud := taxadapter.NewTaxCloudAdapter(cfg.TaxCloud, domain.TaxBasis(cfg.Tax.BasedOn))
	if err := taxCloud.Ping(context.Background()); err != nil {
		l.Fatal("TaxCloud Ping Failed", zap.Error(err))
	}
	l.Info("TaxCloud connection verified")

	// Initialize repositories on the shared cache
	repository := taxadapter.NewRedisTransactionRepository(redisCache)
	addressCache := taxadapter.NewRedisAddressCache(redisCache, time.Duration(cfg.Tax.SessionAddressTTLSeconds)*time.Second)

	origin := domain.Address{
		Line1:   cfg.Origin.Line1,
		Line2:   cfg.Origin.Line2,
		City:    cfg.Origin.City,
		State:   cfg.Origin.State,
		Zip5:    cfg.Origin.Zip5,
		Zip4:    cfg.Origin.Zip4,
		Country: cfg.Origin.Country,
	}

	// Initialize Tax Service & Handlers
	ledger := taxservice.NewTransactionLedger(repository)
	validator := taxservice.NewAddressValidator(taxCloud, addressCache)
	coordinator := taxservice.NewTaxCoordinator(taxCloud, wcAdapter, ledger, validator, origin, cfg.Tax.CaptureImmediately)

	taxHdl := taxhandler.NewTaxHandler(coordinator, redisCache)

	webhooks := taxhandler.NewWebhookHandler()
	coordinator.RegisterHandlers(webhooks)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/orders/:id/quote", taxHdl.QuoteOrder)
	srv.App.Get("/transactions/:id", taxHdl.GetTransaction)
	srv.App.Post("/transactions/import", taxHdl.ImportTransactions)
	srv.App.Post("/certificates", taxHdl.AddCertificate)
	srv.App.Get("/certificates", taxHdl.ListCertificates)
	srv.App.Delete("/certificates/:id", taxHdl.DeleteCertificate)
	srv.App.Get("/tics", taxHdl.GetTICs)
	srv.App.Get("/locations", taxHdl.GetLocations)
	srv.App.Get("/health", taxHdl.Health)

	srv.App.Post("/webhooks/order-completed", webhooks.OrderCompleted)
	srv.App.Post("/webhooks/payment-complete", webhooks.PaymentComplete)
	srv.App.Post("/webhooks/refund-created", webhooks.RefundCreated)
	srv.App.Post("/webhooks/renewal-order", webhooks.RenewalOrder)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
