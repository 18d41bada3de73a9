package routes

import (
	"context"
	"errors"
	"log"
	"strconv"

	_ "storegate/docs" // This will be auto-generated
	"storegate/internal/adapter/http/handlers"
	repository2 "storegate/internal/adapter/persistence/repository"
	"storegate/internal/config"
	"storegate/internal/infrastructure/database"
	"storegate/internal/infrastructure/payments"
	"storegate/internal/usecase"
	"storegate/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err.Error())
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.Connect()

	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	paymentIntentRepo := repository2.NewPaymentIntentDynamoRepository(ddb)
	setupIntentRepo := repository2.NewSetupIntentDynamoRepository(ddb)
	refundRepo := repository2.NewRefundDynamoRepository(ddb)
	walletRepo := repository2.NewWalletDynamoRepository(ddb)
	logRepo := repository2.NewPaymentLogDynamoRepository(ddb)
	slugRepo := repository2.NewWebhookSlugDynamoRepository(ddb)

	processor, err := payments.NewStripeProcessor(cfg.Processors[0].SecretKey)
	if err != nil {
		log.Fatalf("Stripe processor not configured: %v", err)
	}

	registry := usecase.NewCustomerRegistry(customerRepo, processor)
	intentStore := usecase.NewIntentStore(paymentIntentRepo, setupIntentRepo, paymentRepo, registry, processor)
	refundSync := usecase.NewRefundSynchronizer(refundRepo, paymentRepo, logRepo, processor, cfg.RefundReason)
	engine := usecase.NewReconciliationEngine(cfg, paymentRepo, orderRepo, walletRepo, logRepo, intentStore, refundSync, processor)
	webhooks := usecase.NewWebhookProcessor(engine, refundSync, paymentRepo, orderRepo)

	ensureWebhookSlugs(context.Background(), slugRepo, cfg)

	checkoutHandler := handlers.NewCheckoutHandler(intentStore, engine, orderRepo, cfg)
	paymentHandler := handlers.NewPaymentHandler(engine)
	webhookHandler := handlers.NewWebhookHandler(webhooks, slugRepo, cfg)

	router.POST("/webhooks/:slug", webhookHandler.Handle)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addGatewayRoutes(v1, checkoutHandler, paymentHandler)
}

// ensureWebhookSlugs guarantees every configured integration has a routing
// slug before the server accepts traffic. Slugs are opaque uuids so the
// webhook URL reveals nothing about the configuration behind it.
func ensureWebhookSlugs(ctx context.Context, slugs interfaces.IWebhookSlugRepository, cfg config.Config) {
	for _, p := range cfg.Processors {
		existing, err := slugs.GetSlugByConfigID(ctx, p.ID)
		if err != nil {
			log.Fatalf("Failed to look up webhook slug for config %s: %v", p.ID, err)
		}
		if existing != "" {
			log.Printf("[routes] webhook route config_id=%s path=/webhooks/%s", p.ID, existing)
			continue
		}

		slug := uuid.NewString()
		if err := slugs.Create(ctx, slug, p.ID); err != nil {
			if errors.Is(err, interfaces.ErrDuplicateRecord) {
				// Another instance won the race; re-read its slug.
				if existing, err = slugs.GetSlugByConfigID(ctx, p.ID); err == nil && existing != "" {
					log.Printf("[routes] webhook route config_id=%s path=/webhooks/%s", p.ID, existing)
					continue
				}
			}
			log.Fatalf("Failed to create webhook slug for config %s: %v", p.ID, err)
		}
		log.Printf("[routes] webhook route config_id=%s path=/webhooks/%s", p.ID, slug)
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
