package handlers

import (
	"log"
	"net/http"

	"storegate/internal/config"
	"storegate/internal/usecase"
	"storegate/internal/usecase/interfaces"
	"storegate/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives signed processor events on per-configuration slug
// routes. The contract is narrow: 200 means accepted, 400 means the request
// could not be authenticated.

type WebhookHandler struct {
	webhooks usecase.IWebhookProcessor
	slugs    interfaces.IWebhookSlugRepository
	cfg      config.Config
}

func NewWebhookHandler(webhooks usecase.IWebhookProcessor, slugs interfaces.IWebhookSlugRepository, cfg config.Config) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks, slugs: slugs, cfg: cfg}
}

var errWebhookRejected = pkg.NewDomainErrorSimple("WEBHOOK_REJECTED", "Webhook rejected", http.StatusBadRequest)

// Handle verifies and dispatches one event delivery.
func (h *WebhookHandler) Handle(c *gin.Context) {
	slug := c.Param("slug")

	configID, err := h.slugs.GetConfigIDBySlug(c.Request.Context(), slug)
	if err != nil || configID == "" {
		log.Printf("[webhook][handler] unknown slug slug=%s err=%v", slug, err)
		c.JSON(errWebhookRejected.HTTPStatus, errWebhookRejected.ToHTTPError())
		return
	}
	processorCfg, ok := h.cfg.ProcessorByID(configID)
	if !ok || processorCfg.WebhookSecret == "" {
		log.Printf("[webhook][handler] no webhook secret for config config_id=%s", configID)
		c.JSON(errWebhookRejected.HTTPStatus, errWebhookRejected.ToHTTPError())
		return
	}

	payload, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed config_id=%s err=%v", configID, err)
		c.JSON(errWebhookRejected.HTTPStatus, errWebhookRejected.ToHTTPError())
		return
	}

	event, err := h.webhooks.VerifyAndParse(payload, c.GetHeader("Stripe-Signature"), processorCfg.WebhookSecret, h.cfg.WebhookTolerance)
	if err != nil {
		log.Printf("[webhook][handler] verification failed config_id=%s err=%v", configID, err)
		c.JSON(errWebhookRejected.HTTPStatus, errWebhookRejected.ToHTTPError())
		return
	}
	event.ConfigID = configID

	// Dispatch failures are logged but still acknowledged.
	if err := h.webhooks.Dispatch(c.Request.Context(), event); err != nil {
		log.Printf("[webhook][handler] dispatch failed config_id=%s event_id=%s type=%s err=%v", configID, event.ID, event.Type, err)
	} else {
		log.Printf("[webhook][handler] dispatched config_id=%s event_id=%s type=%s", configID, event.ID, event.Type)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
