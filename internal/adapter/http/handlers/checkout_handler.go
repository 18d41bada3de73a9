package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "storegate/internal/adapter/http/dto/request"
	response "storegate/internal/adapter/http/dto/response"
	"storegate/internal/config"
	"storegate/internal/usecase"
	"storegate/internal/usecase/interfaces"
	"storegate/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles the shopper-facing checkout routes: intent
// creation and the redirect confirmation callback.

type CheckoutHandler struct {
	intents usecase.IIntentStore
	engine  usecase.IReconciliationEngine
	orders  interfaces.IOrderRepository
	cfg     config.Config
}

func NewCheckoutHandler(intents usecase.IIntentStore, engine usecase.IReconciliationEngine, orders interfaces.IOrderRepository, cfg config.Config) *CheckoutHandler {
	return &CheckoutHandler{intents: intents, engine: engine, orders: orders, cfg: cfg}
}

// CreateIntent retrieves or creates the processor intent bound to the order
// and returns its client secret.
func (h *CheckoutHandler) CreateIntent(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[checkout][handler] create-intent start order_id=%s", orderID)

	var payload request.IntentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		log.Printf("[checkout][handler] invalid payload order_id=%s err=%v", orderID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	kind, ok := payload.ResolveKind()
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_INTENT_KIND", "Unknown intent kind", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(h.cfg.Processors) == 0 {
		appErr := pkg.NewDomainErrorSimple("PROCESSOR_NOT_CONFIGURED", "No payment processor configured", http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	processorCfg := h.cfg.Processors[0]

	order, err := h.orders.GetByID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[checkout][handler] order lookup failed order_id=%s err=%v", orderID, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if order.ID == "" {
		appErr := pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	intent, err := h.intents.RetrieveOrCreate(c.Request.Context(), order, processorCfg, kind, usecase.IntentOptions{PaymentMethodID: payload.PaymentMethodID})
	if err != nil {
		log.Printf("[checkout][handler] create-intent failed order_id=%s kind=%s err=%v", orderID, kind, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create-intent success order_id=%s intent_id=%s status=%s", orderID, intent.ID, intent.Status)

	c.JSON(http.StatusOK, response.FromProcessorIntent(intent))
}

// Confirm handles the return leg of a redirect confirmation. The intent
// reference arrives in the query string; its status is always re-read from
// the processor, never trusted from the client.
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	orderID := c.Param("order_id")
	intentID := c.Query("payment_intent")
	log.Printf("[checkout][handler] confirm start order_id=%s intent_id=%s", orderID, intentID)

	payment, err := h.engine.ConfirmFromRedirect(c.Request.Context(), orderID, intentID)
	if err != nil {
		log.Printf("[checkout][handler] confirm failed order_id=%s intent_id=%s err=%v", orderID, intentID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] confirm success order_id=%s payment_id=%s state=%s", orderID, payment.ID, payment.State)

	c.JSON(http.StatusOK, response.FromConfirmation(payment))
}

func mapCheckoutError(err error) *pkg.AppError {
	var gwErr *usecase.GatewayError
	switch {
	case errors.Is(err, usecase.ErrMissingIntentID), errors.Is(err, usecase.ErrInvalidIntentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIntentIDMismatch):
		return pkg.NewDomainErrorSimple("INTENT_MISMATCH", "Intent does not belong to this order", http.StatusConflict)
	case errors.Is(err, usecase.ErrStateConflict):
		return pkg.NewDomainErrorSimple("STATE_CONFLICT", "Payment state changed concurrently", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentMethodRequired):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_REQUIRED", "A payment method is required", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUnhandledIntentStatus):
		return pkg.NewDomainErrorSimple("UNHANDLED_INTENT_STATUS", "Processor returned an unrecognized intent status", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnknownIntentKind):
		return pkg.NewDomainErrorSimple("INVALID_INTENT_KIND", "Unknown intent kind", http.StatusBadRequest)
	case errors.As(err, &gwErr):
		return pkg.NewDomainError("PAYMENT_PROVIDER_REJECTED", gwErr.Message, err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
