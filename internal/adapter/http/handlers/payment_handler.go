package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "storegate/internal/adapter/http/dto/request"
	response "storegate/internal/adapter/http/dto/response"
	"storegate/internal/usecase"
	"storegate/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles back-office gateway operations. The :payment_id
// path parameter is the processor's payment intent reference, the same id
// the back office displays next to each payment.

type PaymentHandler struct {
	engine usecase.IReconciliationEngine
}

func NewPaymentHandler(engine usecase.IReconciliationEngine) *PaymentHandler {
	return &PaymentHandler{engine: engine}
}

// Capture settles an authorized payment for its full amount.
func (h *PaymentHandler) Capture(c *gin.Context) {
	intentID := c.Param("payment_id")
	log.Printf("[payment][handler] capture start intent_id=%s", intentID)

	var payload request.CaptureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] capture invalid payload intent_id=%s err=%v", intentID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result := h.engine.Capture(c.Request.Context(), payload.Amount, intentID)
	respondGatewayResult(c, "capture", intentID, result)
}

// Void cancels the processor intent and voids the local payment.
func (h *PaymentHandler) Void(c *gin.Context) {
	intentID := c.Param("payment_id")
	log.Printf("[payment][handler] void start intent_id=%s", intentID)

	result := h.engine.Void(c.Request.Context(), intentID)
	respondGatewayResult(c, "void", intentID, result)
}

// Refund issues a refund against a settled payment.
func (h *PaymentHandler) Refund(c *gin.Context) {
	intentID := c.Param("payment_id")
	log.Printf("[payment][handler] refund start intent_id=%s", intentID)

	var payload request.RefundRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		log.Printf("[payment][handler] refund invalid payload intent_id=%s err=%v", intentID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result := h.engine.Credit(c.Request.Context(), payload.Amount, intentID, payload.Reason)
	respondGatewayResult(c, "refund", intentID, result)
}

// ListByOrder returns every payment attempt recorded for an order.
func (h *PaymentHandler) ListByOrder(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] list start order_id=%s", orderID)

	payments, err := h.engine.ListPaymentsByOrder(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] list failed order_id=%s err=%v", orderID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// respondGatewayResult maps a structured gateway outcome to the wire:
// declines and validation failures are 422 with the processor message,
// successes are 200.
func respondGatewayResult(c *gin.Context, op, intentID string, result usecase.PaymentResult) {
	if !result.Success {
		log.Printf("[payment][handler] %s declined intent_id=%s message=%q", op, intentID, result.Message)
		c.JSON(http.StatusUnprocessableEntity, response.FromPaymentResult(result))
		return
	}
	log.Printf("[payment][handler] %s success intent_id=%s", op, intentID)
	c.JSON(http.StatusOK, response.FromPaymentResult(result))
}
