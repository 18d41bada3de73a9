package routes

import (
	"storegate/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathPayments = "/payments"
)

func addGatewayRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, paymentHandler *handlers.PaymentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("/:order_id/intents", checkoutHandler.CreateIntent)
		// The processor redirects back with GET; POST kept for clients that
		// confirm without leaving the page.
		orders.GET("/:order_id/confirmation", checkoutHandler.Confirm)
		orders.POST("/:order_id/confirmation", checkoutHandler.Confirm)
		orders.GET("/:order_id/payments", paymentHandler.ListByOrder)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:payment_id/capture", paymentHandler.Capture)
		payments.POST("/:payment_id/void", paymentHandler.Void)
		payments.POST("/:payment_id/refunds", paymentHandler.Refund)
	}
}
