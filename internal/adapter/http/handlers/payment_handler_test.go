package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storegate/internal/adapter/http/handlers/mocks"
	"storegate/internal/domain/entities"
	"storegate/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(ctrl *gomock.Controller) (*gin.Engine, *mocks.MockIReconciliationEngine) {
	engine := mocks.NewMockIReconciliationEngine(ctrl)
	h := NewPaymentHandler(engine)

	r := gin.New()
	r.POST("/v1/payments/:payment_id/capture", h.Capture)
	r.POST("/v1/payments/:payment_id/void", h.Void)
	r.POST("/v1/payments/:payment_id/refunds", h.Refund)
	r.GET("/v1/orders/:order_id/payments", h.ListByOrder)
	return r, engine
}

func TestPaymentHandler_Capture(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, _ := newPaymentRouter(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pi_1/capture", bytes.NewBufferString(`{"amount":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("declined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, engine := newPaymentRouter(ctrl)

		engine.EXPECT().Capture(gomock.Any(), int64(500), "pi_1").
			Return(usecase.PaymentResult{Success: false, Message: "Partial captures are not supported"})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pi_1/capture", bytes.NewBufferString(`{"amount":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["success"] != false || body["message"] != "Partial captures are not supported" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, engine := newPaymentRouter(ctrl)

		engine.EXPECT().Capture(gomock.Any(), int64(1999), "pi_1").
			Return(usecase.PaymentResult{Success: true, ProcessorReference: "pi_1"})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pi_1/capture", bytes.NewBufferString(`{"amount":1999}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["success"] != true || body["processor_reference"] != "pi_1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestPaymentHandler_Void(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r, engine := newPaymentRouter(ctrl)

	engine.EXPECT().Void(gomock.Any(), "pi_1").
		Return(usecase.PaymentResult{Success: true, ProcessorReference: "pi_1"})

	req := httptest.NewRequest(http.MethodPost, "/v1/payments/pi_1/void", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPaymentHandler_Refund(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body is a full refund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, engine := newPaymentRouter(ctrl)

		engine.EXPECT().Credit(gomock.Any(), int64(0), "pi_1", "").
			Return(usecase.PaymentResult{Success: true, ProcessorReference: "re_1"})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pi_1/refunds", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("partial refund with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, engine := newPaymentRouter(ctrl)

		engine.EXPECT().Credit(gomock.Any(), int64(500), "pi_1", "requested_by_customer").
			Return(usecase.PaymentResult{Success: true, ProcessorReference: "re_2"})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/pi_1/refunds", bytes.NewBufferString(`{"amount":500,"reason":"requested_by_customer"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ListByOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r, engine := newPaymentRouter(ctrl)

	now := time.Now().UTC()
	engine.EXPECT().ListPaymentsByOrder(gomock.Any(), "order-1").Return([]entities.Payment{
		{ID: "pay-1", OrderID: "order-1", Amount: 1999, Currency: "USD", State: entities.PaymentStateFailed, CreatedAt: now, UpdatedAt: now},
		{ID: "pay-2", OrderID: "order-1", Amount: 1999, Currency: "USD", State: entities.PaymentStateCompleted, ProcessorReference: "pi_2", CreatedAt: now, UpdatedAt: now},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/payments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(body))
	}
	if body[1]["state"] != "completed" || body[1]["processor_reference"] != "pi_2" {
		t.Fatalf("unexpected payment: %v", body[1])
	}
}
