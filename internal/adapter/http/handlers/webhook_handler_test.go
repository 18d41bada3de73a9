package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storegate/internal/adapter/http/handlers/mocks"
	"storegate/internal/config"
	"storegate/internal/domain/entities"
	mock_interfaces "storegate/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler_Handle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		WebhookTolerance: 5 * time.Minute,
		Processors:       []entities.PaymentMethodConfig{{ID: "cfg-1", WebhookSecret: "whsec_test"}},
	}

	newRouter := func(ctrl *gomock.Controller, cfg config.Config) (*gin.Engine, *mocks.MockIWebhookProcessor, *mock_interfaces.MockIWebhookSlugRepository) {
		webhooks := mocks.NewMockIWebhookProcessor(ctrl)
		slugs := mock_interfaces.NewMockIWebhookSlugRepository(ctrl)
		h := NewWebhookHandler(webhooks, slugs, cfg)

		r := gin.New()
		r.POST("/webhooks/:slug", h.Handle)
		return r, webhooks, slugs
	}

	post := func(r *gin.Engine, slug, body, signature string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/"+slug, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		if signature != "" {
			req.Header.Set("Stripe-Signature", signature)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("unknown slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, _, slugs := newRouter(ctrl, cfg)

		slugs.EXPECT().GetConfigIDBySlug(gomock.Any(), "nope").Return("", nil)

		w := post(r, "nope", `{}`, "t=1,v1=abc")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("config without webhook secret", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bare := cfg
		bare.Processors = []entities.PaymentMethodConfig{{ID: "cfg-1"}}
		r, _, slugs := newRouter(ctrl, bare)

		slugs.EXPECT().GetConfigIDBySlug(gomock.Any(), "slug-1").Return("cfg-1", nil)

		w := post(r, "slug-1", `{}`, "t=1,v1=abc")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("verification failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, webhooks, slugs := newRouter(ctrl, cfg)

		slugs.EXPECT().GetConfigIDBySlug(gomock.Any(), "slug-1").Return("cfg-1", nil)
		webhooks.EXPECT().VerifyAndParse([]byte(`{}`), "t=1,v1=bad", "whsec_test", cfg.WebhookTolerance).
			Return(nil, errors.New("signature does not match"))

		w := post(r, "slug-1", `{}`, "t=1,v1=bad")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("dispatch failure is still acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, webhooks, slugs := newRouter(ctrl, cfg)

		event := &entities.WebhookEvent{ID: "evt_1", Type: "stripe.payment_intent.succeeded"}
		slugs.EXPECT().GetConfigIDBySlug(gomock.Any(), "slug-1").Return("cfg-1", nil)
		webhooks.EXPECT().VerifyAndParse(gomock.Any(), "t=1,v1=ok", "whsec_test", cfg.WebhookTolerance).Return(event, nil)
		webhooks.EXPECT().Dispatch(gomock.Any(), event).Return(errors.New("order store unavailable"))

		w := post(r, "slug-1", `{"id":"evt_1"}`, "t=1,v1=ok")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("success stamps the config on the event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, webhooks, slugs := newRouter(ctrl, cfg)

		event := &entities.WebhookEvent{ID: "evt_1", Type: "stripe.payment_intent.succeeded"}
		slugs.EXPECT().GetConfigIDBySlug(gomock.Any(), "slug-1").Return("cfg-1", nil)
		webhooks.EXPECT().VerifyAndParse(gomock.Any(), "t=1,v1=ok", "whsec_test", cfg.WebhookTolerance).Return(event, nil)
		webhooks.EXPECT().Dispatch(gomock.Any(), event).DoAndReturn(func(_ any, got *entities.WebhookEvent) error {
			if got.ConfigID != "cfg-1" {
				t.Fatalf("expected event stamped with config cfg-1, got %q", got.ConfigID)
			}
			return nil
		})

		w := post(r, "slug-1", `{"id":"evt_1"}`, "t=1,v1=ok")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"received":true}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
