package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"storegate/internal/domain/entities"
	"storegate/internal/domain/money"
	"storegate/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// SkipSyncMetadataKey tags processor refunds created by this service itself,
// so the synchronizer never re-imports a refund whose webhook merely echoes
// our own call.
const SkipSyncMetadataKey = "skip_refund_sync"

// IRefundSynchronizer reconciles processor-side refunds against local
// records without duplication.

type IRefundSynchronizer interface {
	Sync(ctx context.Context, processorIntentID string) (int, error)
	Record(ctx context.Context, r entities.Refund) error
}

type RefundSynchronizer struct {
	refunds   interfaces.IRefundRepository
	payments  interfaces.IPaymentRepository
	logs      interfaces.IPaymentLogRepository
	processor interfaces.IProcessorClient
	reason    string
}

var _ IRefundSynchronizer = (*RefundSynchronizer)(nil)

func NewRefundSynchronizer(refunds interfaces.IRefundRepository, payments interfaces.IPaymentRepository, logs interfaces.IPaymentLogRepository, processor interfaces.IProcessorClient, reason string) *RefundSynchronizer {
	if reason == "" {
		reason = entities.RefundReasonImported
	}
	return &RefundSynchronizer{refunds: refunds, payments: payments, logs: logs, processor: processor, reason: reason}
}

// Sync lists every processor refund for the intent and imports the ones not
// seen before. A full list-and-diff, because the processor does not say
// which refund triggered the event and several partial refunds may be in
// flight at once. Returns how many local refunds were created.
func (u *RefundSynchronizer) Sync(ctx context.Context, processorIntentID string) (int, error) {
	if processorIntentID == "" {
		return 0, ErrMissingIntentID
	}
	payment, err := u.payments.GetByProcessorReference(ctx, processorIntentID)
	if err != nil {
		return 0, err
	}
	if payment.ID == "" {
		return 0, fmt.Errorf("%w: no payment bound to intent %s", ErrPaymentNotFound, processorIntentID)
	}

	processorRefunds, err := u.processor.ListRefunds(ctx, processorIntentID)
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, pr := range processorRefunds {
		if pr.Metadata[SkipSyncMetadataKey] == "true" {
			log.Printf("[refund][usecase] skip marker present, originated locally refund_id=%s", pr.ID)
			continue
		}
		existing, err := u.refunds.GetByTransactionReference(ctx, pr.ID)
		if err != nil {
			return imported, err
		}
		if existing.TransactionReference != "" {
			continue
		}

		amount, err := money.ToLocalUnits(pr.Amount, pr.Currency)
		if err != nil {
			return imported, err
		}
		err = u.Record(ctx, entities.Refund{
			PaymentID:            payment.ID,
			Amount:               amount,
			Currency:             payment.Currency,
			TransactionReference: pr.ID,
			Reason:               u.reason,
			CreatedAt:            time.Now().UTC(),
		})
		if errors.Is(err, interfaces.ErrDuplicateRecord) {
			// A concurrent sync for the same intent imported it between
			// our read and write.
			continue
		}
		if err != nil {
			return imported, err
		}
		imported++

		if err := u.logs.Append(ctx, entities.PaymentLogEntry{
			ID:        uuid.NewString(),
			PaymentID: payment.ID,
			Success:   true,
			Message:   fmt.Sprintf("imported processor refund %s for %d", pr.ID, amount),
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			return imported, err
		}
		log.Printf("[refund][usecase] imported refund_id=%s payment_id=%s amount=%d", pr.ID, payment.ID, amount)
	}
	return imported, nil
}

// Record persists one local refund; the transaction-reference PK makes it
// the single de-duplication point for both admin refunds and imports.
func (u *RefundSynchronizer) Record(ctx context.Context, r entities.Refund) error {
	if r.TransactionReference == "" {
		return errors.New("refund requires a transaction reference")
	}
	return u.refunds.Create(ctx, r)
}
