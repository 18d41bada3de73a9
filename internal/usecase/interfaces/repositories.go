package interfaces

import (
	"context"
	"errors"

	"storegate/internal/domain/entities"
)

// ErrDuplicateRecord is returned by Create methods when the storage-level
// uniqueness constraint rejects the write. It means "someone else won the
// race, re-read" and must never surface to a user.
var ErrDuplicateRecord = errors.New("duplicate record")

// ErrStateNotCurrent is returned by compare-and-swap updates when the stored
// state no longer matches the expected one: another request already moved
// the record. Callers re-read and re-evaluate.
var ErrStateNotCurrent = errors.New("state not current")

// Repositories follow the billing convention of returning the zero-value
// entity (not an error) on a clean miss; callers check the identifying field.

// ICustomerRepository persists the (config, source) -> processor customer
// join rows. Create is conditional on the composite key being absent.
type ICustomerRepository interface {
	GetBySource(ctx context.Context, configID string, source entities.CustomerSource) (entities.Customer, error)
	Create(ctx context.Context, c entities.Customer) error
}

// IIntentRepository persists intent bindings for one kind (payment or
// setup); the two kinds live in separate tables behind two instances.
// Create is conditional on the binding being absent; Replace is a
// compare-and-swap that only lands while the stored processor intent id
// still equals priorProcessorIntentID, returning ErrStateNotCurrent when a
// racer replaced it first.
type IIntentRepository interface {
	GetByOrder(ctx context.Context, configID, orderID string) (entities.Intent, error)
	Create(ctx context.Context, i entities.Intent) error
	Replace(ctx context.Context, i entities.Intent, priorProcessorIntentID string) error
}

// IOrderRepository reads and advances storefront orders.
type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	UpdateState(ctx context.Context, id string, state entities.OrderState) (entities.Order, error)
}

// IPaymentRepository persists local payments. UpdateState is a
// compare-and-swap: the write only lands when the stored state still equals
// from, so racing transitions cannot clobber each other.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetByProcessorReference(ctx context.Context, ref string) (entities.Payment, error)
	// GetInProgressByOrder returns the checkout/pending payment for the
	// order, filtered to configID when non-empty.
	GetInProgressByOrder(ctx context.Context, orderID, configID string) (entities.Payment, error)
	ListByOrder(ctx context.Context, orderID string) ([]entities.Payment, error)
	UpdateState(ctx context.Context, id string, from, to entities.PaymentState) (entities.Payment, error)
}

// IRefundRepository persists refunds keyed by transaction reference; Create
// returns ErrDuplicateRecord when the reference was already imported.
type IRefundRepository interface {
	Create(ctx context.Context, r entities.Refund) error
	GetByTransactionReference(ctx context.Context, ref string) (entities.Refund, error)
	ListByPayment(ctx context.Context, paymentID string) ([]entities.Refund, error)
}

// IWebhookSlugRepository maps opaque routing slugs to configuration ids.
type IWebhookSlugRepository interface {
	GetConfigIDBySlug(ctx context.Context, slug string) (string, error)
	GetSlugByConfigID(ctx context.Context, configID string) (string, error)
	Create(ctx context.Context, slug, configID string) error
}

// IWalletRepository stores saved payment methods per user.
type IWalletRepository interface {
	Enroll(ctx context.Context, w entities.WalletSource) error
	ListByUser(ctx context.Context, userID string) ([]entities.WalletSource, error)
}

// IPaymentLogRepository is the append-only audit trail per payment.
type IPaymentLogRepository interface {
	Append(ctx context.Context, e entities.PaymentLogEntry) error
	ListByPayment(ctx context.Context, paymentID string) ([]entities.PaymentLogEntry, error)
}
