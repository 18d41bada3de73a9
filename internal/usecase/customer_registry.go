package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"storegate/internal/domain/entities"
	"storegate/internal/usecase/interfaces"
)

var (
	ErrInvalidCustomerSource = errors.New("invalid customer source")
	ErrCustomerRaceLost      = errors.New("customer created concurrently but row unreadable")
)

// ICustomerRegistry maps a local identity (user or guest order) to a
// processor customer, creating one on first use.

type ICustomerRegistry interface {
	FindOrCreateCustomer(ctx context.Context, cfg entities.PaymentMethodConfig, source entities.CustomerSource) (string, error)
}

type CustomerRegistry struct {
	customers interfaces.ICustomerRepository
	processor interfaces.IProcessorClient
}

var _ ICustomerRegistry = (*CustomerRegistry)(nil)

func NewCustomerRegistry(customers interfaces.ICustomerRepository, processor interfaces.IProcessorClient) *CustomerRegistry {
	return &CustomerRegistry{customers: customers, processor: processor}
}

// FindOrCreateCustomer returns the processor customer id for (config,
// source). The storage-level uniqueness constraint on the source key is the
// concurrency control: a duplicate insert means another request won, so we
// re-read and return the winner's id instead of minting a second processor
// customer.
func (u *CustomerRegistry) FindOrCreateCustomer(ctx context.Context, cfg entities.PaymentMethodConfig, source entities.CustomerSource) (string, error) {
	source.ID = strings.TrimSpace(source.ID)
	if source.ID == "" || (source.Type != entities.CustomerSourceUser && source.Type != entities.CustomerSourceOrder) {
		return "", ErrInvalidCustomerSource
	}

	existing, err := u.customers.GetBySource(ctx, cfg.ID, source)
	if err != nil {
		return "", err
	}
	if existing.ProcessorCustomerID != "" {
		return existing.ProcessorCustomerID, nil
	}

	// The idempotency key is derived from (config, source) so a
	// double-submit that slips past the local read cannot create two
	// processor customers either.
	log.Printf("[customer][usecase] creating processor customer config=%s source=%s/%s", cfg.ID, source.Type, source.ID)
	processorID, err := u.processor.CreateCustomer(ctx, source.Email, map[string]string{
		"source_type": string(source.Type),
		"source_id":   source.ID,
	}, "cust-"+source.Key(cfg.ID))
	if err != nil {
		var perr *interfaces.ProcessorError
		if errors.As(err, &perr) {
			log.Printf("[customer][usecase] processor rejected customer create config=%s code=%s", cfg.ID, perr.Code)
			return "", &GatewayError{Code: perr.Code, Message: perr.Message}
		}
		return "", err
	}

	err = u.customers.Create(ctx, entities.Customer{
		ConfigID:            cfg.ID,
		SourceType:          source.Type,
		SourceID:            source.ID,
		ProcessorCustomerID: processorID,
		CreatedAt:           time.Now().UTC(),
	})
	if errors.Is(err, interfaces.ErrDuplicateRecord) {
		winner, rerr := u.customers.GetBySource(ctx, cfg.ID, source)
		if rerr != nil {
			return "", rerr
		}
		if winner.ProcessorCustomerID == "" {
			return "", ErrCustomerRaceLost
		}
		log.Printf("[customer][usecase] lost create race, reusing config=%s processor_customer_id=%s", cfg.ID, winner.ProcessorCustomerID)
		return winner.ProcessorCustomerID, nil
	}
	if err != nil {
		return "", err
	}
	log.Printf("[customer][usecase] created config=%s processor_customer_id=%s", cfg.ID, processorID)
	return processorID, nil
}
