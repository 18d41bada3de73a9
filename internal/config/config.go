package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"storegate/internal/domain/entities"
)

var ErrMissingSecretKey = errors.New("missing STRIPE_SECRET_KEY")

// Config is built once at startup and passed into constructors. Core logic
// never reads the environment directly.
type Config struct {
	Port int

	// WebhookTolerance bounds how stale a signed event timestamp may be.
	WebhookTolerance time.Duration

	// StrictTransitions makes a conflicting backward transition (for
	// example canceled arriving after completed) a hard error instead of a
	// logged no-op.
	StrictTransitions bool

	// TolerateUnknownStatus downgrades an unrecognized processor intent
	// status from a hard error to a logged no-op, for forward
	// compatibility with new non-terminal statuses.
	TolerateUnknownStatus bool

	// RefundReason is stamped on refunds imported from the processor.
	RefundReason string

	Processors []entities.PaymentMethodConfig
}

const (
	defaultPort             = 8080
	defaultWebhookTolerance = 300 * time.Second
)

// Load builds the Config from environment variables. godotenv/autoload in
// main has already merged .env by the time this runs.
func Load() (Config, error) {
	secretKey := strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY"))
	if secretKey == "" {
		return Config{}, ErrMissingSecretKey
	}

	cfg := Config{
		Port:                  getenvInt("PORT", defaultPort),
		WebhookTolerance:      getenvDuration("WEBHOOK_TOLERANCE", defaultWebhookTolerance),
		StrictTransitions:     getenvBool("STRICT_TRANSITIONS"),
		TolerateUnknownStatus: getenvBool("TOLERATE_UNKNOWN_INTENT_STATUS"),
		RefundReason:          getenvDefault("REFUND_REASON", entities.RefundReasonImported),
		Processors: []entities.PaymentMethodConfig{
			{
				ID:               getenvDefault("PAYMENT_METHOD_CONFIG_ID", "stripe-default"),
				SecretKey:        secretKey,
				PublishableKey:   os.Getenv("STRIPE_PUBLISHABLE_KEY"),
				WebhookSecret:    os.Getenv("STRIPE_WEBHOOK_SECRET"),
				CaptureMethod:    "manual",
				FutureUsage:      entities.FutureUsage(os.Getenv("SETUP_FUTURE_USAGE")),
				SkipConfirmation: getenvBool("SKIP_CONFIRMATION"),
			},
		},
	}
	return cfg, nil
}

// ProcessorByID resolves a configured integration; zero value on miss.
func (c Config) ProcessorByID(id string) (entities.PaymentMethodConfig, bool) {
	for _, p := range c.Processors {
		if p.ID == id {
			return p, true
		}
	}
	return entities.PaymentMethodConfig{}, false
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
