package entities

// FutureUsage states whether newly confirmed payment methods should be kept
// for later charges, and under which consent model.

type FutureUsage string

const (
	FutureUsageNone       FutureUsage = ""
	FutureUsageOnSession  FutureUsage = "on_session"
	FutureUsageOffSession FutureUsage = "off_session"
)

// PaymentMethodConfig holds one configured processor integration.
//
// Immutable after startup; many orders reference one config. The webhook
// routing slug for a config is persisted separately (webhook_slugs table) so
// the public endpoint never exposes the config id itself.

type PaymentMethodConfig struct {
	ID               string      `json:"id"`
	SecretKey        string      `json:"-"`
	PublishableKey   string      `json:"publishable_key"`
	WebhookSecret    string      `json:"-"`
	CaptureMethod    string      `json:"capture_method"`
	FutureUsage      FutureUsage `json:"future_usage"`
	SkipConfirmation bool        `json:"skip_confirmation"`
}
