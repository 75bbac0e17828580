package settlement

import (
	"context"
	"errors"
	"time"

	paymentRepo "homevista/database/repository/payment"
	userRepo "homevista/database/repository/user"
	"homevista/models"

	"go.uber.org/zap"
)

// ErrGatewayUnavailable is returned when the hosted checkout session could
// not be opened. No payment intent is left behind in that case; the whole
// settlement attempt is safe to retry.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// ErrAmountMismatch is returned when the client-supplied amount disagrees
// with the amount recomputed from the line items. The intent is rejected,
// never silently corrected.
var ErrAmountMismatch = errors.New("amount does not match line items")

// ErrInvalidRequest is returned for a structurally unusable payment request.
var ErrInvalidRequest = errors.New("invalid payment request")

// SettlementGateway abstracts the hosted checkout provider. CreateSession
// opens a session scoped to the intent's line items plus the service charge
// and returns the redirect target. The call is bounded by ctx.
type SettlementGateway interface {
	CreateSession(ctx context.Context, intent *models.PaymentIntent) (string, error)
}

// BeginResult is returned from Begin. RedirectURL is empty on the cash path.
type BeginResult struct {
	IntentID    string `json:"paymentId"`
	RedirectURL string `json:"sessionUrl,omitempty"`
}

// SettlementService drives the payment-intent lifecycle:
// created -> pending-cash | pending-stripe -> settled | deleted.
type SettlementService interface {
	Begin(ctx context.Context, req models.PaymentRequest, method string) (*BeginResult, error)
	// Reconcile applies the provider-reported outcome. It is idempotent:
	// duplicate callbacks and callbacks for already-resolved intents are
	// no-ops, not errors.
	Reconcile(ctx context.Context, intentID string, success bool) error

	ListByUser(ctx context.Context, userID string) ([]models.PaymentIntent, error)
	ListAll(ctx context.Context) ([]models.PaymentIntent, error)
	SetStatus(ctx context.Context, intentID, status string) error
	// Delete is the administrative removal; unlike Reconcile it reports a
	// missing intent as not found.
	Delete(ctx context.Context, intentID string) error
}

// DefaultSettlementService implements SettlementService.
type DefaultSettlementService struct {
	Repo          paymentRepo.PaymentRepository
	UserRepo      userRepo.UserRepository
	Gateway       SettlementGateway
	ServiceCharge float64
	// GatewayTimeout bounds each checkout session call; zero selects the
	// built-in default.
	GatewayTimeout time.Duration
	Logger         *zap.Logger
}
