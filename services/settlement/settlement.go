package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	paymentRepo "homevista/database/repository/payment"
	"homevista/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultSettlementService) Begin(ctx context.Context, req models.PaymentRequest, method string) (*BeginResult, error) {
	amount, err := s.buildAmount(req)
	if err != nil {
		return nil, err
	}

	intent := &models.PaymentIntent{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		Items:     req.Items,
		Amount:    amount,
		Address:   req.Address,
		Method:    method,
		Payment:   false,
		CreatedAt: time.Now(),
	}

	switch method {
	case models.PaymentMethodCash:
		return s.beginCash(ctx, intent)
	case models.PaymentMethodStripe:
		return s.beginStripe(ctx, intent)
	default:
		return nil, fmt.Errorf("%w: unsupported payment method %q", ErrInvalidRequest, method)
	}
}

// buildAmount recomputes the amount from the line items and the service
// charge. A client-supplied amount that disagrees is rejected outright.
func (s *DefaultSettlementService) buildAmount(req models.PaymentRequest) (float64, error) {
	if req.UserID == "" {
		return 0, fmt.Errorf("%w: missing user ID", ErrInvalidRequest)
	}
	if len(req.Items) == 0 {
		return 0, fmt.Errorf("%w: no line items", ErrInvalidRequest)
	}

	var amount float64
	for _, item := range req.Items {
		if item.Price < 0 || item.Quantity <= 0 {
			return 0, fmt.Errorf("%w: bad line item %q", ErrInvalidRequest, item.Name)
		}
		amount += item.Price * float64(item.Quantity)
	}
	amount += s.ServiceCharge

	if req.Amount != 0 && req.Amount != amount {
		return 0, ErrAmountMismatch
	}
	return amount, nil
}

// beginCash records the intent immediately. Cash settles out of band: an
// administrator flips the settled flag on delivery, outside this flow.
func (s *DefaultSettlementService) beginCash(ctx context.Context, intent *models.PaymentIntent) (*BeginResult, error) {
	intent.Status = models.PaymentStatusPendingCash
	if _, err := s.Repo.Create(ctx, intent); err != nil {
		return nil, err
	}

	s.clearCart(intent.UserID)
	s.Logger.Info("cash payment recorded",
		zap.String("intent", intent.ID),
		zap.Float64("amount", intent.Amount))
	return &BeginResult{IntentID: intent.ID}, nil
}

// defaultGatewayTimeout bounds the checkout session call when no timeout
// is configured. The gateway is the only dependency with external latency;
// everything else is bounded at the repo layer.
const defaultGatewayTimeout = 15 * time.Second

// beginStripe opens the hosted session first and persists the intent only
// once that call has succeeded, so a gateway failure leaves nothing behind.
// No store lock is held across the gateway call.
func (s *DefaultSettlementService) beginStripe(ctx context.Context, intent *models.PaymentIntent) (*BeginResult, error) {
	timeout := s.GatewayTimeout
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}
	sessionCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	redirectURL, err := s.Gateway.CreateSession(sessionCtx, intent)
	if err != nil {
		s.Logger.Warn("checkout session creation failed",
			zap.String("intent", intent.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	intent.Status = models.PaymentStatusPendingStripe
	if _, err := s.Repo.Create(ctx, intent); err != nil {
		return nil, err
	}

	s.Logger.Info("checkout session opened",
		zap.String("intent", intent.ID),
		zap.Float64("amount", intent.Amount))
	return &BeginResult{IntentID: intent.ID, RedirectURL: redirectURL}, nil
}

func (s *DefaultSettlementService) Reconcile(ctx context.Context, intentID string, success bool) error {
	if !success {
		// Abandoned or cancelled checkout: the unconfirmed intent carries no
		// further value, delete it. Already gone means already reconciled.
		if err := s.Repo.DeleteByID(ctx, intentID); err != nil {
			return err
		}
		s.Logger.Info("payment intent discarded", zap.String("intent", intentID))
		return nil
	}

	intent, err := s.Repo.GetByID(ctx, intentID)
	if errors.Is(err, paymentRepo.ErrNotFound) {
		// Duplicate delivery after a delete, or a manual sweep won the race.
		return nil
	}
	if err != nil {
		return err
	}
	if intent.Payment {
		// Duplicate success callback; the cart was already cleared on the
		// first transition.
		return nil
	}

	if err := s.Repo.SetPayment(ctx, intentID, true); err != nil {
		if errors.Is(err, paymentRepo.ErrNotFound) {
			return nil
		}
		return err
	}

	s.clearCart(intent.UserID)
	s.Logger.Info("payment settled", zap.String("intent", intentID))
	return nil
}

// clearCart is fire-and-forget: a failure to clear the pending cart is
// logged, never propagated into the settlement outcome.
func (s *DefaultSettlementService) clearCart(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.UserRepo.ClearCart(ctx, userID); err != nil {
		s.Logger.Error("failed to clear cart", zap.String("user", userID), zap.Error(err))
	}
}

func (s *DefaultSettlementService) ListByUser(ctx context.Context, userID string) ([]models.PaymentIntent, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *DefaultSettlementService) ListAll(ctx context.Context) ([]models.PaymentIntent, error) {
	return s.Repo.ListAll(ctx)
}

func (s *DefaultSettlementService) SetStatus(ctx context.Context, intentID, status string) error {
	return s.Repo.SetStatus(ctx, intentID, status)
}

func (s *DefaultSettlementService) Delete(ctx context.Context, intentID string) error {
	if _, err := s.Repo.GetByID(ctx, intentID); err != nil {
		return err
	}
	return s.Repo.DeleteByID(ctx, intentID)
}
