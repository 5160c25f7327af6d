// internal/domain/cashback/service.go
package cashback

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/your-org/catering-backend/internal/config"
	"github.com/your-org/catering-backend/internal/pkg/apperrors"
	"github.com/your-org/catering-backend/internal/pkg/money"
)

// BalanceSyncer pushes a contact's derived balance to the external marketing
// system. The CRM gateway client implements this.
type BalanceSyncer interface {
	SyncCashbackBalance(ctx context.Context, contactID string, balance int64) error
}

// Service handles cashback ledger business logic
type Service struct {
	store  Store
	syncer BalanceSyncer
	config *config.Config
	logger *logrus.Logger
}

// NewService creates a new cashback service
func NewService(store Store, syncer BalanceSyncer, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		store:  store,
		syncer: syncer,
		config: cfg,
		logger: logger,
	}
}

// GetBalance replays the contact's full transaction log. This recomputation
// is the single source of truth; no cached counter exists to diverge from it.
func (s *Service) GetBalance(ctx context.Context, contactID string) (int64, error) {
	transactions, err := s.store.ListByContact(ctx, contactID)
	if err != nil {
		return 0, err
	}
	return Balance(transactions), nil
}

// RecordEarned appends an earned transaction worth 5% of the order total and
// returns the amount earned.
func (s *Service) RecordEarned(ctx context.Context, contactID string, orderTotal int64, orderID, invoiceID string) (int64, error) {
	if contactID == "" {
		return 0, fmt.Errorf("contact id is required: %w", apperrors.ErrInvalidInput)
	}
	if orderTotal <= 0 {
		return 0, fmt.Errorf("order total must be positive: %w", apperrors.ErrInvalidInput)
	}

	amount := money.Percent(orderTotal, s.config.Pricing.CashbackRateBps)
	if amount <= 0 {
		return 0, nil // order too small to earn anything
	}

	tx := &Transaction{
		ID:          uuid.NewString(),
		ContactID:   contactID,
		Type:        TransactionEarned,
		Amount:      amount,
		OrderID:     orderID,
		InvoiceID:   invoiceID,
		Description: fmt.Sprintf("Earned %s on order %s", money.Format(amount), orderID),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.Append(ctx, tx); err != nil {
		return 0, err
	}

	s.syncBalance(ctx, contactID)
	return amount, nil
}

// RecordRedeemed appends a redeemed transaction after re-checking the derived
// balance. Insufficient balance fails without recording anything; there is no
// partial redemption. The sufficiency check is read-then-append without
// atomicity across devices; the external store remains the final authority.
func (s *Service) RecordRedeemed(ctx context.Context, contactID string, amount int64, orderID, invoiceID string) error {
	if contactID == "" {
		return fmt.Errorf("contact id is required: %w", apperrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return fmt.Errorf("redemption amount must be positive: %w", apperrors.ErrInvalidInput)
	}

	balance, err := s.GetBalance(ctx, contactID)
	if err != nil {
		return err
	}
	if amount > balance {
		return fmt.Errorf("redemption of %s exceeds balance %s: %w",
			money.Format(amount), money.Format(balance), apperrors.ErrInsufficientBalance)
	}

	tx := &Transaction{
		ID:          uuid.NewString(),
		ContactID:   contactID,
		Type:        TransactionRedeemed,
		Amount:      amount,
		OrderID:     orderID,
		InvoiceID:   invoiceID,
		Description: fmt.Sprintf("Redeemed %s on order %s", money.Format(amount), orderID),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.Append(ctx, tx); err != nil {
		return err
	}

	s.syncBalance(ctx, contactID)
	return nil
}

// GetHistory returns the contact's transactions most-recent-first, bounded by
// limit (<=0 means everything).
func (s *Service) GetHistory(ctx context.Context, contactID string, limit int) ([]Transaction, error) {
	transactions, err := s.store.ListByContact(ctx, contactID)
	if err != nil {
		return nil, err
	}

	// Store returns oldest-first; reverse for display
	for i, j := 0, len(transactions)-1; i < j; i, j = i+1, j-1 {
		transactions[i], transactions[j] = transactions[j], transactions[i]
	}
	if limit > 0 && len(transactions) > limit {
		transactions = transactions[:limit]
	}
	return transactions, nil
}

// syncBalance notifies the marketing system of the new balance. Best-effort:
// a failure is logged and never rolls back or blocks the ledger write.
func (s *Service) syncBalance(ctx context.Context, contactID string) {
	balance, err := s.GetBalance(ctx, contactID)
	if err != nil {
		s.logger.WithError(err).WithField("contact_id", contactID).
			Warn("cashback balance recomputation for sync failed")
		return
	}

	if err := s.syncer.SyncCashbackBalance(ctx, contactID, balance); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"contact_id": contactID,
			"balance":    balance,
		}).Warn("cashback balance sync failed")
	}
}
