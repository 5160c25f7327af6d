// internal/domain/cashback/store.go
package cashback

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Store is the append-only persistence behind the ledger. No update or
// delete operations exist on purpose.
type Store interface {
	Append(ctx context.Context, tx *Transaction) error
	ListByContact(ctx context.Context, contactID string) ([]Transaction, error)
}

// gormStore persists transactions in Postgres
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates the database-backed ledger store
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Append(ctx context.Context, tx *Transaction) error {
	if err := s.db.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("failed to append cashback transaction: %w", err)
	}
	return nil
}

func (s *gormStore) ListByContact(ctx context.Context, contactID string) ([]Transaction, error) {
	var transactions []Transaction
	err := s.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("created_at ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cashback transactions: %w", err)
	}
	return transactions, nil
}
