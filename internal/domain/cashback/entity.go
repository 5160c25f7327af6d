// internal/domain/cashback/entity.go
package cashback

import "time"

// TransactionType distinguishes ledger entries
type TransactionType string

const (
	TransactionEarned   TransactionType = "earned"
	TransactionRedeemed TransactionType = "redeemed"
)

// Transaction is one immutable row of the cashback ledger. Rows are only ever
// appended; balance is derived by replaying them, never stored as a counter.
type Transaction struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	ContactID   string          `gorm:"not null;index;size:64" json:"contact_id"`
	Type        TransactionType `gorm:"not null;size:16" json:"type"`
	Amount      int64           `gorm:"not null" json:"amount"` // cents, always > 0
	OrderID     string          `gorm:"size:64" json:"order_id,omitempty"`
	InvoiceID   string          `gorm:"size:64" json:"invoice_id,omitempty"`
	Description string          `gorm:"size:255" json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TableName overrides the table name
func (Transaction) TableName() string {
	return "cashback_transactions"
}

// Balance derives a contact balance from a transaction slice. Sum order does
// not matter; the result is clamped at zero so display never goes negative.
func Balance(transactions []Transaction) int64 {
	var balance int64
	for _, tx := range transactions {
		switch tx.Type {
		case TransactionEarned:
			balance += tx.Amount
		case TransactionRedeemed:
			balance -= tx.Amount
		}
	}
	if balance < 0 {
		return 0
	}
	return balance
}
