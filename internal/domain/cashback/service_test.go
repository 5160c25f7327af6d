// internal/domain/cashback/service_test.go
package cashback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/catering-backend/internal/config"
	"github.com/your-org/catering-backend/internal/pkg/apperrors"
)

// memoryStore is an in-memory Store for tests
type memoryStore struct {
	transactions []Transaction
	appendErr    error
}

func (m *memoryStore) Append(_ context.Context, tx *Transaction) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.transactions = append(m.transactions, *tx)
	return nil
}

func (m *memoryStore) ListByContact(_ context.Context, contactID string) ([]Transaction, error) {
	var out []Transaction
	for _, tx := range m.transactions {
		if tx.ContactID == contactID {
			out = append(out, tx)
		}
	}
	return out, nil
}

// recordingSyncer captures sync calls and optionally fails
type recordingSyncer struct {
	calls   []int64
	syncErr error
}

func (r *recordingSyncer) SyncCashbackBalance(_ context.Context, _ string, balance int64) error {
	r.calls = append(r.calls, balance)
	return r.syncErr
}

func newTestService(store Store, syncer BalanceSyncer) *Service {
	cfg := &config.Config{}
	cfg.Pricing.CashbackRateBps = 500
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewService(store, syncer, cfg, logger)
}

func TestBalanceReplay(t *testing.T) {
	tests := []struct {
		name         string
		transactions []Transaction
		want         int64
	}{
		{"empty ledger", nil, 0},
		{
			"earned only",
			[]Transaction{
				{Type: TransactionEarned, Amount: 500},
				{Type: TransactionEarned, Amount: 1047},
			},
			1547,
		},
		{
			"earn and redeem",
			[]Transaction{
				{Type: TransactionEarned, Amount: 2000},
				{Type: TransactionRedeemed, Amount: 750},
				{Type: TransactionEarned, Amount: 100},
			},
			1350,
		},
		{
			"insertion order is irrelevant",
			[]Transaction{
				{Type: TransactionRedeemed, Amount: 750},
				{Type: TransactionEarned, Amount: 100},
				{Type: TransactionEarned, Amount: 2000},
			},
			1350,
		},
		{
			"clamped at zero",
			[]Transaction{
				{Type: TransactionEarned, Amount: 100},
				{Type: TransactionRedeemed, Amount: 500},
			},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Balance(tt.transactions))
		})
	}
}

func TestRecordEarnedAppendsFivePercent(t *testing.T) {
	store := &memoryStore{}
	syncer := &recordingSyncer{}
	svc := newTestService(store, syncer)
	ctx := context.Background()

	earned, err := svc.RecordEarned(ctx, "c-1", 20938, "ord-1", "inv-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1047), earned) // 5% of 209.38, rounded

	balance, err := svc.GetBalance(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1047), balance)

	require.Len(t, store.transactions, 1)
	tx := store.transactions[0]
	assert.Equal(t, TransactionEarned, tx.Type)
	assert.Equal(t, "ord-1", tx.OrderID)
	assert.Equal(t, "inv-1", tx.InvoiceID)
	assert.NotEmpty(t, tx.ID)

	require.Len(t, syncer.calls, 1)
	assert.Equal(t, int64(1047), syncer.calls[0])
}

func TestRecordEarnedRejectsInvalidInput(t *testing.T) {
	svc := newTestService(&memoryStore{}, &recordingSyncer{})
	ctx := context.Background()

	_, err := svc.RecordEarned(ctx, "", 1000, "", "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.RecordEarned(ctx, "c-1", 0, "", "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestRecordRedeemedSufficiencyGate(t *testing.T) {
	store := &memoryStore{}
	syncer := &recordingSyncer{}
	svc := newTestService(store, syncer)
	ctx := context.Background()

	_, err := svc.RecordEarned(ctx, "c-1", 20000, "ord-1", "") // earns 1000
	require.NoError(t, err)

	err = svc.RecordRedeemed(ctx, "c-1", 5000, "ord-2", "")
	assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)

	// Failed redemption records nothing; balance is the pre-attempt value
	balance, err := svc.GetBalance(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)
	assert.Len(t, store.transactions, 1)

	// Exact-balance redemption succeeds
	require.NoError(t, svc.RecordRedeemed(ctx, "c-1", 1000, "ord-2", ""))
	balance, err = svc.GetBalance(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestSyncFailureDoesNotBlockLedgerWrite(t *testing.T) {
	store := &memoryStore{}
	syncer := &recordingSyncer{syncErr: errors.New("marketing endpoint down")}
	svc := newTestService(store, syncer)
	ctx := context.Background()

	earned, err := svc.RecordEarned(ctx, "c-1", 10000, "ord-1", "")
	require.NoError(t, err, "sync failure must not fail the write")
	assert.Equal(t, int64(500), earned)
	assert.Len(t, store.transactions, 1)
}

func TestGetHistoryMostRecentFirstBounded(t *testing.T) {
	store := &memoryStore{}
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		store.transactions = append(store.transactions, Transaction{
			ID:        string(rune('a' + i)),
			ContactID: "c-1",
			Type:      TransactionEarned,
			Amount:    int64(100 * (i + 1)),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	svc := newTestService(store, &recordingSyncer{})

	history, err := svc.GetHistory(context.Background(), "c-1", 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, int64(500), history[0].Amount, "newest first")
	assert.Equal(t, int64(400), history[1].Amount)
	assert.Equal(t, int64(300), history[2].Amount)
}
