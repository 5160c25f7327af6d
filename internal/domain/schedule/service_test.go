// internal/domain/schedule/service_test.go
package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/catering-backend/internal/pkg/apperrors"
)

func TestNextRunDateWeekly(t *testing.T) {
	next, err := NextRunDate("2026-09-04", CadenceWeekly)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-11", next)
}

func TestNextRunDateMonthly(t *testing.T) {
	next, err := NextRunDate("2026-09-15", CadenceMonthly)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-15", next)
}

func TestNextRunDateMonthlyYearRollover(t *testing.T) {
	next, err := NextRunDate("2026-12-20", CadenceMonthly)
	require.NoError(t, err)
	assert.Equal(t, "2027-01-20", next)
}

func TestNextRunDateOnceDoesNotRecur(t *testing.T) {
	_, err := NextRunDate("2026-09-04", CadenceOnce)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestNextRunDateRejectsBadDate(t *testing.T) {
	_, err := NextRunDate("09/04/2026", CadenceWeekly)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestParseCadence(t *testing.T) {
	for _, raw := range []string{"once", "weekly", "monthly"} {
		c, err := parseCadence(raw)
		require.NoError(t, err)
		assert.Equal(t, Cadence(raw), c)
	}

	_, err := parseCadence("daily")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
