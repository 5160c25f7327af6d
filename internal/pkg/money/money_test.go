// internal/pkg/money/money_test.go
package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name        string
		amount      int64
		basisPoints int64
		want        int64
	}{
		{"8% tax on 179.98", 17998, 800, 1440},  // 1439.84 rounds up
		{"8% tax on 100.00", 10000, 800, 800},
		{"5% cashback on 209.38", 20938, 500, 1047}, // 1046.9 rounds up
		{"5% cashback on 100.00", 10000, 500, 500},
		{"zero amount", 0, 800, 0},
		{"half rounds away from zero", 25, 1000, 3}, // 2.5 -> 3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percent(tt.amount, tt.basisPoints))
		})
	}
}

func TestScale(t *testing.T) {
	assert.Equal(t, int64(9000), Scale(10000, 90))
	assert.Equal(t, int64(11500), Scale(10000, 115))
	// 12345 * 0.9 = 11110.5 -> 11111
	assert.Equal(t, int64(11111), Scale(12345, 90))
}

func TestRoundDivNegative(t *testing.T) {
	assert.Equal(t, int64(-3), RoundDiv(-25, 10))
	assert.Equal(t, int64(-2), RoundDiv(-24, 10))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$209.38", Format(20938))
	assert.Equal(t, "$0.05", Format(5))
	assert.Equal(t, "-$1.50", Format(-150))
}
