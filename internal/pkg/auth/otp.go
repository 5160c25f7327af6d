// internal/pkg/auth/otp.go
package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/your-org/catering-backend/internal/config"
	"github.com/your-org/catering-backend/internal/pkg/apperrors"
)

// OTPManager issues and verifies one-time passcodes. Codes are bcrypt-hashed
// in Redis with a short TTL; only the hash ever leaves this package besides
// the value handed to the delivery channel.
type OTPManager struct {
	redisClient *redis.Client
	config      *config.Config
}

// NewOTPManager creates a new OTP manager
func NewOTPManager(redisClient *redis.Client, cfg *config.Config) *OTPManager {
	return &OTPManager{
		redisClient: redisClient,
		config:      cfg,
	}
}

// Issue generates a fresh code for the identifier (phone or email) and stores
// its hash. A re-issue replaces any outstanding code.
func (m *OTPManager) Issue(ctx context.Context, identifier string) (string, error) {
	if identifier == "" {
		return "", fmt.Errorf("identifier is required: %w", apperrors.ErrInvalidInput)
	}

	code, err := m.generateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), m.config.Security.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash OTP: %w", err)
	}

	pipe := m.redisClient.Pipeline()
	pipe.Set(ctx, otpKey(identifier), string(hash), m.config.OTP.Expiry)
	pipe.Del(ctx, otpAttemptsKey(identifier))
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to store OTP: %w", err)
	}

	return code, nil
}

// Verify checks a submitted code against the stored hash and consumes it on
// success. Expired, missing, or exhausted codes are rejected.
func (m *OTPManager) Verify(ctx context.Context, identifier, code string) error {
	if identifier == "" || code == "" {
		return fmt.Errorf("identifier and code are required: %w", apperrors.ErrInvalidInput)
	}

	attempts, err := m.redisClient.Incr(ctx, otpAttemptsKey(identifier)).Result()
	if err == nil && attempts == 1 {
		m.redisClient.Expire(ctx, otpAttemptsKey(identifier), m.config.OTP.Expiry)
	}
	if attempts > int64(m.config.OTP.MaxAttempts) {
		return fmt.Errorf("too many verification attempts: %w", apperrors.ErrInvalidInput)
	}

	hash, err := m.redisClient.Get(ctx, otpKey(identifier)).Result()
	if err == redis.Nil {
		return fmt.Errorf("no outstanding code for %s: %w", identifier, apperrors.ErrNotFound)
	} else if err != nil {
		return fmt.Errorf("failed to load OTP: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)); err != nil {
		return fmt.Errorf("code mismatch: %w", apperrors.ErrInvalidInput)
	}

	// Consume the code so it cannot be replayed
	m.redisClient.Del(ctx, otpKey(identifier), otpAttemptsKey(identifier))
	return nil
}

func (m *OTPManager) generateCode() (string, error) {
	code := make([]byte, m.config.OTP.CodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}

func otpKey(identifier string) string {
	return fmt.Sprintf("otp:code:%s", identifier)
}

func otpAttemptsKey(identifier string) string {
	return fmt.Sprintf("otp:attempts:%s", identifier)
}
