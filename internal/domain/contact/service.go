// internal/domain/contact/service.go
package contact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/your-org/catering-backend/internal/config"
	"github.com/your-org/catering-backend/internal/infrastructure/crm"
	"github.com/your-org/catering-backend/internal/pkg/apperrors"
	"github.com/your-org/catering-backend/internal/pkg/auth"
	"github.com/your-org/catering-backend/internal/pkg/email"
)

// deliveryTTL keeps cached delivery details around between sessions
const deliveryTTL = 30 * 24 * time.Hour

// Service handles contact identity, profile, and delivery-detail logic.
// The CRM is authoritative for contact records; Redis is a read cache and
// durable side-channel, never the source of truth.
type Service struct {
	crmClient    *crm.Client
	otpManager   *auth.OTPManager
	emailService *email.EmailService
	redisClient  *redis.Client
	config       *config.Config
	logger       *logrus.Logger
}

// NewService creates a new contact service
func NewService(crmClient *crm.Client, otpManager *auth.OTPManager, emailService *email.EmailService,
	redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		crmClient:    crmClient,
		otpManager:   otpManager,
		emailService: emailService,
		redisClient:  redisClient,
		config:       cfg,
		logger:       logger,
	}
}

// RequestOTP issues a passcode for a phone number or email address and
// dispatches it over the matching channel.
func (s *Service) RequestOTP(ctx context.Context, identifier string) error {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return fmt.Errorf("phone or email is required: %w", apperrors.ErrInvalidInput)
	}

	code, err := s.otpManager.Issue(ctx, identifier)
	if err != nil {
		return err
	}

	if strings.Contains(identifier, "@") {
		expiry := s.config.OTP.Expiry.String()
		if err := s.emailService.SendOTPEmail(ctx, identifier, code, expiry); err != nil {
			return fmt.Errorf("failed to deliver passcode: %w", err)
		}
		return nil
	}

	// SMS delivery is handled by the workflow gateway downstream; in
	// development the code is surfaced in the log instead.
	if s.config.IsDevelopment() {
		s.logger.WithField("identifier", identifier).Infof("OTP code (dev only): %s", code)
	}
	return nil
}

// VerifyOTP checks the submitted code and resolves the identifier to a CRM
// contact, creating one for first-time customers.
func (s *Service) VerifyOTP(ctx context.Context, identifier, code string) (*Profile, error) {
	identifier = strings.TrimSpace(identifier)
	if err := s.otpManager.Verify(ctx, identifier, code); err != nil {
		return nil, err
	}

	found, err := s.crmClient.SearchContact(ctx, identifier)
	if err == nil {
		return profileFromContact(found), nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	// First order from this customer: create the contact record
	newContact := &crm.Contact{}
	if strings.Contains(identifier, "@") {
		newContact.Email = identifier
	} else {
		newContact.Phone = identifier
	}
	created, err := s.crmClient.CreateContact(ctx, newContact)
	if err != nil {
		return nil, err
	}
	return profileFromContact(created), nil
}

// GetProfile fetches the contact profile from the CRM
func (s *Service) GetProfile(ctx context.Context, contactID string) (*Profile, error) {
	found, err := s.crmClient.GetContactProfile(ctx, contactID)
	if err != nil {
		return nil, err
	}
	return profileFromContact(found), nil
}

// UpdateProfile updates contact profile fields at the CRM
func (s *Service) UpdateProfile(ctx context.Context, contactID string, fields map[string]string) error {
	if len(fields) == 0 {
		return fmt.Errorf("no fields to update: %w", apperrors.ErrInvalidInput)
	}
	return s.crmClient.UpdateContactProfile(ctx, contactID, fields)
}

// SaveDeliveryDetails validates and stores delivery details, overwriting any
// previous value wholesale: Redis cache first, then write-through to the CRM
// contact record.
func (s *Service) SaveDeliveryDetails(ctx context.Context, contactID string, details *DeliveryDetails) error {
	if err := details.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to encode delivery details: %w", err)
	}
	if err := s.redisClient.Set(ctx, deliveryKey(contactID), data, deliveryTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache delivery details: %w", err)
	}

	err = s.crmClient.UpdateContactAddress(ctx, contactID, &crm.ContactAddress{
		Address: details.Address,
		City:    details.City,
		State:   details.State,
		Zip:     details.Zip,
	})
	if err != nil {
		// Cache already holds the details; the CRM write is retried on the
		// next save. Surface as a warning, not a failure.
		s.logger.WithError(err).WithField("contact_id", contactID).
			Warn("CRM address write-through failed")
	}
	return nil
}

// GetDeliveryDetails returns the cached delivery details, if any
func (s *Service) GetDeliveryDetails(ctx context.Context, contactID string) (*DeliveryDetails, error) {
	data, err := s.redisClient.Get(ctx, deliveryKey(contactID)).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("no delivery details for contact %s: %w", contactID, apperrors.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to load delivery details: %w", err)
	}

	var details DeliveryDetails
	if err := json.Unmarshal([]byte(data), &details); err != nil {
		return nil, fmt.Errorf("failed to decode delivery details: %w", err)
	}
	return &details, nil
}

func profileFromContact(c *crm.Contact) *Profile {
	return &Profile{
		ContactID: c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		Zip:       c.Zip,
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}

func deliveryKey(contactID string) string {
	return fmt.Sprintf("delivery:contact:%s", contactID)
}
