// internal/domain/schedule/service.go
package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/your-org/catering-backend/internal/config"
	"github.com/your-org/catering-backend/internal/domain/cart"
	"github.com/your-org/catering-backend/internal/pkg/apperrors"
)

// Cadence controls how often a standing order repeats
type Cadence string

const (
	CadenceOnce    Cadence = "once"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

const dateLayout = "2006-01-02"

// ScheduledOrder is a saved order that fires on a future date
type ScheduledOrder struct {
	ID           string          `json:"id"`
	ContactID    string          `json:"contact_id"`
	Items        []cart.LineItem `json:"items"`
	Cadence      Cadence         `json:"cadence"`
	NextRunDate  string          `json:"next_run_date"`
	DeliveryTime string          `json:"delivery_time"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CreateRequest is the payload for scheduling an order
type CreateRequest struct {
	Cadence      string `json:"cadence" binding:"required"`
	StartDate    string `json:"start_date" binding:"required"`
	DeliveryTime string `json:"delivery_time" binding:"required"`
	Notes        string `json:"notes"`
}

// Service manages standing orders per contact. Schedules live in Redis
// keyed by contact; a worker outside this API drains due schedules.
type Service struct {
	cartService *cart.Service
	redisClient *redis.Client
	config      *config.Config
	logger      *logrus.Logger
}

// NewService creates a new schedule service
func NewService(cartService *cart.Service, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		cartService: cartService,
		redisClient: redisClient,
		config:      cfg,
		logger:      logger,
	}
}

// Create snapshots the current cart into a standing order
func (s *Service) Create(ctx context.Context, contactID, sessionID string, req *CreateRequest) (*ScheduledOrder, error) {
	cadence, err := parseCadence(req.Cadence)
	if err != nil {
		return nil, err
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", req.StartDate, apperrors.ErrInvalidInput)
	}
	if start.Before(time.Now().UTC().Truncate(24 * time.Hour)) {
		return nil, fmt.Errorf("start date is in the past: %w", apperrors.ErrInvalidInput)
	}

	items, err := s.cartService.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty: %w", apperrors.ErrInvalidInput)
	}

	order := &ScheduledOrder{
		ID:           uuid.NewString(),
		ContactID:    contactID,
		Items:        items,
		Cadence:      cadence,
		NextRunDate:  start.Format(dateLayout),
		DeliveryTime: req.DeliveryTime,
		Notes:        req.Notes,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// List returns the contact's standing orders
func (s *Service) List(ctx context.Context, contactID string) ([]ScheduledOrder, error) {
	entries, err := s.redisClient.HGetAll(ctx, scheduleKey(contactID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules: %w", err)
	}

	orders := make([]ScheduledOrder, 0, len(entries))
	for id, data := range entries {
		var order ScheduledOrder
		if err := json.Unmarshal([]byte(data), &order); err != nil {
			s.logger.WithField("schedule_id", id).Warn("skipping corrupt schedule entry")
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// Get returns one standing order by id
func (s *Service) Get(ctx context.Context, contactID, scheduleID string) (*ScheduledOrder, error) {
	data, err := s.redisClient.HGet(ctx, scheduleKey(contactID), scheduleID).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("schedule %s: %w", scheduleID, apperrors.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	var order ScheduledOrder
	if err := json.Unmarshal([]byte(data), &order); err != nil {
		return nil, fmt.Errorf("failed to decode schedule: %w", err)
	}
	return &order, nil
}

// Cancel removes a standing order
func (s *Service) Cancel(ctx context.Context, contactID, scheduleID string) error {
	removed, err := s.redisClient.HDel(ctx, scheduleKey(contactID), scheduleID).Result()
	if err != nil {
		return fmt.Errorf("failed to cancel schedule: %w", err)
	}
	if removed == 0 {
		return fmt.Errorf("schedule %s: %w", scheduleID, apperrors.ErrNotFound)
	}
	return nil
}

// Advance moves a recurring schedule to its next run date, or removes a
// one-time schedule after it fires.
func (s *Service) Advance(ctx context.Context, contactID, scheduleID string) error {
	order, err := s.Get(ctx, contactID, scheduleID)
	if err != nil {
		return err
	}

	if order.Cadence == CadenceOnce {
		return s.Cancel(ctx, contactID, scheduleID)
	}

	next, err := NextRunDate(order.NextRunDate, order.Cadence)
	if err != nil {
		return err
	}
	order.NextRunDate = next
	return s.save(ctx, order)
}

// NextRunDate computes the run date after the given one
func NextRunDate(current string, cadence Cadence) (string, error) {
	t, err := time.Parse(dateLayout, current)
	if err != nil {
		return "", fmt.Errorf("invalid run date %q: %w", current, apperrors.ErrInvalidInput)
	}

	switch cadence {
	case CadenceWeekly:
		return t.AddDate(0, 0, 7).Format(dateLayout), nil
	case CadenceMonthly:
		return t.AddDate(0, 1, 0).Format(dateLayout), nil
	default:
		return "", fmt.Errorf("cadence %q does not recur: %w", cadence, apperrors.ErrInvalidInput)
	}
}

func (s *Service) save(ctx context.Context, order *ScheduledOrder) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}
	if err := s.redisClient.HSet(ctx, scheduleKey(order.ContactID), order.ID, data).Err(); err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}
	return nil
}

func parseCadence(raw string) (Cadence, error) {
	switch Cadence(raw) {
	case CadenceOnce, CadenceWeekly, CadenceMonthly:
		return Cadence(raw), nil
	default:
		return "", fmt.Errorf("unknown cadence %q: %w", raw, apperrors.ErrInvalidInput)
	}
}

func scheduleKey(contactID string) string {
	return fmt.Sprintf("schedule:contact:%s", contactID)
}
