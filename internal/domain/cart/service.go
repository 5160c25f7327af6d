// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/your-org/catering-backend/internal/config"
	"github.com/your-org/catering-backend/internal/domain/pricing"
)

// cartTTL keeps abandoned session carts from accumulating in Redis
const cartTTL = 24 * time.Hour

// Service persists session carts in Redis and applies the pure cart
// transitions from entity.go
type Service struct {
	redisClient *redis.Client
	config      *config.Config
}

// NewService creates a new cart service
func NewService(redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		redisClient: redisClient,
		config:      cfg,
	}
}

// CartResponse represents a cart with its computed totals
type CartResponse struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	Totals    Totals     `json:"totals"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AddItemRequest represents an add-to-cart request
type AddItemRequest struct {
	ID                  string `json:"id" binding:"required"`
	Name                string `json:"name" binding:"required"`
	UnitPrice           int64  `json:"unit_price" binding:"min=0"`
	Quantity            int    `json:"quantity" binding:"required"`
	ImageURL            string `json:"image_url"`
	SpecialInstructions string `json:"special_instructions"`
}

// UpdateQuantityRequest represents a quantity update; zero removes the line
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Service) rules() Rules {
	return Rules{
		TaxRateBps:  s.config.Pricing.TaxRateBps,
		DeliveryFee: s.config.Pricing.DeliveryFee,
	}
}

// GetCart retrieves the cart for a session, creating an empty one if absent
func (s *Service) GetCart(ctx context.Context, sessionID string, cashbackBalance int64, applyCashback bool) (*CartResponse, error) {
	sessionCart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.respond(sessionCart, cashbackBalance, applyCashback), nil
}

// AddItem adds or merges a line into the session cart
func (s *Service) AddItem(ctx context.Context, sessionID string, req *AddItemRequest) (*CartResponse, error) {
	sessionCart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item := LineItem{
		ID:                  req.ID,
		Name:                req.Name,
		UnitPrice:           req.UnitPrice,
		Quantity:            req.Quantity,
		ImageURL:            req.ImageURL,
		SpecialInstructions: req.SpecialInstructions,
		AddedAt:             time.Now().UTC(),
	}
	if err := sessionCart.AddItem(item); err != nil {
		return nil, err
	}

	if err := s.save(ctx, sessionCart); err != nil {
		return nil, err
	}
	return s.respond(sessionCart, 0, false), nil
}

// UpdateQuantity sets a line's quantity; zero or below removes the line
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*CartResponse, error) {
	sessionCart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sessionCart.UpdateQuantity(itemID, quantity)

	if err := s.save(ctx, sessionCart); err != nil {
		return nil, err
	}
	return s.respond(sessionCart, 0, false), nil
}

// RemoveItem removes a line; removing an unknown id is a no-op
func (s *Service) RemoveItem(ctx context.Context, sessionID, itemID string) (*CartResponse, error) {
	return s.UpdateQuantity(ctx, sessionID, itemID, 0)
}

// Clear empties the session cart
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.redisClient.Del(ctx, cartKey(sessionID)).Err()
}

// PopulateFromRecommendation replaces the entire cart contents with the
// recommended bundle. This is a full replace, not a merge.
func (s *Service) PopulateFromRecommendation(ctx context.Context, sessionID string, rec *pricing.CateringRecommendation) (*CartResponse, error) {
	sessionCart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sessionCart.Clear()
	now := time.Now().UTC()
	for _, group := range [][]pricing.RecommendationItem{rec.MainItems, rec.Sides, rec.Drinks, rec.Desserts} {
		for _, item := range group {
			if item.Quantity <= 0 {
				continue
			}
			sessionCart.Items = append(sessionCart.Items, LineItem{
				ID:        slugify(item.Name),
				Name:      item.Name,
				UnitPrice: item.UnitPrice,
				Quantity:  item.Quantity,
				AddedAt:   now,
			})
		}
	}

	if err := s.save(ctx, sessionCart); err != nil {
		return nil, err
	}
	return s.respond(sessionCart, 0, false), nil
}

// ReplaceItems swaps the cart contents for the given lines wholesale.
// Reordering a historical order uses this to load its resolved lines.
func (s *Service) ReplaceItems(ctx context.Context, sessionID string, items []LineItem) (*CartResponse, error) {
	sessionCart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sessionCart.Clear()
	sessionCart.Items = append(sessionCart.Items, items...)

	if err := s.save(ctx, sessionCart); err != nil {
		return nil, err
	}
	return s.respond(sessionCart, 0, false), nil
}

// Items returns the raw lines of a session cart
func (s *Service) Items(ctx context.Context, sessionID string) ([]LineItem, error) {
	sessionCart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sessionCart.Items, nil
}

func (s *Service) respond(sessionCart *SessionCart, cashbackBalance int64, applyCashback bool) *CartResponse {
	return &CartResponse{
		SessionID: sessionCart.SessionID,
		Items:     sessionCart.Items,
		Totals:    ComputeTotals(sessionCart.Items, cashbackBalance, applyCashback, s.rules()),
		CreatedAt: sessionCart.CreatedAt,
		UpdatedAt: sessionCart.UpdatedAt,
	}
}

func (s *Service) load(ctx context.Context, sessionID string) (*SessionCart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required for cart access")
	}

	data, err := s.redisClient.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		now := time.Now().UTC()
		return &SessionCart{
			SessionID: sessionID,
			Items:     []LineItem{},
			CreatedAt: now,
			UpdatedAt: now,
		}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var sessionCart SessionCart
	if err := json.Unmarshal([]byte(data), &sessionCart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &sessionCart, nil
}

func (s *Service) save(ctx context.Context, sessionCart *SessionCart) error {
	sessionCart.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(sessionCart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	return s.redisClient.Set(ctx, cartKey(sessionCart.SessionID), data, cartTTL).Err()
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

func slugify(name string) string {
	out := make([]rune, 0, len(name))
	lastDash := true
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			out = append(out, r)
			lastDash = false
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
			lastDash = false
		default:
			if !lastDash {
				out = append(out, '-')
				lastDash = true
			}
		}
	}
	if len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	return string(out)
}
