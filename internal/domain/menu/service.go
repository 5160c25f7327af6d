// internal/domain/menu/service.go
package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/your-org/catering-backend/internal/config"
	"github.com/your-org/catering-backend/internal/pkg/apperrors"
)

// menuCacheTTL keeps the read cache short so edits show up quickly
const menuCacheTTL = 5 * time.Minute

// Service handles menu catalog reads
type Service struct {
	db          *gorm.DB
	redisClient *redis.Client
	config      *config.Config
}

// NewService creates a new menu service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		db:          db,
		redisClient: redisClient,
		config:      cfg,
	}
}

// ListCategories returns active categories in display order
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if s.cacheGet(ctx, "menu:categories", &categories) {
		return categories, nil
	}

	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	s.cacheSet(ctx, "menu:categories", categories)
	return categories, nil
}

// ListItemsByCategory returns active items for one category
func (s *Service) ListItemsByCategory(ctx context.Context, categoryID uint) ([]Item, error) {
	key := fmt.Sprintf("menu:category:%d:items", categoryID)

	var items []Item
	if s.cacheGet(ctx, key, &items) {
		return items, nil
	}

	err := s.db.WithContext(ctx).
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	s.cacheSet(ctx, key, items)
	return items, nil
}

// GetItem fetches a single active item by id
func (s *Service) GetItem(ctx context.Context, itemID uint) (*Item, error) {
	var item Item
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", itemID, true).
		First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("menu item %d: %w", itemID, apperrors.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to load menu item: %w", err)
	}
	return &item, nil
}

// Cache helpers; failures fall through to the database silently

func (s *Service) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	data, err := s.redisClient.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(data), dest) == nil
}

func (s *Service) cacheSet(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.redisClient.Set(ctx, key, data, menuCacheTTL)
}
