// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/your-org/catering-backend/internal/domain/cashback"
	"github.com/your-org/catering-backend/internal/domain/menu"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Models in dependency order
	models := []interface{}{
		&menu.Category{},
		&menu.Item{},
		&cashback.Transaction{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// Menu indexes
		"CREATE INDEX IF NOT EXISTS idx_menu_categories_sort_active ON menu_categories(sort_order, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_menu_items_category_active ON menu_items(category_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_menu_items_slug ON menu_items(slug)",

		// Cashback ledger indexes; balance replay reads the whole history
		// for one contact in insertion order
		"CREATE INDEX IF NOT EXISTS idx_cashback_contact_created ON cashback_transactions(contact_id, created_at ASC)",
		"CREATE INDEX IF NOT EXISTS idx_cashback_order_id ON cashback_transactions(order_id)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts the starting catering menu
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedMenu(); err != nil {
		return fmt.Errorf("failed to seed menu: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedMenu creates the default catering categories and items. Prices stay
// aligned with the recommendation catalog.
func (m *Migration) seedMenu() error {
	log.Println("🍽️ Seeding catering menu...")

	categories := []menu.Category{
		{
			Name:        "Platters & Trays",
			Slug:        "platters-trays",
			Description: "Sub platters and party trays for groups",
			SortOrder:   1,
			IsActive:    true,
		},
		{
			Name:        "Boxed Lunches",
			Slug:        "boxed-lunches",
			Description: "Individually packed lunches for smaller groups",
			SortOrder:   2,
			IsActive:    true,
		},
		{
			Name:        "Sides & Salads",
			Slug:        "sides-salads",
			Description: "Salad trays, chips, and sides",
			SortOrder:   3,
			IsActive:    true,
		},
		{
			Name:        "Drinks & Desserts",
			Slug:        "drinks-desserts",
			Description: "Beverage packs and dessert trays",
			SortOrder:   4,
			IsActive:    true,
		},
	}

	categoryIDs := make(map[string]uint, len(categories))
	for _, category := range categories {
		var existing menu.Category
		result := m.db.Where("slug = ?", category.Slug).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&category).Error; err != nil {
				return err
			}
			categoryIDs[category.Slug] = category.ID
			log.Printf("✅ Created category: %s", category.Name)
		} else {
			categoryIDs[category.Slug] = existing.ID
			log.Printf("⏭️ Category already exists: %s", category.Name)
		}
	}

	items := []menu.Item{
		{
			CategoryID:  categoryIDs["platters-trays"],
			Name:        "Italian Sub Platter - Large Tray",
			Slug:        "italian-sub-platter-large-tray",
			Description: "Assorted Italian subs cut for sharing, large tray",
			Price:       8999,
			ServesMin:   intPtr(10),
			ServesMax:   intPtr(12),
			IsActive:    true,
		},
		{
			CategoryID:  categoryIDs["platters-trays"],
			Name:        "Italian Sub Platter - Regular Tray",
			Slug:        "italian-sub-platter-regular-tray",
			Description: "Assorted Italian subs cut for sharing, regular tray",
			Price:       4499,
			ServesMin:   intPtr(5),
			ServesMax:   intPtr(7),
			IsActive:    true,
		},
		{
			CategoryID:  categoryIDs["boxed-lunches"],
			Name:        "Boxed Lunch",
			Slug:        "boxed-lunch",
			Description: "Sandwich, chips, cookie, and a pickle in one box",
			Price:       1349,
			ServesMin:   intPtr(1),
			ServesMax:   intPtr(1),
			IsActive:    true,
		},
		{
			CategoryID:  categoryIDs["sides-salads"],
			Name:        "Garden Salad Tray",
			Slug:        "garden-salad-tray",
			Description: "Fresh garden salad tray with dressings on the side",
			Price:       3999,
			ServesMin:   intPtr(15),
			ServesMax:   intPtr(20),
			IsActive:    true,
		},
		{
			CategoryID:  categoryIDs["sides-salads"],
			Name:        "Chips Pack",
			Slug:        "chips-pack",
			Description: "Assorted bagged chips, eight per pack",
			Price:       1200,
			ServesMax:   intPtr(8),
			IsActive:    true,
		},
		{
			CategoryID:  categoryIDs["drinks-desserts"],
			Name:        "Drinks Pack",
			Slug:        "drinks-pack",
			Description: "Assorted bottled drinks, eight per pack",
			Price:       1599,
			ServesMax:   intPtr(8),
			IsActive:    true,
		},
		{
			CategoryID:  categoryIDs["drinks-desserts"],
			Name:        "Dessert Tray",
			Slug:        "dessert-tray",
			Description: "Cookie and brownie tray",
			Price:       3499,
			ServesMin:   intPtr(10),
			ServesMax:   intPtr(12),
			IsActive:    true,
		},
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}

		var existing menu.Item
		result := m.db.Where("slug = ?", item.Slug).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&item).Error; err != nil {
				log.Printf("⚠️ Failed to create menu item %s: %v", item.Slug, err)
			} else {
				log.Printf("✅ Created menu item: %s", item.Name)
			}
		} else {
			log.Printf("⏭️ Menu item already exists: %s", item.Name)
		}
	}

	return nil
}

// DropAllTables drops all tables (use with extreme caution)
func (m *Migration) DropAllTables() error {
	log.Println("⚠️ WARNING: Dropping all database tables...")

	// Reverse dependency order
	tables := []string{
		"cashback_transactions",
		"menu_items",
		"menu_categories",
	}

	for _, table := range tables {
		if err := m.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			log.Printf("⚠️ Failed to drop table %s: %v", table, err)
		} else {
			log.Printf("🗑️ Dropped table: %s", table)
		}
	}

	log.Println("✅ All tables dropped successfully")
	return nil
}

// GetTableInfo returns information about database tables
func (m *Migration) GetTableInfo() error {
	var tables []string

	if err := m.db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").Scan(&tables).Error; err != nil {
		return err
	}

	log.Println("📊 Database Tables Information:")
	for _, table := range tables {
		var count int64
		m.db.Table(table).Count(&count)
		log.Printf("%-25s | %d records", table, count)
	}

	return nil
}

func intPtr(v int) *int {
	return &v
}
