// internal/domain/contact/entity.go
package contact

import (
	"fmt"
	"strings"

	"github.com/your-org/catering-backend/internal/pkg/apperrors"
)

// DeliveryDetails is the delivery target for an ordering session. It is
// overwritten wholesale on each edit; partial-field merging is a UI concern.
type DeliveryDetails struct {
	Address             string `json:"address"`
	City                string `json:"city"`
	State               string `json:"state"`
	Zip                 string `json:"zip"`
	Date                string `json:"date"` // YYYY-MM-DD
	Time                string `json:"time"` // HH:MM
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// Validate rejects details that cannot address a delivery
func (d *DeliveryDetails) Validate() error {
	if strings.TrimSpace(d.Address) == "" {
		return fmt.Errorf("delivery address is required: %w", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(d.Date) == "" {
		return fmt.Errorf("delivery date is required: %w", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(d.Time) == "" {
		return fmt.Errorf("delivery time is required: %w", apperrors.ErrInvalidInput)
	}
	return nil
}

// Profile is the contact profile as exposed to the UI layer
type Profile struct {
	ContactID string `json:"contact_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}
