// internal/infrastructure/crm/types.go
package crm

import "time"

// Contact is the canonical CRM contact record
type Contact struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}

// OrderLine is one line of a historical order as the CRM reports it. Fee
// pseudo-lines (e.g. "Delivery Fee") appear here alongside real products.
type OrderLine struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"` // cents
}

// Order is the canonical historical order. Every upstream response shape is
// normalized into this before it reaches domain code.
type Order struct {
	ID              string      `json:"id"`
	OrderNumber     string      `json:"order_number"`
	ContactID       string      `json:"contact_id"`
	Items           []OrderLine `json:"items"`
	Total           int64       `json:"total"` // cents, as stored upstream
	DeliveryAddress string      `json:"delivery_address"`
	DeliveryCity    string      `json:"delivery_city"`
	DeliveryState   string      `json:"delivery_state"`
	DeliveryZip     string      `json:"delivery_zip"`
	DeliveryDate    string      `json:"delivery_date"`
	DeliveryTime    string      `json:"delivery_time"`
	CreatedAt       time.Time   `json:"created_at"`
}

// InvoicePayload is the invoice-creation request sent to the gateway
type InvoicePayload struct {
	ContactID   string      `json:"contact_id"`
	OrderNumber string      `json:"order_number"`
	Items       []OrderLine `json:"items"`
	Subtotal    int64       `json:"subtotal"`
	Tax         int64       `json:"tax"`
	DeliveryFee int64       `json:"delivery_fee"`
	Discount    int64       `json:"discount"`
	Total       int64       `json:"total"`
	DueDate     string      `json:"due_date,omitempty"`
}

// OpportunityPayload is the opportunity-creation request sent to the gateway
type OpportunityPayload struct {
	ContactID    string `json:"contact_id"`
	Name         string `json:"name"`
	Amount       int64  `json:"amount"`
	Stage        string `json:"stage"`
	DeliveryDate string `json:"delivery_date,omitempty"`
}

// ContactAddress is the wholesale address update sent to the gateway
type ContactAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}
