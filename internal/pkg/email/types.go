// internal/pkg/email/types.go
package email

// EmailType represents the type of email being sent
type EmailType string

const (
	EmailTypeOTP               EmailType = "otp"
	EmailTypeOrderConfirmation EmailType = "order_confirmation"
)

// Email represents an email message
type Email struct {
	To          []string  `json:"to"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"html_content"`
	Type        EmailType `json:"type"`
}

// OTPEmailData contains data for the passcode email
type OTPEmailData struct {
	SiteName string
	Code     string
	Expiry   string
}

// OrderConfirmationData contains data for the order confirmation email
type OrderConfirmationData struct {
	SiteName       string
	OrderNumber    string
	DeliveryDate   string
	DeliveryTime   string
	Items          []ConfirmationItem
	Subtotal       string
	Tax            string
	DeliveryFee    string
	Discount       string
	Total          string
	CashbackEarned string
}

// ConfirmationItem is one line of the confirmation email
type ConfirmationItem struct {
	Name     string
	Quantity int
	Total    string
}
