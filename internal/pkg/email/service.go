// internal/pkg/email/service.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/your-org/catering-backend/internal/config"
)

// EmailService handles all email operations
type EmailService struct {
	config *config.Config
	client *http.Client
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SendEmail sends an email using the configured provider
func (s *EmailService) SendEmail(ctx context.Context, email *Email) error {
	switch s.config.Email.Provider {
	case "smtp":
		return s.sendSMTPEmail(email)
	case "resend":
		return s.sendResendEmail(ctx, email)
	default:
		return fmt.Errorf("unsupported email provider: %s", s.config.Email.Provider)
	}
}

// SendOTPEmail delivers a one-time passcode
func (s *EmailService) SendOTPEmail(ctx context.Context, to, code, expiry string) error {
	htmlContent, err := renderTemplate(otpTemplate, OTPEmailData{
		SiteName: s.config.Email.FromName,
		Code:     code,
		Expiry:   expiry,
	})
	if err != nil {
		return fmt.Errorf("failed to render OTP email template: %w", err)
	}

	return s.SendEmail(ctx, &Email{
		To:          []string{to},
		Subject:     fmt.Sprintf("Your %s verification code", s.config.Email.FromName),
		HTMLContent: htmlContent,
		Type:        EmailTypeOTP,
	})
}

// SendOrderConfirmationEmail sends the order confirmation receipt
func (s *EmailService) SendOrderConfirmationEmail(ctx context.Context, to string, data OrderConfirmationData) error {
	data.SiteName = s.config.Email.FromName

	htmlContent, err := renderTemplate(orderConfirmationTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render order confirmation template: %w", err)
	}

	return s.SendEmail(ctx, &Email{
		To:          []string{to},
		Subject:     fmt.Sprintf("Order Confirmation - %s", data.OrderNumber),
		HTMLContent: htmlContent,
		Type:        EmailTypeOrderConfirmation,
	})
}

func renderTemplate(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var otpTemplate = template.Must(template.New("otp").Parse(`
<h2>{{.SiteName}}</h2>
<p>Your verification code is:</p>
<h1 style="letter-spacing: 4px;">{{.Code}}</h1>
<p>This code expires in {{.Expiry}}. If you didn't request it, you can ignore this email.</p>
`))

var orderConfirmationTemplate = template.Must(template.New("order_confirmation").Parse(`
<h2>{{.SiteName}} - Order {{.OrderNumber}}</h2>
<p>Thanks for your order! Delivery is scheduled for {{.DeliveryDate}} at {{.DeliveryTime}}.</p>
<table cellpadding="4">
{{range .Items}}<tr><td>{{.Quantity}}×</td><td>{{.Name}}</td><td align="right">{{.Total}}</td></tr>
{{end}}</table>
<p>
Subtotal: {{.Subtotal}}<br>
Tax: {{.Tax}}<br>
Delivery fee: {{.DeliveryFee}}<br>
{{if .Discount}}Cashback applied: -{{.Discount}}<br>{{end}}
<strong>Total: {{.Total}}</strong>
</p>
{{if .CashbackEarned}}<p>You earned {{.CashbackEarned}} in cashback on this order.</p>{{end}}
`))
