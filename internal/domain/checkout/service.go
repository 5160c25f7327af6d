// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/your-org/catering-backend/internal/config"
	"github.com/your-org/catering-backend/internal/domain/cart"
	"github.com/your-org/catering-backend/internal/domain/cashback"
	"github.com/your-org/catering-backend/internal/domain/contact"
	"github.com/your-org/catering-backend/internal/infrastructure/crm"
	"github.com/your-org/catering-backend/internal/pkg/apperrors"
	"github.com/your-org/catering-backend/internal/pkg/email"
	"github.com/your-org/catering-backend/internal/pkg/money"
)

// Service handles order placement. Money-bearing writes (invoice,
// redemption, earn) fail loudly; confirmation email and invoice delivery are
// best-effort.
type Service struct {
	cartService     *cart.Service
	cashbackService *cashback.Service
	contactService  *contact.Service
	crmClient       *crm.Client
	emailService    *email.EmailService
	config          *config.Config
	logger          *logrus.Logger
}

// NewService creates a new checkout service
func NewService(cartService *cart.Service, cashbackService *cashback.Service,
	contactService *contact.Service, crmClient *crm.Client,
	emailService *email.EmailService, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		cartService:     cartService,
		cashbackService: cashbackService,
		contactService:  contactService,
		crmClient:       crmClient,
		emailService:    emailService,
		config:          cfg,
		logger:          logger,
	}
}

// PlaceOrderRequest represents the checkout submission
type PlaceOrderRequest struct {
	ApplyCashback   bool                     `json:"apply_cashback"`
	DeliveryDetails *contact.DeliveryDetails `json:"delivery_details" binding:"required"`
}

// Confirmation represents a completed checkout
type Confirmation struct {
	OrderNumber    string      `json:"order_number"`
	InvoiceID      string      `json:"invoice_id"`
	Items          []cart.LineItem `json:"items"`
	Totals         cart.Totals `json:"totals"`
	CashbackEarned int64       `json:"cashback_earned"`
	DeliveryDate   string      `json:"delivery_date"`
	DeliveryTime   string      `json:"delivery_time"`
	PlacedAt       time.Time   `json:"placed_at"`
}

// PlaceOrder turns the session cart into an invoice and opportunity at the
// CRM, settles cashback, and clears the cart. On upstream failure the cart is
// left intact so the caller can retry.
func (s *Service) PlaceOrder(ctx context.Context, contactID, sessionID string, req *PlaceOrderRequest) (*Confirmation, error) {
	if req.DeliveryDetails == nil {
		return nil, fmt.Errorf("delivery details are required: %w", apperrors.ErrInvalidInput)
	}
	if err := req.DeliveryDetails.Validate(); err != nil {
		return nil, err
	}

	items, err := s.cartService.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty: %w", apperrors.ErrInvalidInput)
	}

	balance, err := s.cashbackService.GetBalance(ctx, contactID)
	if err != nil {
		return nil, err
	}

	totals := cart.ComputeTotals(items, balance, req.ApplyCashback, cart.Rules{
		TaxRateBps:  s.config.Pricing.TaxRateBps,
		DeliveryFee: s.config.Pricing.DeliveryFee,
	})

	orderNumber := generateOrderNumber()

	// Money-bearing CRM writes fail loudly; the cart survives for a retry.
	invoiceID, err := s.crmClient.CreateInvoice(ctx, &crm.InvoicePayload{
		ContactID:   contactID,
		OrderNumber: orderNumber,
		Items:       invoiceLines(items),
		Subtotal:    totals.Subtotal,
		Tax:         totals.Tax,
		DeliveryFee: totals.DeliveryFee,
		Discount:    totals.CashbackDiscount,
		Total:       totals.Total,
		DueDate:     req.DeliveryDetails.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("invoice creation failed: %w", err)
	}

	if _, err := s.crmClient.CreateOpportunity(ctx, &crm.OpportunityPayload{
		ContactID:    contactID,
		Name:         fmt.Sprintf("Catering order %s", orderNumber),
		Amount:       totals.Total,
		Stage:        "order_placed",
		DeliveryDate: req.DeliveryDetails.Date,
	}); err != nil {
		return nil, fmt.Errorf("opportunity creation failed: %w", err)
	}

	if totals.CashbackDiscount > 0 {
		if err := s.cashbackService.RecordRedeemed(ctx, contactID, totals.CashbackDiscount, orderNumber, invoiceID); err != nil {
			return nil, err
		}
	}

	earned, err := s.cashbackService.RecordEarned(ctx, contactID, totals.Total, orderNumber, invoiceID)
	if err != nil {
		// Redemption and invoice already exist upstream; surface the earn
		// failure loudly rather than pretending the order failed.
		return nil, fmt.Errorf("cashback accrual failed: %w", err)
	}

	// Best-effort: invoice delivery and confirmation email
	if err := s.crmClient.SendInvoice(ctx, invoiceID); err != nil {
		s.logger.WithError(err).WithField("invoice_id", invoiceID).Warn("invoice delivery failed")
	}
	s.sendConfirmation(ctx, contactID, orderNumber, items, totals, earned, req.DeliveryDetails)

	if err := s.cartService.Clear(ctx, sessionID); err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).Warn("cart clear after checkout failed")
	}

	return &Confirmation{
		OrderNumber:    orderNumber,
		InvoiceID:      invoiceID,
		Items:          items,
		Totals:         totals,
		CashbackEarned: earned,
		DeliveryDate:   req.DeliveryDetails.Date,
		DeliveryTime:   req.DeliveryDetails.Time,
		PlacedAt:       time.Now().UTC(),
	}, nil
}

func (s *Service) sendConfirmation(ctx context.Context, contactID, orderNumber string,
	items []cart.LineItem, totals cart.Totals, earned int64, details *contact.DeliveryDetails) {
	profile, err := s.contactService.GetProfile(ctx, contactID)
	if err != nil || profile.Email == "" {
		return
	}

	data := email.OrderConfirmationData{
		OrderNumber:  orderNumber,
		DeliveryDate: details.Date,
		DeliveryTime: details.Time,
		Subtotal:     money.Format(totals.Subtotal),
		Tax:          money.Format(totals.Tax),
		DeliveryFee:  money.Format(totals.DeliveryFee),
		Total:        money.Format(totals.Total),
	}
	if totals.CashbackDiscount > 0 {
		data.Discount = money.Format(totals.CashbackDiscount)
	}
	if earned > 0 {
		data.CashbackEarned = money.Format(earned)
	}
	for _, item := range items {
		data.Items = append(data.Items, email.ConfirmationItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Total:    money.Format(item.UnitPrice * int64(item.Quantity)),
		})
	}

	if err := s.emailService.SendOrderConfirmationEmail(ctx, profile.Email, data); err != nil {
		s.logger.WithError(err).WithField("order_number", orderNumber).Warn("confirmation email failed")
	}
}

func invoiceLines(items []cart.LineItem) []crm.OrderLine {
	lines := make([]crm.OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, crm.OrderLine{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return lines
}

// generateOrderNumber formats CAT-YYYYMMDD-xxxxxx with a random suffix
func generateOrderNumber() string {
	suffix := strings.Split(uuid.NewString(), "-")[0][:6]
	return fmt.Sprintf("CAT-%s-%s", time.Now().UTC().Format("20060102"), strings.ToUpper(suffix))
}
