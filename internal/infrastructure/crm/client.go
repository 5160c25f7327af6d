// internal/infrastructure/crm/client.go
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/your-org/catering-backend/internal/config"
	"github.com/your-org/catering-backend/internal/pkg/apperrors"
)

// Client talks to the workflow-automation webhook gateway that proxies the
// CRM. All calls are plain JSON over POST/GET against the configured base
// URL. A missing base URL fails the operation, not the process.
type Client struct {
	config     *config.Config
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates a new CRM gateway client
func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.CRM.Timeout},
		logger:     logger,
	}
}

// SearchContact looks up a contact by phone or email
func (c *Client) SearchContact(ctx context.Context, query string) (*Contact, error) {
	var result struct {
		Contact  *Contact  `json:"contact"`
		Contacts []Contact `json:"contacts"`
		Data     *Contact  `json:"data"`
	}
	endpoint := "/contacts/search?q=" + url.QueryEscape(query)
	if err := c.get(ctx, endpoint, &result); err != nil {
		return nil, err
	}

	switch {
	case result.Contact != nil:
		return result.Contact, nil
	case len(result.Contacts) > 0:
		return &result.Contacts[0], nil
	case result.Data != nil && result.Data.ID != "":
		return result.Data, nil
	}
	return nil, fmt.Errorf("contact %q: %w", query, apperrors.ErrNotFound)
}

// CreateContact creates a new contact record
func (c *Client) CreateContact(ctx context.Context, contact *Contact) (*Contact, error) {
	var result struct {
		Contact *Contact `json:"contact"`
		Data    *Contact `json:"data"`
	}
	if err := c.post(ctx, "/contacts", contact, &result); err != nil {
		return nil, err
	}
	if result.Contact != nil {
		return result.Contact, nil
	}
	if result.Data != nil {
		return result.Data, nil
	}
	return nil, fmt.Errorf("contact creation returned no contact")
}

// GetContactProfile fetches a contact by id
func (c *Client) GetContactProfile(ctx context.Context, contactID string) (*Contact, error) {
	var result struct {
		Contact *Contact `json:"contact"`
		Data    *Contact `json:"data"`
	}
	if err := c.get(ctx, "/contacts/"+url.PathEscape(contactID), &result); err != nil {
		return nil, err
	}
	if result.Contact != nil {
		return result.Contact, nil
	}
	if result.Data != nil && result.Data.ID != "" {
		return result.Data, nil
	}
	return nil, fmt.Errorf("contact %s: %w", contactID, apperrors.ErrNotFound)
}

// UpdateContactAddress overwrites a contact's delivery address wholesale
func (c *Client) UpdateContactAddress(ctx context.Context, contactID string, address *ContactAddress) error {
	return c.post(ctx, "/contacts/"+url.PathEscape(contactID)+"/address", address, nil)
}

// UpdateContactProfile updates arbitrary profile fields
func (c *Client) UpdateContactProfile(ctx context.Context, contactID string, fields map[string]string) error {
	return c.post(ctx, "/contacts/"+url.PathEscape(contactID)+"/profile", fields, nil)
}

// GetOrdersByContactID fetches a contact's order history. This read degrades
// gracefully: any transport or decoding failure yields an empty list so the
// caller can proceed as if the customer had no history.
func (c *Client) GetOrdersByContactID(ctx context.Context, contactID string) []Order {
	raw, err := c.getRaw(ctx, "/orders?contact_id="+url.QueryEscape(contactID))
	if err != nil {
		c.logger.WithError(err).WithField("contact_id", contactID).
			Warn("order history fetch failed, returning empty list")
		return []Order{}
	}

	orders, err := NormalizeOrders(raw)
	if err != nil {
		c.logger.WithError(err).WithField("contact_id", contactID).
			Warn("order history normalization failed, returning empty list")
		return []Order{}
	}
	return orders
}

// CreateInvoice creates an invoice and returns its id
func (c *Client) CreateInvoice(ctx context.Context, payload *InvoicePayload) (string, error) {
	var result struct {
		ID   string `json:"id"`
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := c.post(ctx, "/invoices", payload, &result); err != nil {
		return "", err
	}
	if result.ID != "" {
		return result.ID, nil
	}
	return result.Data.ID, nil
}

// SendInvoice asks the CRM to deliver an invoice to the customer
func (c *Client) SendInvoice(ctx context.Context, invoiceID string) error {
	return c.post(ctx, "/invoices/"+url.PathEscape(invoiceID)+"/send", nil, nil)
}

// CreateOpportunity records a sales opportunity for the order
func (c *Client) CreateOpportunity(ctx context.Context, payload *OpportunityPayload) (string, error) {
	var result struct {
		ID   string `json:"id"`
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := c.post(ctx, "/opportunities", payload, &result); err != nil {
		return "", err
	}
	if result.ID != "" {
		return result.ID, nil
	}
	return result.Data.ID, nil
}

// SyncCashbackBalance pushes a contact's derived balance to the marketing
// system. Callers treat failures as warnings, never as rollbacks.
func (c *Client) SyncCashbackBalance(ctx context.Context, contactID string, balance int64) error {
	if c.config.CRM.MarketingURL == "" {
		return fmt.Errorf("marketing sync URL not configured: %w", apperrors.ErrUpstreamUnavailable)
	}

	body, err := json.Marshal(map[string]interface{}{
		"contact_id": contactID,
		"balance":    balance,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal balance sync: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.CRM.MarketingURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create balance sync request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("balance sync failed: %w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("balance sync returned status %d: %w", resp.StatusCode, apperrors.ErrUpstreamUnavailable)
	}
	return nil
}

// Transport helpers

func (c *Client) post(ctx context.Context, endpoint string, payload, result interface{}) error {
	base, err := c.baseURL()
	if err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request for %s: %w", endpoint, err)
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", endpoint, err)
	}
	c.setHeaders(req)

	return c.do(req, endpoint, result)
}

func (c *Client) get(ctx context.Context, endpoint string, result interface{}) error {
	raw, err := c.getRaw(ctx, endpoint)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
	}
	return nil
}

func (c *Client) getRaw(ctx context.Context, endpoint string) ([]byte, error) {
	base, err := c.baseURL()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", endpoint, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request to %s failed: %w: %v", endpoint, apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("gateway resource %s: %w", endpoint, apperrors.ErrNotFound)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway returned status %d for %s: %w", resp.StatusCode, endpoint, apperrors.ErrUpstreamUnavailable)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) do(req *http.Request, endpoint string, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request to %s failed: %w: %v", endpoint, apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("gateway resource %s: %w", endpoint, apperrors.ErrNotFound)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("gateway returned status %d for %s: %w", resp.StatusCode, endpoint, apperrors.ErrUpstreamUnavailable)
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.config.CRM.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.CRM.APIKey)
	}
}

func (c *Client) baseURL() (string, error) {
	if c.config.CRM.BaseURL == "" {
		return "", fmt.Errorf("CRM webhook base URL not configured: %w", apperrors.ErrUpstreamUnavailable)
	}
	return c.config.CRM.BaseURL, nil
}
