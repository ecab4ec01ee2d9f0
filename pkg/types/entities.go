package types

import (
	"errors"
	"time"
)

// Customer statuses.
const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
)

// validCustomerStatuses is the set of recognized customer status values.
var validCustomerStatuses = map[string]bool{
	CustomerStatusActive:   true,
	CustomerStatusInactive: true,
}

// Entity field errors.
var (
	ErrInvalidStatus = errors.New("invalid status value")
	ErrInvalidStock  = errors.New("stock must not be negative")
)

// Customer is one entry of the customers list.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// SetStatus sets the customer status. Returns ErrInvalidStatus for values
// outside the recognized set. Idempotent on the current status.
func (c *Customer) SetStatus(status string) error {
	if !validCustomerStatuses[status] {
		return ErrInvalidStatus
	}
	c.Status = status
	return nil
}

// Product is a sellable item with its inventory count.
type Product struct {
	ID          string `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents"`
	Currency    string `json:"currency"`
	Stock       int    `json:"stock"`
	Status      string `json:"status"`
}

// Restock adjusts the stock count by delta (negative to deduct). Returns
// ErrInvalidStock if the result would go below zero; stock is unchanged then.
func (p *Product) Restock(delta int) error {
	if p.Stock+delta < 0 {
		return ErrInvalidStock
	}
	p.Stock += delta
	return nil
}

// Discount is a percentage promotion active within a date window.
type Discount struct {
	ID       string    `json:"id"`
	Code     string    `json:"code"`
	Percent  float64   `json:"percent"`
	StartsAt time.Time `json:"starts_at,omitzero"`
	EndsAt   time.Time `json:"ends_at,omitzero"`
	Active   bool      `json:"active"`
}

// GiftCard is a prepaid balance redeemable at checkout.
type GiftCard struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	BalanceCents int64     `json:"balance_cents"`
	Currency     string    `json:"currency"`
	ExpiresAt    time.Time `json:"expires_at,omitzero"`
	Disabled     bool      `json:"disabled"`
}

// Invoice is a billing document issued for one order.
type Invoice struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	TotalCents int64     `json:"total_cents"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	IssuedAt   time.Time `json:"issued_at,omitzero"`
}

// LoyaltyEntry is one customer's standing in the loyalty program.
type LoyaltyEntry struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Points     int    `json:"points"`
	Tier       string `json:"tier"`
}

// ReturnRequest is a customer's request to return items from an order.
type ReturnRequest struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	Reason      string    `json:"reason,omitempty"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requested_at,omitzero"`
}

// ShippingZone groups destination countries under one flat rate.
type ShippingZone struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Countries []string `json:"countries"`
	RateCents int64    `json:"rate_cents"`
}

// Carrier is a shipping carrier with its tracking link template.
type Carrier struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TrackingURL string `json:"tracking_url,omitempty"`
	Enabled     bool   `json:"enabled"`
}

// Order is a placed order as shown on the orders page.
type Order struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
	Currency   string    `json:"currency"`
	Tracking   string    `json:"tracking,omitempty"`
	PlacedAt   time.Time `json:"placed_at,omitzero"`
}
