package models

import (
	"time"
)

const OrderStatusPaid = "paid"

// Address mirrors the shipping address Stripe collects at checkout.
type Address struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Order is the durable record of a completed checkout. It is keyed by the
// Stripe checkout session id, which makes webhook redeliveries idempotent:
// the same session always maps to the same row.
type Order struct {
	ID              string     `gorm:"primaryKey;type:varchar(255)" json:"id"`
	CustomerEmail   string     `gorm:"type:varchar(255)" json:"customerEmail,omitempty"`
	CustomerName    string     `gorm:"type:varchar(255)" json:"customerName,omitempty"`
	Amount          float64    `gorm:"not null" json:"amount"`
	Currency        string     `gorm:"type:varchar(10);not null" json:"currency"`
	Status          string     `gorm:"type:varchar(20);not null" json:"status"`
	Items           []CartItem `gorm:"serializer:json;type:jsonb" json:"items"`
	ShippingAddress *Address   `gorm:"serializer:json;type:jsonb" json:"shippingAddress,omitempty"`
	PaymentIntent   string     `gorm:"type:varchar(255)" json:"paymentIntent,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"-"`
}
