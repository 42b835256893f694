package models

// CartItem is a single line of the client-supplied cart. Prices are in major
// currency units (euros), quantities are whole items. The cart is never
// persisted directly; it rides along as checkout-session metadata.
type CartItem struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int64   `json:"quantity" validate:"required,gte=1"`
	Image    string  `json:"image,omitempty"`
}

// CheckoutRequest is the body of POST /api/checkout.
type CheckoutRequest struct {
	Cart []CartItem `json:"cart"`
}

// CheckoutResponse carries the Stripe session id and hosted checkout URL.
type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}
