package services

import (
	"bytes"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
	"github.com/stripe/stripe-go/v80/webhook"
)

// StripeService wraps an explicitly constructed Stripe client. One instance
// is built at startup and shared read-only across requests.
type StripeService struct {
	api        *client.API
	webhookKey string
}

func NewStripeService(secretKey, webhookKey string) *StripeService {
	return &StripeService{
		api:        client.New(secretKey, nil),
		webhookKey: webhookKey,
	}
}

// CreateCheckoutSession creates a hosted checkout session. The side effect
// lives entirely in Stripe; nothing is persisted locally.
func (s *StripeService) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return s.api.CheckoutSessions.New(params)
}

// ParseWebhook verifies the Stripe-Signature header against the exact raw
// request bytes and returns the decoded event. The body is restored so later
// middleware can still read it.
func (s *StripeService) ParseWebhook(r *http.Request) (stripe.Event, error) {
	var event stripe.Event
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return event, err
	}
	r.Body = io.NopCloser(bytes.NewBuffer(payload))
	sigHeader := r.Header.Get("Stripe-Signature")
	return webhook.ConstructEvent(payload, sigHeader, s.webhookKey)
}
