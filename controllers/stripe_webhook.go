package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"ordering-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

type WebhookController struct {
	Stripe *services.StripeService
	Orders services.OrderService
	Logger *zap.Logger
}

// StripeWebhook receives and dispatches Stripe webhook events. Signature
// problems are the only error responses; once an event verifies, the caller
// always gets a success acknowledgement so Stripe does not redeliver over
// local failures.
func (wc *WebhookController) StripeWebhook(c *gin.Context) {
	if c.GetHeader("Stripe-Signature") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No signature found"})
		return
	}

	event, err := wc.Stripe.ParseWebhook(c.Request)
	if err != nil {
		wc.Logger.Warn("Stripe webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		wc.handleCheckoutCompleted(c.Request.Context(), event)
	default:
		wc.Logger.Info("Unhandled webhook event type",
			zap.String("event_type", string(event.Type)),
			zap.String("event_id", event.ID),
		)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (wc *WebhookController) handleCheckoutCompleted(ctx context.Context, event stripe.Event) {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		wc.Logger.Error("Failed to unmarshal checkout session", zap.Error(err))
		return
	}

	order, err := wc.Orders.RecordCompletedSession(ctx, &sess)
	if err != nil {
		// Acknowledged anyway; a storage outage must not trigger a Stripe
		// retry storm. Surfaced through logs only.
		wc.Logger.Error("Failed to save order",
			zap.String("session_id", sess.ID),
			zap.Error(err),
		)
		return
	}

	wc.Logger.Info("Order saved",
		zap.String("order_id", order.ID),
		zap.Float64("amount", order.Amount),
		zap.String("currency", order.Currency),
	)
}
