package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ordering-service/models"
	"ordering-service/repository"

	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OrderService interface {
	RecordCompletedSession(ctx context.Context, sess *stripe.CheckoutSession) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
}

type orderService struct {
	repo   repository.OrderRepository
	logger *zap.Logger
}

func NewOrderService(repo repository.OrderRepository, logger *zap.Logger) OrderService {
	return &orderService{repo: repo, logger: logger}
}

// RecordCompletedSession converts a completed checkout session into the
// durable order record, keyed by the session id. Writing the same session
// twice overwrites with equivalent data, which keeps webhook redeliveries
// idempotent.
func (s *orderService) RecordCompletedSession(ctx context.Context, sess *stripe.CheckoutSession) (*models.Order, error) {
	order := &models.Order{
		ID:        sess.ID,
		Amount:    float64(sess.AmountTotal) / 100,
		Currency:  string(sess.Currency),
		Status:    models.OrderStatusPaid,
		Items:     s.itemsFromMetadata(sess),
		CreatedAt: time.Now().UTC(),
	}

	if sess.CustomerDetails != nil {
		order.CustomerEmail = sess.CustomerDetails.Email
		order.CustomerName = sess.CustomerDetails.Name
	}
	if sess.PaymentIntent != nil {
		order.PaymentIntent = sess.PaymentIntent.ID
	}
	if sess.ShippingDetails != nil && sess.ShippingDetails.Address != nil {
		a := sess.ShippingDetails.Address
		order.ShippingAddress = &models.Address{
			Line1:      a.Line1,
			Line2:      a.Line2,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
		}
	}

	if err := s.repo.Upsert(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// itemsFromMetadata recovers the cart attached at session creation. Missing
// or malformed metadata degrades to an empty item list: the payment is
// confirmed either way and the order record must not be lost over a data
// quality gap.
func (s *orderService) itemsFromMetadata(sess *stripe.CheckoutSession) []models.CartItem {
	raw, ok := sess.Metadata[CartMetadataKey]
	if !ok || raw == "" {
		s.logger.Warn("Checkout session has no cart metadata",
			zap.String("session_id", sess.ID),
		)
		return []models.CartItem{}
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warn("Malformed cart metadata, recording order with empty items",
			zap.String("session_id", sess.ID),
			zap.Error(err),
		)
		return []models.CartItem{}
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items
}
