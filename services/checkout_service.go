package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"ordering-service/models"

	"github.com/go-playground/validator/v10"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

// CartMetadataKey is the session metadata key carrying the serialized cart.
// Stripe does not echo line items back on completion in a reconstructable
// form, so the cart rides along as opaque metadata and is recovered by the
// webhook handler.
const CartMetadataKey = "cartItems"

// SessionCreator is the slice of StripeService the checkout flow needs.
type SessionCreator interface {
	CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// CheckoutConfig holds the fixed parameters applied to every session.
type CheckoutConfig struct {
	Currency          string
	BaseURL           string
	FrontendURL       string
	ShippingCountries []string
}

type CheckoutService interface {
	CreateSession(ctx context.Context, cart []models.CartItem) (*models.CheckoutResponse, error)
}

type checkoutService struct {
	stripe   SessionCreator
	cfg      CheckoutConfig
	validate *validator.Validate
	logger   *zap.Logger
}

func NewCheckoutService(stripe SessionCreator, cfg CheckoutConfig, logger *zap.Logger) CheckoutService {
	return &checkoutService{
		stripe:   stripe,
		cfg:      cfg,
		validate: validator.New(),
		logger:   logger,
	}
}

// CreateSession validates the cart, builds Stripe line items in minor units
// and creates the hosted checkout session with the cart attached as metadata.
func (s *checkoutService) CreateSession(ctx context.Context, cart []models.CartItem) (*models.CheckoutResponse, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}
	for i := range cart {
		if err := s.validate.Struct(&cart[i]); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrInvalidCart, i, err)
		}
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(cart))
	for _, item := range cart {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Image != "" {
			product.Images = stripe.StringSlice([]string{s.imageURL(item.Image)})
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(s.cfg.Currency),
				ProductData: product,
				UnitAmount:  stripe.Int64(ToMinorUnits(item.Price)),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	// Serialized exactly as received so the webhook can rebuild the order.
	cartJSON, err := json.Marshal(cart)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCart, err)
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(s.cfg.FrontendURL + "/order/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:          stripe.String(s.cfg.FrontendURL + "/menu"),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(s.cfg.ShippingCountries),
		},
		AllowPromotionCodes: stripe.Bool(true),
	}
	params.Context = ctx
	params.AddMetadata(CartMetadataKey, string(cartJSON))

	sess, err := s.stripe.CreateCheckoutSession(params)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Checkout session created",
		zap.String("session_id", sess.ID),
		zap.Int("items", len(cart)),
	)
	return &models.CheckoutResponse{SessionID: sess.ID, URL: sess.URL}, nil
}

// ToMinorUnits converts a major-unit price to Stripe's smallest-denomination
// integer, rounding half up. Display prices carry at most two decimals.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (s *checkoutService) imageURL(image string) string {
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	return strings.TrimSuffix(s.cfg.BaseURL, "/") + "/" + strings.TrimPrefix(image, "/")
}
