package controllers

import (
	"errors"
	"net/http"

	"ordering-service/models"
	"ordering-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CheckoutController struct {
	Checkout services.CheckoutService
	Logger   *zap.Logger
}

// CreateCheckoutSession builds a Stripe Checkout session for the submitted
// cart and returns the hosted redirect URL. Nothing is persisted locally;
// the order record is written later by the webhook handler.
func (cc *CheckoutController) CreateCheckoutSession(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	resp, err := cc.Checkout.CreateSession(c.Request.Context(), req.Cart)
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
	case errors.Is(err, services.ErrInvalidCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		cc.Logger.Error("Stripe checkout error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, resp)
	}
}
