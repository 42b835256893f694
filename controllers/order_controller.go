package controllers

import (
	"errors"
	"net/http"

	"ordering-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderController struct {
	Orders services.OrderService
	Logger *zap.Logger
}

// GetOrder returns a persisted order by checkout session id. The success
// page polls this after Stripe redirects back.
func (oc *OrderController) GetOrder(c *gin.Context) {
	order, err := oc.Orders.GetOrder(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		oc.Logger.Error("Failed to load order", zap.String("order_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return
	}
	c.JSON(http.StatusOK, order)
}
