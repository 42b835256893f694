package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ordering-service/controllers"
	"ordering-service/models"
	"ordering-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func orderRouter(orders services.OrderService) *gin.Engine {
	r := gin.New()
	oc := &controllers.OrderController{Orders: orders, Logger: zap.NewNop()}
	r.GET("/api/orders/:id", oc.GetOrder)
	return r
}

func TestGetOrder_ReturnsOrderJSON(t *testing.T) {
	orders := &mockOrderService{orders: map[string]*models.Order{
		"cs_test_1": {
			ID:       "cs_test_1",
			Amount:   9.00,
			Currency: "eur",
			Status:   models.OrderStatusPaid,
			Items:    []models.CartItem{{ID: "a", Name: "Latte", Price: 4.5, Quantity: 2}},
		},
	}}
	r := orderRouter(orders)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders/cs_test_1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var order models.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "cs_test_1", order.ID)
	assert.Equal(t, 9.00, order.Amount)
	assert.Equal(t, "paid", order.Status)
	assert.Len(t, order.Items, 1)
}

func TestGetOrder_NotFoundResponse(t *testing.T) {
	r := orderRouter(&mockOrderService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders/cs_unknown", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Order not found"}`, w.Body.String())
}
