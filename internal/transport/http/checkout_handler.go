package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/queries/list_orders"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/usecases/begin_checkout"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/usecases/place_order"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/usecases/save_shipping"
)

// CheckoutHandler serves the shipping, checkout, and order endpoints.
type CheckoutHandler struct {
	saveShipping  *save_shipping.Interactor
	beginCheckout *begin_checkout.Interactor
	placeOrder    *place_order.Interactor
	listOrders    *list_orders.Query

	// redirectDelay paces the client's transition to the payment step.
	// UX pacing only, not a correctness requirement.
	redirectDelay time.Duration
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(
	saveShipping *save_shipping.Interactor,
	beginCheckout *begin_checkout.Interactor,
	placeOrder *place_order.Interactor,
	listOrders *list_orders.Query,
	redirectDelay time.Duration,
) *CheckoutHandler {
	return &CheckoutHandler{
		saveShipping:  saveShipping,
		beginCheckout: beginCheckout,
		placeOrder:    placeOrder,
		listOrders:    listOrders,
		redirectDelay: redirectDelay,
	}
}

// RegisterRoutes registers the checkout and order routes.
func (h *CheckoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.PUT("/cart/shipping", h.SaveShipping)
	router.POST("/checkout", h.BeginCheckout)

	orders := router.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.POST("/:order_id/place", h.PlaceOrder)
	}
}

type shippingRequest struct {
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Country string `json:"country" binding:"required"`
	PinCode string `json:"pinCode" binding:"required"`
}

// SaveShipping handles PUT /cart/shipping.
func (h *CheckoutHandler) SaveShipping(c *gin.Context) {
	var req shippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.saveShipping.Execute(c.Request.Context(), &save_shipping.Request{
		SessionID: sessionID(c),
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Country:   req.Country,
		PinCode:   req.PinCode,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type checkoutResponse struct {
	OrderID         string `json:"orderId"`
	ClientSecret    string `json:"clientSecret"`
	RedirectAfterMs int64  `json:"redirectAfterMs"`
}

// BeginCheckout handles POST /checkout. Entering the shipping step with
// an empty cart redirects straight back to the cart view.
func (h *CheckoutHandler) BeginCheckout(c *gin.Context) {
	var req shippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.beginCheckout.Execute(c.Request.Context(), &begin_checkout.Request{
		SessionID: sessionID(c),
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Country:   req.Country,
		PinCode:   req.PinCode,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCartEmpty) {
			c.Redirect(http.StatusSeeOther, "/api/v1/cart")
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, checkoutResponse{
		OrderID:         resp.OrderID,
		ClientSecret:    resp.ClientSecret,
		RedirectAfterMs: h.redirectDelay.Milliseconds(),
	})
}

// PlaceOrder handles POST /orders/:order_id/place.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	err := h.placeOrder.Execute(c.Request.Context(), &place_order.Request{
		SessionID: sessionID(c),
		OrderID:   c.Param("order_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListOrders handles GET /orders.
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	result, err := h.listOrders.Execute(c.Request.Context(), &list_orders.Request{
		SessionID: sessionID(c),
		Status:    c.Query("status"),
		PageSize:  pageSize,
		Offset:    offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
