// Package http holds the gin REST transport for the storefront
// checkout service.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/coupon"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/queries/get_cart"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/usecases/add_item"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/usecases/decrement_item"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/usecases/increment_item"
	"github.com/light-bringer/storefront-checkout/internal/app/cart/usecases/remove_item"
)

// CartHandler serves the cart and coupon endpoints.
type CartHandler struct {
	addItem       *add_item.Interactor
	incrementItem *increment_item.Interactor
	decrementItem *decrement_item.Interactor
	removeItem    *remove_item.Interactor
	getCart       *get_cart.Query
	coupons       *coupon.Registry
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(
	addItem *add_item.Interactor,
	incrementItem *increment_item.Interactor,
	decrementItem *decrement_item.Interactor,
	removeItem *remove_item.Interactor,
	getCart *get_cart.Query,
	coupons *coupon.Registry,
) *CartHandler {
	return &CartHandler{
		addItem:       addItem,
		incrementItem: incrementItem,
		decrementItem: decrementItem,
		removeItem:    removeItem,
		getCart:       getCart,
		coupons:       coupons,
	}
}

// RegisterRoutes registers the cart routes.
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddItem)
		cart.POST("/items/:product_id/increment", h.IncrementItem)
		cart.POST("/items/:product_id/decrement", h.DecrementItem)
		cart.DELETE("/items/:product_id", h.RemoveItem)
		cart.PUT("/coupon", h.EnterCoupon)
		cart.GET("/coupon", h.CouponStatus)
		cart.DELETE("/coupon", h.LeaveCouponEntry)
	}
}

type addItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name"`
	Photo     string  `json:"photo"`
	Price     float64 `json:"price"`
	Stock     int64   `json:"stock"`
	Quantity  int64   `json:"quantity"`
}

type itemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Photo     string  `json:"photo"`
	Price     float64 `json:"price"`
	Stock     int64   `json:"stock"`
	Quantity  int64   `json:"quantity"`
}

type cartResponse struct {
	Items           []itemResponse        `json:"items"`
	Subtotal        float64               `json:"subtotal"`
	Tax             float64               `json:"tax"`
	ShippingCharges float64               `json:"shippingCharges"`
	Discount        float64               `json:"discount"`
	Total           float64               `json:"total"`
	ShippingInfo    *shippingInfoResponse `json:"shippingInfo,omitempty"`
}

type shippingInfoResponse struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	PinCode string `json:"pinCode"`
}

// GetCart handles GET /cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	view, err := h.getCart.Execute(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewToResponse(view))
}

// AddItem handles POST /cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.addItem.Execute(c.Request.Context(), &add_item.Request{
		SessionID: sessionID(c),
		ProductID: req.ProductID,
		Name:      req.Name,
		Photo:     req.Photo,
		Price:     req.Price,
		Stock:     req.Stock,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondWithCart(c)
}

// IncrementItem handles POST /cart/items/:product_id/increment.
func (h *CartHandler) IncrementItem(c *gin.Context) {
	_, err := h.incrementItem.Execute(c.Request.Context(), &increment_item.Request{
		SessionID: sessionID(c),
		ProductID: c.Param("product_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondWithCart(c)
}

// DecrementItem handles POST /cart/items/:product_id/decrement.
func (h *CartHandler) DecrementItem(c *gin.Context) {
	_, err := h.decrementItem.Execute(c.Request.Context(), &decrement_item.Request{
		SessionID: sessionID(c),
		ProductID: c.Param("product_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondWithCart(c)
}

// RemoveItem handles DELETE /cart/items/:product_id.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	_, err := h.removeItem.Execute(c.Request.Context(), &remove_item.Request{
		SessionID: sessionID(c),
		ProductID: c.Param("product_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondWithCart(c)
}

type couponRequest struct {
	Code string `json:"code"`
}

type couponStatusResponse struct {
	Code     string  `json:"code"`
	State    string  `json:"state"`
	Discount float64 `json:"discount"`
}

// EnterCoupon handles PUT /cart/coupon. Each call models one keystroke:
// the resolver debounces and validates the latest code only.
func (h *CartHandler) EnterCoupon(c *gin.Context) {
	var req couponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resolver, err := h.coupons.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resolver.Input(req.Code)
	c.JSON(http.StatusAccepted, gin.H{"state": coupon.Pending.String()})
}

// CouponStatus handles GET /cart/coupon.
func (h *CartHandler) CouponStatus(c *gin.Context) {
	resolver, err := h.coupons.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	state, discount := resolver.Status()
	c.JSON(http.StatusOK, couponStatusResponse{
		Code:     resolver.Code(),
		State:    state.String(),
		Discount: discount.Float64(),
	})
}

// LeaveCouponEntry handles DELETE /cart/coupon. It mirrors leaving the
// cart view: pending validation is cancelled with no side effects.
func (h *CartHandler) LeaveCouponEntry(c *gin.Context) {
	h.coupons.Release(sessionID(c))
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) respondWithCart(c *gin.Context) {
	view, err := h.getCart.Execute(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewToResponse(view))
}

func viewToResponse(view *get_cart.CartView) cartResponse {
	resp := cartResponse{
		Items:           make([]itemResponse, 0, len(view.Items)),
		Subtotal:        view.Subtotal,
		Tax:             view.Tax,
		ShippingCharges: view.ShippingCharges,
		Discount:        view.Discount,
		Total:           view.Total,
	}
	for _, item := range view.Items {
		resp.Items = append(resp.Items, itemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Photo:     item.Photo,
			Price:     item.Price,
			Stock:     item.Stock,
			Quantity:  item.Quantity,
		})
	}
	if view.ShippingInfo != nil {
		resp.ShippingInfo = &shippingInfoResponse{
			Address: view.ShippingInfo.Address,
			City:    view.ShippingInfo.City,
			State:   view.ShippingInfo.State,
			Country: view.ShippingInfo.Country,
			PinCode: view.ShippingInfo.PinCode,
		}
	}
	return resp
}
