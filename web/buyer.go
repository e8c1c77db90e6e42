package web

import (
	"net/http"
	"strconv"

	"vendorhub/services"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleBrowseVendors(c *gin.Context) {
	vendors, err := services.ListApprovedVendors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

func (s *Server) handleBrowseVendorMenu(c *gin.Context) {
	vendorID, err := paramID(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid vendor id")
		return
	}
	ctx := c.Request.Context()
	vendor, err := services.RequireApprovedVendor(ctx, vendorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	items, err := services.ListVendorMenu(ctx, vendorID, true)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendor": vendor, "menu_items": items})
}

func (s *Server) handleGetCart(c *gin.Context) {
	cart, err := services.GetCart(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

type cartAddRequest struct {
	MenuItemID int64 `json:"menu_item_id" binding:"required"`
	Qty        int   `json:"qty" binding:"required"`
}

func (s *Server) handleAddToCart(c *gin.Context) {
	var req cartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	cart, err := services.AddToCart(c.Request.Context(), currentUser(c).ID, req.MenuItemID, req.Qty)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (s *Server) handleClearCart(c *gin.Context) {
	if err := services.DeleteCart(c.Request.Context(), currentUser(c).ID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

type checkoutRequest struct {
	DeliveryAddress string `json:"delivery_address"`
	Notes           string `json:"notes"`
}

func (s *Server) handleCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	order, err := services.CheckoutCart(c.Request.Context(), currentUser(c).ID,
		req.DeliveryAddress, req.Notes, s.cfg.Delivery.FlatFee)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"order":   order,
		"message": "order placed successfully",
	})
}

func (s *Server) handleBuyerOrders(c *gin.Context) {
	orders, err := services.ListBuyerOrders(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) handleBuyerOrder(c *gin.Context) {
	orderID, err := paramID(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid order id")
		return
	}
	order, err := services.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if order.BuyerID != currentUser(c).ID {
		respondError(c, http.StatusForbidden, "access denied")
		return
	}
	c.JSON(http.StatusOK, order)
}

// handleCancelOrder lets a buyer cancel their own order while it is still pending.
func (s *Server) handleCancelOrder(c *gin.Context) {
	orderID, err := paramID(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid order id")
		return
	}
	if err := services.UpdateOrderStatus(c.Request.Context(), orderID, services.OrderStatusCancelled, currentUser(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order cancelled"})
}

func paramID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
