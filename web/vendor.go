package web

import (
	"net/http"
	"strconv"

	"vendorhub/models"
	"vendorhub/services"

	"github.com/gin-gonic/gin"
)

// requireVendorID resolves the vendor linked to the current vendor user.
func requireVendorID(c *gin.Context) (int64, bool) {
	id := vendorIDOf(currentUser(c))
	if id == 0 {
		respondError(c, http.StatusBadRequest, "vendor account not linked to a vendor record")
		return 0, false
	}
	return id, true
}

func (s *Server) handleVendorDashboard(c *gin.Context) {
	vendorID, ok := requireVendorID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	vendor, err := services.GetVendorByID(ctx, vendorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	menuItems, err := services.ListVendorMenu(ctx, vendorID, false)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	stockItems, err := services.ListVendorStock(ctx, vendorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"vendor":      vendor,
		"menu_items":  menuItems,
		"stock_items": stockItems,
		"menu_count":  len(menuItems),
		"stock_count": len(stockItems),
	})
}

func (s *Server) handleVendorMenu(c *gin.Context) {
	vendorID, ok := requireVendorID(c)
	if !ok {
		return
	}
	items, err := services.ListVendorMenu(c.Request.Context(), vendorID, false)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) handleVendorAddMenuItem(c *gin.Context) {
	vendorID, ok := requireVendorID(c)
	if !ok {
		return
	}
	var in models.MenuItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	item, err := services.AddMenuItem(c.Request.Context(), vendorID, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (s *Server) handleVendorUpdateMenuItem(c *gin.Context) {
	vendorID, ok := requireVendorID(c)
	if !ok {
		return
	}
	itemID, err := paramID(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid menu item id")
		return
	}
	var in models.MenuItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := services.UpdateMenuItem(c.Request.Context(), itemID, vendorID, in); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu item updated"})
}

type availabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

func (s *Server) handleVendorSetAvailability(c *gin.Context) {
	vendorID, ok := requireVendorID(c)
	if !ok {
		return
	}
	itemID, err := paramID(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid menu item id")
		return
	}
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := services.SetMenuItemAvailability(c.Request.Context(), itemID, vendorID, *req.IsAvailable); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability updated"})
}

func (s *Server) handleVendorDeleteMenuItem(c *gin.Context) {
	vendorID, ok := requireVendorID(c)
	if !ok {
		return
	}
	itemID, err := paramID(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid menu item id")
		return
	}
	if err := services.DeleteMenuItem(c.Request.Context(), itemID, vendorID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
}

func (s *Server) handleVendorStock(c *gin.Context) {
	vendorID, ok := requireVendorID(c)
	if !ok {
		return
	}
	items, err := services.ListVendorStock(c.Request.Context(), vendorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) handleVendorAddStock(c *gin.Context) {
	vendorID, ok := requireVendorID(c)
	if !ok {
		return
	}
	var in models.StockItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	item, err := services.CreateStockItem(c.Request.Context(), vendorID, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (s *Server) handleVendorStockTransaction(c *gin.Context) {
	vendorID, ok := requireVendorID(c)
	if !ok {
		return
	}
	var in models.StockTransactionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	t, err := services.ApplyStockTransaction(c.Request.Context(), vendorID, currentUser(c).ID, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (s *Server) handleVendorTransactions(c *gin.Context) {
	vendorID, ok := requireVendorID(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	list, err := services.ListStockTransactions(c.Request.Context(), vendorID, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) handleVendorOrders(c *gin.Context) {
	vendorID, ok := requireVendorID(c)
	if !ok {
		return
	}
	orders, err := services.ListVendorOrders(c.Request.Context(), vendorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) handleVendorOrder(c *gin.Context) {
	vendorID, ok := requireVendorID(c)
	if !ok {
		return
	}
	orderID, err := paramID(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid order id")
		return
	}
	ctx := c.Request.Context()
	order, err := services.GetOrder(ctx, orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if order.VendorID != vendorID {
		respondError(c, http.StatusForbidden, "access denied")
		return
	}
	history, err := services.GetOrderStatusHistory(ctx, orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "history": history})
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (s *Server) handleVendorOrderStatus(c *gin.Context) {
	orderID, err := paramID(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid order id")
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := services.UpdateOrderStatus(c.Request.Context(), orderID, req.Status, currentUser(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order status updated"})
}

func (s *Server) handleVendorAnalytics(c *gin.Context) {
	vendorID, ok := requireVendorID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	trend, err := services.GetVendorRevenueTrend(ctx, vendorID, 30)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	dist, err := services.GetVendorStatusDistribution(ctx, vendorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	topItems, err := services.GetVendorTopItems(ctx, vendorID, 5)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	peakHours, err := services.GetVendorPeakHours(ctx, vendorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"revenue_trend":       trend,
		"status_distribution": dist,
		"top_items":           topItems,
		"peak_hours":          peakHours,
	})
}
