package web

import (
	"net/http"
	"strconv"
	"time"

	"vendorhub/models"
	"vendorhub/services"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleAdminDashboard(c *gin.Context) {
	stats, err := services.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleAdminVendors(c *gin.Context) {
	vendors, err := services.ListVendors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

func (s *Server) handleAdminPendingVendors(c *gin.Context) {
	vendors, err := services.ListPendingVendors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

func (s *Server) handleAdminVendorDetails(c *gin.Context) {
	vendorID, err := paramID(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid vendor id")
		return
	}
	vendor, err := services.GetVendorByID(c.Request.Context(), vendorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

func (s *Server) handleAdminApproveVendor(c *gin.Context) {
	vendorID, err := paramID(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid vendor id")
		return
	}
	if err := services.ApproveVendor(c.Request.Context(), vendorID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vendor approved"})
}

func (s *Server) handleAdminRejectVendor(c *gin.Context) {
	vendorID, err := paramID(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid vendor id")
		return
	}
	if err := services.RejectVendor(c.Request.Context(), vendorID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vendor rejected"})
}

func (s *Server) handleAdminUpdateVendor(c *gin.Context) {
	vendorID, err := paramID(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid vendor id")
		return
	}
	var in models.UpdateVendorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := services.UpdateVendor(c.Request.Context(), vendorID, in); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vendor updated"})
}

func (s *Server) handleAdminDeactivateVendor(c *gin.Context) {
	vendorID, err := paramID(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid vendor id")
		return
	}
	if err := services.DeactivateVendor(c.Request.Context(), vendorID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vendor deactivated"})
}

func (s *Server) handleAdminUsers(c *gin.Context) {
	users, err := services.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (s *Server) handleAdminUserDetails(c *gin.Context) {
	userID, err := paramID(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}
	user, err := services.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) handleAdminUpdateUser(c *gin.Context) {
	userID, err := paramID(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}
	var in models.UpdateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := services.UpdateUser(c.Request.Context(), userID, in); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated"})
}

func (s *Server) handleAdminDeleteUser(c *gin.Context) {
	userID, err := paramID(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}
	if err := services.DeleteUser(c.Request.Context(), userID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// handleAdminResetPassword generates a new password for a non-admin user and
// returns it once in the response. It is never logged.
func (s *Server) handleAdminResetPassword(c *gin.Context) {
	userID, err := paramID(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}
	plain, err := services.ResetPassword(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"password": plain})
}

func (s *Server) handleAdminOrders(c *gin.Context) {
	orders, err := services.ListAllOrders(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) handleAdminOrderStatus(c *gin.Context) {
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

func (s *Server) handleAdminStock(c *gin.Context) {
	items, err := services.ListAllStock(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) handleAdminStockTransaction(c *gin.Context) {
	var in models.StockTransactionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	t, err := services.ApplyStockTransaction(c.Request.Context(), 0, currentUser(c).ID, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (s *Server) handleAdminTransactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	vendorID, _ := strconv.ParseInt(c.DefaultQuery("vendor_id", "0"), 10, 64)
	list, err := services.ListStockTransactions(c.Request.Context(), vendorID, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) handleAdminMenu(c *gin.Context) {
	items, err := services.ListAllMenu(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// handleAdminReports bundles the full analytics set the way the reports page
// consumes it.
func (s *Server) handleAdminReports(c *gin.Context) {
	ctx := c.Request.Context()
	sales, err := services.GetSalesAnalytics(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	performance, err := services.GetVendorPerformanceReport(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	monthly, err := services.GetMonthlyTransactionSummary(ctx, 12)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	lowStock, err := services.LowStockItems(ctx, 0)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sales_analytics":      sales,
		"vendor_performance":   performance,
		"monthly_transactions": monthly,
		"low_stock_report":     lowStock,
	})
}

func (s *Server) handleAdminDailyStats(c *gin.Context) {
	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		respondError(c, http.StatusBadRequest, "date query parameter must be YYYY-MM-DD")
		return
	}
	stats, err := services.GetDailyStats(c.Request.Context(), date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
