package web

import (
	"net/http"

	"vendorhub/config"
	"vendorhub/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server holds the handler dependencies and builds the HTTP routes.
type Server struct {
	cfg *config.Config
	log *zap.Logger
}

func NewServer(cfg *config.Config, log *zap.Logger) *Server {
	return &Server{cfg: cfg, log: log}
}

// Router wires every route group behind the auth and role middleware.
func (s *Server) Router() *gin.Engine {
	if s.cfg.HTTP.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(s.log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/login", s.handleLogin)
	r.POST("/logout", s.handleLogout)
	r.POST("/register/buyer", s.handleRegisterBuyer)
	r.POST("/register/vendor", s.handleRegisterVendor)

	authed := r.Group("/", Auth(s.cfg.Auth.TokenSecret))
	authed.GET("/me", s.handleMe)

	buyer := authed.Group("/buyer", RequireRole(models.RoleBuyer))
	buyer.GET("/vendors", s.handleBrowseVendors)
	buyer.GET("/vendors/:id/menu", s.handleBrowseVendorMenu)
	buyer.GET("/cart", s.handleGetCart)
	buyer.POST("/cart/items", s.handleAddToCart)
	buyer.DELETE("/cart", s.handleClearCart)
	buyer.POST("/checkout", s.handleCheckout)
	buyer.GET("/orders", s.handleBuyerOrders)
	buyer.GET("/orders/:id", s.handleBuyerOrder)
	buyer.POST("/orders/:id/cancel", s.handleCancelOrder)

	vendor := authed.Group("/vendor", RequireRole(models.RoleVendor))
	vendor.GET("/dashboard", s.handleVendorDashboard)
	vendor.GET("/menu", s.handleVendorMenu)
	vendor.POST("/menu", s.handleVendorAddMenuItem)
	vendor.PUT("/menu/:id", s.handleVendorUpdateMenuItem)
	vendor.PATCH("/menu/:id/availability", s.handleVendorSetAvailability)
	vendor.DELETE("/menu/:id", s.handleVendorDeleteMenuItem)
	vendor.GET("/stock", s.handleVendorStock)
	vendor.POST("/stock", s.handleVendorAddStock)
	vendor.POST("/stock/transactions", s.handleVendorStockTransaction)
	vendor.GET("/stock/transactions", s.handleVendorTransactions)
	vendor.GET("/orders", s.handleVendorOrders)
	vendor.GET("/orders/:id", s.handleVendorOrder)
	vendor.PATCH("/orders/:id/status", s.handleVendorOrderStatus)
	vendor.GET("/analytics", s.handleVendorAnalytics)

	// Staff share the admin read surface and order handling but not
	// user or vendor administration.
	staff := authed.Group("/staff", RequireRole(models.RoleAdmin, models.RoleStaff))
	staff.GET("/orders", s.handleAdminOrders)
	staff.PATCH("/orders/:id/status", s.handleAdminOrderStatus)
	staff.GET("/stock", s.handleAdminStock)
	staff.GET("/stock/transactions", s.handleAdminTransactions)
	staff.GET("/menu", s.handleAdminMenu)

	admin := authed.Group("/admin", RequireRole(models.RoleAdmin))
	admin.GET("/dashboard", s.handleAdminDashboard)
	admin.GET("/vendors", s.handleAdminVendors)
	admin.GET("/vendors/pending", s.handleAdminPendingVendors)
	admin.GET("/vendors/:id", s.handleAdminVendorDetails)
	admin.POST("/vendors/:id/approve", s.handleAdminApproveVendor)
	admin.POST("/vendors/:id/reject", s.handleAdminRejectVendor)
	admin.PUT("/vendors/:id", s.handleAdminUpdateVendor)
	admin.POST("/vendors/:id/deactivate", s.handleAdminDeactivateVendor)
	admin.GET("/users", s.handleAdminUsers)
	admin.GET("/users/:id", s.handleAdminUserDetails)
	admin.PUT("/users/:id", s.handleAdminUpdateUser)
	admin.DELETE("/users/:id", s.handleAdminDeleteUser)
	admin.POST("/users/:id/reset-password", s.handleAdminResetPassword)
	admin.GET("/orders", s.handleAdminOrders)
	admin.PATCH("/orders/:id/status", s.handleAdminOrderStatus)
	admin.GET("/stock", s.handleAdminStock)
	admin.POST("/stock/transactions", s.handleAdminStockTransaction)
	admin.GET("/stock/transactions", s.handleAdminTransactions)
	admin.GET("/menu", s.handleAdminMenu)
	admin.GET("/reports", s.handleAdminReports)
	admin.GET("/reports/daily", s.handleAdminDailyStats)

	return r
}
