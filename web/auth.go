package web

import (
	"net/http"
	"strconv"

	"vendorhub/models"
	"vendorhub/services"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "username and password are required")
		return
	}
	ctx := c.Request.Context()

	wait, err := services.LoginThrottleWaitSeconds(ctx, req.Username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if wait > 0 {
		c.Header("Retry-After", strconv.Itoa(wait))
		respondError(c, http.StatusTooManyRequests, "too many failed attempts, try again later")
		return
	}

	user, err := services.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		_ = services.RecordLoginFailed(ctx, req.Username)
		respondServiceError(c, err)
		return
	}
	_ = services.RecordLoginSuccess(ctx, req.Username)

	token, err := IssueToken(s.cfg.Auth.TokenSecret, s.cfg.Auth.TokenTTL, user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.SetCookie(authCookie, token, int(s.cfg.Auth.TokenTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (s *Server) handleLogout(c *gin.Context) {
	c.SetCookie(authCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (s *Server) handleRegisterBuyer(c *gin.Context) {
	var in models.RegisterBuyerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	user, err := services.RegisterBuyer(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"user":    user,
		"message": "registration successful, you can now log in and start ordering",
	})
}

func (s *Server) handleRegisterVendor(c *gin.Context) {
	var in models.RegisterVendorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	vendor, user, err := services.RegisterVendor(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"vendor":  vendor,
		"user":    user,
		"message": "vendor registration successful, wait for admin approval before selling",
	})
}

func (s *Server) handleMe(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}
