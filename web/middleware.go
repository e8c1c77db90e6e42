package web

import (
	"net/http"
	"strings"
	"time"

	"vendorhub/models"
	"vendorhub/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	authCookie = "access_token"
	userCtxKey = "current_user"
)

// RequestLogger logs one structured line per request.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// Auth resolves the current user from the token cookie or an
// Authorization: Bearer header and rejects the request when absent or stale.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if cookie, err := c.Cookie(authCookie); err == nil {
			token = strings.TrimPrefix(cookie, "Bearer ")
		}
		if token == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				token = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if token == "" {
			respondError(c, http.StatusUnauthorized, "authentication required")
			return
		}
		userID, err := ParseToken(secret, token)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		user, err := services.GetUserByID(c.Request.Context(), userID)
		if err != nil || !user.IsActive {
			respondError(c, http.StatusUnauthorized, "authentication required")
			return
		}
		c.Set(userCtxKey, user)
		c.Next()
	}
}

// RequireRole allows only the listed roles past.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			respondError(c, http.StatusUnauthorized, "authentication required")
			return
		}
		for _, r := range roles {
			if user.Role == r {
				c.Next()
				return
			}
		}
		respondError(c, http.StatusForbidden, "access denied")
	}
}

func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}

// vendorIDOf returns the vendor id linked to a vendor-role user, 0 if none.
func vendorIDOf(u *models.User) int64 {
	if u == nil || u.VendorID == nil {
		return 0
	}
	return *u.VendorID
}
