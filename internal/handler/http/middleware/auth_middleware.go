package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bloghub/bloghub/internal/domain/entity"
	"github.com/bloghub/bloghub/internal/usecase"
	usecasecontract "github.com/bloghub/bloghub/internal/usecase/contract"
)

// AuthMiddleware is the access control gate: it extracts the bearer token,
// verifies signature and expiry, and resolves the subject against the user
// store. A missing token, a bad token and a deleted subject are all the
// same 401 to the caller; the distinct cause is logged server-side only.
func AuthMiddleware(jwtService usecase.JWTService, userUsecase usecasecontract.IUserUseCase, logger usecasecontract.IAppLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			logger.Debugf("auth: missing bearer token")
			abortUnauthenticated(c)
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims, err := jwtService.ParseAccessToken(tokenStr)
		if err != nil {
			logger.Debugf("auth: token rejected: %v", err)
			abortUnauthenticated(c)
			return
		}

		// Role comes from the live user record, not the token, so a stale
		// token cannot carry a revoked role and a deleted user cannot pass.
		user, err := userUsecase.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			logger.Debugf("auth: token subject %s not found: %v", claims.UserID, err)
			abortUnauthenticated(c)
			return
		}

		caller := entity.Caller{UserID: user.ID, Role: user.Role}
		c.Set("caller", caller)
		c.Set("userID", user.ID)
		c.Set("userRole", user.Role)
		c.Next()
	}
}

// RequireRole admits the request only when the caller's role is in the
// allowed set. It composes after AuthMiddleware, never before.
func RequireRole(roles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("caller")
		if !exists {
			abortUnauthenticated(c)
			return
		}
		caller := v.(entity.Caller)
		for _, role := range roles {
			if caller.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not authorized for this action"})
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
}
