package middleware

import (
	"net/http"
	"strings"

	"companion/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CtxAccountID     = "account_id"
	CtxRole          = "role"
	CtxPrimaryUserID = "primary_user_id"
)

func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "No token, authorization denied")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Token is not valid")
			c.Abort()
			return
		}

		accountID, err := uuid.Parse(claims.UserID)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Token is not valid")
			c.Abort()
			return
		}

		c.Set(CtxAccountID, accountID)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxPrimaryUserID, claims.PrimaryUserID)
		c.Next()
	}
}

// AccountID pulls the authenticated account out of the gin context.
// Routes behind JWTAuthMiddleware can rely on it being present.
func AccountID(c *gin.Context) uuid.UUID {
	id, _ := c.Get(CtxAccountID)
	accountID, _ := id.(uuid.UUID)
	return accountID
}
