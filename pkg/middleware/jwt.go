package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"nullbyte/account-api/internal/model"
	"nullbyte/account-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewJWTMiddleware guards a route group with the session token. The
// token comes from the "token" cookie, falling back to a bearer
// Authorization header. On success the full account is attached to the
// request context under "user".
//
// Signature, expiry and malformed-subject failures all collapse into
// the same "Invalid token" rejection so callers can't probe which
// sub-check tripped.
func NewJWTMiddleware(s *store.AccountStore, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		tokenStr := extractToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.Failed("Token not provided"))
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
			}

			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.Failed("Invalid token"))

			zap.L().Debug("Rejected auth token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.Failed("Invalid token"))
			return
		}

		userID, err := uuid.Parse(sub)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.Failed("Invalid token"))
			return
		}

		user, err := s.FindByID(userID.String())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, model.Failed("Internal server error"))

			zap.L().Error("Failed to fetch user behind auth token",
				zap.Error(err),
				zap.String("requestID", requestID),
			)
			return
		}

		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				model.Failed("The user belonging to this token no longer exists"))
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie
	}

	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}

	return ""
}
