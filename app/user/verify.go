package user

import (
	"errors"
	"net/http"

	"nullbyte/account-api/internal"
	"nullbyte/account-api/internal/model"
	"nullbyte/account-api/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func UserVerify(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, model.Failed("No verification token provided"))
		return
	}

	username, err := d.Verification.Verify(token)
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			c.JSON(http.StatusNotFound, model.Failed("Token not found"))
			return
		}

		c.JSON(http.StatusInternalServerError, model.Failed("Failed to verify account"))

		zap.L().Error("Failed to redeem verification token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	zap.L().Info("User verified", zap.String("username", username), zap.String("requestID", requestID))

	c.JSON(http.StatusOK, model.Success(nil))
}
