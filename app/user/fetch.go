package user

import (
	"net/http"

	"nullbyte/account-api/internal"
	"nullbyte/account-api/internal/model"

	"github.com/gin-gonic/gin"
)

// UserFetch returns the account the auth middleware attached to the
// request context
func UserFetch(c *gin.Context, d *internal.Deps) {
	user := c.MustGet("user").(*model.User)

	c.JSON(http.StatusOK, model.Success(user))
}
