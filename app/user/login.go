package user

import (
	"net/http"
	"time"

	"nullbyte/account-api/internal"
	"nullbyte/account-api/internal/model"
	"nullbyte/account-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const authTokenTTL = time.Hour * 24

type loginBody struct {
	Login    string `json:"usr"`
	Password string `json:"pwd"`
}

func UserLogin(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, model.Failed("Invalid request body"))
		return
	}

	user, err := d.Store.FindByLogin(data.Login)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.Failed("Internal server error"))

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Same rejection for an empty login, a missing user and a wrong
	// password
	if user == nil {
		c.JSON(http.StatusUnauthorized, model.Failed("Invalid credentials"))
		return
	}

	ok, err := d.Argon.VerifyPasswd(data.Password, user.PasswordHash)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.Failed("Internal server error"))

		zap.L().Error("Failed to verify password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !ok {
		c.JSON(http.StatusUnauthorized, model.Failed("Invalid credentials"))
		return
	}

	authToken, err := security.MakeAuthToken(d.JWTSecret, user.ID, authTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.Failed("Internal server error"))

		zap.L().Error("Failed to mint auth token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.SetCookie("token", authToken, int(authTokenTTL.Seconds()), "/", "", viper.GetBool("host.ssl.enabled"), true)
	c.JSON(http.StatusOK, model.Success(gin.H{
		"userID": user.ID,
		"token":  authToken,
	}))
}
