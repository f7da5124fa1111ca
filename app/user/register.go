package user

import (
	"errors"
	"net/http"

	"nullbyte/account-api/internal"
	"nullbyte/account-api/internal/model"
	"nullbyte/account-api/internal/service"
	"nullbyte/account-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerBody struct {
	Username        string  `json:"usr"`
	Password        string  `json:"pwd"`
	ConfirmPassword string  `json:"cpwd"`
	FirstName       *string `json:"fname"`
	LastName        *string `json:"lname"`
	Email           string  `json:"email"`
}

func UserRegister(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data registerBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, model.Failed("Invalid request body"))

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	id, err := d.Registration.Register(&service.RegisterInput{
		Username:        data.Username,
		Password:        data.Password,
		ConfirmPassword: data.ConfirmPassword,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
	})
	if err != nil {
		var validationErr *validators.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, model.Failed(validationErr.Message))

			zap.L().Debug("Rejected registration",
				zap.String("field", validationErr.Field),
				zap.String("requestID", requestID),
			)
			return
		}

		var conflictErr *service.ConflictError
		if errors.As(err, &conflictErr) {
			c.JSON(http.StatusBadRequest, model.Failed(conflictErr.Error()))
			return
		}

		c.JSON(http.StatusInternalServerError, model.Failed("Failed to register user"))

		zap.L().Error("Failed to register user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, model.Success(id))
}
