package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	MsgInvalidRequest = "Invalid request"
	MsgInternalError  = "Internal server error"
)

func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// BindJSON binds the request body into input. On failure it logs the
// offending fields and answers 400 with a generic message.
func BindJSON(c *gin.Context, op string, input interface{}) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		Logger(c).Warn("request validation failed",
			zap.String("op", op),
			zap.Strings("fields", FieldErrors(err)),
		)
		RespondWithError(c, http.StatusBadRequest, MsgInvalidRequest)
		return false
	}
	return true
}

// InternalError logs err under op and answers 500.
func InternalError(c *gin.Context, op string, err error) {
	Logger(c).Error("operation failed", zap.String("op", op), zap.Error(err))
	RespondWithError(c, http.StatusInternalServerError, MsgInternalError)
}
