package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusOf maps an error kind to its HTTP status code.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConflict, KindPersistence:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err as {"error": "<message>"} with its mapped status.
func WriteError(c *gin.Context, err error) {
	Write(c, StatusOf(err), err.Error())
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
