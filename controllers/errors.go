package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"concord/apperrors"
	"concord/config"
)

// respondError maps typed errors to their status code. Anything unclassified
// is logged and answered with the uniform 500 body, leaking no details.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		// The error label is the status text, so author-only violations render
		// as Forbidden even though they are classified Unauthorized internally.
		status := appErr.Status()
		c.JSON(status, gin.H{"error": http.StatusText(status), "message": appErr.Message})
		return
	}

	config.Log.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Error("request failed")

	c.JSON(http.StatusInternalServerError, gin.H{"error": true, "message": "Internal server error"})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request", "message": message})
}
