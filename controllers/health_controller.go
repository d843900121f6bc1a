package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var healthService HealthServiceInterface

func SetHealthService(service HealthServiceInterface) {
	healthService = service
}

// HealthCheck reports API, Firebase and Firestore status. GET /health
func HealthCheck(c *gin.Context) {
	firebaseStatus, firestoreStatus := healthService.Check(c.Request.Context())

	status := http.StatusOK
	if firebaseStatus != "ok" || firestoreStatus != "ok" {
		status = http.StatusInternalServerError
	}

	c.JSON(status, gin.H{
		"status":          "started",
		"firebaseStatus":  firebaseStatus,
		"firestoreStatus": firestoreStatus,
		"time":            time.Now().UTC().Format(time.RFC3339),
	})
}
