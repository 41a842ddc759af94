package handlers

import (
	"net/http"

	"crewledger/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health. It reports the latest snapshot from
// the background monitor rather than probing dependencies inline.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
