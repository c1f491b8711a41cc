package httpserver

import (
	"github.com/gin-gonic/gin"

	"linkylink/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Linky Link is up"
	HealthVersion = "1.0.0"
	ServiceName   = "linkylink"
)

func (srv HTTPServer) healthBody(status string) gin.H {
	return gin.H{
		"status":      status,
		"message":     HealthMessage,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the service is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.healthBody("healthy"))
}

// readyCheck reports ready once routes are mapped; the generate-link API is
// not probed.
// @Summary Readiness Check
// @Description Check if the service is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.healthBody("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.healthBody("alive"))
}
