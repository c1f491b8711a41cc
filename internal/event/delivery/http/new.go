package http

import (
	"github.com/gin-gonic/gin"

	"linkylink/internal/event"
	"linkylink/pkg/datemath"
	"linkylink/pkg/log"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	Index(c *gin.Context)
	Generate(c *gin.Context)
	Reset(c *gin.Context)
	Calendar(c *gin.Context)
	GenerateAPI(c *gin.Context)
	PermalinkAPI(c *gin.Context)
}

type handler struct {
	l       log.Logger
	uc      event.UseCase
	display *datemath.Parser
}

// New creates a new HTTP handler for the event domain.
func New(l log.Logger, uc event.UseCase, display *datemath.Parser) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		display: display,
	}
}
