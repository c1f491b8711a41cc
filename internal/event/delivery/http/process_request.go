package http

import (
	"github.com/gin-gonic/gin"
)

// processGenerateReq binds the submitted form. A missing field is the empty
// description, which is sent upstream as-is.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processGenerateAPIReq binds the prompt query parameter.
func (h *handler) processGenerateAPIReq(c *gin.Context) (generateAPIReq, error) {
	var req generateAPIReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processPermalinkReq binds the data query parameter.
func (h *handler) processPermalinkReq(c *gin.Context) (permalinkReq, error) {
	var req permalinkReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
