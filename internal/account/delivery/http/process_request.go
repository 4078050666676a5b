package http

import (
	"github.com/gin-gonic/gin"
)

// processLoginReq binds and validates the login body.
func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
