package http

import (
	"github.com/gin-gonic/gin"
)

// processSendReq binds and validates the chat message body.
func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processRunQuickActionReq binds and validates the quick action body.
func (h *handler) processRunQuickActionReq(c *gin.Context) (runQuickActionReq, error) {
	var req runQuickActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
