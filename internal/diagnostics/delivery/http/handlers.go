package http

import (
	"github.com/gin-gonic/gin"

	"github-agent/pkg/response"
)

// Run godoc
// @Summary     Run integrated self-tests
// @Description Checks the model, GitHub access, intent parsing and one full agent run.
// @Tags        Diagnostics
// @Produce     json
// @Success     200 {object} reportResp
// @Router      /api/v1/diagnostics [GET]
func (h *handler) Run(c *gin.Context) {
	response.OK(c, h.newReportResp(h.uc.Run(c.Request.Context())))
}

// Status godoc
// @Summary     Connectivity status
// @Description Model availability, installed models and GitHub login.
// @Tags        Diagnostics
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, h.newStatusResp(h.uc.Status(c.Request.Context())))
}
