package http

import (
	"github.com/gin-gonic/gin"

	"github-agent/pkg/response"
)

// List godoc
// @Summary     List my repositories
// @Description Repositories of the logged-in user, filtered by name and sorted.
// @Tags        Repositories
// @Produce     json
// @Param       filter query string false "Case-insensitive name substring"
// @Param       sort   query string false "updated (default), name or stars"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Not logged in"
// @Failure     502 {object} response.Resp "GitHub request failed"
// @Router      /api/v1/repos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.List: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}
