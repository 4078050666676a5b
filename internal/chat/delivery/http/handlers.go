package http

import (
	"github.com/gin-gonic/gin"

	"github-agent/internal/middleware"
	"github-agent/pkg/response"
)

// Send godoc
// @Summary     Send a chat message
// @Description Runs the message through intent classification, GitHub dispatch and formatting.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendReq true "Chat message"
// @Success     200  {object} sendResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Not logged in to GitHub"
// @Failure     429  {object} response.Resp "Too many requests"
// @Router      /api/v1/chat [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Send(ctx, req.toInput(middleware.GetSessionID(c)))
	if err != nil {
		h.l.Warnf(ctx, "uc.Send: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSendResp(output))
}

// History godoc
// @Summary     Chat history
// @Description Returns the transcript of the current browser session, oldest first.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} historyResp
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, h.newHistoryResp(h.uc.History(ctx, middleware.GetSessionID(c))))
}

// ClearHistory godoc
// @Summary     Clear chat history
// @Tags        Chat
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/chat/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()
	h.uc.ClearHistory(ctx, middleware.GetSessionID(c))
	response.OK(c, nil)
}

// QuickActions godoc
// @Summary     List quick actions
// @Description Canned prompts. Those with needs_input require completion text.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} quickActionsResp
// @Router      /api/v1/chat/quick-actions [GET]
func (h *handler) QuickActions(c *gin.Context) {
	response.OK(c, h.newQuickActionsResp(h.uc.QuickActions(c.Request.Context())))
}

// RunQuickAction godoc
// @Summary     Run a quick action
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body runQuickActionReq true "Quick action id and completion text"
// @Success     200  {object} sendResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Not logged in to GitHub"
// @Failure     404  {object} response.Resp "Unknown quick action"
// @Router      /api/v1/chat/quick-actions/run [POST]
func (h *handler) RunQuickAction(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRunQuickActionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.RunQuickAction(ctx, req.toInput(middleware.GetSessionID(c)))
	if err != nil {
		h.l.Warnf(ctx, "uc.RunQuickAction: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSendResp(output))
}
