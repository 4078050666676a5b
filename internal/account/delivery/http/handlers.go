package http

import (
	"github.com/gin-gonic/gin"

	"github-agent/pkg/response"
)

// Login godoc
// @Summary     Log in with a personal access token
// @Description Validates the token against GitHub and stores it with a profile snapshot.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Personal access token"
// @Success     200  {object} loginResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Token rejected by GitHub"
// @Failure     502  {object} response.Resp "GitHub unreachable"
// @Router      /api/v1/auth/token [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoginResp(output))
}

// Logout godoc
// @Summary     Log out
// @Description Forgets the stored token.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/token [DELETE]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Me godoc
// @Summary     Current GitHub user
// @Description Re-checks the stored token. A token GitHub rejects is cleared.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Not logged in"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Me(ctx)
	if err != nil {
		response.ErrorWithStatus(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMeResp(output))
}

// TokenURL godoc
// @Summary     Token creation URL
// @Description Link to GitHub's personal access token page with the required scopes.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} tokenURLResp
// @Router      /api/v1/auth/token-url [GET]
func (h *handler) TokenURL(c *gin.Context) {
	response.OK(c, tokenURLResp{URL: h.uc.TokenURL()})
}
