package http

import (
	"errors"
	"net/http"

	"github-agent/internal/browser"
	"github-agent/internal/credential"
	"github-agent/pkg/response"
)

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, credential.ErrNotLoggedIn):
		return response.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, browser.ErrInvalidSort):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, browser.ErrRemote):
		return response.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
