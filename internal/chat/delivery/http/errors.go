package http

import (
	"errors"
	"net/http"

	"github-agent/internal/chat"
	"github-agent/internal/credential"
	"github-agent/pkg/response"
)

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, credential.ErrNotLoggedIn):
		return response.NewHTTPError(http.StatusUnauthorized, "log in to GitHub first")
	case errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, chat.ErrQuickActionInput):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, chat.ErrQuickActionUnknown):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
