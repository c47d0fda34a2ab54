package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"promptpilot/exporter"
	"promptpilot/generator"
	"promptpilot/session"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, generator.ErrEmptyPrompt),
		errors.Is(err, generator.ErrPromptTooLong),
		errors.Is(err, generator.ErrUnknownTaskType),
		errors.Is(err, exporter.ErrUnknownFormat),
		errors.Is(err, session.ErrUnknownPanel),
		errors.Is(err, session.ErrUnknownOp):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotFound),
		errors.Is(err, session.ErrNoResults):
		return http.StatusNotFound
	case errors.Is(err, session.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, generator.ErrGeneration):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError aborts with the mapped status. Server-side failures keep
// their detail out of the response and in the request log instead.
func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		msg = "internal server error"
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: msg})
}
