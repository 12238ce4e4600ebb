package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/exegete-ai/exegete/pkg/llm"
	"github.com/exegete-ai/exegete/pkg/planner"
	"github.com/exegete-ai/exegete/pkg/services"
)

// detail writes the uniform non-2xx body.
func detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

// mapServiceError maps service and LLM errors to HTTP responses.
func mapServiceError(c *gin.Context, err error) {
	var badResp *planner.BadResponseError
	switch {
	case errors.Is(err, services.ErrNotFound):
		detail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidCancelToken):
		detail(c, http.StatusForbidden, "cancel token does not match")
	case errors.Is(err, services.ErrNotTerminal):
		detail(c, http.StatusConflict, "job is still live")
	case errors.Is(err, services.ErrTerminal):
		detail(c, http.StatusConflict, "job already reached a terminal status")
	case errors.Is(err, llm.ErrAuthentication):
		detail(c, http.StatusServiceUnavailable, "LLM provider rejected the configured credentials")
	case errors.As(err, &badResp):
		detail(c, http.StatusBadGateway, err.Error())
	default:
		slog.Error("Unexpected service error", "error", err)
		detail(c, http.StatusInternalServerError, "internal server error")
	}
}
