// Package controllers translates HTTP requests into service calls and
// service results into JSON envelopes. No business logic lives here.
package controllers

import (
	"net/http"

	"github.com/forkful/forkful/app/models"
	"github.com/forkful/forkful/pkg/ctx"
	"github.com/forkful/forkful/pkg/logger"
)

// fail maps a service error onto the response. Domain errors carry their
// own status and client-safe message; anything else is a 500.
func fail(c *ctx.Context, err error) {
	if de, ok := models.AsError(err); ok {
		if de.Status >= http.StatusInternalServerError {
			logger.WithCtx(c.Context()).Error("request failed", "code", de.Code, "error", de)
		}
		c.Error(de.Status, de.Message)
		return
	}
	logger.WithCtx(c.Context()).Error("request failed", "error", err)
	c.Error(http.StatusInternalServerError, "Internal server error")
}
