package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/taskgate/internal/requestid"
)

func (h *handlerImpl) HandleRequestLogger(c *gin.Context) {
	requestID := c.GetHeader(requestid.Header)
	if requestID == "" {
		requestID = requestid.New()
	}
	c.Request = c.Request.WithContext(requestid.NewContext(c.Request.Context(), requestID))
	c.Header(requestid.Header, requestID)

	start := time.Now()
	c.Next()

	status := c.Writer.Status()
	event := h.logger.Info()
	if status >= http.StatusInternalServerError {
		event = h.logger.Warn()
	}
	event.
		Str(requestid.LogField, requestID).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Int("bytes", c.Writer.Size()).
		Dur("latency", time.Since(start)).
		Msg("handled request")
}

func (h *handlerImpl) HandleRecovery(c *gin.Context, recovered any) {
	h.logger.Error().
		Interface("panic", recovered).
		Str("path", c.Request.URL.Path).
		Msg("recovered from panic")
	abort(c, newAPIError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)))
}

// HandleCORS allows any origin on every response and answers preflight
// requests for any path with an empty 204.
func (h *handlerImpl) HandleCORS(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}
