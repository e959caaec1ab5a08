package log

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// GinMiddleware reads or assigns a request ID, stores a request-scoped child
// logger in the request context and logs each completed request. Requests
// that end with a server error are logged at error level.
func GinMiddleware(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		child := logger.With().
			Str(FieldRequestID, reqID).
			Str(FieldMethod, c.Request.Method).
			Str(FieldPath, c.Request.URL.Path).
			Str(FieldClientIP, c.ClientIP()).
			Logger()

		c.Header(HeaderRequestID, reqID)
		ctx := WithRequestID(WithLogger(c.Request.Context(), child), reqID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		evt := child.Info()
		if status >= 500 {
			evt = child.Error()
		}
		evt = evt.
			Int(FieldStatus, status).
			Float64(FieldLatency, float64(time.Since(start).Milliseconds())).
			Str(FieldRoute, c.FullPath())

		if scheme := c.Param("scheme"); scheme != "" {
			evt = evt.Str(FieldScheme, scheme)
		}
		if len(c.Errors) > 0 {
			evt = evt.Str("errors", c.Errors.String())
		}

		evt.Msg("request completed")
	}
}
