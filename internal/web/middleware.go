package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rpzteam/students/api"
	"github.com/rpzteam/students/internal/config"
	"github.com/rpzteam/students/internal/database"
	lf "github.com/rpzteam/students/internal/logfield"
)

const (
	headerRequestID = "X-Request-ID"
	keyRequestID    = "request_id"
)

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if len(id) == 0 {
			id = uuid.NewString()
		}
		c.Set(keyRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func corsMiddleware(config *config.Config) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: config.Cors.AllowOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPut,
			http.MethodPost,
			http.MethodDelete,
			http.MethodPatch,
		},
		AllowHeaders:  []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{headerRequestID},
		MaxAge:        12 * time.Hour,
	})
}

func limitBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}

// requestTimeout bounds the store calls of a request. Zero disables it.
func requestTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// handleErrors turns the last error a handler attached with c.Error into a response.
func handleErrors(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		code := statusOf(last)
		log := logger.With(lf.RequestID(c.GetString(keyRequestID)), lf.Status(code))
		if code >= http.StatusInternalServerError {
			log.Error("Request failed", zap.Error(last.Err))
		} else {
			log.Warn("Request rejected", zap.Error(last.Err))
		}

		message := last.Err.Error()
		if code >= http.StatusInternalServerError {
			message = http.StatusText(code)
		}
		c.JSON(code, &api.ErrorResponse{Error: message})
	}
}

func statusOf(e *gin.Error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(e.Err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case e.IsType(gin.ErrorTypeBind):
		return http.StatusBadRequest
	case database.IsValidation(e.Err):
		return http.StatusBadRequest
	case database.IsNotFound(e.Err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
