// Package ctxutil moves request scoped values from gin into context.Context
package ctxutil

import (
	"context"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/response"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence"

	"github.com/gin-gonic/gin"
)

// WithRequestID request context carrying the request id for logging
func WithRequestID(ctx *gin.Context) context.Context {
	return persistence.ContextWithRequestID(ctx.Request.Context(), response.GetRequestID(ctx))
}
