// Package order order API controller
package order

import (
	"net/http"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/ctxutil"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/response"
	orderapp "github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/application/order"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service *orderapp.ApplicationService
}

func NewController(service *orderapp.ApplicationService) *Controller {
	return &Controller{service: service}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/orders")
	{
		group.POST("", c.PlaceOrder)
		group.GET("", c.ListOrders)
		group.GET("/:id", c.GetOrder)
		group.POST("/:id/items", c.AddItem)
		group.DELETE("/:id", c.DeleteOrder)
	}
}

// PlaceOrder POST /api/v1/orders
func (c *Controller) PlaceOrder(ctx *gin.Context) {
	var req orderapp.PlaceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	resp, err := c.service.PlaceOrder(ctxutil.WithRequestID(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, resp, "order placed successfully")
}

// ListOrders GET /api/v1/orders
func (c *Controller) ListOrders(ctx *gin.Context) {
	resp, err := c.service.ListOrders(ctxutil.WithRequestID(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleList(ctx, response.ListData{
		Items: resp.Orders,
		Count: len(resp.Orders),
		Total: &resp.Total,
	}, "orders retrieved successfully")
}

// GetOrder GET /api/v1/orders/:id
//
// A missing order travels as shared.ErrNotFound from the repository,
// through the service untouched, and HandleAppError answers 404.
func (c *Controller) GetOrder(ctx *gin.Context) {
	resp, err := c.service.GetOrder(ctxutil.WithRequestID(ctx), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "order retrieved successfully")
}

// AddItem POST /api/v1/orders/:id/items
func (c *Controller) AddItem(ctx *gin.Context) {
	var req orderapp.OrderItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	resp, err := c.service.AddItem(ctxutil.WithRequestID(ctx), ctx.Param("id"), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "order item added successfully")
}

// DeleteOrder DELETE /api/v1/orders/:id
func (c *Controller) DeleteOrder(ctx *gin.Context) {
	if err := c.service.DeleteOrder(ctxutil.WithRequestID(ctx), ctx.Param("id")); err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleNoContent(ctx)
}
