// Package product product catalogue API controller
package product

import (
	"net/http"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/ctxutil"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/response"
	productapp "github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/application/product"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service *productapp.ApplicationService
}

func NewController(service *productapp.ApplicationService) *Controller {
	return &Controller{service: service}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/products")
	{
		group.POST("", c.CreateProduct)
		group.GET("", c.ListProducts)
		group.GET("/:id", c.GetProduct)
		group.PUT("/:id", c.UpdateProduct)
		group.DELETE("/:id", c.DeleteProduct)
	}
}

// CreateProduct POST /api/v1/products
func (c *Controller) CreateProduct(ctx *gin.Context) {
	var req productapp.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	resp, err := c.service.CreateProduct(ctxutil.WithRequestID(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, resp, "product created successfully")
}

// ListProducts GET /api/v1/products
func (c *Controller) ListProducts(ctx *gin.Context) {
	resp, err := c.service.ListProducts(ctxutil.WithRequestID(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleList(ctx, response.ListData{Items: resp, Count: len(resp)}, "products retrieved successfully")
}

// GetProduct GET /api/v1/products/:id
func (c *Controller) GetProduct(ctx *gin.Context) {
	resp, err := c.service.GetProduct(ctxutil.WithRequestID(ctx), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "product retrieved successfully")
}

// UpdateProduct PUT /api/v1/products/:id
func (c *Controller) UpdateProduct(ctx *gin.Context) {
	var req productapp.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	resp, err := c.service.UpdateProduct(ctxutil.WithRequestID(ctx), ctx.Param("id"), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "product updated successfully")
}

// DeleteProduct DELETE /api/v1/products/:id
func (c *Controller) DeleteProduct(ctx *gin.Context) {
	if err := c.service.DeleteProduct(ctxutil.WithRequestID(ctx), ctx.Param("id")); err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleNoContent(ctx)
}
