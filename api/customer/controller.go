/*
Package customer customer API controller.

Binding failures answer 400 through response.HandleError; service errors go
through response.HandleAppError, which maps domain errors to their status.
*/
package customer

import (
	"net/http"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/ctxutil"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/response"
	customerapp "github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/application/customer"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service *customerapp.ApplicationService
}

func NewController(service *customerapp.ApplicationService) *Controller {
	return &Controller{service: service}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/customers")
	{
		group.POST("", c.CreateCustomer)
		group.GET("", c.ListCustomers)
		group.GET("/:id", c.GetCustomer)
		group.PUT("/:id", c.RenameCustomer)
		group.PUT("/:id/address", c.ChangeAddress)
		group.POST("/:id/activate", c.ActivateCustomer)
		group.POST("/:id/deactivate", c.DeactivateCustomer)
		group.DELETE("/:id", c.DeleteCustomer)
	}
}

// CreateCustomer POST /api/v1/customers
func (c *Controller) CreateCustomer(ctx *gin.Context) {
	var req customerapp.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	resp, err := c.service.CreateCustomer(ctxutil.WithRequestID(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, resp, "customer created successfully")
}

// ListCustomers GET /api/v1/customers
func (c *Controller) ListCustomers(ctx *gin.Context) {
	resp, err := c.service.ListCustomers(ctxutil.WithRequestID(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleList(ctx, response.ListData{Items: resp, Count: len(resp)}, "customers retrieved successfully")
}

// GetCustomer GET /api/v1/customers/:id
func (c *Controller) GetCustomer(ctx *gin.Context) {
	resp, err := c.service.GetCustomer(ctxutil.WithRequestID(ctx), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "customer retrieved successfully")
}

// RenameCustomer PUT /api/v1/customers/:id
func (c *Controller) RenameCustomer(ctx *gin.Context) {
	var req customerapp.RenameCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	resp, err := c.service.RenameCustomer(ctxutil.WithRequestID(ctx), ctx.Param("id"), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "customer renamed successfully")
}

// ChangeAddress PUT /api/v1/customers/:id/address
func (c *Controller) ChangeAddress(ctx *gin.Context) {
	var req customerapp.AddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	resp, err := c.service.ChangeAddress(ctxutil.WithRequestID(ctx), ctx.Param("id"), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "customer address changed successfully")
}

// ActivateCustomer POST /api/v1/customers/:id/activate
func (c *Controller) ActivateCustomer(ctx *gin.Context) {
	resp, err := c.service.ActivateCustomer(ctxutil.WithRequestID(ctx), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "customer activated successfully")
}

// DeactivateCustomer POST /api/v1/customers/:id/deactivate
func (c *Controller) DeactivateCustomer(ctx *gin.Context) {
	resp, err := c.service.DeactivateCustomer(ctxutil.WithRequestID(ctx), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, resp, "customer deactivated successfully")
}

// DeleteCustomer DELETE /api/v1/customers/:id
func (c *Controller) DeleteCustomer(ctx *gin.Context) {
	if err := c.service.DeleteCustomer(ctxutil.WithRequestID(ctx), ctx.Param("id")); err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleNoContent(ctx)
}
