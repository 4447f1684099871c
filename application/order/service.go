// Package order Application Layer - order use cases
package order

import (
	"context"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/application"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/customer"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/order"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/product"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"

	"github.com/google/uuid"
)

// ApplicationService coordinates order use cases across the order,
// customer and product aggregates
type ApplicationService struct {
	orderRepo    order.Repository
	customerRepo customer.Repository
	productRepo  product.Repository
	uow          shared.UnitOfWork
	bus          application.EventBus
}

func NewApplicationService(
	orderRepo order.Repository,
	customerRepo customer.Repository,
	productRepo product.Repository,
	uow shared.UnitOfWork,
	bus application.EventBus,
) *ApplicationService {
	if bus == nil {
		bus = application.NoopEventBus{}
	}
	return &ApplicationService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		uow:          uow,
		bus:          bus,
	}
}

// PlaceOrder prices every line from the catalogue, creates the order and
// credits the customer's reward points. Both aggregates are saved together.
func (s *ApplicationService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*OrderResponse, error) {
	var o *order.Order
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		c, err := s.customerRepo.Find(ctx, req.CustomerID)
		if err != nil {
			return err
		}
		c.AttachDispatcher(s.bus.Dispatcher(ctx))

		items := make([]order.OrderItem, 0, len(req.Items))
		for _, itemReq := range req.Items {
			item, err := s.buildItem(ctx, itemReq)
			if err != nil {
				return err
			}
			items = append(items, item)
		}

		o, err = order.PlaceOrder(c, s.orderRepo.NextIdentity(), items)
		if err != nil {
			return err
		}
		if err := s.orderRepo.Create(ctx, o); err != nil {
			return err
		}
		return s.customerRepo.Update(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// AddItem appends one line to an existing order
func (s *ApplicationService) AddItem(ctx context.Context, orderID string, req OrderItemRequest) (*OrderResponse, error) {
	var o *order.Order
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		o, err = s.orderRepo.Find(ctx, orderID)
		if err != nil {
			return err
		}

		item, err := s.buildItem(ctx, req)
		if err != nil {
			return err
		}
		if err := o.AddItem(item); err != nil {
			return err
		}
		return s.orderRepo.Update(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

func (s *ApplicationService) buildItem(ctx context.Context, req OrderItemRequest) (order.OrderItem, error) {
	p, err := s.productRepo.Find(ctx, req.ProductID)
	if err != nil {
		return order.OrderItem{}, err
	}
	return order.NewOrderItem(uuid.Must(uuid.NewV7()).String(), p.Name(), p.Price(), p.ID(), req.Quantity)
}

func (s *ApplicationService) GetOrder(ctx context.Context, id string) (*OrderResponse, error) {
	o, err := s.orderRepo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// ListOrders returns every order and the sum of their totals
func (s *ApplicationService) ListOrders(ctx context.Context) (*OrderListResponse, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := &OrderListResponse{
		Orders: make([]*OrderResponse, len(orders)),
		Total:  order.Total(orders),
	}
	for i, o := range orders {
		resp.Orders[i] = toOrderResponse(o)
	}
	return resp, nil
}

func (s *ApplicationService) DeleteOrder(ctx context.Context, id string) error {
	return s.orderRepo.Delete(ctx, id)
}
