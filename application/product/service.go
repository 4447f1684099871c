// Package product Application Layer - product catalogue use cases
package product

import (
	"context"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/application"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/product"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"

	"github.com/google/uuid"
)

// ApplicationService coordinates product use cases
type ApplicationService struct {
	repo product.Repository
	uow  shared.UnitOfWork
	bus  application.EventBus
}

func NewApplicationService(repo product.Repository, uow shared.UnitOfWork, bus application.EventBus) *ApplicationService {
	if bus == nil {
		bus = application.NoopEventBus{}
	}
	return &ApplicationService{repo: repo, uow: uow, bus: bus}
}

// CreateProduct stores the product, then announces ProductCreated.
// A failing handler rolls the product back.
func (s *ApplicationService) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	id := req.ID
	if id == "" {
		id = uuid.Must(uuid.NewV7()).String()
	}
	var price float64
	if req.Price != nil {
		price = *req.Price
	}

	var p *product.Product
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		p, err = product.NewProduct(id, req.Name, price)
		if err != nil {
			return err
		}
		if err := s.repo.Create(ctx, p); err != nil {
			return err
		}
		return s.bus.Dispatcher(ctx).Notify(p.CreatedEvent())
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

func (s *ApplicationService) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*ProductResponse, error) {
	var p *product.Product
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		p, err = s.repo.Find(ctx, id)
		if err != nil {
			return err
		}

		if req.Name != nil {
			if err := p.ChangeName(*req.Name); err != nil {
				return err
			}
		}
		if req.Price != nil {
			if err := p.ChangePrice(*req.Price); err != nil {
				return err
			}
		}
		return s.repo.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

func (s *ApplicationService) GetProduct(ctx context.Context, id string) (*ProductResponse, error) {
	p, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

func (s *ApplicationService) ListProducts(ctx context.Context) ([]*ProductResponse, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*ProductResponse, len(products))
	for i, p := range products {
		responses[i] = toProductResponse(p)
	}
	return responses, nil
}

func (s *ApplicationService) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
