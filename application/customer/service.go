// Package customer Application Layer - customer use cases
package customer

import (
	"context"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/application"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/customer"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"

	"github.com/google/uuid"
)

// ApplicationService coordinates customer use cases
type ApplicationService struct {
	repo customer.Repository
	uow  shared.UnitOfWork
	bus  application.EventBus
}

func NewApplicationService(repo customer.Repository, uow shared.UnitOfWork, bus application.EventBus) *ApplicationService {
	if bus == nil {
		bus = application.NoopEventBus{}
	}
	return &ApplicationService{repo: repo, uow: uow, bus: bus}
}

// CreateCustomer creates the customer, with its address when one is given.
// CustomerCreated handlers run inside the transaction; their failure cancels the creation.
func (s *ApplicationService) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	id := req.ID
	if id == "" {
		id = uuid.Must(uuid.NewV7()).String()
	}

	var c *customer.Customer
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		c, err = customer.NewCustomer(id, req.Name, s.bus.Dispatcher(ctx))
		if err != nil {
			return err
		}

		if req.Address != nil {
			addr, err := toAddress(*req.Address)
			if err != nil {
				return err
			}
			if err := c.ChangeAddress(addr); err != nil {
				return err
			}
		}

		return s.repo.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

func (s *ApplicationService) RenameCustomer(ctx context.Context, id string, req RenameCustomerRequest) (*CustomerResponse, error) {
	return s.modify(ctx, id, func(c *customer.Customer) error {
		return c.ChangeName(req.Name)
	})
}

// ChangeAddress replaces the address and announces CustomerAddressChanged
func (s *ApplicationService) ChangeAddress(ctx context.Context, id string, req AddressRequest) (*CustomerResponse, error) {
	addr, err := toAddress(req)
	if err != nil {
		return nil, err
	}
	return s.modify(ctx, id, func(c *customer.Customer) error {
		return c.ChangeAddress(addr)
	})
}

func (s *ApplicationService) ActivateCustomer(ctx context.Context, id string) (*CustomerResponse, error) {
	return s.modify(ctx, id, func(c *customer.Customer) error {
		return c.Activate()
	})
}

func (s *ApplicationService) DeactivateCustomer(ctx context.Context, id string) (*CustomerResponse, error) {
	return s.modify(ctx, id, func(c *customer.Customer) error {
		c.Deactivate()
		return nil
	})
}

// modify loads the customer, applies change and stores it in one unit of work
func (s *ApplicationService) modify(ctx context.Context, id string, change func(c *customer.Customer) error) (*CustomerResponse, error) {
	var c *customer.Customer
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		var err error
		c, err = s.repo.Find(ctx, id)
		if err != nil {
			return err
		}
		c.AttachDispatcher(s.bus.Dispatcher(ctx))

		if err := change(c); err != nil {
			return err
		}
		return s.repo.Update(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

func (s *ApplicationService) GetCustomer(ctx context.Context, id string) (*CustomerResponse, error) {
	c, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

func (s *ApplicationService) ListCustomers(ctx context.Context) ([]*CustomerResponse, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*CustomerResponse, len(customers))
	for i, c := range customers {
		responses[i] = toCustomerResponse(c)
	}
	return responses, nil
}

func (s *ApplicationService) DeleteCustomer(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
