/*
Package customer Customer subdomain

A customer owns an optional address, an active flag and a reward point
balance. Creation and address changes are announced through the
shared.EventDispatcher the customer was built with, when there is one.
*/
package customer

import (
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"
)

// Customer Customer aggregate root
type Customer struct {
	id           string
	name         string
	address      *Address
	active       bool
	rewardPoints int

	dispatcher *shared.EventDispatcher
}

// NewCustomer creates an active customer with no address and zero points.
// When dispatcher is not nil CustomerCreated is delivered before returning;
// a handler failure aborts the creation and its error is returned.
func NewCustomer(id, name string, dispatcher *shared.EventDispatcher) (*Customer, error) {
	c := &Customer{
		id:         id,
		name:       name,
		active:     true,
		dispatcher: dispatcher,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.notify(EventKindCreated, CreatedPayload{ID: c.id, Name: c.name}); err != nil {
		return nil, err
	}
	return c, nil
}

// ReconstructionDTO Stored customer state
// Only repositories should use it.
type ReconstructionDTO struct {
	ID           string
	Name         string
	Address      *Address
	Active       bool
	RewardPoints int
}

// RebuildFromDTO restores a stored customer without emitting events
func RebuildFromDTO(dto ReconstructionDTO) (*Customer, error) {
	c := &Customer{
		id:           dto.ID,
		name:         dto.Name,
		active:       dto.Active,
		rewardPoints: dto.RewardPoints,
	}
	if dto.Address != nil {
		addr := *dto.Address
		c.address = &addr
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks id, name, the address when present and the point balance
func (c *Customer) Validate() error {
	if c.id == "" {
		return shared.NewValidationError("Customer", "id", "Id is required")
	}
	if c.name == "" {
		return shared.NewValidationError("Customer", "name", "Name is required")
	}
	if c.address != nil {
		if err := c.address.Validate(); err != nil {
			return err
		}
	}
	if c.rewardPoints < 0 {
		return shared.NewValidationError("Customer", "rewardPoints", "Points must be greater than or equal to 0")
	}
	return nil
}

// AttachDispatcher sets the dispatcher later events go through.
// Customers restored by a repository start without one.
func (c *Customer) AttachDispatcher(dispatcher *shared.EventDispatcher) {
	c.dispatcher = dispatcher
}

// ChangeName renames the customer; an empty name leaves it untouched
func (c *Customer) ChangeName(name string) error {
	if name == "" {
		return shared.NewValidationError("Customer", "name", "Name is required")
	}
	c.name = name
	return nil
}

// ChangeAddress replaces the address and announces CustomerAddressChanged.
// The address is kept even when a handler fails.
func (c *Customer) ChangeAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = &address

	return c.notify(EventKindAddressChanged, AddressChangedPayload{
		ID:      c.id,
		Name:    c.name,
		Address: address.String(),
	})
}

// Activate requires an address
func (c *Customer) Activate() error {
	if c.address == nil {
		return shared.NewValidationError("Customer", "address", "Address is mandatory to activate a customer")
	}
	c.active = true
	return nil
}

func (c *Customer) Deactivate() {
	c.active = false
}

// AddRewardPoints credits points; the balance never decreases
func (c *Customer) AddRewardPoints(points int) error {
	if points < 0 {
		return shared.NewValidationError("Customer", "rewardPoints", "Points must be greater than or equal to 0")
	}
	c.rewardPoints += points
	return nil
}

func (c *Customer) notify(kind string, payload any) error {
	if c.dispatcher == nil {
		return nil
	}
	return c.dispatcher.Notify(shared.NewEvent(kind, payload))
}

func (c *Customer) ID() string        { return c.id }
func (c *Customer) Name() string      { return c.name }
func (c *Customer) IsActive() bool    { return c.active }
func (c *Customer) RewardPoints() int { return c.rewardPoints }

// Address returns the current address and whether one is set
func (c *Customer) Address() (Address, bool) {
	if c.address == nil {
		return Address{}, false
	}
	return *c.address, true
}

var _ shared.AggregateRoot = (*Customer)(nil)
