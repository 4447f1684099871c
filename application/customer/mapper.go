package customer

import (
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/customer"
)

func toAddress(req AddressRequest) (customer.Address, error) {
	return customer.NewAddress(req.Street, req.Number, req.Zip, req.City)
}

func toCustomerResponse(c *customer.Customer) *CustomerResponse {
	resp := &CustomerResponse{
		ID:           c.ID(),
		Name:         c.Name(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
	}
	if addr, ok := c.Address(); ok {
		resp.Address = &AddressResponse{
			Street: addr.Street(),
			Number: addr.Number(),
			Zip:    addr.Zip(),
			City:   addr.City(),
		}
	}
	return resp
}
