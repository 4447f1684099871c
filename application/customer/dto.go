package customer

// AddressRequest address payload
type AddressRequest struct {
	Street string `json:"street" binding:"required"`
	Number int    `json:"number" binding:"required"`
	Zip    string `json:"zip" binding:"required"`
	City   string `json:"city" binding:"required"`
}

// CreateCustomerRequest create customer payload; ID is generated when empty
type CreateCustomerRequest struct {
	ID      string          `json:"id"`
	Name    string          `json:"name" binding:"required"`
	Address *AddressRequest `json:"address"`
}

// RenameCustomerRequest rename payload
type RenameCustomerRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddressResponse address view
type AddressResponse struct {
	Street string `json:"street"`
	Number int    `json:"number"`
	Zip    string `json:"zip"`
	City   string `json:"city"`
}

// CustomerResponse customer view
type CustomerResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Address      *AddressResponse `json:"address,omitempty"`
	Active       bool             `json:"active"`
	RewardPoints int              `json:"reward_points"`
}
