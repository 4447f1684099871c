package customer

import (
	"strconv"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"
)

// Address Value object describing where a customer lives
// Two addresses are equal when all four components are equal.
type Address struct {
	street string
	number int
	zip    string
	city   string
}

// NewAddress builds a validated address.
// Fields are checked in order street, number, zip, city; the first failure wins.
func NewAddress(street string, number int, zip, city string) (Address, error) {
	a := Address{
		street: street,
		number: number,
		zip:    zip,
		city:   city,
	}
	if err := a.Validate(); err != nil {
		return Address{}, err
	}
	return a, nil
}

// Validate re-checks the address; the zero Address is invalid
func (a Address) Validate() error {
	if a.street == "" {
		return shared.NewValidationError("Address", "street", "Street is required")
	}
	if a.number == 0 {
		return shared.NewValidationError("Address", "number", "Number is required")
	}
	if a.zip == "" {
		return shared.NewValidationError("Address", "zip", "Zip is required")
	}
	if a.city == "" {
		return shared.NewValidationError("Address", "city", "City is required")
	}
	return nil
}

func (a Address) Street() string { return a.street }
func (a Address) Number() int    { return a.number }
func (a Address) Zip() string    { return a.zip }
func (a Address) City() string   { return a.city }

// Equals compares by value
func (a Address) Equals(other Address) bool {
	return a == other
}

// String renders "street, number, zip, city"
func (a Address) String() string {
	return a.street + ", " + strconv.Itoa(a.number) + ", " + a.zip + ", " + a.city
}

var _ shared.ValueObject[Address] = Address{}
