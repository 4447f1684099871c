package customer

// Event kinds emitted by the customer aggregate
const (
	EventKindCreated        = "CustomerCreated"
	EventKindAddressChanged = "CustomerAddressChanged"
)

// CreatedPayload Payload of CustomerCreated
type CreatedPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AddressChangedPayload Payload of CustomerAddressChanged
// Address is the canonical "street, number, zip, city" rendering.
type AddressChangedPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
