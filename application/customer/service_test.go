package customer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcustomer "github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/application/customer"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/eventhandler"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/database"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/database/dbtest"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/database/po"
)

type fixture struct {
	service *appcustomer.ApplicationService
	outbox  *database.OutboxRepository
}

func newFixture(t *testing.T) fixture {
	db := dbtest.Open(t)
	outbox := database.NewOutboxRepository(db)
	service := appcustomer.NewApplicationService(
		database.NewCustomerRepository(db),
		database.NewUnitOfWork(db),
		eventhandler.NewRegistry(nil, outbox),
	)
	return fixture{service: service, outbox: outbox}
}

func address() *appcustomer.AddressRequest {
	return &appcustomer.AddressRequest{Street: "Street 1", Number: 1, Zip: "Zipcode 1", City: "City 1"}
}

func pendingKinds(t *testing.T, outbox *database.OutboxRepository) []string {
	events, err := outbox.GetPendingEvents(context.Background(), 100)
	require.NoError(t, err)
	kinds := make([]string, len(events))
	for i, e := range events {
		kinds[i] = e.EventKind
	}
	return kinds
}

func TestCreateCustomer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	resp, err := f.service.CreateCustomer(ctx, appcustomer.CreateCustomerRequest{
		ID:      "c1",
		Name:    "Customer 1",
		Address: address(),
	})
	require.NoError(t, err)

	assert.Equal(t, "c1", resp.ID)
	assert.True(t, resp.Active)
	require.NotNil(t, resp.Address)
	assert.Equal(t, "City 1", resp.Address.City)

	got, err := f.service.GetCustomer(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, resp, got)

	assert.Equal(t, []string{"CustomerCreated", "CustomerAddressChanged"}, pendingKinds(t, f.outbox))
}

func TestCreateCustomerGeneratesID(t *testing.T) {
	f := newFixture(t)

	resp, err := f.service.CreateCustomer(context.Background(), appcustomer.CreateCustomerRequest{Name: "Customer 1"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Nil(t, resp.Address)
}

func TestCreateCustomerInvalidAddressRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	bad := address()
	bad.City = ""
	_, err := f.service.CreateCustomer(ctx, appcustomer.CreateCustomerRequest{ID: "c1", Name: "Customer 1", Address: bad})
	require.Error(t, err)
	assert.True(t, shared.IsValidationError(err))
	assert.EqualError(t, err, "City is required")

	_, err = f.service.GetCustomer(ctx, "c1")
	assert.True(t, shared.IsNotFound(err))

	count, err := f.outbox.CountByStatus(ctx, po.EventStatusPending)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestChangeAddress(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.service.CreateCustomer(ctx, appcustomer.CreateCustomerRequest{ID: "c1", Name: "Customer 1"})
	require.NoError(t, err)

	resp, err := f.service.ChangeAddress(ctx, "c1", appcustomer.AddressRequest{Street: "Street 2", Number: 2, Zip: "Zipcode 2", City: "City 2"})
	require.NoError(t, err)
	assert.Equal(t, "Street 2", resp.Address.Street)

	got, err := f.service.GetCustomer(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Address.Number)

	assert.Equal(t, []string{"CustomerCreated", "CustomerAddressChanged"}, pendingKinds(t, f.outbox))
}

func TestChangeAddressUnknownCustomer(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.ChangeAddress(context.Background(), "404", *address())
	assert.True(t, shared.IsNotFound(err))
}

func TestActivateRequiresAddress(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.service.CreateCustomer(ctx, appcustomer.CreateCustomerRequest{ID: "c1", Name: "Customer 1"})
	require.NoError(t, err)

	resp, err := f.service.DeactivateCustomer(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, resp.Active)

	_, err = f.service.ActivateCustomer(ctx, "c1")
	assert.EqualError(t, err, "Address is mandatory to activate a customer")

	got, err := f.service.GetCustomer(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestRenameListAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for _, id := range []string{"c2", "c1"} {
		_, err := f.service.CreateCustomer(ctx, appcustomer.CreateCustomerRequest{ID: id, Name: "Customer " + id})
		require.NoError(t, err)
	}

	_, err := f.service.RenameCustomer(ctx, "c1", appcustomer.RenameCustomerRequest{Name: "Renamed"})
	require.NoError(t, err)

	list, err := f.service.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c1", list[0].ID)
	assert.Equal(t, "Renamed", list[0].Name)

	require.NoError(t, f.service.DeleteCustomer(ctx, "c2"))
	_, err = f.service.GetCustomer(ctx, "c2")
	assert.True(t, shared.IsNotFound(err))
}
