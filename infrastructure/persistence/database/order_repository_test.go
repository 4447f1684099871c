package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/order"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/database"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/database/dbtest"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/database/po"
)

type orderFixture struct {
	db     *gorm.DB
	orders *database.OrderRepository
}

// newOrderFixture stores customer 123 and products 123 and 456
func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()
	ctx := context.Background()
	db := dbtest.Open(t)

	require.NoError(t, database.NewCustomerRepository(db).Create(ctx, withAddress(t, newCustomer(t, "123", "Customer 1"))))
	products := database.NewProductRepository(db)
	require.NoError(t, products.Create(ctx, newProduct(t, "123", "Product 1", 10)))
	require.NoError(t, products.Create(ctx, newProduct(t, "456", "Product 2", 20)))

	return orderFixture{db: db, orders: database.NewOrderRepository(db)}
}

func newItem(t *testing.T, id, productID string, price float64, quantity int) order.OrderItem {
	t.Helper()
	item, err := order.NewOrderItem(id, "Product "+productID, price, productID, quantity)
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T, id string, items ...order.OrderItem) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, "123", items)
	require.NoError(t, err)
	return o
}

func TestOrderRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	o := newOrder(t, "123", newItem(t, "1", "123", 10, 2))
	require.NoError(t, f.orders.Create(ctx, o))

	var orderPO po.OrderPO
	require.NoError(t, f.db.First(&orderPO, "id = ?", "123").Error)
	assert.Equal(t, po.OrderPO{ID: "123", CustomerID: "123", Total: 20}, orderPO)

	var itemPOs []po.OrderItemPO
	require.NoError(t, f.db.Where("order_id = ?", "123").Find(&itemPOs).Error)
	assert.Equal(t, []po.OrderItemPO{{
		ID:        "1",
		OrderID:   "123",
		ProductID: "123",
		Name:      "Product 123",
		Price:     10,
		Quantity:  2,
		Position:  0,
	}}, itemPOs)

	found, err := f.orders.Find(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, o, found)
}

func TestOrderRepositoryKeepsLineOrder(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	o := newOrder(t, "o1",
		newItem(t, "z", "456", 20, 1),
		newItem(t, "a", "123", 10, 3),
		newItem(t, "m", "456", 20, 2),
	)
	require.NoError(t, f.orders.Create(ctx, o))

	found, err := f.orders.Find(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, o, found)
	assert.Equal(t, 110.0, found.Total())
}

func TestOrderRepositoryUpdateAddsItem(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	o := newOrder(t, "123", newItem(t, "1", "123", 10, 2))
	require.NoError(t, f.orders.Create(ctx, o))

	require.NoError(t, o.AddItem(newItem(t, "2", "456", 20, 1)))
	require.NoError(t, f.orders.Update(ctx, o))

	found, err := f.orders.Find(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, o, found)
	assert.Len(t, found.Items(), 2)
	assert.Equal(t, 40.0, found.Total())

	var count int64
	require.NoError(t, f.db.Model(&po.OrderItemPO{}).Where("order_id = ?", "123").Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestOrderRepositoryUpdateMissing(t *testing.T) {
	f := newOrderFixture(t)

	err := f.orders.Update(context.Background(), newOrder(t, "404", newItem(t, "1", "123", 10, 1)))
	assert.EqualError(t, err, "Order not found")

	var count int64
	require.NoError(t, f.db.Model(&po.OrderItemPO{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOrderRepositoryUpdateRollsBackOnItemFailure(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	o1 := newOrder(t, "o1", newItem(t, "1", "123", 10, 1))
	require.NoError(t, f.orders.Create(ctx, o1))
	require.NoError(t, f.orders.Create(ctx, newOrder(t, "o2", newItem(t, "2", "456", 20, 1))))

	// line "2" already belongs to o2
	require.NoError(t, o1.AddItem(newItem(t, "2", "456", 20, 1)))
	require.Error(t, f.orders.Update(ctx, o1))

	found, err := f.orders.Find(ctx, "o1")
	require.NoError(t, err)
	require.Len(t, found.Items(), 1)
	assert.Equal(t, "1", found.Items()[0].ID())
	assert.Equal(t, 10.0, found.Total())

	var orderPO po.OrderPO
	require.NoError(t, f.db.First(&orderPO, "id = ?", "o1").Error)
	assert.Equal(t, 10.0, orderPO.Total)
}

func TestOrderRepositoryCreateLeavesNoRootOnItemFailure(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	require.NoError(t, f.orders.Create(ctx, newOrder(t, "o1", newItem(t, "1", "123", 10, 1))))

	err := f.orders.Create(ctx, newOrder(t, "o3", newItem(t, "1", "456", 20, 1)))
	require.Error(t, err)

	var count int64
	require.NoError(t, f.db.Model(&po.OrderPO{}).Where("id = ?", "o3").Count(&count).Error)
	assert.Zero(t, count)

	_, err = f.orders.Find(ctx, "o3")
	assert.True(t, shared.IsNotFound(err))
}

func TestOrderRepositoryFindMissing(t *testing.T) {
	f := newOrderFixture(t)

	o, err := f.orders.Find(context.Background(), "nope")
	assert.Nil(t, o)
	assert.True(t, shared.IsNotFound(err))
	assert.EqualError(t, err, "Order not found")
}

func TestOrderRepositoryFindAll(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	o2 := newOrder(t, "o2", newItem(t, "3", "456", 20, 1), newItem(t, "4", "123", 10, 1))
	o1 := newOrder(t, "o1", newItem(t, "1", "123", 10, 2), newItem(t, "2", "456", 20, 2))
	require.NoError(t, f.orders.Create(ctx, o2))
	require.NoError(t, f.orders.Create(ctx, o1))

	all, err := f.orders.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*order.Order{o1, o2}, all)
	assert.Equal(t, 90.0, order.Total(all))
}

func TestOrderRepositoryFindAllEmpty(t *testing.T) {
	f := newOrderFixture(t)

	all, err := f.orders.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestOrderRepositoryDeleteCascades(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	require.NoError(t, f.orders.Create(ctx, newOrder(t, "o1", newItem(t, "1", "123", 10, 1))))
	require.NoError(t, f.orders.Create(ctx, newOrder(t, "o2", newItem(t, "2", "456", 20, 1))))

	require.NoError(t, f.orders.Delete(ctx, "o1"))

	_, err := f.orders.Find(ctx, "o1")
	assert.True(t, shared.IsNotFound(err))

	var itemPOs []po.OrderItemPO
	require.NoError(t, f.db.Find(&itemPOs).Error)
	require.Len(t, itemPOs, 1)
	assert.Equal(t, "o2", itemPOs[0].OrderID)

	assert.True(t, shared.IsNotFound(f.orders.Delete(ctx, "o1")))
}

func TestOrderRepositoryJoinsContextTransaction(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	rollback := errors.New("rollback")

	err := f.db.Transaction(func(tx *gorm.DB) error {
		txCtx := persistence.ContextWithTx(ctx, tx)
		require.NoError(t, f.orders.Create(txCtx, newOrder(t, "o1", newItem(t, "1", "123", 10, 1))))

		_, err := f.orders.Find(txCtx, "o1")
		require.NoError(t, err)
		return rollback
	})
	require.ErrorIs(t, err, rollback)

	_, err = f.orders.Find(ctx, "o1")
	assert.True(t, shared.IsNotFound(err))
}

func TestNextIdentity(t *testing.T) {
	f := newOrderFixture(t)
	a, b := f.orders.NextIdentity(), f.orders.NextIdentity()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
