package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api"
	apicustomer "github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/customer"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/health"
	apiorder "github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/order"
	apiproduct "github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/product"
	customerapp "github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/application/customer"
	orderapp "github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/application/order"
	productapp "github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/application/product"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/config"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/eventhandler"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/database"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/database/dbtest"
)

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
	Field     string          `json:"field"`
	Code      int             `json:"code"`
	Message   string          `json:"message"`
	RequestID string          `json:"request_id"`
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "shop", Version: "test", Env: "test"},
		CORS: config.CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Content-Type"},
			MaxAge:       600,
		},
	}
}

func newEngine(t *testing.T, cfg *config.Config) *gin.Engine {
	db := dbtest.Open(t)
	customers := database.NewCustomerRepository(db)
	products := database.NewProductRepository(db)
	orders := database.NewOrderRepository(db)
	uow := database.NewUnitOfWork(db)
	bus := eventhandler.NewRegistry(nil, database.NewOutboxRepository(db))

	router := api.NewRouter(
		cfg,
		health.NewController(cfg, func(ctx context.Context) error { return database.Ping(ctx, db) }),
		apicustomer.NewController(customerapp.NewApplicationService(customers, uow, bus)),
		apiproduct.NewController(productapp.NewApplicationService(products, uow, bus)),
		apiorder.NewController(orderapp.NewApplicationService(orders, customers, products, uow, bus)),
	)
	router.SetupRoutes()
	return router.GetEngine()
}

func do(t *testing.T, engine *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestCustomerLifecycle(t *testing.T) {
	engine := newEngine(t, testConfig())

	rec, env := do(t, engine, http.MethodPost, "/api/v1/customers", gin.H{"id": "c1", "name": "Customer 1"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.RequestID)

	rec, env = do(t, engine, http.MethodPost, "/api/v1/customers/c1/activate", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error)
	assert.Equal(t, "Address is mandatory to activate a customer", env.Message)

	rec, _ = do(t, engine, http.MethodPut, "/api/v1/customers/c1/address", gin.H{
		"street": "Street 1", "number": 1, "zip": "Zipcode 1", "city": "City 1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, engine, http.MethodGet, "/api/v1/customers/c1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got customerapp.CustomerResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.NotNil(t, got.Address)
	assert.Equal(t, "City 1", got.Address.City)

	rec, _ = do(t, engine, http.MethodDelete, "/api/v1/customers/c1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, env = do(t, engine, http.MethodGet, "/api/v1/customers/c1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Customer not found", env.Message)
}

func TestCreateProductValidation(t *testing.T) {
	engine := newEngine(t, testConfig())

	rec, env := do(t, engine, http.MethodPost, "/api/v1/products", gin.H{"id": "p1", "name": "Product 1", "price": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error)
	assert.Equal(t, "price", env.Field)
	assert.Equal(t, "Price must be greater than or equal to 0", env.Message)

	rec, env = do(t, engine, http.MethodPost, "/api/v1/products", gin.H{"name": "Product 1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", env.Error)
}

func TestPlaceOrder(t *testing.T) {
	engine := newEngine(t, testConfig())

	rec, _ := do(t, engine, http.MethodPost, "/api/v1/customers", gin.H{"id": "c1", "name": "Customer 1"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = do(t, engine, http.MethodPost, "/api/v1/products", gin.H{"id": "p1", "name": "Product 1", "price": 10})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := do(t, engine, http.MethodPost, "/api/v1/orders", gin.H{
		"customer_id": "c1",
		"items":       []gin.H{{"product_id": "p1", "quantity": 3}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var placed orderapp.OrderResponse
	require.NoError(t, json.Unmarshal(env.Data, &placed))
	assert.Equal(t, 30.0, placed.Total)

	rec, env = do(t, engine, http.MethodGet, "/api/v1/customers/c1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var c customerapp.CustomerResponse
	require.NoError(t, json.Unmarshal(env.Data, &c))
	assert.Equal(t, 15, c.RewardPoints)

	rec, env = do(t, engine, http.MethodGet, "/api/v1/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Items []orderapp.OrderResponse `json:"items"`
		Count int                      `json:"count"`
		Total *float64                 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.Count)
	require.Len(t, list.Items, 1)
	assert.Equal(t, placed.ID, list.Items[0].ID)
	require.NotNil(t, list.Total)
	assert.Equal(t, 30.0, *list.Total)

	rec, env = do(t, engine, http.MethodGet, "/api/v1/orders/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", env.Error)
	assert.Equal(t, "Order not found", env.Message)
}

func TestListProductsEnvelope(t *testing.T) {
	engine := newEngine(t, testConfig())

	rec, env := do(t, engine, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"count":0}`, string(env.Data))
}

func TestHealth(t *testing.T) {
	engine := newEngine(t, testConfig())

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp health.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Checks["database"].Status)
	assert.Nil(t, resp.System)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RateLimit = config.RateLimitConfig{Enabled: true, Rate: 0.001, Burst: 1}
	engine := newEngine(t, cfg)

	rec, _ := do(t, engine, http.MethodGet, "/api/v1/products", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := do(t, engine, http.MethodGet, "/api/v1/products", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", env.Error)
}
