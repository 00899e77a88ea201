package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inventory-manager/internal/domain"
	"inventory-manager/internal/sorting"
	"inventory-manager/internal/store"
	apperrors "inventory-manager/pkg/errors"
	"inventory-manager/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockItemsAPI is a mock implementation of remote.ItemsAPI
type MockItemsAPI struct {
	mock.Mock
}

func (m *MockItemsAPI) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemsAPI) CreateItem(ctx context.Context, item domain.NewItem) (domain.Item, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *MockItemsAPI) UpdateItem(ctx context.Context, id int64, name, category string) (domain.Item, error) {
	args := m.Called(ctx, id, name, category)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *MockItemsAPI) CreateBatch(ctx context.Context, itemID int64, batch domain.NewBatch) error {
	return m.Called(ctx, itemID, batch).Error(0)
}

func (m *MockItemsAPI) UpdateBatch(ctx context.Context, batchID int64, field string, value interface{}) error {
	return m.Called(ctx, batchID, field, value).Error(0)
}

func (m *MockItemsAPI) DeleteBatch(ctx context.Context, batchID int64) error {
	return m.Called(ctx, batchID).Error(0)
}

func (m *MockItemsAPI) DeleteItem(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func setupInventoryRouter(api *MockItemsAPI) (*gin.Engine, *store.InventoryStore) {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	inventory := store.NewInventoryStore(api, nil, logger)
	handler := NewInventoryHandler(inventory, domain.ExpiringSoonDays, logger)
	handler.now = func() time.Time { return time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC) }

	router := gin.New()
	router.Use(middleware.ErrorHandler(logger))
	inv := router.Group("/api/v1/inventory")
	{
		inv.GET("/items", handler.ListItems)
		inv.POST("/items/refresh", handler.RefreshItems)
		inv.POST("/items", handler.CreateItem)
		inv.PUT("/items/:id", handler.UpdateItem)
		inv.DELETE("/items/:id", handler.DeleteItem)
		inv.POST("/items/:id/batches", handler.AddBatch)
		inv.PUT("/items/batches/:batchId", handler.UpdateBatch)
		inv.DELETE("/items/batches/:batchId", handler.DeleteBatch)
		inv.POST("/sort/:field", handler.ToggleSort)
		inv.GET("/categories", handler.Categories)
		inv.POST("/rows/:kind/:id/edit", handler.BeginEdit)
		inv.POST("/rows/:kind/:id/cancel", handler.CancelEdit)
	}
	return router, inventory
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedItems() []domain.Item {
	soon := domain.NewDate(2024, 7, 1)
	return []domain.Item{
		{ID: 1, Name: "Milk", Category: "Dairy", Batches: []domain.Batch{{ID: 7, ItemID: 1, Quantity: 3, ExpireDate: &soon}}},
		{ID: 2, Name: "apple", Category: "Produce", Batches: []domain.Batch{{ID: 8, ItemID: 2, Quantity: 4}}},
	}
}

func TestRefreshAndListItems(t *testing.T) {
	// Setup
	api := new(MockItemsAPI)
	router, _ := setupInventoryRouter(api)
	api.On("ListItems", mock.Anything).Return(seedItems(), nil)

	// Execute
	w := doJSON(router, http.MethodPost, "/api/v1/inventory/items/refresh", nil)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	var view store.InventoryView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Items, 2)
	assert.Equal(t, 3, view.Items[0].TotalQuantity)
	assert.Equal(t, domain.MediumStock, view.Items[0].StockStatus)
	assert.Equal(t, domain.ExpiringSoon, view.Items[0].Batches[0].ExpiryStatus)
	assert.Equal(t, store.Viewing, view.Items[0].Row.State)
	assert.Equal(t, domain.InStock, view.Items[1].StockStatus)

	w = doJSON(router, http.MethodGet, "/api/v1/inventory/items", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_quantity":3`)
}

func TestRefreshItems_RemoteFailure(t *testing.T) {
	api := new(MockItemsAPI)
	router, _ := setupInventoryRouter(api)
	api.On("ListItems", mock.Anything).Return(nil, apperrors.NewRequestFailed(500, "", "Status: 500"))

	w := doJSON(router, http.MethodPost, "/api/v1/inventory/items/refresh", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Request failed")
}

func TestCreateItem(t *testing.T) {
	api := new(MockItemsAPI)
	router, inventory := setupInventoryRouter(api)
	expected := domain.NewItem{Name: "Milk", Category: "Dairy", Batches: []domain.NewBatch{{Quantity: 3}}}
	api.On("CreateItem", mock.Anything, expected).Return(seedItems()[0], nil)

	w := doJSON(router, http.MethodPost, "/api/v1/inventory/items", CreateItemRequest{
		Name:     " Milk ",
		Category: "Dairy",
		Batches:  []BatchRequest{{Quantity: 3, ExpireDate: ""}},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"stock_status":"Medium Stock"`)
	assert.Len(t, inventory.Items(), 1)
}

func TestCreateItem_Validation(t *testing.T) {
	api := new(MockItemsAPI)
	router, _ := setupInventoryRouter(api)

	tests := []struct {
		name string
		body CreateItemRequest
	}{
		{name: "no batches", body: CreateItemRequest{Name: "Milk", Category: "Dairy"}},
		{name: "zero quantity", body: CreateItemRequest{Name: "Milk", Category: "Dairy", Batches: []BatchRequest{{Quantity: 0}}}},
		{name: "bad date", body: CreateItemRequest{Name: "Milk", Category: "Dairy", Batches: []BatchRequest{{Quantity: 1, ExpireDate: "tomorrow"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/v1/inventory/items", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"error":"ValidationError"`)
		})
	}
	api.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestUpdateItemAndBatch(t *testing.T) {
	api := new(MockItemsAPI)
	router, inventory := setupInventoryRouter(api)
	api.On("ListItems", mock.Anything).Return(seedItems(), nil)
	_, err := inventory.FetchItems(context.Background())
	require.NoError(t, err)

	renamed := seedItems()[0]
	renamed.Category = "Beverages"
	api.On("UpdateItem", mock.Anything, int64(1), "Milk", "Beverages").Return(renamed, nil)
	api.On("UpdateBatch", mock.Anything, int64(7), "quantity", 1).Return(nil)

	w := doJSON(router, http.MethodPut, "/api/v1/inventory/items/1", FieldUpdateRequest{Field: "category", Value: "Beverages"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"category":"Beverages"`)

	w = doJSON(router, http.MethodPut, "/api/v1/inventory/items/batches/7", FieldUpdateRequest{Field: "quantity", Value: "1"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPut, "/api/v1/inventory/items/batches/7", FieldUpdateRequest{Field: "quantity", Value: "-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPut, "/api/v1/inventory/items/abc", FieldUpdateRequest{Field: "name", Value: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"InvalidRequest"`)
}

func TestAddAndDeleteBatch(t *testing.T) {
	api := new(MockItemsAPI)
	router, _ := setupInventoryRouter(api)
	expires := domain.NewDate(2024, 6, 20)
	api.On("CreateBatch", mock.Anything, int64(1), domain.NewBatch{Quantity: 2, ExpireDate: &expires}).Return(nil)
	api.On("DeleteBatch", mock.Anything, int64(7)).Return(nil)
	api.On("ListItems", mock.Anything).Return(seedItems(), nil)

	w := doJSON(router, http.MethodPost, "/api/v1/inventory/items/1/batches", BatchRequest{Quantity: 2, ExpireDate: "2024-06-20"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/v1/inventory/items/batches/7", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	api.AssertNumberOfCalls(t, "ListItems", 2)
}

func TestDeleteItem(t *testing.T) {
	api := new(MockItemsAPI)
	router, inventory := setupInventoryRouter(api)
	api.On("ListItems", mock.Anything).Return(seedItems(), nil).Once()
	_, err := inventory.FetchItems(context.Background())
	require.NoError(t, err)
	api.On("DeleteItem", mock.Anything, int64(2)).Return(nil)

	w := doJSON(router, http.MethodDelete, "/api/v1/inventory/items/2", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, inventory.Items(), 1)
}

func TestToggleSortAndCategories(t *testing.T) {
	api := new(MockItemsAPI)
	router, inventory := setupInventoryRouter(api)
	api.On("ListItems", mock.Anything).Return(seedItems(), nil)
	_, err := inventory.FetchItems(context.Background())
	require.NoError(t, err)

	w := doJSON(router, http.MethodPost, "/api/v1/inventory/sort/name", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var state sorting.State
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, sorting.Ascending, state.Direction)

	w = doJSON(router, http.MethodGet, "/api/v1/inventory/items", nil)
	var view store.InventoryView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "apple", view.Items[0].Name)

	w = doJSON(router, http.MethodPost, "/api/v1/inventory/sort/quantity", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/inventory/categories?q=prod", nil)
	assert.JSONEq(t, `{"categories":["Produce"]}`, w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/v1/inventory/categories?q=zzz", nil)
	assert.JSONEq(t, `{"categories":[]}`, w.Body.String())
}

func TestEditRows(t *testing.T) {
	api := new(MockItemsAPI)
	router, inventory := setupInventoryRouter(api)

	w := doJSON(router, http.MethodPost, "/api/v1/inventory/rows/batch/7/edit", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"state":"editing"}`, w.Body.String())
	assert.Equal(t, store.Editing, inventory.RowState(store.BatchKey(7)).State)

	w = doJSON(router, http.MethodPost, "/api/v1/inventory/rows/batch/7/cancel", nil)
	assert.JSONEq(t, `{"state":"viewing"}`, w.Body.String())

	w = doJSON(router, http.MethodPost, "/api/v1/inventory/rows/shelf/7/edit", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClosedStoreIsServiceUnavailable(t *testing.T) {
	api := new(MockItemsAPI)
	router, inventory := setupInventoryRouter(api)
	inventory.Close()

	w := doJSON(router, http.MethodDelete, "/api/v1/inventory/items/4", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "ServiceUnavailable")
	api.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
}
