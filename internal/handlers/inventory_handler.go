package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"inventory-manager/internal/domain"
	"inventory-manager/internal/sorting"
	"inventory-manager/internal/store"
	"inventory-manager/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InventoryHandler exposes the inventory store to the browser UI
type InventoryHandler struct {
	logger *zap.Logger
	store  *store.InventoryStore
	window int
	now    func() time.Time
}

// NewInventoryHandler creates the handler. window is the expiring-soon window in days.
func NewInventoryHandler(inventory *store.InventoryStore, window int, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		logger: logger,
		store:  inventory,
		window: window,
		now:    time.Now,
	}
}

func (h *InventoryHandler) today() domain.Date {
	return domain.DateOf(h.now())
}

func (h *InventoryHandler) view() store.InventoryView {
	return h.store.View(h.today(), h.window)
}

// ListItems godoc
// @Summary      List inventory items
// @Description  Returns the cached collection sorted by the current sort state, with total quantity, stock status, expiry status and row edit state.
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  store.InventoryView  "Sorted, aggregated items"
// @Failure      401  {object}  errors.StandardError  "No signed-in session"
// @Router       /inventory/items [get]
func (h *InventoryHandler) ListItems(c *gin.Context) {
	c.JSON(http.StatusOK, h.view())
}

// RefreshItems godoc
// @Summary      Refresh inventory items
// @Description  Replaces the local collection with the server's current items.
// @Tags         inventory
// @Produce      json
// @Param        X-Request-ID  header  string             false "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes."
// @Success      200  {object}  store.InventoryView  "Refreshed items"
// @Failure      401  {object}  errors.StandardError  "No signed-in session"
// @Failure      502  {object}  errors.StandardError  "Remote request failed"
// @Router       /inventory/items/refresh [post]
func (h *InventoryHandler) RefreshItems(c *gin.Context) {
	if _, err := h.store.FetchItems(c.Request.Context()); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, h.view())
}

// CreateItem godoc
// @Summary      Create an inventory item
// @Description  Creates an item with at least one batch. Name and category must not be blank; batch quantities must be at least 1.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        X-Request-ID  header  string             false "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes."
// @Param        request       body    CreateItemRequest  true  "Item with its initial batches"
// @Success      201  {object}  domain.ItemView  "Created item"
// @Failure      400  {object}  errors.StandardError  "Validation failed"
// @Failure      401  {object}  errors.StandardError  "No signed-in session"
// @Failure      502  {object}  errors.StandardError  "Remote request failed"
// @Router       /inventory/items [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request", zap.Error(err))
		_ = c.Error(errors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	input := domain.NewItem{
		Name:     strings.TrimSpace(req.Name),
		Category: strings.TrimSpace(req.Category),
		Batches:  make([]domain.NewBatch, 0, len(req.Batches)),
	}
	for _, b := range req.Batches {
		expireDate, err := parseOptionalDate(b.ExpireDate)
		if err != nil {
			_ = c.Error(err)
			return
		}
		input.Batches = append(input.Batches, domain.NewBatch{Quantity: b.Quantity, ExpireDate: expireDate})
	}

	item, err := h.store.AddItem(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, domain.Aggregate(item, h.today(), h.window))
}

// UpdateItem godoc
// @Summary      Update an item field
// @Description  Edits the name or category of an item. The full record is sent to the server and the local copy is replaced on success.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        X-Request-ID  header  string             false "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes."
// @Param        id            path    integer            true  "Item ID"
// @Param        request       body    FieldUpdateRequest true  "field is name or category"
// @Success      200  {object}  domain.ItemView  "Updated item"
// @Failure      400  {object}  errors.StandardError  "Validation failed"
// @Failure      404  {object}  errors.StandardError  "Item not found"
// @Failure      409  {object}  errors.StandardError  "Row busy"
// @Failure      502  {object}  errors.StandardError  "Remote request failed"
// @Router       /inventory/items/{id} [put]
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req FieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	item, err := h.store.UpdateItem(c.Request.Context(), id, store.ItemField(req.Field), req.Value)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, domain.Aggregate(item, h.today(), h.window))
}

// DeleteItem godoc
// @Summary      Delete an item
// @Description  Deletes an item and all of its batches.
// @Tags         inventory
// @Produce      json
// @Param        X-Request-ID  header  string             false "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes."
// @Param        id            path    integer            true  "Item ID"
// @Success      200  {object}  SuccessResponse  "Item deleted"
// @Failure      400  {object}  errors.StandardError  "Invalid ID"
// @Failure      409  {object}  errors.StandardError  "Row busy"
// @Failure      502  {object}  errors.StandardError  "Remote request failed"
// @Router       /inventory/items/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteItem(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "item deleted successfully"})
}

// AddBatch godoc
// @Summary      Add a batch
// @Description  Adds a batch to an item and refetches the collection. An empty expire_date means no expiry.
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        X-Request-ID  header  string             false "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes."
// @Param        id            path    integer            true  "Item ID"
// @Param        request       body    BatchRequest       true  "Batch quantity and optional expiry date (YYYY-MM-DD)"
// @Success      201  {object}  store.InventoryView  "Refetched items"
// @Failure      400  {object}  errors.StandardError  "Validation failed"
// @Failure      409  {object}  errors.StandardError  "Row busy"
// @Failure      502  {object}  errors.StandardError  "Remote request failed"
// @Router       /inventory/items/{id}/batches [post]
func (h *InventoryHandler) AddBatch(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}
	expireDate, err := parseOptionalDate(req.ExpireDate)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.store.AddBatch(c.Request.Context(), itemID, req.Quantity, expireDate); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, h.view())
}

// UpdateBatch godoc
// @Summary      Update a batch field
// @Description  Sets quantity or expire_date of a batch and refetches the collection. An empty expire_date clears the date.
// @Tags         batches
// @Accept       json
// @Produce      json
// @Param        X-Request-ID  header  string             false "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes."
// @Param        batchId       path    integer            true  "Batch ID"
// @Param        request       body    FieldUpdateRequest true  "field is quantity or expire_date"
// @Success      200  {object}  store.InventoryView  "Refetched items"
// @Failure      400  {object}  errors.StandardError  "Validation failed"
// @Failure      409  {object}  errors.StandardError  "Row busy"
// @Failure      502  {object}  errors.StandardError  "Remote request failed"
// @Router       /inventory/items/batches/{batchId} [put]
func (h *InventoryHandler) UpdateBatch(c *gin.Context) {
	batchID, ok := pathID(c, "batchId")
	if !ok {
		return
	}
	var req FieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	if err := h.store.UpdateBatch(c.Request.Context(), batchID, store.BatchField(req.Field), req.Value); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, h.view())
}

// DeleteBatch godoc
// @Summary      Delete a batch
// @Description  Deletes a batch and refetches the collection. Deleting the last batch leaves the item with zero quantity.
// @Tags         batches
// @Produce      json
// @Param        X-Request-ID  header  string             false "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes."
// @Param        batchId       path    integer            true  "Batch ID"
// @Success      200  {object}  store.InventoryView  "Refetched items"
// @Failure      400  {object}  errors.StandardError  "Invalid ID"
// @Failure      409  {object}  errors.StandardError  "Row busy"
// @Failure      502  {object}  errors.StandardError  "Remote request failed"
// @Router       /inventory/items/batches/{batchId} [delete]
func (h *InventoryHandler) DeleteBatch(c *gin.Context) {
	batchID, ok := pathID(c, "batchId")
	if !ok {
		return
	}
	if err := h.store.DeleteBatch(c.Request.Context(), batchID); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, h.view())
}

// ToggleSort godoc
// @Summary      Toggle the sort
// @Description  Cycles the field through ascending, descending and unsorted. Choosing another field starts at ascending.
// @Tags         inventory
// @Produce      json
// @Param        field         path    string             true  "name, category or quantity"
// @Success      200  {object}  sorting.State  "New sort state"
// @Failure      400  {object}  errors.StandardError  "Unknown sort field"
// @Router       /inventory/sort/{field} [post]
func (h *InventoryHandler) ToggleSort(c *gin.Context) {
	field, ok := sorting.ParseField(c.Param("field"))
	if !ok {
		_ = c.Error(errors.NewInvalidRequest("unknown sort field", "Field: "+c.Param("field")))
		return
	}
	state := h.store.ToggleSort(field)
	h.logger.Debug("Sort toggled", zap.String("field", string(state.Field)), zap.String("direction", string(state.Direction)))
	c.JSON(http.StatusOK, state)
}

// Categories godoc
// @Summary      Suggest categories
// @Description  Returns distinct categories containing q, case-insensitively. An empty q returns all of them.
// @Tags         inventory
// @Produce      json
// @Param        q             query   string             false "Text typed so far"
// @Success      200  {object}  CategoriesResponse  "Matching categories"
// @Failure      401  {object}  errors.StandardError  "No signed-in session"
// @Router       /inventory/categories [get]
func (h *InventoryHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoriesResponse{Categories: h.store.Categories(c.Query("q"))})
}

// BeginEdit godoc
// @Summary      Begin editing a row
// @Description  Moves a row into the editing state. Rejected while a mutation of the row is in flight.
// @Tags         rows
// @Produce      json
// @Param        kind          path    string             true  "item or batch"
// @Param        id            path    integer            true  "Row ID"
// @Success      200  {object}  store.RowState  "Row state"
// @Failure      400  {object}  errors.StandardError  "Unknown row kind"
// @Failure      409  {object}  errors.StandardError  "Row busy"
// @Router       /inventory/rows/{kind}/{id}/edit [post]
func (h *InventoryHandler) BeginEdit(c *gin.Context) {
	key, ok := rowKey(c)
	if !ok {
		return
	}
	state, err := h.store.BeginEdit(key)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// CancelEdit godoc
// @Summary      Cancel editing a row
// @Description  Returns a row to viewing and dismisses its last error.
// @Tags         rows
// @Produce      json
// @Param        kind          path    string             true  "item or batch"
// @Param        id            path    integer            true  "Row ID"
// @Success      200  {object}  store.RowState  "Row state"
// @Failure      400  {object}  errors.StandardError  "Unknown row kind"
// @Router       /inventory/rows/{kind}/{id}/cancel [post]
func (h *InventoryHandler) CancelEdit(c *gin.Context) {
	key, ok := rowKey(c)
	if !ok {
		return
	}
	h.store.DismissError(key)
	c.JSON(http.StatusOK, h.store.CancelEdit(key))
}

func rowKey(c *gin.Context) (store.RowKey, bool) {
	kind, ok := store.ParseRowKind(c.Param("kind"))
	if !ok {
		_ = c.Error(errors.NewInvalidRequest("unknown row kind", "Kind: "+c.Param("kind")))
		return store.RowKey{}, false
	}
	id, ok := pathID(c, "id")
	if !ok {
		return store.RowKey{}, false
	}
	return store.RowKey{Kind: kind, ID: id}, true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Error(errors.NewInvalidRequest("invalid "+name, "Param: "+c.Param(name)))
		return 0, false
	}
	return id, true
}

func parseOptionalDate(value string) (*domain.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	return &d, nil
}
