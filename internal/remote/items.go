package remote

import (
	"context"
	"fmt"
	"net/http"

	"inventory-manager/internal/domain"
)

// Batch fields accepted by UpdateBatch
const (
	BatchFieldQuantity   = "quantity"
	BatchFieldExpireDate = "expire_date"
)

// ItemsAPI is the remote item store
type ItemsAPI interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	CreateItem(ctx context.Context, item domain.NewItem) (domain.Item, error)
	UpdateItem(ctx context.Context, id int64, name, category string) (domain.Item, error)
	CreateBatch(ctx context.Context, itemID int64, batch domain.NewBatch) error
	// UpdateBatch sets a single field; a nil value clears it.
	UpdateBatch(ctx context.Context, batchID int64, field string, value interface{}) error
	DeleteBatch(ctx context.Context, batchID int64) error
	DeleteItem(ctx context.Context, id int64) error
}

// ItemsClient implements ItemsAPI over a Client
type ItemsClient struct {
	client *Client
}

func NewItemsClient(client *Client) *ItemsClient {
	return &ItemsClient{client: client}
}

func (c *ItemsClient) ListItems(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	if err := c.client.Do(ctx, http.MethodGet, "/api/items", nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items, nil
}

func (c *ItemsClient) CreateItem(ctx context.Context, item domain.NewItem) (domain.Item, error) {
	var created domain.Item
	if err := c.client.Do(ctx, http.MethodPost, "/api/items", item, &created); err != nil {
		return domain.Item{}, err
	}
	return created, nil
}

func (c *ItemsClient) UpdateItem(ctx context.Context, id int64, name, category string) (domain.Item, error) {
	body := map[string]string{"name": name, "category": category}
	var updated domain.Item
	if err := c.client.Do(ctx, http.MethodPut, fmt.Sprintf("/api/items/%d", id), body, &updated); err != nil {
		return domain.Item{}, err
	}
	return updated, nil
}

func (c *ItemsClient) CreateBatch(ctx context.Context, itemID int64, batch domain.NewBatch) error {
	return c.client.Do(ctx, http.MethodPost, fmt.Sprintf("/api/items/%d/batches", itemID), batch, nil)
}

func (c *ItemsClient) UpdateBatch(ctx context.Context, batchID int64, field string, value interface{}) error {
	body := map[string]interface{}{field: value}
	return c.client.Do(ctx, http.MethodPut, fmt.Sprintf("/api/items/batches/%d", batchID), body, nil)
}

func (c *ItemsClient) DeleteBatch(ctx context.Context, batchID int64) error {
	return c.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/items/batches/%d", batchID), nil, nil)
}

func (c *ItemsClient) DeleteItem(ctx context.Context, id int64) error {
	return c.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/items/%d", id), nil, nil)
}
