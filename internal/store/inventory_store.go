// Package store keeps the client-visible item collection in sync with the
// remote item store. Batch mutations are followed by a full refetch so totals
// are never predicted locally; item edits, creation and deletion patch the
// local collection from the server's response.
package store

import (
	"context"
	stderrors "errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"inventory-manager/internal/domain"
	"inventory-manager/internal/events"
	"inventory-manager/internal/remote"
	"inventory-manager/internal/sorting"
	apperrors "inventory-manager/pkg/errors"

	"go.uber.org/zap"
)

// ErrStoreClosed is returned once Close has been called. Responses that arrive
// after Close are discarded.
var ErrStoreClosed = apperrors.NewServiceUnavailable("inventory store closed", "Store: closed")

// ItemField is an editable item field
type ItemField string

const (
	FieldName     ItemField = "name"
	FieldCategory ItemField = "category"
)

// BatchField is an editable batch field
type BatchField string

const (
	FieldQuantity   BatchField = remote.BatchFieldQuantity
	FieldExpireDate BatchField = remote.BatchFieldExpireDate
)

// localPatch is a change applied from a server acknowledgement rather than a
// fetch. Fetches issued before seq are patched again when they land.
type localPatch struct {
	seq   uint64
	apply func([]domain.Item) []domain.Item
}

// InventoryStore is the single source of truth for the item collection.
// Mutations on the same row run one at a time; other rows proceed concurrently.
// Remote calls are not cancelled by the caller's context; it only bounds the
// wait for a row lock.
type InventoryStore struct {
	api       remote.ItemsAPI
	publisher events.EventPublisher
	logger    *zap.Logger
	now       func() time.Time

	mu         sync.RWMutex
	items      []domain.Item
	sortState  sorting.State
	rows       map[RowKey]*rowEntry
	closed     bool
	fetchSeq   uint64
	appliedSeq uint64
	patches    []localPatch

	locks *rowLocks
}

// NewInventoryStore creates an empty store. publisher may be nil.
func NewInventoryStore(api remote.ItemsAPI, publisher events.EventPublisher, logger *zap.Logger) *InventoryStore {
	return &InventoryStore{
		api:       api,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
		items:     []domain.Item{},
		rows:      make(map[RowKey]*rowEntry),
		locks:     newRowLocks(),
	}
}

// FetchItems replaces the local collection with the server's current items.
// A response older than one already applied is returned but not applied.
func (s *InventoryStore) FetchItems(ctx context.Context) ([]domain.Item, error) {
	ctx = context.WithoutCancel(ctx)
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrStoreClosed
	}
	s.fetchSeq++
	seq := s.fetchSeq
	s.mu.Unlock()

	items, err := s.api.ListItems(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch items", zap.Error(err))
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrStoreClosed
	}
	if seq > s.appliedSeq {
		s.applyFetch(seq, items)
	}
	s.mu.Unlock()

	s.logger.Debug("Items fetched", zap.Int("count", len(items)))
	s.publish(ctx, events.Event{Type: events.ItemsRefreshed, ItemCount: len(items)})
	return cloneItems(items), nil
}

// AddItem creates an item with its initial batches and appends the server's
// record to the local collection.
func (s *InventoryStore) AddItem(ctx context.Context, item domain.NewItem) (domain.Item, error) {
	if err := item.Validate(); err != nil {
		return domain.Item{}, err
	}
	if s.isClosed() {
		return domain.Item{}, ErrStoreClosed
	}

	ctx = context.WithoutCancel(ctx)
	created, err := s.api.CreateItem(ctx, item)
	if err != nil {
		s.logger.Error("Failed to add item", zap.String("name", item.Name), zap.Error(err))
		return domain.Item{}, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.Item{}, ErrStoreClosed
	}
	s.patch(upsertItem(created))
	s.mu.Unlock()

	s.logger.Info("Item added", zap.Int64("item_id", created.ID), zap.String("name", created.Name))
	s.publish(ctx, events.Event{Type: events.ItemCreated, ItemID: created.ID})
	return created.Clone(), nil
}

// UpdateItem changes one field of an item. The server receives the full
// name/category record built from the local copy. Nothing changes locally
// unless the server accepts the update.
func (s *InventoryStore) UpdateItem(ctx context.Context, id int64, field ItemField, value string) (domain.Item, error) {
	value = strings.TrimSpace(value)
	switch field {
	case FieldName:
		if value == "" {
			return domain.Item{}, domain.ErrEmptyName
		}
	case FieldCategory:
		if value == "" {
			return domain.Item{}, domain.ErrEmptyCategory
		}
	default:
		return domain.Item{}, domain.ErrUnknownField
	}

	key := ItemKey(id)
	var updated domain.Item
	err := s.mutate(ctx, key, func(ctx context.Context) error {
		current, ok := s.Item(id)
		if !ok {
			return apperrors.NewItemNotFound(id)
		}
		name, category := current.Name, current.Category
		if field == FieldName {
			name = value
		} else {
			category = value
		}

		result, err := s.api.UpdateItem(ctx, id, name, category)
		if err != nil {
			return err
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return ErrStoreClosed
		}
		s.patch(replaceItem(result))
		updated = result.Clone()
		return nil
	})
	if err != nil {
		s.logger.Warn("Failed to update item", zap.Int64("item_id", id), zap.String("field", string(field)), zap.Error(err))
		return domain.Item{}, err
	}

	s.publish(ctx, events.Event{Type: events.ItemUpdated, ItemID: id, Field: string(field)})
	return updated, nil
}

// AddBatch creates a batch under itemID and refetches the collection
func (s *InventoryStore) AddBatch(ctx context.Context, itemID int64, quantity int, expireDate *domain.Date) error {
	if err := domain.ValidateQuantity(quantity); err != nil {
		return err
	}

	err := s.mutate(ctx, ItemKey(itemID), func(ctx context.Context) error {
		if err := s.api.CreateBatch(ctx, itemID, domain.NewBatch{Quantity: quantity, ExpireDate: expireDate}); err != nil {
			return err
		}
		s.publish(ctx, events.Event{Type: events.BatchCreated, ItemID: itemID})
		return s.refetch(ctx)
	})
	if err != nil {
		s.logger.Warn("Failed to add batch", zap.Int64("item_id", itemID), zap.Error(err))
	}
	return err
}

// UpdateBatch sets one batch field from its text form and refetches the
// collection. An empty expire_date clears the date.
func (s *InventoryStore) UpdateBatch(ctx context.Context, batchID int64, field BatchField, value string) error {
	parsed, err := parseBatchValue(field, value)
	if err != nil {
		return err
	}

	err = s.mutate(ctx, BatchKey(batchID), func(ctx context.Context) error {
		if err := s.api.UpdateBatch(ctx, batchID, string(field), parsed); err != nil {
			return err
		}
		s.publish(ctx, events.Event{Type: events.BatchUpdated, BatchID: batchID, Field: string(field)})
		return s.refetch(ctx)
	})
	if err != nil {
		s.logger.Warn("Failed to update batch", zap.Int64("batch_id", batchID), zap.String("field", string(field)), zap.Error(err))
	}
	return err
}

// DeleteBatch removes a batch and refetches the collection. Removing an
// item's last batch is allowed and leaves the item with zero quantity.
func (s *InventoryStore) DeleteBatch(ctx context.Context, batchID int64) error {
	err := s.mutate(ctx, BatchKey(batchID), func(ctx context.Context) error {
		if err := s.api.DeleteBatch(ctx, batchID); err != nil {
			return err
		}
		s.publish(ctx, events.Event{Type: events.BatchDeleted, BatchID: batchID})
		return s.refetch(ctx)
	})
	if err != nil {
		s.logger.Warn("Failed to delete batch", zap.Int64("batch_id", batchID), zap.Error(err))
	}
	return err
}

// DeleteItem removes an item and its batches, then drops it locally without a refetch
func (s *InventoryStore) DeleteItem(ctx context.Context, id int64) error {
	key := ItemKey(id)
	err := s.mutate(ctx, key, func(ctx context.Context) error {
		if err := s.api.DeleteItem(ctx, id); err != nil {
			return err
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return ErrStoreClosed
		}
		s.patch(removeItem(id))
		return nil
	})
	if err != nil {
		s.logger.Warn("Failed to delete item", zap.Int64("item_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("Item deleted", zap.Int64("item_id", id))
	s.publish(ctx, events.Event{Type: events.ItemDeleted, ItemID: id})
	return nil
}

// Items returns a copy of the collection in server order
func (s *InventoryStore) Items() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.items)
}

// Item returns a copy of one item
func (s *InventoryStore) Item(id int64) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item.Clone(), true
		}
	}
	return domain.Item{}, false
}

// Close stops the store. In-flight responses are discarded when they arrive.
func (s *InventoryStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *InventoryStore) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// mutate runs fn with key's row lock held and tracks the row's edit state.
// ctx bounds only the wait for the lock; fn gets a context without cancellation.
func (s *InventoryStore) mutate(ctx context.Context, key RowKey, fn func(ctx context.Context) error) error {
	if s.isClosed() {
		return ErrStoreClosed
	}

	s.startSaving(key)
	release, err := s.locks.acquire(ctx, key)
	if err != nil {
		busy := apperrors.NewRowBusy(key.String())
		s.finishSaving(key, busy)
		return busy
	}
	defer release()

	err = fn(context.WithoutCancel(ctx))
	if !stderrors.Is(err, ErrStoreClosed) {
		s.finishSaving(key, err)
	}
	return err
}

// patch applies a local change and records it for fetches still in flight.
// Caller holds s.mu.
func (s *InventoryStore) patch(apply func([]domain.Item) []domain.Item) {
	s.fetchSeq++
	s.items = apply(s.items)
	s.patches = append(s.patches, localPatch{seq: s.fetchSeq, apply: apply})
}

// applyFetch installs the result of fetch seq and replays newer local patches.
// Caller holds s.mu.
func (s *InventoryStore) applyFetch(seq uint64, items []domain.Item) {
	s.appliedSeq = seq
	s.items = cloneItems(items)
	kept := s.patches[:0]
	for _, p := range s.patches {
		if p.seq > seq {
			s.items = p.apply(s.items)
			kept = append(kept, p)
		}
	}
	s.patches = kept
}

func upsertItem(item domain.Item) func([]domain.Item) []domain.Item {
	return func(items []domain.Item) []domain.Item {
		for i := range items {
			if items[i].ID == item.ID {
				items[i] = item.Clone()
				return items
			}
		}
		return append(items, item.Clone())
	}
}

func replaceItem(item domain.Item) func([]domain.Item) []domain.Item {
	return func(items []domain.Item) []domain.Item {
		for i := range items {
			if items[i].ID == item.ID {
				items[i] = item.Clone()
				break
			}
		}
		return items
	}
}

func removeItem(id int64) func([]domain.Item) []domain.Item {
	return func(items []domain.Item) []domain.Item {
		kept := make([]domain.Item, 0, len(items))
		for _, item := range items {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		return kept
	}
}

func (s *InventoryStore) refetch(ctx context.Context) error {
	_, err := s.FetchItems(ctx)
	return err
}

func (s *InventoryStore) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now()
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event",
			zap.String("event_type", event.Type),
			zap.Error(err),
		)
	}
}

func parseBatchValue(field BatchField, value string) (interface{}, error) {
	value = strings.TrimSpace(value)
	switch field {
	case FieldQuantity:
		quantity, err := strconv.Atoi(value)
		if err != nil {
			return nil, domain.ErrInvalidQuantity
		}
		if err := domain.ValidateQuantity(quantity); err != nil {
			return nil, err
		}
		return quantity, nil
	case FieldExpireDate:
		if value == "" {
			var none *domain.Date
			return none, nil
		}
		d, err := domain.ParseDate(value)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		return &d, nil
	default:
		return nil, domain.ErrUnknownField
	}
}

func cloneItems(items []domain.Item) []domain.Item {
	out := make([]domain.Item, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
