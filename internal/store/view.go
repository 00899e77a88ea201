package store

import (
	"inventory-manager/internal/domain"
	"inventory-manager/internal/sorting"
	"inventory-manager/internal/suggest"
)

// BatchRowView is a batch with its expiry status and row state
type BatchRowView struct {
	domain.BatchView
	Row RowState `json:"row"`
}

// ItemRowView is an item with its derived totals, batches and row state
type ItemRowView struct {
	ID            int64              `json:"id"`
	Name          string             `json:"name"`
	Category      string             `json:"category"`
	TotalQuantity int                `json:"total_quantity"`
	StockStatus   domain.StockStatus `json:"stock_status"`
	Batches       []BatchRowView     `json:"batches"`
	Row           RowState           `json:"row"`
}

// InventoryView is what the UI renders: sorted, aggregated rows plus the sort state
type InventoryView struct {
	Items []ItemRowView `json:"items"`
	Sort  sorting.State `json:"sort"`
}

// View returns the collection ordered by the current sort state with totals
// and statuses computed as of today.
func (s *InventoryStore) View(today domain.Date, window int) InventoryView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := sorting.SortItems(s.items, s.sortState)
	rows := make([]ItemRowView, len(sorted))
	for i, item := range sorted {
		agg := domain.Aggregate(item, today, window)
		batches := make([]BatchRowView, len(agg.Batches))
		for j, b := range agg.Batches {
			batches[j] = BatchRowView{BatchView: b, Row: s.rowState(BatchKey(b.ID))}
		}
		rows[i] = ItemRowView{
			ID:            agg.ID,
			Name:          agg.Name,
			Category:      agg.Category,
			TotalQuantity: agg.TotalQuantity,
			StockStatus:   agg.StockStatus,
			Batches:       batches,
			Row:           s.rowState(ItemKey(agg.ID)),
		}
	}
	return InventoryView{Items: rows, Sort: s.sortState}
}

// ToggleSort advances the sort state for field and returns the new state.
// The state survives reloads of the collection.
func (s *InventoryStore) ToggleSort(field sorting.Field) sorting.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortState = s.sortState.Toggle(field)
	return s.sortState
}

// SortState returns the current sort state
func (s *InventoryStore) SortState() sorting.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortState
}

// Categories returns the distinct categories matching input
func (s *InventoryStore) Categories(input string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return suggest.NewCategoryIndex(s.items).Filter(input)
}
