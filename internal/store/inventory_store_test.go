package store

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"inventory-manager/internal/domain"
	"inventory-manager/internal/events"
	"inventory-manager/internal/sorting"
	apperrors "inventory-manager/pkg/errors"

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
	args := m.Called(ctx, itemID, batch)
	return args.Error(0)
}

func (m *MockItemsAPI) UpdateBatch(ctx context.Context, batchID int64, field string, value interface{}) error {
	args := m.Called(ctx, batchID, field, value)
	return args.Error(0)
}

func (m *MockItemsAPI) DeleteBatch(ctx context.Context, batchID int64) error {
	args := m.Called(ctx, batchID)
	return args.Error(0)
}

func (m *MockItemsAPI) DeleteItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestStore(api *MockItemsAPI) (*InventoryStore, *events.InMemoryEventPublisher) {
	publisher := events.NewEventPublisher(zap.NewNop())
	return NewInventoryStore(api, publisher, zap.NewNop()), publisher
}

func milk(quantities ...int) domain.Item {
	item := domain.Item{ID: 1, Name: "Milk", Category: "Dairy", Batches: []domain.Batch{}}
	for i, q := range quantities {
		item.Batches = append(item.Batches, domain.Batch{ID: int64(7 + i), ItemID: 1, Quantity: q})
	}
	return item
}

var errServer = apperrors.NewRequestFailed(500, "Database error", "Status: 500")

func TestFetchItems_ReplacesCollection(t *testing.T) {
	// Setup
	api := new(MockItemsAPI)
	s, publisher := newTestStore(api)
	api.On("ListItems", mock.Anything).Return([]domain.Item{milk(2), {ID: 2, Name: "Apple", Category: "Produce"}}, nil)

	// Execute
	items, err := s.FetchItems(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Len(t, s.Items(), 2)
	history := publisher.Events()
	require.Len(t, history, 1)
	assert.Equal(t, events.ItemsRefreshed, history[0].Type)
	assert.Equal(t, 2, history[0].ItemCount)
	api.AssertExpectations(t)
}

func TestFetchItems_FailureKeepsLastKnownGood(t *testing.T) {
	api := new(MockItemsAPI)
	s, _ := newTestStore(api)
	api.On("ListItems", mock.Anything).Return([]domain.Item{milk(2)}, nil).Once()
	api.On("ListItems", mock.Anything).Return(nil, errServer).Once()

	_, err := s.FetchItems(context.Background())
	require.NoError(t, err)
	_, err = s.FetchItems(context.Background())

	assert.True(t, apperrors.IsRequestFailed(err))
	require.Len(t, s.Items(), 1)
	assert.Equal(t, 2, s.Items()[0].TotalQuantity())
}

func TestAddItem_RoundTrip(t *testing.T) {
	api := new(MockItemsAPI)
	s, _ := newTestStore(api)
	input := domain.NewItem{Name: "Milk", Category: "Dairy", Batches: []domain.NewBatch{{Quantity: 3}}}
	api.On("CreateItem", mock.Anything, input).Return(milk(3), nil)
	api.On("ListItems", mock.Anything).Return([]domain.Item{milk(3)}, nil)

	created, err := s.AddItem(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	require.Len(t, s.Items(), 1)

	items, err := s.FetchItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].TotalQuantity())
	assert.Equal(t, domain.MediumStock, items[0].StockStatus())
}

func TestAddItem_ValidationNeverHitsNetwork(t *testing.T) {
	tests := []struct {
		name  string
		input domain.NewItem
		want  error
	}{
		{name: "empty name", input: domain.NewItem{Category: "Dairy", Batches: []domain.NewBatch{{Quantity: 1}}}, want: domain.ErrEmptyName},
		{name: "empty category", input: domain.NewItem{Name: "Milk", Batches: []domain.NewBatch{{Quantity: 1}}}, want: domain.ErrEmptyCategory},
		{name: "no batches", input: domain.NewItem{Name: "Milk", Category: "Dairy"}, want: domain.ErrNoBatches},
		{name: "zero quantity", input: domain.NewItem{Name: "Milk", Category: "Dairy", Batches: []domain.NewBatch{{Quantity: 0}}}, want: domain.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(MockItemsAPI)
			s, _ := newTestStore(api)

			_, err := s.AddItem(context.Background(), tt.input)

			assert.Equal(t, tt.want, err)
			api.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateItem_SendsFullRecordAndReplacesInPlace(t *testing.T) {
	api := new(MockItemsAPI)
	s, publisher := newTestStore(api)
	apple := domain.Item{ID: 2, Name: "Apple", Category: "Produce"}
	api.On("ListItems", mock.Anything).Return([]domain.Item{milk(2), apple}, nil)
	_, err := s.FetchItems(context.Background())
	require.NoError(t, err)

	renamed := milk(2)
	renamed.Name = "Oat Milk"
	api.On("UpdateItem", mock.Anything, int64(1), "Oat Milk", "Dairy").Return(renamed, nil)

	updated, err := s.UpdateItem(context.Background(), 1, FieldName, "Oat Milk")

	require.NoError(t, err)
	assert.Equal(t, "Oat Milk", updated.Name)
	items := s.Items()
	assert.Equal(t, "Oat Milk", items[0].Name)
	assert.Equal(t, "Apple", items[1].Name)
	assert.Equal(t, Viewing, s.RowState(ItemKey(1)).State)
	last := publisher.Events()[len(publisher.Events())-1]
	assert.Equal(t, events.ItemUpdated, last.Type)
	assert.Equal(t, "name", last.Field)
}

func TestUpdateItem_FailureNotAppliedLocally(t *testing.T) {
	api := new(MockItemsAPI)
	s, _ := newTestStore(api)
	api.On("ListItems", mock.Anything).Return([]domain.Item{milk(2)}, nil)
	_, err := s.FetchItems(context.Background())
	require.NoError(t, err)
	api.On("UpdateItem", mock.Anything, int64(1), "Milk", "Beverages").Return(domain.Item{}, errServer)

	_, err = s.UpdateItem(context.Background(), 1, FieldCategory, "Beverages")

	assert.Equal(t, errServer, err)
	assert.Equal(t, "Dairy", s.Items()[0].Category)
	state := s.RowState(ItemKey(1))
	assert.Equal(t, Viewing, state.State)
	assert.Equal(t, "Database error", state.LastError)
}

func TestUpdateItem_Rejections(t *testing.T) {
	api := new(MockItemsAPI)
	s, _ := newTestStore(api)

	_, err := s.UpdateItem(context.Background(), 1, FieldName, "  ")
	assert.Equal(t, domain.ErrEmptyName, err)

	_, err = s.UpdateItem(context.Background(), 1, ItemField("quantity"), "4")
	assert.Equal(t, domain.ErrUnknownField, err)

	_, err = s.UpdateItem(context.Background(), 99, FieldName, "Bread")
	assert.Equal(t, apperrors.CodeItemNotFound, apperrors.CodeOf(err))

	api.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddBatch_Refetches(t *testing.T) {
	api := new(MockItemsAPI)
	s, publisher := newTestStore(api)
	expires := domain.NewDate(2024, 7, 1)
	api.On("CreateBatch", mock.Anything, int64(1), domain.NewBatch{Quantity: 2, ExpireDate: &expires}).Return(nil)
	api.On("ListItems", mock.Anything).Return([]domain.Item{milk(3, 2)}, nil)

	err := s.AddBatch(context.Background(), 1, 2, &expires)

	require.NoError(t, err)
	assert.Equal(t, 5, s.Items()[0].TotalQuantity())
	types := []string{}
	for _, e := range publisher.Events() {
		types = append(types, e.Type)
	}
	assert.Equal(t, []string{events.BatchCreated, events.ItemsRefreshed}, types)
}

func TestAddBatch_InvalidQuantity(t *testing.T) {
	api := new(MockItemsAPI)
	s, _ := newTestStore(api)

	err := s.AddBatch(context.Background(), 1, 0, nil)

	assert.Equal(t, domain.ErrInvalidQuantity, err)
	api.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateBatch_ParsesValues(t *testing.T) {
	api := new(MockItemsAPI)
	s, _ := newTestStore(api)
	var noDate *domain.Date
	june := domain.NewDate(2024, 6, 30)
	api.On("UpdateBatch", mock.Anything, int64(7), "quantity", 4).Return(nil)
	api.On("UpdateBatch", mock.Anything, int64(7), "expire_date", noDate).Return(nil)
	api.On("UpdateBatch", mock.Anything, int64(7), "expire_date", &june).Return(nil)
	api.On("ListItems", mock.Anything).Return([]domain.Item{milk(4)}, nil)

	require.NoError(t, s.UpdateBatch(context.Background(), 7, FieldQuantity, " 4 "))
	require.NoError(t, s.UpdateBatch(context.Background(), 7, FieldExpireDate, ""))
	require.NoError(t, s.UpdateBatch(context.Background(), 7, FieldExpireDate, "2024-06-30"))

	assert.Equal(t, domain.ErrInvalidQuantity, s.UpdateBatch(context.Background(), 7, FieldQuantity, "0"))
	assert.Equal(t, domain.ErrInvalidQuantity, s.UpdateBatch(context.Background(), 7, FieldQuantity, "many"))
	assert.Equal(t, domain.ErrInvalidDate, s.UpdateBatch(context.Background(), 7, FieldExpireDate, "June"))
	assert.Equal(t, domain.ErrUnknownField, s.UpdateBatch(context.Background(), 7, BatchField("created_at"), "x"))
	api.AssertNumberOfCalls(t, "UpdateBatch", 3)
}

func TestUpdateBatch_RefetchFailureSurfaces(t *testing.T) {
	api := new(MockItemsAPI)
	s, _ := newTestStore(api)
	api.On("ListItems", mock.Anything).Return([]domain.Item{milk(2)}, nil).Once()
	_, err := s.FetchItems(context.Background())
	require.NoError(t, err)
	api.On("UpdateBatch", mock.Anything, int64(7), "quantity", 9).Return(nil)
	api.On("ListItems", mock.Anything).Return(nil, errServer).Once()

	err = s.UpdateBatch(context.Background(), 7, FieldQuantity, "9")

	assert.Equal(t, errServer, err)
	assert.Equal(t, 2, s.Items()[0].TotalQuantity())
}

func TestDeleteBatch_LastBatchLeavesEmptyItem(t *testing.T) {
	api := new(MockItemsAPI)
	s, _ := newTestStore(api)
	api.On("ListItems", mock.Anything).Return([]domain.Item{milk(1)}, nil).Once()
	_, err := s.FetchItems(context.Background())
	require.NoError(t, err)
	api.On("DeleteBatch", mock.Anything, int64(7)).Return(nil)
	api.On("ListItems", mock.Anything).Return([]domain.Item{milk()}, nil).Once()

	err = s.DeleteBatch(context.Background(), 7)

	require.NoError(t, err)
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].TotalQuantity())
	assert.Equal(t, domain.LowStock, items[0].StockStatus())
}

func TestDeleteItem_RemovesLocallyWithoutRefetch(t *testing.T) {
	api := new(MockItemsAPI)
	s, publisher := newTestStore(api)
	api.On("ListItems", mock.Anything).Return([]domain.Item{milk(2), {ID: 2, Name: "Apple", Category: "Produce"}}, nil).Once()
	_, err := s.FetchItems(context.Background())
	require.NoError(t, err)
	api.On("DeleteItem", mock.Anything, int64(1)).Return(nil)

	err = s.DeleteItem(context.Background(), 1)

	require.NoError(t, err)
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ID)
	api.AssertNumberOfCalls(t, "ListItems", 1)
	last := publisher.Events()[len(publisher.Events())-1]
	assert.Equal(t, events.ItemDeleted, last.Type)
}

func TestDeleteItem_Failure(t *testing.T) {
	api := new(MockItemsAPI)
	s, _ := newTestStore(api)
	api.On("ListItems", mock.Anything).Return([]domain.Item{milk(2)}, nil)
	_, err := s.FetchItems(context.Background())
	require.NoError(t, err)
	api.On("DeleteItem", mock.Anything, int64(1)).Return(errServer)

	err = s.DeleteItem(context.Background(), 1)

	assert.Error(t, err)
	assert.Len(t, s.Items(), 1)
}

func TestUpdateBatch_SameRowIsSerialized(t *testing.T) {
	api := new(MockItemsAPI)
	s, _ := newTestStore(api)

	started := make(chan int, 2)
	release := make(chan struct{})
	var inFlight, maxInFlight int32
	track := func(value int, block bool) func(mock.Arguments) {
		return func(mock.Arguments) {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				prev := atomic.LoadInt32(&maxInFlight)
				if n <= prev || atomic.CompareAndSwapInt32(&maxInFlight, prev, n) {
					break
				}
			}
			started <- value
			if block {
				<-release
			}
			atomic.AddInt32(&inFlight, -1)
		}
	}
	api.On("UpdateBatch", mock.Anything, int64(7), "quantity", 5).Run(track(5, true)).Return(nil).Once()
	api.On("UpdateBatch", mock.Anything, int64(7), "quantity", 6).Run(track(6, false)).Return(nil).Once()
	api.On("ListItems", mock.Anything).Return([]domain.Item{milk(5)}, nil).Once()
	api.On("ListItems", mock.Anything).Return([]domain.Item{milk(6)}, nil).Once()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		errs[0] = s.UpdateBatch(context.Background(), 7, FieldQuantity, "5")
	}()
	require.Equal(t, 5, <-started)

	wg.Add(1)
	go func() {
		defer wg.Done()
		errs[1] = s.UpdateBatch(context.Background(), 7, FieldQuantity, "6")
	}()
	assert.Eventually(t, func() bool { return s.locks.held(BatchKey(7)) == 2 }, time.Second, time.Millisecond)

	select {
	case v := <-started:
		t.Fatalf("second mutation %d started while the first was pending", v)
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, Saving, s.RowState(BatchKey(7)).State)

	close(release)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, 6, <-started)
	assert.Equal(t, int32(1), atomic.LoadInt32(&maxInFlight))
	assert.Equal(t, 6, s.Items()[0].TotalQuantity())
	assert.Equal(t, Viewing, s.RowState(BatchKey(7)).State)
	assert.Equal(t, 0, s.locks.held(BatchKey(7)))
}

func TestMutations_DifferentRowsRunConcurrently(t *testing.T) {
	api := new(MockItemsAPI)
	s, _ := newTestStore(api)

	entered := make(chan int64, 2)
	release := make(chan struct{})
	block := func(args mock.Arguments) {
		entered <- args.Get(1).(int64)
		<-release
	}
	api.On("DeleteBatch", mock.Anything, int64(7)).Run(block).Return(nil)
	api.On("DeleteBatch", mock.Anything, int64(8)).Run(block).Return(nil)
	api.On("ListItems", mock.Anything).Return([]domain.Item{}, nil)

	var wg sync.WaitGroup
	for _, id := range []int64{7, 8} {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			assert.NoError(t, s.DeleteBatch(context.Background(), id))
		}(id)
	}

	got := map[int64]bool{}
	for i := 0; i < 2; i++ {
		select {
		case id := <-entered:
			got[id] = true
		case <-time.After(time.Second):
			t.Fatal("mutations on different rows did not run concurrently")
		}
	}
	close(release)
	wg.Wait()
	assert.Equal(t, map[int64]bool{7: true, 8: true}, got)
}

func TestMutate_WaitingHonoursContext(t *testing.T) {
	api := new(MockItemsAPI)
	s, _ := newTestStore(api)

	release, err := s.locks.acquire(context.Background(), BatchKey(7))
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = s.DeleteBatch(ctx, 7)

	assert.Equal(t, apperrors.CodeRowBusy, apperrors.CodeOf(err))
	api.AssertNotCalled(t, "DeleteBatch", mock.Anything, mock.Anything)
}

func TestClose_DiscardsLateResponse(t *testing.T) {
	api := new(MockItemsAPI)
	s, _ := newTestStore(api)
	entered := make(chan struct{})
	release := make(chan struct{})
	api.On("ListItems", mock.Anything).Run(func(mock.Arguments) {
		close(entered)
		<-release
	}).Return([]domain.Item{milk(3)}, nil)

	done := make(chan error, 1)
	go func() {
		_, err := s.FetchItems(context.Background())
		done <- err
	}()
	<-entered
	s.Close()
	close(release)

	assert.ErrorIs(t, <-done, ErrStoreClosed)
	assert.Empty(t, s.Items())

	_, err := s.AddItem(context.Background(), domain.NewItem{Name: "Milk", Category: "Dairy", Batches: []domain.NewBatch{{Quantity: 1}}})
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.Equal(t, apperrors.CodeUnavailable, apperrors.CodeOf(err))
	assert.Equal(t, http.StatusServiceUnavailable, ErrStoreClosed.HTTPStatus())
}

func TestDeleteItem_OlderFetchDoesNotRestoreItem(t *testing.T) {
	api := new(MockItemsAPI)
	s, _ := newTestStore(api)
	api.On("ListItems", mock.Anything).Return([]domain.Item{milk(3)}, nil).Once()
	_, err := s.FetchItems(context.Background())
	require.NoError(t, err)

	entered := make(chan struct{})
	release := make(chan struct{})
	api.On("ListItems", mock.Anything).Run(func(mock.Arguments) {
		close(entered)
		<-release
	}).Return([]domain.Item{milk(3)}, nil).Once()
	api.On("DeleteItem", mock.Anything, int64(1)).Return(nil)

	done := make(chan error, 1)
	go func() {
		_, err := s.FetchItems(context.Background())
		done <- err
	}()
	<-entered

	require.NoError(t, s.DeleteItem(context.Background(), 1))
	assert.Empty(t, s.Items())

	close(release)
	require.NoError(t, <-done)
	assert.Empty(t, s.Items())
}

func TestAddItem_OlderFetchKeepsCreatedItem(t *testing.T) {
	api := new(MockItemsAPI)
	s, _ := newTestStore(api)

	entered := make(chan struct{})
	release := make(chan struct{})
	api.On("ListItems", mock.Anything).Run(func(mock.Arguments) {
		close(entered)
		<-release
	}).Return([]domain.Item{}, nil).Once()
	api.On("CreateItem", mock.Anything, mock.Anything).Return(milk(3), nil)

	done := make(chan error, 1)
	go func() {
		_, err := s.FetchItems(context.Background())
		done <- err
	}()
	<-entered

	_, err := s.AddItem(context.Background(), domain.NewItem{Name: "Milk", Category: "Dairy", Batches: []domain.NewBatch{{Quantity: 3}}})
	require.NoError(t, err)

	close(release)
	require.NoError(t, <-done)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "Milk", s.Items()[0].Name)

	// A fetch issued after the patch replaces the collection again
	api.On("ListItems", mock.Anything).Return([]domain.Item{}, nil).Once()
	_, err = s.FetchItems(context.Background())
	require.NoError(t, err)
	assert.Empty(t, s.Items())
	assert.Empty(t, s.patches)
}

func TestEditState(t *testing.T) {
	api := new(MockItemsAPI)
	s, _ := newTestStore(api)
	key := BatchKey(7)

	assert.Equal(t, RowState{State: Viewing}, s.RowState(key))

	state, err := s.BeginEdit(key)
	require.NoError(t, err)
	assert.Equal(t, Editing, state.State)

	assert.Equal(t, Viewing, s.CancelEdit(key).State)

	_, err = s.BeginEdit(key)
	require.NoError(t, err)
	api.On("UpdateBatch", mock.Anything, int64(7), "quantity", 2).Return(errServer).Once()
	err = s.UpdateBatch(context.Background(), 7, FieldQuantity, "2")
	require.Error(t, err)

	state = s.RowState(key)
	assert.Equal(t, Editing, state.State)
	assert.Equal(t, "Database error", state.LastError)

	s.DismissError(key)
	assert.Equal(t, RowState{State: Editing}, s.RowState(key))

	api.On("UpdateBatch", mock.Anything, int64(7), "quantity", 3).Return(nil).Once()
	api.On("ListItems", mock.Anything).Return([]domain.Item{milk(3)}, nil)
	require.NoError(t, s.UpdateBatch(context.Background(), 7, FieldQuantity, "3"))
	assert.Equal(t, RowState{State: Viewing}, s.RowState(key))
}

func TestBeginEdit_RejectedWhileSaving(t *testing.T) {
	api := new(MockItemsAPI)
	s, _ := newTestStore(api)
	s.startSaving(ItemKey(1))

	_, err := s.BeginEdit(ItemKey(1))

	assert.Equal(t, apperrors.CodeRowBusy, apperrors.CodeOf(err))
	s.finishSaving(ItemKey(1), nil)
	assert.Equal(t, Viewing, s.RowState(ItemKey(1)).State)
}

func TestView_SortedAndAggregated(t *testing.T) {
	api := new(MockItemsAPI)
	s, _ := newTestStore(api)
	soon := domain.NewDate(2024, 6, 10)
	past := domain.NewDate(2024, 5, 1)
	api.On("ListItems", mock.Anything).Return([]domain.Item{
		{ID: 1, Name: "milk", Category: "Dairy", Batches: []domain.Batch{{ID: 1, Quantity: 2, ExpireDate: &soon}, {ID: 2, Quantity: 3, ExpireDate: &past}}},
		{ID: 2, Name: "Apple", Category: "Produce", Batches: []domain.Batch{{ID: 3, Quantity: 1}}},
		{ID: 3, Name: "Bread", Category: "dairy", Batches: []domain.Batch{}},
	}, nil)
	_, err := s.FetchItems(context.Background())
	require.NoError(t, err)
	today := domain.NewDate(2024, 6, 1)

	view := s.View(today, domain.ExpiringSoonDays)
	assert.Equal(t, []int64{1, 2, 3}, viewIDs(view))
	assert.False(t, view.Sort.Active())

	assert.Equal(t, sorting.State{Field: sorting.FieldName, Direction: sorting.Ascending}, s.ToggleSort(sorting.FieldName))
	view = s.View(today, domain.ExpiringSoonDays)
	assert.Equal(t, []int64{2, 3, 1}, viewIDs(view))

	milkRow := view.Items[2]
	assert.Equal(t, 5, milkRow.TotalQuantity)
	assert.Equal(t, domain.InStock, milkRow.StockStatus)
	assert.Equal(t, domain.ExpiringSoon, milkRow.Batches[0].ExpiryStatus)
	assert.Equal(t, domain.Expired, milkRow.Batches[1].ExpiryStatus)
	assert.Equal(t, domain.LowStock, view.Items[0].StockStatus)
	assert.Equal(t, 0, view.Items[1].TotalQuantity)

	// Sort state survives a reload
	_, err = s.FetchItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sorting.Ascending, s.SortState().Direction)

	assert.Equal(t, []string{"Dairy", "dairy"}, s.Categories("DAI"))
	assert.Equal(t, []string{}, s.Categories("xyz"))
}

func viewIDs(view InventoryView) []int64 {
	ids := make([]int64, len(view.Items))
	for i, item := range view.Items {
		ids[i] = item.ID
	}
	return ids
}

func TestParseRowKind(t *testing.T) {
	kind, ok := ParseRowKind("batch")
	assert.True(t, ok)
	assert.Equal(t, BatchRow, kind)
	_, ok = ParseRowKind("user")
	assert.False(t, ok)
	assert.Equal(t, "item/4", ItemKey(4).String())
}

func TestPublishFailureDoesNotFailMutation(t *testing.T) {
	api := new(MockItemsAPI)
	s := NewInventoryStore(api, failingPublisher{}, zap.NewNop())
	api.On("DeleteItem", mock.Anything, int64(1)).Return(nil)

	assert.NoError(t, s.DeleteItem(context.Background(), 1))
}

type failingPublisher struct{}

func (failingPublisher) Publish(ctx context.Context, event events.Event) error {
	return errors.New("broker down")
}
