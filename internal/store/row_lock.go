package store

import (
	"context"
	"fmt"
	"sync"
)

// RowKind distinguishes item rows from batch rows
type RowKind string

const (
	ItemRow  RowKind = "item"
	BatchRow RowKind = "batch"
)

// ParseRowKind maps a path segment to a RowKind
func ParseRowKind(s string) (RowKind, bool) {
	switch RowKind(s) {
	case ItemRow, BatchRow:
		return RowKind(s), true
	default:
		return "", false
	}
}

// RowKey identifies one mutable row
type RowKey struct {
	Kind RowKind
	ID   int64
}

func ItemKey(id int64) RowKey  { return RowKey{Kind: ItemRow, ID: id} }
func BatchKey(id int64) RowKey { return RowKey{Kind: BatchRow, ID: id} }

func (k RowKey) String() string {
	return fmt.Sprintf("%s/%d", k.Kind, k.ID)
}

// rowLocks serializes mutations per row. Waiters queue until the holder
// releases or their context ends. Rows with different keys never block each other.
type rowLocks struct {
	mu    sync.Mutex
	locks map[RowKey]*rowLock
}

type rowLock struct {
	sem  chan struct{}
	refs int
}

func newRowLocks() *rowLocks {
	return &rowLocks{locks: make(map[RowKey]*rowLock)}
}

func (l *rowLocks) acquire(ctx context.Context, key RowKey) (func(), error) {
	l.mu.Lock()
	lk, ok := l.locks[key]
	if !ok {
		lk = &rowLock{sem: make(chan struct{}, 1)}
		l.locks[key] = lk
	}
	lk.refs++
	l.mu.Unlock()

	select {
	case lk.sem <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-lk.sem
				l.unref(key, lk)
			})
		}, nil
	case <-ctx.Done():
		l.unref(key, lk)
		return nil, ctx.Err()
	}
}

func (l *rowLocks) unref(key RowKey, lk *rowLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	lk.refs--
	if lk.refs == 0 {
		delete(l.locks, key)
	}
}

// held reports the number of goroutines holding or waiting for key
func (l *rowLocks) held(key RowKey) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lk, ok := l.locks[key]; ok {
		return lk.refs
	}
	return 0
}
