package store

import (
	apperrors "inventory-manager/pkg/errors"
)

// EditState is the per-row edit state shown by the UI
type EditState string

const (
	Viewing EditState = "viewing"
	Editing EditState = "editing"
	Saving  EditState = "saving"
)

// RowState is the edit state of a row and the error of its last failed mutation
type RowState struct {
	State     EditState `json:"state"`
	LastError string    `json:"last_error,omitempty"`
}

type rowEntry struct {
	editing   bool
	pending   int
	lastError string
}

func (e *rowEntry) state() RowState {
	s := RowState{State: Viewing, LastError: e.lastError}
	switch {
	case e.pending > 0:
		s.State = Saving
	case e.editing:
		s.State = Editing
	}
	return s
}

func (e *rowEntry) idle() bool {
	return !e.editing && e.pending == 0 && e.lastError == ""
}

// rowState must be called with s.mu held
func (s *InventoryStore) rowState(key RowKey) RowState {
	if e, ok := s.rows[key]; ok {
		return e.state()
	}
	return RowState{State: Viewing}
}

// RowState returns the current edit state of a row
func (s *InventoryStore) RowState(key RowKey) RowState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rowState(key)
}

// BeginEdit moves a row from viewing to editing. A row that is saving cannot
// be edited until the save completes.
func (s *InventoryStore) BeginEdit(key RowKey) (RowState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entry(key)
	if e.pending > 0 {
		return e.state(), apperrors.NewRowBusy(key.String())
	}
	e.editing = true
	e.lastError = ""
	return e.state(), nil
}

// CancelEdit returns an editing row to viewing without saving
func (s *InventoryStore) CancelEdit(key RowKey) RowState {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.rows[key]
	if !ok {
		return RowState{State: Viewing}
	}
	e.editing = false
	state := e.state()
	s.gc(key, e)
	return state
}

// DismissError clears the last error shown for a row
func (s *InventoryStore) DismissError(key RowKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.rows[key]; ok {
		e.lastError = ""
		s.gc(key, e)
	}
}

func (s *InventoryStore) entry(key RowKey) *rowEntry {
	e, ok := s.rows[key]
	if !ok {
		e = &rowEntry{}
		s.rows[key] = e
	}
	return e
}

func (s *InventoryStore) gc(key RowKey, e *rowEntry) {
	if e.idle() {
		delete(s.rows, key)
	}
}

// startSaving marks a mutation as pending on key, including while it waits its turn
func (s *InventoryStore) startSaving(key RowKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(key)
	e.pending++
	e.lastError = ""
}

// finishSaving ends a pending mutation. A successful save leaves edit mode;
// a failed one records the error and keeps the row editable.
func (s *InventoryStore) finishSaving(key RowKey, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entry(key)
	if e.pending > 0 {
		e.pending--
	}
	if err != nil {
		e.lastError = err.Error()
	} else {
		e.editing = false
	}
	s.gc(key, e)
}
