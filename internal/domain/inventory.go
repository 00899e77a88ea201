package domain

import (
	"strings"
	"time"

	"inventory-manager/pkg/errors"
)

// Batch is a dated sub-quantity of an item's stock
type Batch struct {
	ID         int64     `json:"id"`
	ItemID     int64     `json:"item_id,omitempty"`
	Quantity   int       `json:"quantity"`
	ExpireDate *Date     `json:"expire_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// Item is an inventory record whose quantity is always derived from its batches
type Item struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Batches  []Batch `json:"batches"`
}

// TotalQuantity returns the sum of the item's batch quantities
func (i Item) TotalQuantity() int {
	return TotalQuantity(i.Batches)
}

// StockStatus classifies the item's total quantity
func (i Item) StockStatus() StockStatus {
	return StockStatusFor(i.TotalQuantity())
}

// Clone returns a deep copy so callers cannot mutate store-owned batches
func (i Item) Clone() Item {
	out := i
	if i.Batches != nil {
		out.Batches = make([]Batch, len(i.Batches))
		for n, b := range i.Batches {
			if b.ExpireDate != nil {
				d := *b.ExpireDate
				b.ExpireDate = &d
			}
			out.Batches[n] = b
		}
	}
	return out
}

// NewBatch describes a batch to be created; the server assigns id and created_at.
type NewBatch struct {
	Quantity   int   `json:"quantity"`
	ExpireDate *Date `json:"expire_date"`
}

// NewItem describes an item to be created together with its initial batches.
type NewItem struct {
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Batches  []NewBatch `json:"batches"`
}

// Validate rejects input before it reaches the network
func (n NewItem) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(n.Category) == "" {
		return ErrEmptyCategory
	}
	if len(n.Batches) == 0 {
		return ErrNoBatches
	}
	for _, b := range n.Batches {
		if err := ValidateQuantity(b.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// ValidateQuantity enforces quantity >= 1 at the write boundary
func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

// Role is a user's authorization level
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is referenced by the core only for display and authorization gating
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"is_active"`
}

// IsAdmin reports whether the user holds the admin role
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Domain errors
var (
	ErrEmptyName       = errors.NewValidationError("name is required", "name")
	ErrEmptyCategory   = errors.NewValidationError("category is required", "category")
	ErrNoBatches       = errors.NewValidationError("at least one batch is required", "batches")
	ErrInvalidQuantity = errors.NewValidationError("quantity must be at least 1", "quantity")
	ErrInvalidDate     = errors.NewValidationError("expire date must be YYYY-MM-DD", "expire_date")
	ErrUnknownField    = errors.NewValidationError("field cannot be edited", "field")
)
