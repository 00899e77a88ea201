package domain

// StockStatus is the three-tier label derived from an item's total quantity
type StockStatus string

const (
	LowStock    StockStatus = "Low Stock"
	MediumStock StockStatus = "Medium Stock"
	InStock     StockStatus = "In Stock"
)

// ExpiryStatus is the label derived from a batch's expire date
type ExpiryStatus string

const (
	Fresh        ExpiryStatus = "Fresh"
	ExpiringSoon ExpiryStatus = "Expiring Soon"
	Expired      ExpiryStatus = "Expired"
)

// ExpiringSoonDays is the width of the expiring-soon window in calendar days.
const ExpiringSoonDays = 30

// TotalQuantity sums batch quantities. An empty or nil slice yields 0.
func TotalQuantity(batches []Batch) int {
	total := 0
	for _, b := range batches {
		total += b.Quantity
	}
	return total
}

// StockStatusFor classifies a total quantity: <=1 low, 2..3 medium, >=4 in stock.
func StockStatusFor(total int) StockStatus {
	switch {
	case total <= 1:
		return LowStock
	case total <= 3:
		return MediumStock
	default:
		return InStock
	}
}

// ExpiryStatusFor classifies an expire date against today using the default window.
func ExpiryStatusFor(expireDate *Date, today Date) ExpiryStatus {
	return ExpiryStatusWithin(expireDate, today, ExpiringSoonDays)
}

// ExpiryStatusWithin classifies by calendar day. A nil date never expires.
// Dates from today through today+window (inclusive) are expiring soon.
func ExpiryStatusWithin(expireDate *Date, today Date, window int) ExpiryStatus {
	if expireDate == nil {
		return Fresh
	}
	days := today.DaysUntil(*expireDate)
	switch {
	case days < 0:
		return Expired
	case days <= window:
		return ExpiringSoon
	default:
		return Fresh
	}
}

// BatchView is a batch annotated with its expiry status
type BatchView struct {
	Batch
	ExpiryStatus ExpiryStatus `json:"expiry_status"`
}

// ItemView is an item annotated with its derived totals
type ItemView struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	Category      string      `json:"category"`
	TotalQuantity int         `json:"total_quantity"`
	StockStatus   StockStatus `json:"stock_status"`
	Batches       []BatchView `json:"batches"`
}

// Aggregate derives the displayed totals and statuses of item as of today.
func Aggregate(item Item, today Date, window int) ItemView {
	total := item.TotalQuantity()
	view := ItemView{
		ID:            item.ID,
		Name:          item.Name,
		Category:      item.Category,
		TotalQuantity: total,
		StockStatus:   StockStatusFor(total),
		Batches:       make([]BatchView, len(item.Batches)),
	}
	for i, b := range item.Batches {
		view.Batches[i] = BatchView{
			Batch:        b,
			ExpiryStatus: ExpiryStatusWithin(b.ExpireDate, today, window),
		}
	}
	return view
}
