package model

import "time"

// Part represents an inventory item: a consumable or replacement part held
// in stock. Quantity is the authoritative count and changes only through
// stock adjustments; the stock status is derived from quantity and reorder
// level, never stored.
type Part struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	SKU          string     `json:"sku,omitempty"`
	Unit         string     `json:"unit,omitempty"`
	Quantity     int        `json:"quantity"`
	ReorderLevel int        `json:"reorder_level"`
	Serialized   bool       `json:"serialized"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// DisplayUnit returns the unit label, defaulting to "units" when unset.
func (p Part) DisplayUnit() string {
	if p.Unit == "" {
		return "units"
	}
	return p.Unit
}

// StockMovement records one applied stock adjustment for a part. Delta is
// stored post-clamp: a subtraction that would have gone negative records
// only the quantity actually removed.
type StockMovement struct {
	ID        int64     `json:"id"`
	PartID    int64     `json:"part_id"`
	Delta     int       `json:"delta"`
	Direction string    `json:"direction"`
	Notes     string    `json:"notes,omitempty"`
	MovedAt   time.Time `json:"moved_at"`
	MovedBy   *int64    `json:"moved_by,omitempty"`

	// Joined field (not always populated).
	PartName string `json:"part_name,omitempty"`
}
