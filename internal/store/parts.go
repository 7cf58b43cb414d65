package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fieldbase/internal/model"
	"fieldbase/internal/stock"
)

// ErrPartNotFound is returned by AdjustPartStock for missing or deleted parts.
var ErrPartNotFound = errors.New("part not found")

// CreatePart creates a new inventory part. Quantity and reorder level
// default to 0 when negative values are passed.
func CreatePart(ctx context.Context, db *sql.DB, name, sku, unit string, quantity, reorderLevel int, serialized bool) (*model.Part, error) {
	if quantity < 0 {
		quantity = 0
	}
	if reorderLevel < 0 {
		reorderLevel = 0
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO parts (name, sku, unit, quantity, reorder_level, serialized)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		name, sku, unit, quantity, reorderLevel, serialized,
	)
	if err != nil {
		return nil, fmt.Errorf("creating part: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting part id: %w", err)
	}

	return GetPart(ctx, db, id)
}

// GetPart returns a part by ID.
func GetPart(ctx context.Context, db *sql.DB, id int64) (*model.Part, error) {
	p := &model.Part{}
	var sku, unit sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, sku, unit, quantity, reorder_level, serialized, created_at, updated_at, deleted_at
		 FROM parts WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &sku, &unit, &p.Quantity, &p.ReorderLevel, &p.Serialized, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting part: %w", err)
	}
	p.SKU = sku.String
	p.Unit = unit.String
	return p, nil
}

// ListParts returns all non-deleted parts ordered by name.
func ListParts(ctx context.Context, db *sql.DB) ([]model.Part, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, sku, unit, quantity, reorder_level, serialized, created_at, updated_at, deleted_at
		 FROM parts WHERE deleted_at IS NULL ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing parts: %w", err)
	}
	defer rows.Close()

	var parts []model.Part
	for rows.Next() {
		var p model.Part
		var sku, unit sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &sku, &unit, &p.Quantity, &p.ReorderLevel, &p.Serialized, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
			return nil, fmt.Errorf("scanning part: %w", err)
		}
		p.SKU = sku.String
		p.Unit = unit.String
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

// UpdatePart updates a part's metadata. Quantity is deliberately excluded:
// stock changes only through AdjustPartStock.
func UpdatePart(ctx context.Context, db *sql.DB, id int64, name, sku, unit string, reorderLevel int, serialized bool) error {
	if reorderLevel < 0 {
		reorderLevel = 0
	}

	_, err := db.ExecContext(ctx,
		`UPDATE parts SET name = ?, sku = ?, unit = ?, reorder_level = ?, serialized = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		name, sku, unit, reorderLevel, serialized, id,
	)
	if err != nil {
		return fmt.Errorf("updating part: %w", err)
	}
	return nil
}

// DeletePart soft-deletes a part.
func DeletePart(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx,
		`UPDATE parts SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("deleting part: %w", err)
	}
	return nil
}

// AdjustPartStock applies a validated stock adjustment in a single
// transaction: read the current quantity, run the pure ledger arithmetic,
// persist the new quantity, and record the movement. The recorded delta is
// the quantity actually applied, so a clamped subtraction stores only what
// was removed. On any failure nothing changes and the error is returned;
// ledger validation errors come back as *stock.InvalidAdjustmentError.
func AdjustPartStock(ctx context.Context, db *sql.DB, partID int64, delta int, direction stock.Direction, notes string, userID *int64) (*model.Part, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var current int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(quantity, 0) FROM parts WHERE id = ? AND deleted_at IS NULL`, partID,
	).Scan(&current)
	if err == sql.ErrNoRows {
		return nil, ErrPartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("checking current quantity: %w", err)
	}

	newQty, err := stock.Adjust(current, delta, direction)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE parts SET quantity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		newQty, partID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating quantity: %w", err)
	}

	applied := newQty - current
	if applied < 0 {
		applied = -applied
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO stock_movements (part_id, delta, direction, notes, moved_by)
		 VALUES (?, ?, ?, ?, ?)`,
		partID, applied, string(direction), notes, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("recording movement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing adjustment: %w", err)
	}

	return GetPart(ctx, db, partID)
}

// ListPartMovements returns the movement history for a part, newest first.
func ListPartMovements(ctx context.Context, db *sql.DB, partID int64) ([]model.StockMovement, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT m.id, m.part_id, m.delta, m.direction, m.notes, m.moved_at, m.moved_by, p.name
		 FROM stock_movements m JOIN parts p ON p.id = m.part_id
		 WHERE m.part_id = ?
		 ORDER BY m.moved_at DESC, m.id DESC`, partID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing part movements: %w", err)
	}
	defer rows.Close()

	var movements []model.StockMovement
	for rows.Next() {
		var m model.StockMovement
		var notes sql.NullString
		if err := rows.Scan(&m.ID, &m.PartID, &m.Delta, &m.Direction, &notes, &m.MovedAt, &m.MovedBy, &m.PartName); err != nil {
			return nil, fmt.Errorf("scanning movement: %w", err)
		}
		m.Notes = notes.String
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
