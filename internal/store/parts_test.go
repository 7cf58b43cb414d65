package store

import (
	"context"
	"errors"
	"testing"

	"fieldbase/internal/db"
	"fieldbase/internal/stock"
)

func TestCreatePartDefaults(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	part, err := CreatePart(ctx, database, "Compressor valve", "CV-100", "pcs", -5, -1, false)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	if part.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", part.Quantity)
	}
	if part.ReorderLevel != 0 {
		t.Errorf("expected reorder level 0, got %d", part.ReorderLevel)
	}
}

func TestAdjustPartStockAdd(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	part, _ := CreatePart(ctx, database, "Filter", "", "", 10, 5, false)
	got, err := AdjustPartStock(ctx, database, part.ID, 5, stock.Add, "restock", nil)
	if err != nil {
		t.Fatalf("AdjustPartStock: %v", err)
	}
	if got.Quantity != 15 {
		t.Errorf("expected quantity 15, got %d", got.Quantity)
	}
}

func TestAdjustPartStockSubtractClampsAtZero(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	part, _ := CreatePart(ctx, database, "Filter", "", "", 3, 5, false)
	got, err := AdjustPartStock(ctx, database, part.ID, 10, stock.Subtract, "", nil)
	if err != nil {
		t.Fatalf("AdjustPartStock: %v", err)
	}
	if got.Quantity != 0 {
		t.Errorf("expected quantity clamped to 0, got %d", got.Quantity)
	}

	// The recorded movement carries only the quantity actually removed.
	movements, _ := ListPartMovements(ctx, database, part.ID)
	if len(movements) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(movements))
	}
	if movements[0].Delta != 3 {
		t.Errorf("expected movement delta 3, got %d", movements[0].Delta)
	}
	if movements[0].Direction != string(stock.Subtract) {
		t.Errorf("expected direction 'subtract', got %q", movements[0].Direction)
	}
}

func TestAdjustPartStockRejectsInvalidDelta(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	part, _ := CreatePart(ctx, database, "Filter", "", "", 10, 5, false)
	_, err := AdjustPartStock(ctx, database, part.ID, 0, stock.Add, "", nil)

	var invalid *stock.InvalidAdjustmentError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidAdjustmentError, got %v", err)
	}

	got, _ := GetPart(ctx, database, part.ID)
	if got.Quantity != 10 {
		t.Errorf("expected quantity unchanged at 10, got %d", got.Quantity)
	}
	movements, _ := ListPartMovements(ctx, database, part.ID)
	if len(movements) != 0 {
		t.Errorf("expected no movements after rejected adjustment, got %d", len(movements))
	}
}

func TestAdjustPartStockMissingPart(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := AdjustPartStock(ctx, database, 999, 5, stock.Add, "", nil); err == nil {
		t.Error("expected error for missing part")
	}
}

func TestAdjustPartStockRecordsMover(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "tech", "hash", "technician")
	part, _ := CreatePart(ctx, database, "Filter", "", "", 0, 5, false)
	AdjustPartStock(ctx, database, part.ID, 4, stock.Add, "initial stock", &user.ID)

	movements, _ := ListPartMovements(ctx, database, part.ID)
	if len(movements) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(movements))
	}
	if movements[0].MovedBy == nil || *movements[0].MovedBy != user.ID {
		t.Errorf("expected moved_by %d, got %v", user.ID, movements[0].MovedBy)
	}
	if movements[0].Notes != "initial stock" {
		t.Errorf("expected notes 'initial stock', got %q", movements[0].Notes)
	}
	if movements[0].PartName != "Filter" {
		t.Errorf("expected joined part name 'Filter', got %q", movements[0].PartName)
	}
}

func TestUpdatePartLeavesQuantityAlone(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	part, _ := CreatePart(ctx, database, "Filter", "", "", 7, 2, false)
	if err := UpdatePart(ctx, database, part.ID, "Air filter", "AF-1", "box", 4, true); err != nil {
		t.Fatalf("UpdatePart: %v", err)
	}

	got, _ := GetPart(ctx, database, part.ID)
	if got.Name != "Air filter" {
		t.Errorf("expected name 'Air filter', got %q", got.Name)
	}
	if got.Quantity != 7 {
		t.Errorf("expected quantity unchanged at 7, got %d", got.Quantity)
	}
	if got.ReorderLevel != 4 {
		t.Errorf("expected reorder level 4, got %d", got.ReorderLevel)
	}
	if !got.Serialized {
		t.Error("expected serialized flag set")
	}
}

func TestSoftDeletePart(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	part, _ := CreatePart(ctx, database, "Filter", "", "", 0, 0, false)
	DeletePart(ctx, database, part.ID)

	parts, _ := ListParts(ctx, database)
	if len(parts) != 0 {
		t.Errorf("expected 0 parts after soft delete, got %d", len(parts))
	}

	// Adjustments against a deleted part must fail.
	if _, err := AdjustPartStock(ctx, database, part.ID, 1, stock.Add, "", nil); err == nil {
		t.Error("expected error adjusting deleted part")
	}
}
