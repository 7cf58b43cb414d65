package stock

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		quantity     int
		reorderLevel int
		expected     Status
	}{
		// Zero quantity is out of stock regardless of the reorder level.
		{0, 0, OutOfStock},
		{0, 5, OutOfStock},
		{0, 100, OutOfStock},
		// At or below the reorder level is low stock.
		{1, 1, LowStock},
		{3, 5, LowStock},
		{5, 5, LowStock},
		// Above the reorder level is in stock.
		{6, 5, InStock},
		{1, 0, InStock},
		{100, 5, InStock},
	}

	for _, tt := range tests {
		got := Classify(tt.quantity, tt.reorderLevel)
		if got != tt.expected {
			t.Errorf("Classify(%d, %d) = %q, want %q", tt.quantity, tt.reorderLevel, got, tt.expected)
		}
	}
}

func TestAdjustAdd(t *testing.T) {
	got, err := Adjust(10, 5, Add)
	if err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if got != 15 {
		t.Errorf("expected 15, got %d", got)
	}
}

func TestAdjustSubtract(t *testing.T) {
	got, err := Adjust(10, 5, Subtract)
	if err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
}

func TestAdjustSubtractFloorsAtZero(t *testing.T) {
	// Subtracting more than is on hand empties the stock, no error.
	got, err := Adjust(3, 10, Subtract)
	if err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestAdjustRejectsInvalidDelta(t *testing.T) {
	tests := []struct {
		current   int
		delta     int
		direction Direction
	}{
		{10, 0, Add},
		{10, -1, Subtract},
		{10, -5, Add},
		{10, 5, Direction("remove")},
	}

	for _, tt := range tests {
		got, err := Adjust(tt.current, tt.delta, tt.direction)
		if err == nil {
			t.Errorf("Adjust(%d, %d, %q): expected error", tt.current, tt.delta, tt.direction)
			continue
		}
		var invalid *InvalidAdjustmentError
		if !errors.As(err, &invalid) {
			t.Errorf("Adjust(%d, %d, %q): expected InvalidAdjustmentError, got %T", tt.current, tt.delta, tt.direction, err)
		}
		// State must be unchanged on rejection.
		if got != tt.current {
			t.Errorf("Adjust(%d, %d, %q): quantity changed to %d on rejection", tt.current, tt.delta, tt.direction, got)
		}
	}
}

func TestParseDirection(t *testing.T) {
	if d, ok := ParseDirection("add"); !ok || d != Add {
		t.Errorf("ParseDirection(add) = %q, %v", d, ok)
	}
	if d, ok := ParseDirection("subtract"); !ok || d != Subtract {
		t.Errorf("ParseDirection(subtract) = %q, %v", d, ok)
	}
	if _, ok := ParseDirection("increment"); ok {
		t.Error("expected ParseDirection to reject unknown direction")
	}
}
