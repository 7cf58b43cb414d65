// Package stock implements the pure stock-level model for parts: status
// classification against a reorder level and validated add/subtract
// adjustments. Persistence lives in the store layer; everything here is
// side-effect free.
package stock

import "fmt"

// Status is the derived stock level of a part. It is computed from quantity
// and reorder level on demand and never stored.
type Status string

const (
	OutOfStock Status = "out_of_stock"
	LowStock   Status = "low_stock"
	InStock    Status = "in_stock"
)

// Direction is the sign of an adjustment.
type Direction string

const (
	Add      Direction = "add"
	Subtract Direction = "subtract"
)

// ParseDirection maps a request string to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case Add, Subtract:
		return Direction(s), true
	}
	return "", false
}

// Classify returns the stock status for a quantity and reorder level.
// Missing values must be coerced to 0 by the caller; with that convention
// the function is total.
func Classify(quantity, reorderLevel int) Status {
	switch {
	case quantity == 0:
		return OutOfStock
	case quantity <= reorderLevel:
		return LowStock
	default:
		return InStock
	}
}

// InvalidAdjustmentError reports an adjustment request that was rejected
// before any state change.
type InvalidAdjustmentError struct {
	Delta     int
	Direction Direction
	Reason    string
}

func (e *InvalidAdjustmentError) Error() string {
	return fmt.Sprintf("invalid adjustment (delta=%d, direction=%q): %s", e.Delta, e.Direction, e.Reason)
}

// Adjust applies a validated adjustment to the current quantity and returns
// the new quantity. Delta must be strictly positive; zero or negative deltas
// are rejected with InvalidAdjustmentError and current is returned unchanged.
// Subtraction floors at zero without signalling an error: subtracting more
// than is on hand empties the stock rather than going negative.
func Adjust(current, delta int, direction Direction) (int, error) {
	if delta <= 0 {
		return current, &InvalidAdjustmentError{
			Delta:     delta,
			Direction: direction,
			Reason:    "delta must be a positive integer",
		}
	}

	switch direction {
	case Add:
		return current + delta, nil
	case Subtract:
		next := current - delta
		if next < 0 {
			next = 0
		}
		return next, nil
	default:
		return current, &InvalidAdjustmentError{
			Delta:     delta,
			Direction: direction,
			Reason:    "direction must be add or subtract",
		}
	}
}
