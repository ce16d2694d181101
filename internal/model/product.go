// Package model defines the core domain types for the stock tracker.
package model

// Status classifies a product's stock level against its minimum threshold.
type Status string

const (
	// StatusOK means the quantity is above the minimum threshold.
	StatusOK Status = "ok"
	// StatusLow means the quantity is positive but at or below the minimum threshold.
	StatusLow Status = "low"
	// StatusOut means the product is out of stock.
	StatusOut Status = "out-of-stock"
)

// Label returns the short uppercase label used in grids and exports.
func (s Status) Label() string {
	switch s {
	case StatusLow:
		return "LOW"
	case StatusOut:
		return "OUT OF STOCK"
	default:
		return "OK"
	}
}

// DefaultUnit is the unit assigned to products that do not specify one.
const DefaultUnit = "pz"

// Product represents a trackable stock item.
type Product struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Unit         string `json:"unit"`
	ID           int64  `json:"id"`
	Quantity     int    `json:"quantity"`
	MinThreshold int    `json:"minThreshold"`
}

// ProductStatus derives the three-way stock status for a product.
// A zero quantity is always out-of-stock, regardless of the threshold.
// Every consumer (grid, alerts, counts, exports) goes through this function.
func ProductStatus(p Product) Status {
	if p.Quantity == 0 {
		return StatusOut
	}
	if p.Quantity <= p.MinThreshold {
		return StatusLow
	}
	return StatusOK
}
