package inventory

import (
	"fmt"

	"dispensa/internal/model"
)

// CategoryCount summarizes one category for the stats cards: how many
// products it holds, their combined quantity, and how many are below OK.
type CategoryCount struct {
	Category      model.Category
	Products      int
	TotalQuantity int
	Alerts        int
}

// CategoryCounts returns one summary per category, in collection order.
func (s *Store) CategoryCounts() []CategoryCount {
	counts := make([]CategoryCount, 0, len(s.categories))
	for _, c := range s.categories {
		cc := CategoryCount{Category: c}
		for _, p := range s.products {
			if p.Category != c.ID {
				continue
			}
			cc.Products++
			cc.TotalQuantity += p.Quantity
			if model.ProductStatus(p) != model.StatusOK {
				cc.Alerts++
			}
		}
		counts = append(counts, cc)
	}
	return counts
}

// Alert pairs a product with its derived non-OK status for the alerts list.
type Alert struct {
	Product model.Product
	Status  model.Status
}

// Message returns the user-facing alert text.
func (a Alert) Message() string {
	if a.Status == model.StatusLow {
		return fmt.Sprintf("low stock (%d/%d)", a.Product.Quantity, a.Product.MinThreshold)
	}
	return "out of stock"
}

// Alerts returns every product whose status is not OK, in collection order.
func (s *Store) Alerts() []Alert {
	var alerts []Alert
	for _, p := range s.products {
		if status := model.ProductStatus(p); status != model.StatusOK {
			alerts = append(alerts, Alert{Product: p, Status: status})
		}
	}
	return alerts
}
