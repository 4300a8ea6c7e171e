// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order records a purchase made by a user. No default status is declared;
// callers must supply one of the enumerated values.
type Order struct {
	ID          uint            // Auto-incremented identifier for the order.
	UserID      uint            // The user who placed the order.
	OrderDate   time.Time       // Assigned by the store at creation and never updated afterwards.
	Status      OrderStatus     // One of Pending, Completed, Canceled.
	TotalAmount decimal.Decimal // Fixed-point total, 10 digits with 2 fraction digits.
}
