// Package entity contains the core business objects of the project.
package entity

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending indicates the order has been placed but not fulfilled.
	OrderStatusPending OrderStatus = "Pending"
	// OrderStatusCompleted indicates the order has been fulfilled.
	OrderStatusCompleted OrderStatus = "Completed"
	// OrderStatusCanceled indicates the order was canceled.
	OrderStatusCanceled OrderStatus = "Canceled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is one of the enumerated values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCanceled:
		return true
	default:
		return false
	}
}
