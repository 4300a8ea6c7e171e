// Package entity contains the core business objects of the project.
package entity

// Cart is a user's shopping cart. Each user has at most one cart; the
// uniqueness is enforced by the store.
type Cart struct {
	ID     uint        // Auto-incremented identifier for the cart.
	UserID uint        // The owning user. Exactly one cart per user.
	Items  []*CartItem // Items currently in the cart.
}

// CartItem is a single product entry in a cart. Quantity must be at least 1;
// zero or negative quantities are rejected.
type CartItem struct {
	ID        uint // Auto-incremented identifier for the cart item.
	CartID    uint // The cart this item belongs to.
	ProductID uint // The referenced product.
	Quantity  int  // Number of units, always >= 1.
}
