// Package entity contains the core business objects of the project.
package entity

// Product is a sellable item. Products form a tree through ParentID (variants
// under a base product) and may be linked to any number of categories.
//
// Price is deliberately a float64: the original schema declares it as a
// floating-point column while order totals use a fixed-point decimal. The
// inconsistency is reproduced, not corrected.
type Product struct {
	ID          uint        // Auto-incremented identifier for the product.
	ParentID    *uint       // Optional reference to the parent product.
	Name        string      // Product name, up to 50 characters.
	ImageURL    string      // Required media reference path (e.g. "products/<key>.png").
	Description *string     // Optional free-form description.
	Categories  []*Category // Categories this product belongs to, may be empty.
	Stock       int         // Units on hand. No non-negativity constraint is declared.
	Price       float64     // Unit price. No non-negativity constraint is declared.
}
