// Package entity contains the core business objects of the project.
package entity

// Category is a node in the category tree. A nil ParentID marks a root
// category. The schema itself does not prevent a category from becoming its
// own ancestor, so the persistence layer validates acyclicity on every parent
// reassignment and during traversal.
type Category struct {
	ID          uint    // Auto-incremented identifier for the category.
	ParentID    *uint   // Optional reference to the parent category.
	Title       string  // Category name, up to 50 characters.
	Description string  // Free-form description, empty by default.
	Avatar      *string // Optional media reference path (e.g. "categories/<key>.png").
}
