// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core account entity of the store.
// The password is persisted exactly as provided; credential handling is
// outside the scope of this layer.
type User struct {
	ID               uint      // Auto-incremented identifier for the user.
	Name             string    // The user's display name, up to 100 characters.
	Email            string    // The user's email address, unique across all users.
	Password         string    // The raw password value, up to 128 characters.
	PhoneNumber      *string   // Optional phone number, up to 15 characters.
	Address          *string   // Optional free-form postal address.
	RegistrationDate time.Time // Assigned by the store at creation and never updated afterwards.
}
