package models

// User represents a registered tracker user held in the in-memory directory.
type User struct {
	ID       string `json:"_id"`      // Opaque unique id (uuid v4), assigned at creation
	Username string `json:"username"` // Display name, duplicates allowed
}
