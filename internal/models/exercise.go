package models

// Exercise is one recorded exercise entry belonging to a single user.
// Entries are immutable once appended and keep their append order.
type Exercise struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"` // Whole minutes
	Date        string `json:"date"`     // Canonical date string, e.g. "Fri May 05 2023"
}
