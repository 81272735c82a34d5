// Package entity contains the core business objects of the project.
package entity

// Cuisine is a catalogue entry describing a regional style of food.
// The (Name, Category, Subcategory, Region) tuple is unique across the table.
type Cuisine struct {
	ID          int64  // Store-assigned surrogate key.
	Name        string // Display name, e.g. "Nyonya".
	Category    string
	Subcategory string
	Region      string
}
