package model

import "github.com/google/uuid"

// Category groups products; names are unique.
type Category struct {
	ID    uuid.UUID
	Name  string
	Color string
	Icon  string
}
