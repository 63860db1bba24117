package model

import "time"

type MealID uint32

// MealInfo is a catalog entry. Values are never mutated after the catalog is built.
type MealInfo struct {
	ID          MealID
	Name        string
	CookingTime time.Duration
}
