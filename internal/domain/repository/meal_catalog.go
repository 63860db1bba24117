package repository

import "restaurant/internal/domain/model"

type MealCatalog interface {
	Lookup(id model.MealID) (model.MealInfo, bool)
	All() []model.MealInfo
}
