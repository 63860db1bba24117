package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"restaurant/internal/domain/model"

	"gopkg.in/yaml.v3"
)

var ErrInvalidCatalog = errors.New("invalid meal catalog")

// Catalog is a read-only set of meals. It is safe for concurrent use because
// nothing mutates it after construction.
type Catalog struct {
	meals []model.MealInfo
	byID  map[model.MealID]model.MealInfo
}

func New(meals ...model.MealInfo) (*Catalog, error) {
	byID := make(map[model.MealID]model.MealInfo, len(meals))
	for _, meal := range meals {
		if meal.ID == 0 {
			return nil, fmt.Errorf("%w: meal ids start at 1", ErrInvalidCatalog)
		}
		if meal.Name == "" {
			return nil, fmt.Errorf("%w: meal %d has no name", ErrInvalidCatalog, meal.ID)
		}
		if meal.CookingTime <= 0 {
			return nil, fmt.Errorf("%w: meal %d has non-positive cooking time", ErrInvalidCatalog, meal.ID)
		}
		// stored timestamps have microsecond precision
		if meal.CookingTime%time.Microsecond != 0 {
			return nil, fmt.Errorf("%w: meal %d cooking time %s is not a whole number of microseconds", ErrInvalidCatalog, meal.ID, meal.CookingTime)
		}
		if _, dup := byID[meal.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate meal id %d", ErrInvalidCatalog, meal.ID)
		}
		byID[meal.ID] = meal
	}

	sorted := slices.Clone(meals)
	slices.SortFunc(sorted, func(a, b model.MealInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return &Catalog{meals: sorted, byID: byID}, nil
}

func Default() *Catalog {
	c, err := New(
		model.MealInfo{ID: 1, Name: "Green Tea", CookingTime: time.Minute},
		model.MealInfo{ID: 2, Name: "Americano Coffee", CookingTime: 2 * time.Minute},
		model.MealInfo{ID: 3, Name: "Omelette", CookingTime: 5 * time.Minute},
		model.MealInfo{ID: 4, Name: "Fried Egg", CookingTime: 3 * time.Minute},
		model.MealInfo{ID: 5, Name: "Club Sandwich", CookingTime: 6 * time.Minute},
		model.MealInfo{ID: 6, Name: "Fried Rice", CookingTime: 4 * time.Minute},
	)
	if err != nil {
		panic(err)
	}
	return c
}

type fileMeal struct {
	ID          model.MealID  `yaml:"id"`
	Name        string        `yaml:"name"`
	CookingTime time.Duration `yaml:"cooking_time"`
}

type file struct {
	Meals []fileMeal `yaml:"meals"`
}

// LoadFile reads a catalog from a YAML document of the form
//
//	meals:
//	  - id: 1
//	    name: Green Tea
//	    cooking_time: 1m
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	if len(f.Meals) == 0 {
		return nil, fmt.Errorf("%w: no meals defined", ErrInvalidCatalog)
	}

	meals := make([]model.MealInfo, 0, len(f.Meals))
	for _, m := range f.Meals {
		meals = append(meals, model.MealInfo{ID: m.ID, Name: m.Name, CookingTime: m.CookingTime})
	}
	return New(meals...)
}

func (c *Catalog) Lookup(id model.MealID) (model.MealInfo, bool) {
	meal, ok := c.byID[id]
	return meal, ok
}

// All returns the meals ordered by id. The slice is a copy.
func (c *Catalog) All() []model.MealInfo {
	return slices.Clone(c.meals)
}
