package handlers

import (
	"net/http"

	"restaurant/internal/domain/model"
	"restaurant/internal/domain/repository"

	"github.com/gin-gonic/gin"
)

type mealResponse struct {
	ID          model.MealID `json:"id"`
	Name        string       `json:"name"`
	CookingTime int64        `json:"cooking_time"`
}

type MealHandler struct {
	catalog repository.MealCatalog
}

func NewMealHandler(catalog repository.MealCatalog) *MealHandler {
	return &MealHandler{catalog: catalog}
}

// List handles GET /meals. Cooking time is reported in whole seconds.
func (h *MealHandler) List(c *gin.Context) {
	meals := h.catalog.All()
	resp := make([]mealResponse, 0, len(meals))
	for _, m := range meals {
		resp = append(resp, mealResponse{
			ID:          m.ID,
			Name:        m.Name,
			CookingTime: int64(m.CookingTime.Seconds()),
		})
	}
	c.JSON(http.StatusOK, gin.H{"meals": resp})
}
