package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/models"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/services"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/storage"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/utils"
)

type GroceryController struct {
	store     storage.Storage
	generator *services.GroceryListService
}

func NewGroceryController(store storage.Storage, generator *services.GroceryListService) *GroceryController {
	return &GroceryController{store: store, generator: generator}
}

func (gc *GroceryController) ForWeek(c *gin.Context) {
	week := c.Param("weekStartDate")
	if !utils.ValidWeekDate(week) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid week start date"})
		return
	}
	items, err := gc.store.GroceryItemsForWeek(c.Request.Context(), week)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch grocery items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (gc *GroceryController) Create(c *gin.Context) {
	var in models.InsertGroceryItem
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid grocery item data", "errors": err.Error()})
		return
	}
	item, err := gc.store.CreateGroceryItem(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create grocery item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (gc *GroceryController) Update(c *gin.Context) {
	var in models.UpdateGroceryItem
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid grocery item data", "errors": err.Error()})
		return
	}
	item, err := gc.store.UpdateGroceryItem(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update grocery item"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Grocery item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (gc *GroceryController) Delete(c *gin.Context) {
	deleted, err := gc.store.DeleteGroceryItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete grocery item"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Grocery item not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Generate rebuilds the meal-derived grocery list for one week and
// returns the newly created items.
func (gc *GroceryController) Generate(c *gin.Context) {
	week := c.Param("weekStartDate")
	if !utils.ValidWeekDate(week) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid week start date"})
		return
	}
	items, err := gc.generator.Generate(c.Request.Context(), week)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate grocery list"})
		return
	}
	c.JSON(http.StatusOK, items)
}
