package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/models"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/services"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/storage"
)

type PantryController struct {
	store storage.Storage
	hub   *services.RealtimeHub
}

func NewPantryController(store storage.Storage, hub *services.RealtimeHub) *PantryController {
	return &PantryController{store: store, hub: hub}
}

func (pc *PantryController) List(c *gin.Context) {
	items, err := pc.store.PantryItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch pantry items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (pc *PantryController) Create(c *gin.Context) {
	var in models.InsertPantryItem
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid pantry item data", "errors": err.Error()})
		return
	}
	item, err := pc.store.CreatePantryItem(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create pantry item"})
		return
	}
	if item.LowStock() {
		services.NotifyLowStock(pc.hub, item)
	}
	c.JSON(http.StatusCreated, item)
}

func (pc *PantryController) Update(c *gin.Context) {
	var in models.UpdatePantryItem
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid pantry item data", "errors": err.Error()})
		return
	}
	item, err := pc.store.UpdatePantryItem(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update pantry item"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Pantry item not found"})
		return
	}
	if in.StockLevel != nil && item.LowStock() {
		services.NotifyLowStock(pc.hub, item)
	}
	c.JSON(http.StatusOK, item)
}

func (pc *PantryController) Delete(c *gin.Context) {
	deleted, err := pc.store.DeletePantryItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete pantry item"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Pantry item not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
