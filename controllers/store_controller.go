package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/models"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/storage"
)

type StoreController struct {
	store storage.Storage
}

func NewStoreController(store storage.Storage) *StoreController {
	return &StoreController{store: store}
}

func (sc *StoreController) List(c *gin.Context) {
	stores, err := sc.store.Stores(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stores"})
		return
	}
	c.JSON(http.StatusOK, stores)
}

func (sc *StoreController) Create(c *gin.Context) {
	var in models.InsertStore
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid store data", "errors": err.Error()})
		return
	}
	store, err := sc.store.CreateStore(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create store"})
		return
	}
	c.JSON(http.StatusCreated, store)
}

func (sc *StoreController) Update(c *gin.Context) {
	var in models.UpdateStore
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid store data", "errors": err.Error()})
		return
	}
	store, err := sc.store.UpdateStore(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update store"})
		return
	}
	if store == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Store not found"})
		return
	}
	c.JSON(http.StatusOK, store)
}

func (sc *StoreController) Delete(c *gin.Context) {
	deleted, err := sc.store.DeleteStore(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete store"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Store not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
