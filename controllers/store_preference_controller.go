package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/models"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/services"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/storage"
)

type StorePreferenceController struct {
	store    storage.Storage
	resolver *services.StorePreferenceService
}

func NewStorePreferenceController(store storage.Storage, resolver *services.StorePreferenceService) *StorePreferenceController {
	return &StorePreferenceController{store: store, resolver: resolver}
}

func (pc *StorePreferenceController) List(c *gin.Context) {
	prefs, err := pc.store.StorePreferences(c.Request.Context(), c.Query("ingredient"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch store preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (pc *StorePreferenceController) Create(c *gin.Context) {
	var in models.InsertIngredientStorePreference
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid store preference data", "errors": err.Error()})
		return
	}
	pref, err := pc.store.CreateStorePreference(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create store preference"})
		return
	}
	c.JSON(http.StatusCreated, pref)
}

func (pc *StorePreferenceController) Update(c *gin.Context) {
	var in models.UpdateIngredientStorePreference
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid store preference data", "errors": err.Error()})
		return
	}
	pref, err := pc.store.UpdateStorePreference(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update store preference"})
		return
	}
	if pref == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Store preference not found"})
		return
	}
	c.JSON(http.StatusOK, pref)
}

func (pc *StorePreferenceController) Delete(c *gin.Context) {
	deleted, err := pc.store.DeleteStorePreference(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete store preference"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Store preference not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Resolve answers "which store should I buy this ingredient at" from
// the ranked preference table, falling back to the preferred store.
func (pc *StorePreferenceController) Resolve(c *gin.Context) {
	ingredient := c.Query("ingredient")
	if ingredient == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ingredient query parameter is required"})
		return
	}
	store, err := pc.resolver.ResolveStore(c.Request.Context(), ingredient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to resolve store"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredient": ingredient, "store": store})
}
