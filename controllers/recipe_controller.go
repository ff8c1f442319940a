package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/models"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/storage"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/utils"
)

type RecipeController struct {
	store  storage.Storage
	images *utils.ImageStore
}

func NewRecipeController(store storage.Storage, images *utils.ImageStore) *RecipeController {
	return &RecipeController{store: store, images: images}
}

func (rc *RecipeController) List(c *gin.Context) {
	recipes, err := rc.store.Recipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch recipes"})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (rc *RecipeController) Get(c *gin.Context) {
	recipe, err := rc.store.RecipeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch recipe"})
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (rc *RecipeController) Create(c *gin.Context) {
	var in models.InsertRecipe
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recipe data", "errors": err.Error()})
		return
	}
	recipe, err := rc.store.CreateRecipe(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create recipe"})
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (rc *RecipeController) Update(c *gin.Context) {
	var in models.UpdateRecipe
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recipe data", "errors": err.Error()})
		return
	}
	recipe, err := rc.store.UpdateRecipe(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update recipe"})
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (rc *RecipeController) Delete(c *gin.Context) {
	deleted, err := rc.store.DeleteRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete recipe"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

type uploadImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UploadImage stores a base64 image in S3 and attaches its URL to the
// recipe. Returns 503 when uploads are not configured.
func (rc *RecipeController) UploadImage(c *gin.Context) {
	if !rc.images.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Image uploads are not configured"})
		return
	}
	var req uploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid image data", "errors": err.Error()})
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")
	recipe, err := rc.store.RecipeByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch recipe"})
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
		return
	}
	url, err := rc.images.UploadBase64Image(ctx, req.ImageBase64, "recipe-images/"+id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Upload failed", "detail": err.Error()})
		return
	}
	updated, err := rc.store.UpdateRecipe(ctx, id, models.UpdateRecipe{ImageURL: &url})
	if err != nil || updated == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update recipe"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
