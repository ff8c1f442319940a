package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/models"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/services"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/storage"
)

type RatingController struct {
	store   storage.Storage
	ratings *services.RatingService
}

func NewRatingController(store storage.Storage, ratings *services.RatingService) *RatingController {
	return &RatingController{store: store, ratings: ratings}
}

func (rc *RatingController) ListForRecipe(c *gin.Context) {
	ratings, err := rc.store.RecipeRatings(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch recipe ratings"})
		return
	}
	c.JSON(http.StatusOK, ratings)
}

func (rc *RatingController) Summary(c *gin.Context) {
	summary, err := rc.ratings.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch rating summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (rc *RatingController) Create(c *gin.Context) {
	var in models.InsertRecipeRating
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid rating data", "errors": err.Error()})
		return
	}
	rating, err := rc.store.CreateRecipeRating(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create rating"})
		return
	}
	c.JSON(http.StatusCreated, rating)
}

func (rc *RatingController) Update(c *gin.Context) {
	var in models.UpdateRecipeRating
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid rating data", "errors": err.Error()})
		return
	}
	rating, err := rc.store.UpdateRecipeRating(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update rating"})
		return
	}
	if rating == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Rating not found"})
		return
	}
	c.JSON(http.StatusOK, rating)
}
