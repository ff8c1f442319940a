package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/models"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/services"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/storage"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/utils"
)

type MealPlanController struct {
	store storage.Storage
	hub   *services.RealtimeHub
}

func NewMealPlanController(store storage.Storage, hub *services.RealtimeHub) *MealPlanController {
	return &MealPlanController{store: store, hub: hub}
}

func (mc *MealPlanController) ForWeek(c *gin.Context) {
	week := c.Param("weekStartDate")
	if !utils.ValidWeekDate(week) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid week start date"})
		return
	}
	plans, err := mc.store.MealPlansForWeek(c.Request.Context(), week)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch meal plans"})
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (mc *MealPlanController) Create(c *gin.Context) {
	var in models.InsertMealPlan
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid meal plan data", "errors": err.Error()})
		return
	}
	plan, err := mc.store.CreateMealPlan(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create meal plan"})
		return
	}
	services.NotifyMealPlanChanged(mc.hub, "created", plan)
	c.JSON(http.StatusCreated, plan)
}

func (mc *MealPlanController) Update(c *gin.Context) {
	var in models.UpdateMealPlan
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid meal plan data", "errors": err.Error()})
		return
	}
	plan, err := mc.store.UpdateMealPlan(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update meal plan"})
		return
	}
	if plan == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Meal plan not found"})
		return
	}
	services.NotifyMealPlanChanged(mc.hub, "updated", plan)
	c.JSON(http.StatusOK, plan)
}

func (mc *MealPlanController) Delete(c *gin.Context) {
	deleted, err := mc.store.DeleteMealPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete meal plan"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": "Meal plan not found"})
		return
	}
	services.NotifyMealPlanChanged(mc.hub, "deleted", nil)
	c.Status(http.StatusNoContent)
}
