package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/controllers"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/middlewares"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/services"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/storage"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/utils"
)

// Deps is everything the route table needs wired in.
type Deps struct {
	Store  storage.Storage
	Hub    *services.RealtimeHub
	Images *utils.ImageStore
	Log    *zap.SugaredLogger
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORS())

	recipeCtl := controllers.NewRecipeController(d.Store, d.Images)
	mealPlanCtl := controllers.NewMealPlanController(d.Store, d.Hub)
	ratingCtl := controllers.NewRatingController(d.Store, services.NewRatingService(d.Store))
	groceryCtl := controllers.NewGroceryController(d.Store, services.NewGroceryListService(d.Store, d.Hub, d.Log))
	pantryCtl := controllers.NewPantryController(d.Store, d.Hub)
	storeCtl := controllers.NewStoreController(d.Store)
	prefCtl := controllers.NewStorePreferenceController(d.Store, services.NewStorePreferenceService(d.Store))
	realtimeCtl := controllers.NewRealtimeController(d.Hub)

	api := r.Group("/api")
	{
		api.GET("/recipes", recipeCtl.List)
		api.GET("/recipes/:id", recipeCtl.Get)
		api.POST("/recipes", recipeCtl.Create)
		api.PUT("/recipes/:id", recipeCtl.Update)
		api.DELETE("/recipes/:id", recipeCtl.Delete)
		api.POST("/recipes/:id/image", recipeCtl.UploadImage)
		api.GET("/recipes/:id/ratings", ratingCtl.ListForRecipe)
		api.GET("/recipes/:id/rating-summary", ratingCtl.Summary)

		api.GET("/meal-plans/:weekStartDate", mealPlanCtl.ForWeek)
		api.POST("/meal-plans", mealPlanCtl.Create)
		api.PUT("/meal-plans/:id", mealPlanCtl.Update)
		api.DELETE("/meal-plans/:id", mealPlanCtl.Delete)

		api.POST("/recipe-ratings", ratingCtl.Create)
		api.PUT("/recipe-ratings/:id", ratingCtl.Update)

		api.GET("/grocery-items/:weekStartDate", groceryCtl.ForWeek)
		api.POST("/grocery-items", groceryCtl.Create)
		api.PUT("/grocery-items/:id", groceryCtl.Update)
		api.DELETE("/grocery-items/:id", groceryCtl.Delete)
		api.POST("/grocery-lists/generate/:weekStartDate", groceryCtl.Generate)

		api.GET("/pantry-items", pantryCtl.List)
		api.POST("/pantry-items", pantryCtl.Create)
		api.PUT("/pantry-items/:id", pantryCtl.Update)
		api.DELETE("/pantry-items/:id", pantryCtl.Delete)

		api.GET("/stores", storeCtl.List)
		api.POST("/stores", storeCtl.Create)
		api.PUT("/stores/:id", storeCtl.Update)
		api.DELETE("/stores/:id", storeCtl.Delete)

		api.GET("/store-preferences", prefCtl.List)
		api.GET("/store-preferences/resolve", prefCtl.Resolve)
		api.POST("/store-preferences", prefCtl.Create)
		api.PUT("/store-preferences/:id", prefCtl.Update)
		api.DELETE("/store-preferences/:id", prefCtl.Delete)
	}

	r.GET("/ws", realtimeCtl.Connect)

	return r
}
