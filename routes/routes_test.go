package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/models"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/services"
	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/storage"
)

func newTestRouter(t *testing.T) (*gin.Engine, *storage.MemStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mem := storage.NewMemStorage()
	r := SetupRouter(Deps{
		Store: mem,
		Hub:   services.NewRealtimeHub(),
	})
	return r, mem
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRecipeEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/recipes", gin.H{
		"name": "Beef Tacos", "cuisine": "Mexican", "prepTime": 30, "servings": 4,
		"ingredients": []string{"ground beef", "taco shells"},
		"instructions": "Brown the beef, assemble.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = doJSON(t, r, http.MethodGet, "/api/recipes/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/recipes/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// servings is required; the binding error is surfaced.
	w = doJSON(t, r, http.MethodPost, "/api/recipes", gin.H{
		"name": "Broken", "cuisine": "None",
		"ingredients": []string{"x"}, "instructions": "n/a",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid recipe data")

	w = doJSON(t, r, http.MethodPut, "/api/recipes/"+created.ID, gin.H{"name": "Weeknight Tacos"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Weeknight Tacos", updated.Name)
	assert.Equal(t, "Mexican", updated.Cuisine)

	w = doJSON(t, r, http.MethodDelete, "/api/recipes/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/api/recipes/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateEndpoint(t *testing.T) {
	r, mem := newTestRouter(t)
	ctx := context.Background()

	_, err := mem.CreateStore(ctx, models.InsertStore{Name: "Whole Foods", IsPreferred: true})
	require.NoError(t, err)
	recipe, err := mem.CreateRecipe(ctx, models.InsertRecipe{
		Name: "Spaghetti Carbonara", Cuisine: "Italian", Servings: 4,
		Ingredients:  []string{"spaghetti pasta", "eggs", "parmesan cheese", "bacon", "black pepper"},
		Instructions: "Cook.",
	})
	require.NoError(t, err)
	_, err = mem.CreateMealPlan(ctx, models.InsertMealPlan{
		WeekStartDate: "2024-01-15", DayOfWeek: 1, MealType: models.MealTypeDinner,
		RecipeID: &recipe.ID,
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/grocery-lists/generate/2024-01-15", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var items []models.GroceryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 5)
	for _, item := range items {
		assert.True(t, item.IsFromMeal)
		assert.Equal(t, "Whole Foods", item.PreferredStore)
		assert.Equal(t, "2024-01-15", item.WeekStartDate)
	}

	w = doJSON(t, r, http.MethodPost, "/api/grocery-lists/generate/next-week", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWeekParamValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/meal-plans/2024-01-15", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/meal-plans/garbage", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/grocery-items/garbage", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStorePreferenceResolveEndpoint(t *testing.T) {
	r, mem := newTestRouter(t)
	ctx := context.Background()

	costco, err := mem.CreateStore(ctx, models.InsertStore{Name: "Costco"})
	require.NoError(t, err)
	_, err = mem.CreateStorePreference(ctx, models.InsertIngredientStorePreference{
		Ingredient: "ground beef", StoreID: costco.ID, PreferenceRank: 1,
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/store-preferences/resolve?ingredient=ground+beef", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Costco")

	w = doJSON(t, r, http.MethodGet, "/api/store-preferences/resolve", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRatingEndpoints(t *testing.T) {
	r, mem := newTestRouter(t)
	ctx := context.Background()

	recipe, err := mem.CreateRecipe(ctx, models.InsertRecipe{
		Name: "Beef Tacos", Cuisine: "Mexican", Servings: 4,
		Ingredients: []string{"ground beef"}, Instructions: "Cook.",
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/recipe-ratings", gin.H{
		"recipeId": recipe.ID, "familyMember": "Alex", "rating": 3,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/recipe-ratings", gin.H{
		"recipeId": recipe.ID, "familyMember": "Sam", "rating": 5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "ratings above 3 are rejected")

	w = doJSON(t, r, http.MethodGet, "/api/recipes/"+recipe.ID+"/rating-summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary services.RatingSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 1, summary.Count)
	assert.InDelta(t, 3.0, summary.Average, 1e-9)
}

func TestImageUploadWithoutS3(t *testing.T) {
	r, mem := newTestRouter(t)
	ctx := context.Background()

	recipe, err := mem.CreateRecipe(ctx, models.InsertRecipe{
		Name: "Beef Tacos", Cuisine: "Mexican", Servings: 4,
		Ingredients: []string{"ground beef"}, Instructions: "Cook.",
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/recipes/"+recipe.ID+"/image", gin.H{
		"image_base64": "data:image/png;base64,aGVsbG8=",
	})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
