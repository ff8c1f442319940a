package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/models"
)

// MemStorage keeps every table in a plain map. It backs local dev and
// the test suite; a single RWMutex covers all tables, which is plenty
// for one household.
type MemStorage struct {
	mu sync.RWMutex

	recipes      map[string]models.Recipe
	mealPlans    map[string]models.MealPlan
	ratings      map[string]models.RecipeRating
	groceryItems map[string]models.GroceryItem
	pantryItems  map[string]models.PantryItem
	stores       map[string]models.Store
	preferences  map[string]models.IngredientStorePreference
}

var _ Storage = (*MemStorage)(nil)

func NewMemStorage() *MemStorage {
	return &MemStorage{
		recipes:      make(map[string]models.Recipe),
		mealPlans:    make(map[string]models.MealPlan),
		ratings:      make(map[string]models.RecipeRating),
		groceryItems: make(map[string]models.GroceryItem),
		pantryItems:  make(map[string]models.PantryItem),
		stores:       make(map[string]models.Store),
		preferences:  make(map[string]models.IngredientStorePreference),
	}
}

func newID() string { return uuid.NewString() }

// Recipes

func (m *MemStorage) Recipes(ctx context.Context) ([]models.Recipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Recipe, 0, len(m.recipes))
	for _, r := range m.recipes {
		out = append(out, r)
	}
	return out, nil
}

func (m *MemStorage) RecipeByID(ctx context.Context, id string) (*models.Recipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.recipes[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *MemStorage) CreateRecipe(ctx context.Context, in models.InsertRecipe) (*models.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := models.Recipe{
		ID:                newID(),
		Name:              in.Name,
		Cuisine:           in.Cuisine,
		PrepTime:          in.PrepTime,
		Servings:          in.Servings,
		Ingredients:       models.StringList(in.Ingredients),
		Instructions:      in.Instructions,
		Tags:              models.StringList(in.Tags),
		MakesLeftovers:    in.MakesLeftovers,
		NonPerishableBase: in.NonPerishableBase,
		ImageURL:          in.ImageURL,
		CreatedAt:         time.Now(),
	}
	m.recipes[r.ID] = r
	return &r, nil
}

func (m *MemStorage) UpdateRecipe(ctx context.Context, id string, in models.UpdateRecipe) (*models.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.recipes[id]
	if !ok {
		return nil, nil
	}
	if in.Name != nil {
		r.Name = *in.Name
	}
	if in.Cuisine != nil {
		r.Cuisine = *in.Cuisine
	}
	if in.PrepTime != nil {
		r.PrepTime = *in.PrepTime
	}
	if in.Servings != nil {
		r.Servings = *in.Servings
	}
	if in.Ingredients != nil {
		r.Ingredients = models.StringList(*in.Ingredients)
	}
	if in.Instructions != nil {
		r.Instructions = *in.Instructions
	}
	if in.Tags != nil {
		r.Tags = models.StringList(*in.Tags)
	}
	if in.MakesLeftovers != nil {
		r.MakesLeftovers = *in.MakesLeftovers
	}
	if in.NonPerishableBase != nil {
		r.NonPerishableBase = *in.NonPerishableBase
	}
	if in.ImageURL != nil {
		r.ImageURL = in.ImageURL
	}
	m.recipes[id] = r
	return &r, nil
}

func (m *MemStorage) DeleteRecipe(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.recipes[id]; !ok {
		return false, nil
	}
	delete(m.recipes, id)
	return true, nil
}

// Meal plans

func (m *MemStorage) MealPlansForWeek(ctx context.Context, weekStartDate string) ([]models.MealPlan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.MealPlan{}
	for _, p := range m.mealPlans {
		if p.WeekStartDate == weekStartDate {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemStorage) CreateMealPlan(ctx context.Context, in models.InsertMealPlan) (*models.MealPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := models.MealPlan{
		ID:             newID(),
		WeekStartDate:  in.WeekStartDate,
		DayOfWeek:      in.DayOfWeek,
		MealType:       in.MealType,
		RecipeID:       in.RecipeID,
		CustomMealName: in.CustomMealName,
		IsLeftover:     in.IsLeftover,
		CreatedAt:      time.Now(),
	}
	m.mealPlans[p.ID] = p
	return &p, nil
}

func (m *MemStorage) UpdateMealPlan(ctx context.Context, id string, in models.UpdateMealPlan) (*models.MealPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.mealPlans[id]
	if !ok {
		return nil, nil
	}
	if in.WeekStartDate != nil {
		p.WeekStartDate = *in.WeekStartDate
	}
	if in.DayOfWeek != nil {
		p.DayOfWeek = *in.DayOfWeek
	}
	if in.MealType != nil {
		p.MealType = *in.MealType
	}
	if in.RecipeID != nil {
		p.RecipeID = in.RecipeID
	}
	if in.CustomMealName != nil {
		p.CustomMealName = in.CustomMealName
	}
	if in.IsLeftover != nil {
		p.IsLeftover = *in.IsLeftover
	}
	m.mealPlans[id] = p
	return &p, nil
}

func (m *MemStorage) DeleteMealPlan(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.mealPlans[id]; !ok {
		return false, nil
	}
	// No cascade: grocery items that pointed at this slot stay behind.
	delete(m.mealPlans, id)
	return true, nil
}

// Recipe ratings

func (m *MemStorage) RecipeRatings(ctx context.Context, recipeID string) ([]models.RecipeRating, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.RecipeRating{}
	for _, r := range m.ratings {
		if r.RecipeID == recipeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MemStorage) CreateRecipeRating(ctx context.Context, in models.InsertRecipeRating) (*models.RecipeRating, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := models.RecipeRating{
		ID:           newID(),
		RecipeID:     in.RecipeID,
		FamilyMember: in.FamilyMember,
		Rating:       in.Rating,
		CreatedAt:    time.Now(),
	}
	m.ratings[r.ID] = r
	return &r, nil
}

func (m *MemStorage) UpdateRecipeRating(ctx context.Context, id string, in models.UpdateRecipeRating) (*models.RecipeRating, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.ratings[id]
	if !ok {
		return nil, nil
	}
	if in.FamilyMember != nil {
		r.FamilyMember = *in.FamilyMember
	}
	if in.Rating != nil {
		r.Rating = *in.Rating
	}
	m.ratings[id] = r
	return &r, nil
}

// Grocery items

func (m *MemStorage) GroceryItemsForWeek(ctx context.Context, weekStartDate string) ([]models.GroceryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.GroceryItem{}
	for _, g := range m.groceryItems {
		if g.WeekStartDate == weekStartDate {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *MemStorage) CreateGroceryItem(ctx context.Context, in models.InsertGroceryItem) (*models.GroceryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g := models.GroceryItem{
		ID:               newID(),
		Name:             in.Name,
		Category:         in.Category,
		Quantity:         in.Quantity,
		EstimatedPrice:   in.EstimatedPrice,
		PreferredStore:   in.PreferredStore,
		IsCompleted:      in.IsCompleted,
		IsFromMeal:       in.IsFromMeal,
		AssociatedMealID: in.AssociatedMealID,
		WeekStartDate:    in.WeekStartDate,
		CreatedAt:        time.Now(),
	}
	m.groceryItems[g.ID] = g
	return &g, nil
}

func (m *MemStorage) UpdateGroceryItem(ctx context.Context, id string, in models.UpdateGroceryItem) (*models.GroceryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.groceryItems[id]
	if !ok {
		return nil, nil
	}
	if in.Name != nil {
		g.Name = *in.Name
	}
	if in.Category != nil {
		g.Category = *in.Category
	}
	if in.Quantity != nil {
		g.Quantity = *in.Quantity
	}
	if in.EstimatedPrice != nil {
		g.EstimatedPrice = in.EstimatedPrice
	}
	if in.PreferredStore != nil {
		g.PreferredStore = *in.PreferredStore
	}
	if in.IsCompleted != nil {
		g.IsCompleted = *in.IsCompleted
	}
	if in.IsFromMeal != nil {
		g.IsFromMeal = *in.IsFromMeal
	}
	if in.AssociatedMealID != nil {
		g.AssociatedMealID = in.AssociatedMealID
	}
	if in.WeekStartDate != nil {
		g.WeekStartDate = *in.WeekStartDate
	}
	m.groceryItems[id] = g
	return &g, nil
}

func (m *MemStorage) DeleteGroceryItem(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.groceryItems[id]; !ok {
		return false, nil
	}
	delete(m.groceryItems, id)
	return true, nil
}

// Pantry items

func (m *MemStorage) PantryItems(ctx context.Context) ([]models.PantryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.PantryItem, 0, len(m.pantryItems))
	for _, p := range m.pantryItems {
		out = append(out, p)
	}
	return out, nil
}

func (m *MemStorage) CreatePantryItem(ctx context.Context, in models.InsertPantryItem) (*models.PantryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	p := models.PantryItem{
		ID:             newID(),
		Name:           in.Name,
		Category:       in.Category,
		Quantity:       in.Quantity,
		ExpirationDate: in.ExpirationDate,
		StockLevel:     in.StockLevel,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	m.pantryItems[p.ID] = p
	return &p, nil
}

func (m *MemStorage) UpdatePantryItem(ctx context.Context, id string, in models.UpdatePantryItem) (*models.PantryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pantryItems[id]
	if !ok {
		return nil, nil
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
	if in.ExpirationDate != nil {
		p.ExpirationDate = in.ExpirationDate
	}
	if in.StockLevel != nil {
		p.StockLevel = *in.StockLevel
	}
	p.UpdatedAt = time.Now()
	m.pantryItems[id] = p
	return &p, nil
}

func (m *MemStorage) DeletePantryItem(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pantryItems[id]; !ok {
		return false, nil
	}
	delete(m.pantryItems, id)
	return true, nil
}

// Stores

func (m *MemStorage) Stores(ctx context.Context) ([]models.Store, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Store, 0, len(m.stores))
	for _, s := range m.stores {
		out = append(out, s)
	}
	return out, nil
}

func (m *MemStorage) CreateStore(ctx context.Context, in models.InsertStore) (*models.Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := models.Store{
		ID:          newID(),
		Name:        in.Name,
		Categories:  models.StringList(in.Categories),
		IsPreferred: in.IsPreferred,
	}
	m.stores[s.ID] = s
	return &s, nil
}

func (m *MemStorage) UpdateStore(ctx context.Context, id string, in models.UpdateStore) (*models.Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stores[id]
	if !ok {
		return nil, nil
	}
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Categories != nil {
		s.Categories = models.StringList(*in.Categories)
	}
	if in.IsPreferred != nil {
		s.IsPreferred = *in.IsPreferred
	}
	m.stores[id] = s
	return &s, nil
}

func (m *MemStorage) DeleteStore(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.stores[id]; !ok {
		return false, nil
	}
	delete(m.stores, id)
	return true, nil
}

// Ingredient store preferences

func (m *MemStorage) StorePreferences(ctx context.Context, ingredient string) ([]models.IngredientStorePreference, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.IngredientStorePreference{}
	for _, p := range m.preferences {
		if ingredient == "" || p.Ingredient == ingredient {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemStorage) CreateStorePreference(ctx context.Context, in models.InsertIngredientStorePreference) (*models.IngredientStorePreference, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := models.IngredientStorePreference{
		ID:             newID(),
		Ingredient:     in.Ingredient,
		StoreID:        in.StoreID,
		PreferenceRank: in.PreferenceRank,
		CreatedAt:      time.Now(),
	}
	m.preferences[p.ID] = p
	return &p, nil
}

func (m *MemStorage) UpdateStorePreference(ctx context.Context, id string, in models.UpdateIngredientStorePreference) (*models.IngredientStorePreference, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.preferences[id]
	if !ok {
		return nil, nil
	}
	if in.Ingredient != nil {
		p.Ingredient = *in.Ingredient
	}
	if in.StoreID != nil {
		p.StoreID = *in.StoreID
	}
	if in.PreferenceRank != nil {
		p.PreferenceRank = *in.PreferenceRank
	}
	m.preferences[id] = p
	return &p, nil
}

func (m *MemStorage) DeleteStorePreference(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.preferences[id]; !ok {
		return false, nil
	}
	delete(m.preferences, id)
	return true, nil
}
