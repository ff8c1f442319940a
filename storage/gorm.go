package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/models"
)

// GormStorage is the persistent backend, used with the postgres or
// sqlite driver. Ids are assigned here rather than by the database so
// both drivers behave identically.
type GormStorage struct {
	db *gorm.DB
}

var _ Storage = (*GormStorage)(nil)

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

// AutoMigrate creates or updates the schema for every entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Recipe{},
		&models.MealPlan{},
		&models.RecipeRating{},
		&models.GroceryItem{},
		&models.PantryItem{},
		&models.Store{},
		&models.IngredientStorePreference{},
	)
}

// Recipes

func (s *GormStorage) Recipes(ctx context.Context) ([]models.Recipe, error) {
	var out []models.Recipe
	if err := s.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return out, nil
}

func (s *GormStorage) RecipeByID(ctx context.Context, id string) (*models.Recipe, error) {
	var r models.Recipe
	err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return &r, nil
}

func (s *GormStorage) CreateRecipe(ctx context.Context, in models.InsertRecipe) (*models.Recipe, error) {
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
	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return &r, nil
}

func (s *GormStorage) UpdateRecipe(ctx context.Context, id string, in models.UpdateRecipe) (*models.Recipe, error) {
	var r models.Recipe
	err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
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
	if err := s.db.WithContext(ctx).Save(&r).Error; err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	return &r, nil
}

func (s *GormStorage) DeleteRecipe(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("delete recipe: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Meal plans

func (s *GormStorage) MealPlansForWeek(ctx context.Context, weekStartDate string) ([]models.MealPlan, error) {
	var out []models.MealPlan
	if err := s.db.WithContext(ctx).Where("week_start_date = ?", weekStartDate).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list meal plans: %w", err)
	}
	return out, nil
}

func (s *GormStorage) CreateMealPlan(ctx context.Context, in models.InsertMealPlan) (*models.MealPlan, error) {
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
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, fmt.Errorf("create meal plan: %w", err)
	}
	return &p, nil
}

func (s *GormStorage) UpdateMealPlan(ctx context.Context, id string, in models.UpdateMealPlan) (*models.MealPlan, error) {
	var p models.MealPlan
	err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update meal plan: %w", err)
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
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, fmt.Errorf("update meal plan: %w", err)
	}
	return &p, nil
}

func (s *GormStorage) DeleteMealPlan(ctx context.Context, id string) (bool, error) {
	// No cascade to grocery items, matching the in-memory backend.
	res := s.db.WithContext(ctx).Delete(&models.MealPlan{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("delete meal plan: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Recipe ratings

func (s *GormStorage) RecipeRatings(ctx context.Context, recipeID string) ([]models.RecipeRating, error) {
	var out []models.RecipeRating
	if err := s.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return out, nil
}

func (s *GormStorage) CreateRecipeRating(ctx context.Context, in models.InsertRecipeRating) (*models.RecipeRating, error) {
	r := models.RecipeRating{
		ID:           newID(),
		RecipeID:     in.RecipeID,
		FamilyMember: in.FamilyMember,
		Rating:       in.Rating,
		CreatedAt:    time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		return nil, fmt.Errorf("create rating: %w", err)
	}
	return &r, nil
}

func (s *GormStorage) UpdateRecipeRating(ctx context.Context, id string, in models.UpdateRecipeRating) (*models.RecipeRating, error) {
	var r models.RecipeRating
	err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update rating: %w", err)
	}
	if in.FamilyMember != nil {
		r.FamilyMember = *in.FamilyMember
	}
	if in.Rating != nil {
		r.Rating = *in.Rating
	}
	if err := s.db.WithContext(ctx).Save(&r).Error; err != nil {
		return nil, fmt.Errorf("update rating: %w", err)
	}
	return &r, nil
}

// Grocery items

func (s *GormStorage) GroceryItemsForWeek(ctx context.Context, weekStartDate string) ([]models.GroceryItem, error) {
	var out []models.GroceryItem
	if err := s.db.WithContext(ctx).Where("week_start_date = ?", weekStartDate).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list grocery items: %w", err)
	}
	return out, nil
}

func (s *GormStorage) CreateGroceryItem(ctx context.Context, in models.InsertGroceryItem) (*models.GroceryItem, error) {
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
	if err := s.db.WithContext(ctx).Create(&g).Error; err != nil {
		return nil, fmt.Errorf("create grocery item: %w", err)
	}
	return &g, nil
}

func (s *GormStorage) UpdateGroceryItem(ctx context.Context, id string, in models.UpdateGroceryItem) (*models.GroceryItem, error) {
	var g models.GroceryItem
	err := s.db.WithContext(ctx).First(&g, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update grocery item: %w", err)
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
	if err := s.db.WithContext(ctx).Save(&g).Error; err != nil {
		return nil, fmt.Errorf("update grocery item: %w", err)
	}
	return &g, nil
}

func (s *GormStorage) DeleteGroceryItem(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.GroceryItem{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("delete grocery item: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Pantry items

func (s *GormStorage) PantryItems(ctx context.Context) ([]models.PantryItem, error) {
	var out []models.PantryItem
	if err := s.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list pantry items: %w", err)
	}
	return out, nil
}

func (s *GormStorage) CreatePantryItem(ctx context.Context, in models.InsertPantryItem) (*models.PantryItem, error) {
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
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, fmt.Errorf("create pantry item: %w", err)
	}
	return &p, nil
}

func (s *GormStorage) UpdatePantryItem(ctx context.Context, id string, in models.UpdatePantryItem) (*models.PantryItem, error) {
	var p models.PantryItem
	err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update pantry item: %w", err)
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
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, fmt.Errorf("update pantry item: %w", err)
	}
	return &p, nil
}

func (s *GormStorage) DeletePantryItem(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.PantryItem{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("delete pantry item: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Stores

func (s *GormStorage) Stores(ctx context.Context) ([]models.Store, error) {
	var out []models.Store
	if err := s.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return out, nil
}

func (s *GormStorage) CreateStore(ctx context.Context, in models.InsertStore) (*models.Store, error) {
	st := models.Store{
		ID:          newID(),
		Name:        in.Name,
		Categories:  models.StringList(in.Categories),
		IsPreferred: in.IsPreferred,
	}
	if err := s.db.WithContext(ctx).Create(&st).Error; err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	return &st, nil
}

func (s *GormStorage) UpdateStore(ctx context.Context, id string, in models.UpdateStore) (*models.Store, error) {
	var st models.Store
	err := s.db.WithContext(ctx).First(&st, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update store: %w", err)
	}
	if in.Name != nil {
		st.Name = *in.Name
	}
	if in.Categories != nil {
		st.Categories = models.StringList(*in.Categories)
	}
	if in.IsPreferred != nil {
		st.IsPreferred = *in.IsPreferred
	}
	if err := s.db.WithContext(ctx).Save(&st).Error; err != nil {
		return nil, fmt.Errorf("update store: %w", err)
	}
	return &st, nil
}

func (s *GormStorage) DeleteStore(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Store{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("delete store: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Ingredient store preferences

func (s *GormStorage) StorePreferences(ctx context.Context, ingredient string) ([]models.IngredientStorePreference, error) {
	q := s.db.WithContext(ctx)
	if ingredient != "" {
		q = q.Where("ingredient = ?", ingredient)
	}
	var out []models.IngredientStorePreference
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list store preferences: %w", err)
	}
	return out, nil
}

func (s *GormStorage) CreateStorePreference(ctx context.Context, in models.InsertIngredientStorePreference) (*models.IngredientStorePreference, error) {
	p := models.IngredientStorePreference{
		ID:             newID(),
		Ingredient:     in.Ingredient,
		StoreID:        in.StoreID,
		PreferenceRank: in.PreferenceRank,
		CreatedAt:      time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, fmt.Errorf("create store preference: %w", err)
	}
	return &p, nil
}

func (s *GormStorage) UpdateStorePreference(ctx context.Context, id string, in models.UpdateIngredientStorePreference) (*models.IngredientStorePreference, error) {
	var p models.IngredientStorePreference
	err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update store preference: %w", err)
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
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, fmt.Errorf("update store preference: %w", err)
	}
	return &p, nil
}

func (s *GormStorage) DeleteStorePreference(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.IngredientStorePreference{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("delete store preference: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
