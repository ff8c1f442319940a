package services

import (
	"context"

	"github.com/b-koppenhaver/Meal-Planning-Prototype-Replit/storage"
)

type RatingSummary struct {
	RecipeID string  `json:"recipeId"`
	Count    int     `json:"count"`
	Average  float64 `json:"average"` // 0 when unrated
}

// RatingService is the single place rating aggregation happens; every
// view that shows an average calls this instead of rolling its own.
type RatingService struct {
	store storage.Storage
}

func NewRatingService(store storage.Storage) *RatingService {
	return &RatingService{store: store}
}

func (s *RatingService) Summary(ctx context.Context, recipeID string) (*RatingSummary, error) {
	ratings, err := s.store.RecipeRatings(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	summary := &RatingSummary{RecipeID: recipeID, Count: len(ratings)}
	if len(ratings) == 0 {
		return summary, nil
	}
	total := 0
	for _, r := range ratings {
		total += r.Rating
	}
	summary.Average = float64(total) / float64(len(ratings))
	return summary, nil
}
