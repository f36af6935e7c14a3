package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"unityplates-backend/models"

	"gorm.io/gorm"
)

// DefaultFeaturedLimit caps the featured ("top by quantity") view.
const DefaultFeaturedLimit = 6

// UpdateResult summarizes a partial update.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult reports how many rows a delete removed. Deleting an absent
// id is not an error; DeletedCount is simply zero.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

func (s *FoodService) Create(food *models.Food) error {
	if err := s.db.Create(food).Error; err != nil {
		return fmt.Errorf("insert food: %w", err)
	}
	return nil
}

// TopByQuantity returns the largest postings first, capped at limit.
func (s *FoodService) TopByQuantity(limit int) ([]models.Food, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	var foods []models.Food
	if err := s.db.Order("food_quantity DESC").Limit(limit).Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("list foods by quantity: %w", err)
	}
	return foods, nil
}

// AvailableByExpiry returns available foods ordered by expiry date,
// soonest-expiring first unless descending is set.
func (s *FoodService) AvailableByExpiry(descending bool) ([]models.Food, error) {
	order := "expired_date ASC"
	if descending {
		order = "expired_date DESC"
	}
	var foods []models.Food
	err := s.db.Where("status = ?", models.StatusAvailable).Order(order).Find(&foods).Error
	if err != nil {
		return nil, fmt.Errorf("list available foods: %w", err)
	}
	return foods, nil
}

// ByOwner returns the foods posted by the given donor email. Callers must
// have passed the ownership check first.
func (s *FoodService) ByOwner(email string) ([]models.Food, error) {
	var foods []models.Food
	if err := s.db.Where("owner_email = ?", email).Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("list foods by owner: %w", err)
	}
	return foods, nil
}

// SearchByName matches foodName by case-insensitive substring.
func (s *FoodService) SearchByName(search string) ([]models.Food, error) {
	pattern := "%" + strings.ToLower(search) + "%"
	var foods []models.Food
	if err := s.db.Where("LOWER(food_name) LIKE ?", pattern).Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("search foods: %w", err)
	}
	return foods, nil
}

func (s *FoodService) GetByID(id string) (*models.Food, error) {
	foodID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var food models.Food
	if err := s.db.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find food %d: %w", foodID, err)
	}
	return &food, nil
}

// UpdateByID merges the given columns into the existing row; columns not
// present are left untouched. Updating an absent id reports zero matches.
func (s *FoodService) UpdateByID(id string, fields map[string]interface{}) (UpdateResult, error) {
	foodID, err := parseID(id)
	if err != nil {
		return UpdateResult{}, err
	}
	if len(fields) == 0 {
		// Nothing to merge; report whether the row exists.
		var count int64
		if err := s.db.Model(&models.Food{}).Where("id = ?", foodID).Count(&count).Error; err != nil {
			return UpdateResult{}, fmt.Errorf("count food %d: %w", foodID, err)
		}
		return UpdateResult{MatchedCount: count}, nil
	}

	res := s.db.Model(&models.Food{}).Where("id = ?", foodID).Updates(fields)
	if res.Error != nil {
		return UpdateResult{}, fmt.Errorf("update food %d: %w", foodID, res.Error)
	}
	return UpdateResult{MatchedCount: res.RowsAffected, ModifiedCount: res.RowsAffected}, nil
}

// DeleteByID removes the row. Idempotent: a second delete of the same id
// reports zero matches without error.
func (s *FoodService) DeleteByID(id string) (DeleteResult, error) {
	foodID, err := parseID(id)
	if err != nil {
		return DeleteResult{}, err
	}
	res := s.db.Delete(&models.Food{}, foodID)
	if res.Error != nil {
		return DeleteResult{}, fmt.Errorf("delete food %d: %w", foodID, res.Error)
	}
	return DeleteResult{DeletedCount: res.RowsAffected}, nil
}

func parseID(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return uint(n), nil
}
