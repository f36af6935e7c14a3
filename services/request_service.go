package services

import (
	"fmt"
	"time"

	"unityplates-backend/models"

	"gorm.io/gorm"
)

type RequestService struct {
	db *gorm.DB
}

func NewRequestService(db *gorm.DB) *RequestService {
	return &RequestService{db: db}
}

func (s *RequestService) Create(request *models.RequestedFood) error {
	if request.RequestDate.IsZero() {
		request.RequestDate = time.Now()
	}
	if err := s.db.Create(request).Error; err != nil {
		return fmt.Errorf("insert requested food: %w", err)
	}
	return nil
}

// ByRequestor returns the requests made under the given email. This is
// the privacy boundary of the system: callers must have passed the
// ownership check first.
func (s *RequestService) ByRequestor(email string) ([]models.RequestedFood, error) {
	var requests []models.RequestedFood
	if err := s.db.Where("requestor_email = ?", email).Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("list requested foods: %w", err)
	}
	return requests, nil
}
