package controllers

import (
	"net/http"
	"time"

	"unityplates-backend/models"
	"unityplates-backend/services"

	"github.com/gin-gonic/gin"
)

type UserDetailsInput struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
	Photo string `json:"photo"`
}

type CreateFoodInput struct {
	FoodName        string           `json:"foodName" binding:"required"`
	FoodImage       string           `json:"foodImage"`
	FoodQuantity    float64          `json:"foodQuantity" binding:"gte=0"`
	PickupLocation  string           `json:"pickupLocation"`
	ExpiredDate     time.Time        `json:"expiredDate" binding:"required"`
	AdditionalNotes string           `json:"additionalNotes"`
	Status          string           `json:"status"`
	UserDetails     UserDetailsInput `json:"userDetails" binding:"required"`
}

// UpdateFoodInput carries a partial update; nil fields are left untouched.
type UpdateFoodInput struct {
	FoodName        *string    `json:"foodName"`
	FoodImage       *string    `json:"foodImage"`
	FoodQuantity    *float64   `json:"foodQuantity" binding:"omitempty,gte=0"`
	PickupLocation  *string    `json:"pickupLocation"`
	ExpiredDate     *time.Time `json:"expiredDate"`
	AdditionalNotes *string    `json:"additionalNotes"`
	Status          *string    `json:"status"`
}

// columns maps the supplied fields onto the whitelisted column set, so a
// partial update can never write outside the Food schema.
func (in *UpdateFoodInput) columns() map[string]interface{} {
	fields := map[string]interface{}{}
	if in.FoodName != nil {
		fields["food_name"] = *in.FoodName
	}
	if in.FoodImage != nil {
		fields["food_image"] = *in.FoodImage
	}
	if in.FoodQuantity != nil {
		fields["food_quantity"] = *in.FoodQuantity
	}
	if in.PickupLocation != nil {
		fields["pickup_location"] = *in.PickupLocation
	}
	if in.ExpiredDate != nil {
		fields["expired_date"] = *in.ExpiredDate
	}
	if in.AdditionalNotes != nil {
		fields["additional_notes"] = *in.AdditionalNotes
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	return fields
}

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

// CreateFood handles POST /postedfoods.
func (fc *FoodController) CreateFood(c *gin.Context) {
	var input CreateFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := input.Status
	if status == "" {
		status = models.StatusAvailable
	}
	food := models.Food{
		FoodName:        input.FoodName,
		FoodImage:       input.FoodImage,
		FoodQuantity:    input.FoodQuantity,
		PickupLocation:  input.PickupLocation,
		ExpiredDate:     input.ExpiredDate,
		AdditionalNotes: input.AdditionalNotes,
		Status:          status,
		UserDetails: models.UserDetails{
			Name:  input.UserDetails.Name,
			Email: input.UserDetails.Email,
			Photo: input.UserDetails.Photo,
		},
	}
	if err := fc.foods.Create(&food); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// TopFoods handles GET /foods: the six largest postings.
func (fc *FoodController) TopFoods(c *gin.Context) {
	foods, err := fc.foods.TopByQuantity(services.DefaultFeaturedLimit)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// AvailableFoods handles GET /availabefoods: soonest-expiring first.
func (fc *FoodController) AvailableFoods(c *gin.Context) {
	foods, err := fc.foods.AvailableByExpiry(false)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// AvailableFoodsSorted handles GET /availabefoodsorted: latest expiry first.
func (fc *FoodController) AvailableFoodsSorted(c *gin.Context) {
	foods, err := fc.foods.AvailableByExpiry(true)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// ManageFoods handles GET /manageAllFoods/:email. The ownership middleware
// has already matched the path email against the session.
func (fc *FoodController) ManageFoods(c *gin.Context) {
	foods, err := fc.foods.ByOwner(c.Param("email"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// SearchFoods handles GET /searchfoods/:search.
func (fc *FoodController) SearchFoods(c *gin.Context) {
	foods, err := fc.foods.SearchByName(c.Param("search"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// FoodDetails handles GET /fooddetails/:id.
func (fc *FoodController) FoodDetails(c *gin.Context) {
	food, err := fc.foods.GetByID(c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// UpdateFood handles PUT /updatesFoodData/:id: merges the supplied fields
// into the existing record.
func (fc *FoodController) UpdateFood(c *gin.Context) {
	var input UpdateFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := fc.foods.UpdateByID(c.Param("id"), input.columns())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteFood handles DELETE /deletefood/:id.
func (fc *FoodController) DeleteFood(c *gin.Context) {
	result, err := fc.foods.DeleteByID(c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
