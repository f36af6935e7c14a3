package controllers

import (
	"net/http"
	"time"

	"unityplates-backend/models"
	"unityplates-backend/services"

	"github.com/gin-gonic/gin"
)

type CreateRequestInput struct {
	FoodID          uint      `json:"foodId"`
	FoodName        string    `json:"foodName" binding:"required"`
	FoodImage       string    `json:"foodImage"`
	PickupLocation  string    `json:"pickupLocation"`
	ExpiredDate     time.Time `json:"expiredDate"`
	DonatorName     string    `json:"donatorName"`
	DonatorEmail    string    `json:"donatorEmail" binding:"omitempty,email"`
	RequestorEmail  string    `json:"requestorEmail" binding:"required,email"`
	RequestDate     time.Time `json:"requestDate"`
	AdditionalNotes string    `json:"additionalNotes"`
}

type RequestController struct {
	requests *services.RequestService
}

func NewRequestController(requests *services.RequestService) *RequestController {
	return &RequestController{requests: requests}
}

// CreateRequest handles POST /requestedfoods.
func (rc *RequestController) CreateRequest(c *gin.Context) {
	var input CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request := models.RequestedFood{
		FoodID:          input.FoodID,
		FoodName:        input.FoodName,
		FoodImage:       input.FoodImage,
		PickupLocation:  input.PickupLocation,
		ExpiredDate:     input.ExpiredDate,
		DonatorName:     input.DonatorName,
		DonatorEmail:    input.DonatorEmail,
		RequestorEmail:  input.RequestorEmail,
		RequestDate:     input.RequestDate,
		AdditionalNotes: input.AdditionalNotes,
	}
	if err := rc.requests.Create(&request); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// MyRequests handles GET /getMyFoods/:email. The ownership middleware has
// already matched the path email against the session, so no other user
// can enumerate these.
func (rc *RequestController) MyRequests(c *gin.Context) {
	requests, err := rc.requests.ByRequestor(c.Param("email"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}
