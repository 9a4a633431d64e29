package userControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/molokoedovmp/Online-shop/models"
)

type RegisterInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type ShippingAddressInput struct {
	FullName         string `json:"full_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	StreetAddress    string `json:"street_address" binding:"required"`
	ApartmentAddress string `json:"apartment_address"`
	Country          string `json:"country"`
	Zip              string `json:"zip"`
	City             string `json:"city"`
}

// RegisterUser creates a user and then runs the post-creation hook that
// gives them a default shipping address. The hook is explicit here, not an
// implicit event: a failure is logged but never fails the registration.
// POST /users/register
func RegisterUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user := models.User{Name: input.Name, Email: input.Email}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		address, err := models.CreateDefaultShippingAddress(db, &user)
		if err != nil {
			log.Printf("default shipping address for user %d not created: %v", user.ID, err)
		}

		c.JSON(http.StatusCreated, gin.H{
			"user":             user,
			"shipping_address": address,
		})
	}
}

// GET /users/:userID/shipping-address
func GetShippingAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userID")

		var address models.ShippingAddress
		if err := db.First(&address, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Shipping address not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shipping address"})
			return
		}
		c.JSON(http.StatusOK, address)
	}
}

// PUT /users/:userID/shipping-address
func UpdateShippingAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userID")

		var address models.ShippingAddress
		if err := db.First(&address, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Shipping address not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shipping address"})
			return
		}

		var input ShippingAddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		address.FullName = input.FullName
		address.Email = input.Email
		address.StreetAddress = input.StreetAddress
		address.ApartmentAddress = input.ApartmentAddress
		address.Country = input.Country
		address.Zip = input.Zip
		address.City = input.City

		if err := db.Save(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shipping address"})
			return
		}
		c.JSON(http.StatusOK, address)
	}
}
