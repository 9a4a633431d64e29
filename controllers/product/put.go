package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/molokoedovmp/Online-shop/models"
)

type ProductUpdateInput struct {
	Title       *string          `json:"title"`
	Slug        *string          `json:"slug"`
	Brand       *string          `json:"brand"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Discount    *int             `json:"discount"`
	Available   *bool            `json:"available"`
	CategoryID  *uint            `json:"category_id"`
}

// UpdateProduct patches catalog fields on an existing product (admin only).
// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Title != nil {
			product.Title = *input.Title
		}
		if input.Slug != nil {
			product.Slug = *input.Slug
		}
		if input.Brand != nil {
			product.Brand = *input.Brand
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Discount != nil {
			if *input.Discount < 0 || *input.Discount > 100 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "discount must be between 0 and 100"})
				return
			}
			product.Discount = *input.Discount
		}
		if input.Available != nil {
			product.Available = *input.Available
		}
		if input.CategoryID != nil {
			product.CategoryID = *input.CategoryID
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
