package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/molokoedovmp/Online-shop/models"
)

type ProductInput struct {
	Title       string          `json:"title" binding:"required"`
	Slug        string          `json:"slug" binding:"required"`
	Brand       string          `json:"brand"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Discount    int             `json:"discount" binding:"gte=0,lte=100"`
	Available   *bool           `json:"available"`
	CategoryID  uint            `json:"category_id"`
}

// CreateProduct adds a product to the catalog (admin only).
// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		available := true
		if input.Available != nil {
			available = *input.Available
		}

		product := models.Product{
			Title:       input.Title,
			Slug:        input.Slug,
			Brand:       input.Brand,
			Description: input.Description,
			Price:       input.Price,
			Discount:    input.Discount,
			Available:   available,
			CategoryID:  input.CategoryID,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
