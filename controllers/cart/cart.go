package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/molokoedovmp/Online-shop/cart"
	"github.com/molokoedovmp/Online-shop/middleware"
	"github.com/molokoedovmp/Online-shop/models"
)

// All mutating cart endpoints are form-encoded POSTs gated on an
// action=post discriminator field; any other action yields an empty
// response, matching the storefront's AJAX contract.

// POST /cart/add
func AddToCart(db *gorm.DB, store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.PostForm("action") != "post" {
			c.Status(http.StatusNoContent)
			return
		}

		productID, err := strconv.Atoi(c.PostForm("product_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "product_id must be an integer"})
			return
		}
		productQty, err := strconv.Atoi(c.PostForm("product_qty"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "product_qty must be an integer"})
			return
		}
		if productQty <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_qty must be positive"})
			return
		}

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		sessionCart, err := cart.Load(c.Request.Context(), store, middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		sessionCart.Add(product, productQty)

		if err := sessionCart.Save(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"qty": sessionCart.Len(), "product": product.Title})
	}
}

// POST /cart/delete
func DeleteFromCart(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.PostForm("action") != "post" {
			c.Status(http.StatusNoContent)
			return
		}

		productID, err := strconv.Atoi(c.PostForm("product_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "product_id must be an integer"})
			return
		}

		sessionCart, err := cart.Load(c.Request.Context(), store, middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		sessionCart.Delete(strconv.Itoa(productID))

		if err := sessionCart.Save(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"qty": sessionCart.Len(), "total": sessionCart.TotalPrice()})
	}
}

// POST /cart/update
func UpdateCart(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.PostForm("action") != "post" {
			c.Status(http.StatusNoContent)
			return
		}

		productID, err := strconv.Atoi(c.PostForm("product_id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "product_id must be an integer"})
			return
		}
		productQty, err := strconv.Atoi(c.PostForm("product_qty"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "product_qty must be an integer"})
			return
		}

		sessionCart, err := cart.Load(c.Request.Context(), store, middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		sessionCart.Update(strconv.Itoa(productID), productQty)

		if err := sessionCart.Save(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"qty": sessionCart.Len(), "total": sessionCart.TotalPrice()})
	}
}

// GET /cart/
func GetCart(store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionCart, err := cart.Load(c.Request.Context(), store, middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": sessionCart.Entries(),
			"qty":   sessionCart.Len(),
			"total": sessionCart.TotalPrice(),
		})
	}
}
