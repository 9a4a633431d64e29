package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/molokoedovmp/Online-shop/cart"
	"github.com/molokoedovmp/Online-shop/middleware"
	"github.com/molokoedovmp/Online-shop/models"
)

type CheckoutRequest struct {
	UserID            uint `json:"user_id"`
	ShippingAddressID uint `json:"shipping_address_id"`
	Discount          int  `json:"discount" binding:"gte=0,lte=100"`
}

// POST /orders/checkout
//
// Transcribes the session cart into a persisted order: one OrderItem per
// cart entry, each keeping the entry's price snapshot. The order amount is
// the cart total minus the percentage discount, in exact decimal arithmetic.
// On success the cart is cleared.
func Checkout(db *gorm.DB, store cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sessionCart, err := cart.Load(c.Request.Context(), store, middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		if sessionCart.Len() == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		var userID *uint
		if req.UserID != 0 {
			userID = &req.UserID
		}
		var addressID *uint
		if req.ShippingAddressID != 0 {
			addressID = &req.ShippingAddressID
		}

		order := models.Order{
			UserID:            userID,
			ShippingAddressID: addressID,
			Discount:          req.Discount,
		}

		for productID, entry := range sessionCart.Entries() {
			id, err := strconv.ParseUint(productID, 10, 64)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "corrupt cart entry"})
				return
			}
			order.Items = append(order.Items, models.OrderItem{
				ProductID: uint(id),
				Price:     entry.Price,
				Quantity:  entry.Quantity,
				UserID:    userID,
			})
		}
		order.Amount = order.TotalCost()

		err = db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		sessionCart.Clear()
		if err := sessionCart.Save(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order created but cart not cleared"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"order_id": order.ID,
			"amount":   order.Amount,
			"qty":      sessionCart.Len(),
		})
	}
}
