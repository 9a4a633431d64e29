package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/molokoedovmp/Online-shop/email"
	"github.com/molokoedovmp/Online-shop/models"
)

// POST /orders/:orderID/confirm-payment
//
// Marks the order paid and dispatches the confirmation email in the
// background. The email task is fire-and-forget: its failure never rolls
// back the paid flag and is never surfaced to the caller.
func ConfirmPaymentHandler(db *gorm.DB, sender email.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if order.Paid {
			c.JSON(http.StatusOK, gin.H{"message": "Order already paid"})
			return
		}

		if err := db.Model(&order).Update("paid", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
			return
		}

		go email.SendOrderConfirmation(sender, db, order.ID)

		c.JSON(http.StatusOK, gin.H{"message": "Payment confirmed"})
	}
}
