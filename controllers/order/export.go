package orderControllers

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/molokoedovmp/Online-shop/models"
)

// Dates in the export use DD/MM/YYYY, the format the back office expects.
const exportDateFormat = "02/01/2006"

// GET /admin/orders/export/paid
func ExportPaidOrdersCSV(db *gorm.DB) gin.HandlerFunc {
	return exportOrdersCSV(db, true, "PaidOrder.csv")
}

// GET /admin/orders/export/not-paid
func ExportNotPaidOrdersCSV(db *gorm.DB) gin.HandlerFunc {
	return exportOrdersCSV(db, false, "NotPaidOrder.csv")
}

func exportOrdersCSV(db *gorm.DB, paid bool, filename string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Where("paid = ?", paid).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", "attachment; filename="+filename)

		w := csv.NewWriter(c.Writer)
		_ = w.Write([]string{"id", "user", "shipping_address", "amount", "created", "updated", "paid", "discount"})

		for _, order := range orders {
			_ = w.Write([]string{
				strconv.FormatUint(uint64(order.ID), 10),
				formatRef(order.UserID),
				formatRef(order.ShippingAddressID),
				order.Amount.String(),
				order.CreatedAt.Format(exportDateFormat),
				order.UpdatedAt.Format(exportDateFormat),
				strconv.FormatBool(order.Paid),
				strconv.Itoa(order.Discount),
			})
		}
		w.Flush()
	}
}

func formatRef(id *uint) string {
	if id == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*id), 10)
}
