package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/molokoedovmp/Online-shop/models"
)

// ImportProductsFromExcel bulk-loads catalog rows from an uploaded workbook
// (admin only). Column order matches the export: ID, Title, Slug, Brand,
// Description, Price, Discount, Available, CategoryID. Rows with a known ID
// update the existing product; rows without create a new one. Malformed
// rows are skipped, not fatal.
// POST /admin/products/import
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			title := get(1)
			slug := get(2)
			brand := get(3)
			description := get(4)
			price, priceErr := decimal.NewFromString(get(5))
			discount, _ := strconv.Atoi(get(6))
			available := strings.EqualFold(get(7), "true") || get(7) == "1"
			categoryID, _ := strconv.Atoi(get(8))

			if title == "" || slug == "" || priceErr != nil || discount < 0 || discount > 100 {
				skippedCount++
				continue
			}

			product := models.Product{
				Title:       title,
				Slug:        slug,
				Brand:       brand,
				Description: description,
				Price:       price,
				Discount:    discount,
				Available:   available,
				CategoryID:  uint(categoryID),
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if err := db.First(&existing, id).Error; err == nil {
						product.ID = existing.ID
						if err := db.Save(&product).Error; err != nil {
							skippedCount++
							continue
						}
						updatedCount++
						continue
					}
				}
			}

			if err := db.Create(&product).Error; err != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}
